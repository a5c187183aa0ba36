package formtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"go.uber.org/zap"
)

// ContentType is the content type of form requests.
const ContentType = "application/x-www-form-urlencoded"

// PostForm returns a POST request to target carrying the parameters of form
// as a URL-encoded body. The optional configuration defaults to Default.
func PostForm(target string, form any, cfg ...*Configuration) (*http.Request, error) {
	return NewFormRequest(http.MethodPost, target, form, cfg...)
}

// PutForm returns a PUT request to target carrying the parameters of form
// as a URL-encoded body.
func PutForm(target string, form any, cfg ...*Configuration) (*http.Request, error) {
	return NewFormRequest(http.MethodPut, target, form, cfg...)
}

// NewFormRequest returns a request suitable for passing to an http.Handler,
// built with httptest.NewRequest, whose body holds the parameters of form.
// Like httptest.NewRequest, it panics on an invalid target.
func NewFormRequest(method, target string, form any, cfg ...*Configuration) (*http.Request, error) {
	c := pick(cfg)

	params, err := Flatten(form, c)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s form request: %w", method, target, err)
	}

	for path, value := range params.All() {
		logField(c.logger, path, value)
	}

	r := httptest.NewRequest(method, target, strings.NewReader(params.Encode()))
	r.Header.Set("Content-Type", ContentType)

	return r, nil
}

// AddForm adds the parameters of form to the parsed form values of r, as
// if they had been submitted with it: they are visible through r.Form,
// r.PostForm and r.FormValue. The body of r is left untouched.
func AddForm(r *http.Request, form any, cfg ...*Configuration) error {
	c := pick(cfg)

	params, err := Flatten(form, c)
	if err != nil {
		return fmt.Errorf("failed to add form to %s %s: %w", r.Method, r.URL, err)
	}

	if r.Form == nil || r.PostForm == nil {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("failed to parse request form: %w", err)
		}
	}

	for path, value := range params.All() {
		logField(c.logger, path, value)
		r.Form.Add(path, value)
		r.PostForm.Add(path, value)
	}

	return nil
}

// Form returns a request processor adding the parameters of form with AddForm.
func Form(form any, cfg ...*Configuration) func(*http.Request) error {
	return func(r *http.Request) error {
		return AddForm(r, form, cfg...)
	}
}

func pick(cfg []*Configuration) *Configuration {
	for _, c := range cfg {
		if c != nil {
			return c
		}
	}

	return Default
}

func logField(logger *zap.Logger, path, value string) {
	if logger == nil {
		return
	}

	logger.Debug("Adding form field to HTTP request parameters",
		zap.String("name", path),
		zap.String("value", value))
}
