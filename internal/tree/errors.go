package tree

import (
	"errors"
	"fmt"
	"reflect"

	"form-flattener/internal/common"
)

var (
	ErrInvalidRoot     = errors.New("form root must be a struct, a pointer to a struct or a map")
	ErrUnsupportedKind = errors.New("value kind cannot be flattened")
	ErrInaccessible    = errors.New("member value cannot be read")
	ErrDuplicatePath   = errors.New("form path produced twice")
)

// PathError records a flatten failure and the path of the value that caused it.
type PathError struct {
	Path string
	Type reflect.Type
	Err  error
}

func (e *PathError) Error() string {
	path := e.Path
	if path == "" {
		path = "<root>"
	}

	return fmt.Sprintf("flatten %s (%s): %v", path, common.TypeName(e.Type), e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
