// Package formtest turns form values into HTML form parameters for
// net/http handler tests.
//
// A form is a struct, a pointer to a struct or a map. Its members are named
// by the "form" struct tag and flattened the way HTML forms name nested
// inputs:
//
//	type AddUserForm struct {
//		Name      string            `form:"name"`
//		Usernames []string          `form:"usernames"`
//		Diplomas  []Diploma         `form:"diplomas"`
//		Metadatas map[string]string `form:"metadatas"`
//	}
//
// produces name, usernames[0], diplomas[0].name and metadatas[key]
// parameters. Nil values produce no parameter; nil map values produce an
// empty one.
//
// Tag options mark members as final, transient or static; a Configuration
// decides which of them are sent, how leaves are formatted and how container
// elements are classified:
//
//	cfg := formtest.NewBuilder().
//		IncludeTransient(true).
//		Register(reflect.TypeFor[time.Time](), format.Of(func(t time.Time) string {
//			return t.Format("02.01.2006")
//		})).
//		Build()
//
//	req, err := formtest.PostForm("/users", form, cfg)
package formtest
