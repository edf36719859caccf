package api

import "net/http"

// verb is one of the HTTP methods the service dispatches.
// The set is closed: values exist only as the package-level variables below.
type verb struct {
	name     string
	withBody bool
}

//nolint:gochecknoglobals // Immutable enumeration values.
var (
	verbGet    = verb{name: http.MethodGet}
	verbDelete = verb{name: http.MethodDelete}
	verbPost   = verb{name: http.MethodPost, withBody: true}
	verbPut    = verb{name: http.MethodPut, withBody: true}
	verbPatch  = verb{name: http.MethodPatch, withBody: true}
)

// String returns the HTTP method name.
func (v verb) String() string {
	return v.name
}
