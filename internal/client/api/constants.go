package api

const (
	// ContentTypeJSON is the Content-Type of JSON request bodies.
	ContentTypeJSON = "application/json"
	// ContentTypeURLEncoded is the Content-Type of URL-encoded request bodies.
	ContentTypeURLEncoded = "application/x-www-form-urlencoded; charset=UTF-8"

	// contentTypeHeader is the HTTP header name for Content-Type.
	contentTypeHeader = "Content-Type"

	// userField is the verify response field that holds the current user.
	userField = "user"

	// uploadFileField is the multipart field name of uploaded images.
	uploadFileField = "file"

	// absoluteURLPrefix marks URIs that are used as-is.
	absoluteURLPrefix = "http"
)
