package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnexpectedHTTPStatus indicates a non-2xx HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrMalformedResponse indicates that the response body is not valid JSON.
	ErrMalformedResponse = errors.New("malformed response body")
	// ErrEncodeBody indicates that the request payload could not be serialized.
	ErrEncodeBody = errors.New("failed to encode request body")
	// ErrUnknownEncoding indicates that an encoding name is not recognized.
	ErrUnknownEncoding = errors.New("unknown body encoding")
	// ErrNilUploadFile indicates that no file was given to UploadImage.
	ErrNilUploadFile = errors.New("upload file is nil")
	// ErrUploadTooLarge indicates that the uploaded file exceeds the configured limit.
	ErrUploadTooLarge = errors.New("upload file is too large")
)

// HTTPError is returned when the server answers with a non-2xx status code.
// It matches ErrUnexpectedHTTPStatus with errors.Is.
type HTTPError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrUnexpectedHTTPStatus, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap returns ErrUnexpectedHTTPStatus.
func (e *HTTPError) Unwrap() error {
	return ErrUnexpectedHTTPStatus
}
