package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// Response is a successful API response with a JSON (or empty) body.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header contains the response headers.
	Header http.Header
	// Body is the raw response body.
	Body []byte
}

// JSON returns the parsed body. An empty body yields a null result.
func (r *Response) JSON() gjson.Result {
	return gjson.ParseBytes(r.Body)
}

// Get looks up a value in the body using gjson path syntax.
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// Decode unmarshals the body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if isEmptyBody(r.Body) {
		return nil
	}

	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}

// Pretty returns the body indented for display.
func (r *Response) Pretty() string {
	if isEmptyBody(r.Body) {
		return "null"
	}

	return gjson.GetBytes(r.Body, "@pretty").Raw
}

// readResponse drains the HTTP response and validates status and body.
func readResponse(response *http.Response) (*Response, error) {
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{
			StatusCode: response.StatusCode,
			Body:       body,
		}
	}

	if !isEmptyBody(body) && !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %d bytes of %s", ErrMalformedResponse, len(body), response.Header.Get(contentTypeHeader))
	}

	return &Response{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       body,
	}, nil
}

func isEmptyBody(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0
}
