package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Encoding selects how a request payload is serialized.
type Encoding uint8

const (
	// EncodingJSON serializes the payload as JSON. It is the default.
	EncodingJSON Encoding = iota
	// EncodingURLEncoded serializes the payload as application/x-www-form-urlencoded.
	EncodingURLEncoded
)

const (
	encodingNameJSON       = "json"
	encodingNameURLEncoded = "urlencoded"
)

// Payload is a request body made of string keys and arbitrary JSON-compatible values.
type Payload map[string]any

// RequestOptions holds the headers and query parameters of a request.
type RequestOptions struct {
	// Header contains the request headers.
	Header http.Header
	// Params contains the query parameters appended to the URL.
	Params url.Values
}

// ParseEncoding converts "json" or "urlencoded" into an Encoding.
// An empty name means EncodingJSON.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", encodingNameJSON:
		return EncodingJSON, nil
	case encodingNameURLEncoded:
		return EncodingURLEncoded, nil
	default:
		return EncodingJSON, fmt.Errorf("%w: '%s'", ErrUnknownEncoding, name)
	}
}

// String returns the encoding name.
func (e Encoding) String() string {
	if e == EncodingURLEncoded {
		return encodingNameURLEncoded
	}

	return encodingNameJSON
}

// ContentType returns the Content-Type header value for the encoding.
func (e Encoding) ContentType() string {
	if e == EncodingURLEncoded {
		return ContentTypeURLEncoded
	}

	return ContentTypeJSON
}

// EncodeBody serializes data according to encoding.
//
// URL-encoded bodies have semicolons in string values replaced with commas,
// while any non-string value is sent as its JSON text.
// Keys are emitted in sorted order.
func EncodeBody(data Payload, encoding Encoding) (string, error) {
	if encoding == EncodingURLEncoded {
		values, err := payloadToValues(data)
		if err != nil {
			return "", err
		}

		return values.Encode(), nil
	}

	// A nil payload encodes to "null".
	return marshalJSON(data)
}

// CreateOptions builds the headers and query parameters of a request.
// Params default to an empty set.
func CreateOptions(params url.Values, encoding Encoding) RequestOptions {
	if params == nil {
		params = url.Values{}
	}

	header := make(http.Header)
	header.Set(contentTypeHeader, encoding.ContentType())

	return RequestOptions{
		Header: header,
		Params: params,
	}
}

func payloadToValues(data Payload) (url.Values, error) {
	values := make(url.Values, len(data))

	for key, value := range data {
		if text, ok := value.(string); ok {
			values.Add(key, strings.ReplaceAll(text, ";", ","))

			continue
		}

		text, err := marshalJSON(value)
		if err != nil {
			return nil, fmt.Errorf("field '%s': %w", key, err)
		}

		values.Add(key, text)
	}

	return values, nil
}

// marshalJSON renders v without HTML escaping and without a trailing newline.
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
