package utils

import (
	"errors"
	"fmt"
	"math"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// ImageJPEGMimeType is the MIME type for JPEG images.
	ImageJPEGMimeType = "image/jpeg"

	// ImagePNGMimeType is the MIME type for PNG images.
	ImagePNGMimeType = "image/png"

	// OctetStreamMimeType is the fallback MIME type for binary content.
	OctetStreamMimeType = "application/octet-stream"
)

// ErrInvalidKeyValue indicates that a key=value pair could not be parsed.
var ErrInvalidKeyValue = errors.New("expected key=value")

var (
	// textContentTypePatterns is a slice of regular expressions that match content types
	// considered to be text-based. This includes "text/*", JSON, form-encoded bodies and
	// "application/samlmetadata+xml".
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile(`^application/[a-z0-9.\-]+\+json$`),
		regexp.MustCompile("^application/x-www-form-urlencoded$"),
		regexp.MustCompile(`^application/samlmetadata\+xml`),
	}
)

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// IsTextContentType checks if the given content type represents a text-based format.
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// ContentTypeByFilename guesses a MIME type from the file extension,
// falling back to application/octet-stream.
func ContentTypeByFilename(filename string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if contentType == "" {
		return OctetStreamMimeType
	}

	return contentType
}

// ParseKeyValue splits a "key=value" string at the first equals sign.
// The value may be empty, the key may not.
func ParseKeyValue(pair string) (string, string, error) {
	key, value, found := strings.Cut(pair, "=")

	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidKeyValue, pair)
	}

	return key, value, nil
}
