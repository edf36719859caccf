package api

import "strings"

// CreateURI resolves uri against baseURL.
// A uri starting with "http" is returned unchanged; otherwise the two parts
// are joined with exactly one slash between them.
func CreateURI(baseURL, uri string) string {
	if strings.HasPrefix(uri, absoluteURLPrefix) {
		return uri
	}

	baseHasSlash := strings.HasSuffix(baseURL, "/")
	uriHasSlash := strings.HasPrefix(uri, "/")

	switch {
	case baseHasSlash && uriHasSlash:
		return baseURL + uri[1:]
	case !baseHasSlash && !uriHasSlash:
		return baseURL + "/" + uri
	default:
		return baseURL + uri
	}
}
