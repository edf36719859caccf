package api

//go:generate $MOCKGEN -source=cookie.go -destination=mocks/cookie_source_mock.go

import (
	"net/http"
	"net/url"
	"strings"
)

// CookieSource exposes the ambient cookie store as a single "name=value; name2=value2" string.
type CookieSource interface {
	// CookieString returns the cookies visible to the API server.
	CookieString() string
}

// JarCookieSource renders the cookies a jar holds for the server URL.
type JarCookieSource struct {
	jar       http.CookieJar
	serverURL *url.URL
}

// NewJarCookieSource creates a cookie source backed by jar.
func NewJarCookieSource(jar http.CookieJar, serverURL *url.URL) *JarCookieSource {
	return &JarCookieSource{
		jar:       jar,
		serverURL: serverURL,
	}
}

// CookieString returns the cookies visible to the API server.
func (s *JarCookieSource) CookieString() string {
	if s.jar == nil || s.serverURL == nil {
		return ""
	}

	cookies := s.jar.Cookies(s.serverURL)
	pairs := make([]string, 0, len(cookies))

	for _, cookie := range cookies {
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}

	return strings.Join(pairs, "; ")
}

// StaticCookieSource is a fixed cookie string.
type StaticCookieSource string

// CookieString returns the cookie string itself.
func (s StaticCookieSource) CookieString() string {
	return string(s)
}

// HasSessionCookie reports whether the cookie string contains "<name>=".
func HasSessionCookie(cookies, name string) bool {
	return strings.Contains(cookies, name+"=")
}
