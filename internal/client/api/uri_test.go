package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCreateURI tests the CreateURI function.
func TestCreateURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		baseURL  string
		uri      string
		expected string
	}{
		{
			name:     "base with slash, relative uri",
			baseURL:  "https://api.example.com/",
			uri:      "foo/bar",
			expected: "https://api.example.com/foo/bar",
		},
		{
			name:     "double slash collapses",
			baseURL:  "https://api.example.com/",
			uri:      "/foo/bar",
			expected: "https://api.example.com/foo/bar",
		},
		{
			name:     "missing slash is inserted",
			baseURL:  "https://api.example.com/server",
			uri:      "verify",
			expected: "https://api.example.com/server/verify",
		},
		{
			name:     "single slash from uri",
			baseURL:  "https://api.example.com/server",
			uri:      "/pages/media/upload_image",
			expected: "https://api.example.com/server/pages/media/upload_image",
		},
		{
			name:     "absolute uri unchanged",
			baseURL:  "https://api.example.com/",
			uri:      "https://other.example.com/x",
			expected: "https://other.example.com/x",
		},
		{
			name:     "plain http uri unchanged",
			baseURL:  "https://api.example.com",
			uri:      "http://other.example.com",
			expected: "http://other.example.com",
		},
		{
			name:     "empty uri",
			baseURL:  "https://api.example.com",
			uri:      "",
			expected: "https://api.example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, CreateURI(tt.baseURL, tt.uri))
		})
	}
}
