package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewSimpleUserAgentProvider tests the NewSimpleUserAgentProvider function.
func TestNewSimpleUserAgentProvider(t *testing.T) {
	t.Parallel()

	userAgent := "TestAgent/1.0"
	provider := NewSimpleUserAgentProvider(userAgent)

	assert.NotNil(t, provider)
	assert.Implements(t, (*UserAgentProvider)(nil), provider)
}

// TestSimpleUserAgentProvider_GetUserAgent tests the GetUserAgent method.
func TestSimpleUserAgentProvider_GetUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
	}{
		{
			name:      "empty user agent",
			userAgent: "",
		},
		{
			name:      "simple user agent",
			userAgent: "Mozilla/5.0",
		},
		{
			name:      "complex user agent",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		},
		{
			name:      "custom user agent",
			userAgent: "shared-ng/1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewSimpleUserAgentProvider(tt.userAgent)
			result := provider.GetUserAgent()
			assert.Equal(t, tt.userAgent, result)
		})
	}
}

// TestSimpleUserAgentProvider_MultipleInstances tests that multiple instances work independently.
func TestSimpleUserAgentProvider_MultipleInstances(t *testing.T) {
	t.Parallel()

	provider1 := NewSimpleUserAgentProvider("Agent1")
	provider2 := NewSimpleUserAgentProvider("Agent2")

	assert.Equal(t, "Agent1", provider1.GetUserAgent())
	assert.Equal(t, "Agent2", provider2.GetUserAgent())
	assert.NotEqual(t, provider1.GetUserAgent(), provider2.GetUserAgent())
}

// TestProductUserAgentProvider_GetUserAgent tests the GetUserAgent method of ProductUserAgentProvider.
func TestProductUserAgentProvider_GetUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		product  string
		version  string
		comment  string
		expected string
	}{
		{
			name:     "product only",
			product:  "shared-ng",
			expected: "shared-ng",
		},
		{
			name:     "product and version",
			product:  "shared-ng",
			version:  "1.2.3",
			expected: "shared-ng/1.2.3",
		},
		{
			name:     "product, version and comment",
			product:  "shared-ng",
			version:  "1.2.3",
			comment:  "+https://aswwu.com",
			expected: "shared-ng/1.2.3 (+https://aswwu.com)",
		},
		{
			name:     "whitespace is trimmed",
			product:  " shared-ng ",
			version:  " 0.1.0 ",
			comment:  "  ",
			expected: "shared-ng/0.1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewProductUserAgentProvider(tt.product, tt.version, tt.comment)
			assert.Implements(t, (*UserAgentProvider)(nil), provider)
			assert.Equal(t, tt.expected, provider.GetUserAgent())
		})
	}
}
