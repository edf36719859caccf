package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

import "strings"

// UserAgentProvider is an interface that defines a method for retrieving a User-Agent string.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// SimpleUserAgentProvider returns a static User-Agent string set during initialization.
type SimpleUserAgentProvider struct {
	userAgent string
}

// NewSimpleUserAgentProvider creates and returns a new instance of SimpleUserAgentProvider.
func NewSimpleUserAgentProvider(userAgent string) UserAgentProvider {
	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns a User-Agent string.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}

// ProductUserAgentProvider builds a "product/version (comment)" User-Agent string.
type ProductUserAgentProvider struct {
	product string
	version string
	comment string
}

// NewProductUserAgentProvider creates a provider for the given product token.
// The comment is optional.
func NewProductUserAgentProvider(product, version, comment string) UserAgentProvider {
	return &ProductUserAgentProvider{
		product: strings.TrimSpace(product),
		version: strings.TrimSpace(version),
		comment: strings.TrimSpace(comment),
	}
}

// GetUserAgent returns a User-Agent string.
func (p *ProductUserAgentProvider) GetUserAgent() string {
	var sb strings.Builder

	sb.WriteString(p.product)

	if p.version != "" {
		sb.WriteString("/")
		sb.WriteString(p.version)
	}

	if p.comment != "" {
		sb.WriteString(" (")
		sb.WriteString(p.comment)
		sb.WriteString(")")
	}

	return sb.String()
}
