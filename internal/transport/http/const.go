package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultProduct is the product token of the default User-Agent.
	DefaultProduct = "shared-ng"

	// correlationIDKey is the log key that ties a request dump to its response dump.
	correlationIDKey = "correlation_id"
)
