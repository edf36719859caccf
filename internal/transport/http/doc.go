// Package http provides custom HTTP transport utilities,
// including request/response logging, Prometheus instrumentation and User-Agent header injection.
// The round trippers are chained around http.DefaultTransport by the API client.
package http
