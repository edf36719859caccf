// Package api provides a generic client for the backend API.
// It normalizes request URIs against the configured server URL,
// encodes JSON and URL-encoded bodies, dispatches GET/POST/PUT/PATCH/DELETE
// calls asynchronously, uploads images as multipart forms,
// and tracks whether a user is logged in through a cookie-triggered verification call.
package api
