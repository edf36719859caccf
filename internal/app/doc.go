// Package app implements the shared-ng commands on top of the API service.
// Each Execute function builds the service from the configuration, runs one operation,
// prints the outcome and terminates the process through the logger on failure.
package app
