package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/Mikhail-Beresnev/shared-ng/internal/client/api"
	"github.com/Mikhail-Beresnev/shared-ng/internal/config"
	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
)

// ErrUnsupportedMethod is returned for methods the API service does not dispatch.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// Request describes one API call issued from the command line.
type Request struct {
	// Method is the HTTP method.
	Method string
	// URI is resolved against the server URL unless it is absolute.
	URI string
	// Params are appended to the URL query.
	Params url.Values
	// Data is the request body. Ignored for GET and DELETE.
	Data api.Payload
	// Encoding selects the body format.
	Encoding api.Encoding
}

// ExecuteRequestCommand issues the request and prints the response to stdout.
func ExecuteRequestCommand(ctx context.Context, cfg *config.Config, request *Request) {
	service, registry := newService(ctx, cfg)

	err := runRequest(ctx, service, request, os.Stdout)

	finish(ctx, cfg, registry)

	if err != nil {
		logger.Fatalf(ctx, "Request failed: %v", err)
	}
}

func runRequest(ctx context.Context, service api.Service, request *Request, w io.Writer) error {
	call, err := startCall(ctx, service, request)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "Sent %s %s", call.Method, call.URL)

	response, err := call.Wait(ctx)
	if err != nil {
		printFailure(w, err)

		return err
	}

	printResponse(w, response)

	return nil
}

func startCall(ctx context.Context, service api.Service, request *Request) (*api.Call, error) {
	switch request.Method {
	case http.MethodGet:
		return service.Get(ctx, request.URI, request.Params), nil
	case http.MethodDelete:
		return service.Delete(ctx, request.URI, request.Params), nil
	case http.MethodPost:
		return service.Post(ctx, request.URI, request.Data, request.Params, request.Encoding), nil
	case http.MethodPut:
		return service.Put(ctx, request.URI, request.Data, request.Params, request.Encoding), nil
	case http.MethodPatch:
		return service.Patch(ctx, request.URI, request.Data, request.Params, request.Encoding), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedMethod, request.Method)
	}
}
