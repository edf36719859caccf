package api

import (
	"context"
	"io"
	"net/http"
)

// rawRequester issues HTTP requests against the server without any session pre-checks.
// Session verification and uploads use it directly; the public verbs are built on top of it.
type rawRequester struct {
	httpClient *http.Client
	baseURL    string
}

// newRequest builds a request for uri with the given options and body.
func (r *rawRequester) newRequest(
	ctx context.Context,
	method string,
	uri string,
	options RequestOptions,
	body io.Reader,
) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, method, CreateURI(r.baseURL, uri), body)
	if err != nil {
		return nil, err
	}

	if len(options.Params) > 0 {
		query := request.URL.Query()

		for key, values := range options.Params {
			for _, value := range values {
				query.Add(key, value)
			}
		}

		request.URL.RawQuery = query.Encode()
	}

	for key, values := range options.Header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	return request, nil
}

// do sends the request and reads the response.
func (r *rawRequester) do(request *http.Request) (*Response, error) {
	response, err := r.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	return readResponse(response)
}

// fetch sends a request and blocks until it completes.
func (r *rawRequester) fetch(
	ctx context.Context,
	method string,
	uri string,
	options RequestOptions,
	body io.Reader,
) (*Response, error) {
	request, err := r.newRequest(ctx, method, uri, options, body)
	if err != nil {
		return nil, err
	}

	return r.do(request)
}

// start sends a request on a new goroutine and returns its handle.
func (r *rawRequester) start(
	ctx context.Context,
	method string,
	uri string,
	options RequestOptions,
	body io.Reader,
) *Call {
	callCtx, cancel := context.WithCancel(ctx)

	request, err := r.newRequest(callCtx, method, uri, options, body)
	if err != nil {
		cancel()

		return failedCall(method, CreateURI(r.baseURL, uri), err)
	}

	call := newCall(method, request.URL.String(), cancel)

	go func() {
		response, doErr := r.do(request)
		call.finish(response, doErr)
	}()

	return call
}
