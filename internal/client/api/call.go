package api

import "context"

// Call is the asynchronous handle of a dispatched request.
// It completes exactly once, with either a response or an error.
type Call struct {
	// Method is the HTTP method of the request.
	Method string
	// URL is the normalized request URL.
	URL string

	done     chan struct{}
	cancel   context.CancelFunc
	response *Response
	err      error
}

func newCall(method, url string, cancel context.CancelFunc) *Call {
	return &Call{
		Method: method,
		URL:    url,
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// failedCall returns a call that has already completed with err.
func failedCall(method, url string, err error) *Call {
	call := newCall(method, url, func() {})
	call.finish(nil, err)

	return call
}

// Done returns a channel that is closed when the call completes.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the call completes or ctx is done.
// Abandoning the wait does not cancel the request, use Cancel for that.
func (c *Call) Wait(ctx context.Context) (*Response, error) {
	select {
	case <-c.done:
		return c.response, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Decode waits for the call and unmarshals the response body into v.
func (c *Call) Decode(ctx context.Context, v any) error {
	response, err := c.Wait(ctx)
	if err != nil {
		return err
	}

	return response.Decode(v)
}

// Cancel aborts the request if it is still in flight.
func (c *Call) Cancel() {
	c.cancel()
}

func (c *Call) finish(response *Response, err error) {
	c.response = response
	c.err = err

	// Release the request context once the outcome is recorded.
	c.cancel()
	close(c.done)
}
