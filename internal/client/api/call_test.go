package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFailedCall tests that a failed call is already complete.
func TestFailedCall(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	call := failedCall(http.MethodPost, "https://api.example.com/x", errBoom)

	select {
	case <-call.Done():
	default:
		t.Fatal("failed call is not done")
	}

	response, err := call.Wait(context.Background())
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, response)
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "https://api.example.com/x", call.URL)

	// Cancelling a finished call is a no-op.
	call.Cancel()
}

// TestCall_WaitAbandoned tests that an abandoned wait returns the context error.
func TestCall_WaitAbandoned(t *testing.T) {
	t.Parallel()

	call := newCall(http.MethodGet, "https://api.example.com/x", func() {})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := call.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	call.finish(&Response{StatusCode: http.StatusOK, Body: []byte(`{"ok":true}`)}, nil)

	response, err := call.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, response.Get("ok").Bool())
}

// TestCall_Decode tests the Decode method.
func TestCall_Decode(t *testing.T) {
	t.Parallel()

	call := newCall(http.MethodGet, "https://api.example.com/x", func() {})
	call.finish(&Response{StatusCode: http.StatusOK, Body: []byte(`{"name":"shared"}`)}, nil)

	var result struct {
		Name string `json:"name"`
	}

	require.NoError(t, call.Decode(context.Background(), &result))
	assert.Equal(t, "shared", result.Name)
}

// TestReadResponse tests the readResponse function.
func TestReadResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
	}{
		{name: "json object", status: http.StatusOK, body: `{"a":1}`},
		{name: "created", status: http.StatusCreated, body: `[1,2]`},
		{name: "empty body", status: http.StatusNoContent, body: ""},
		{name: "whitespace body", status: http.StatusOK, body: " \n"},
		{name: "malformed", status: http.StatusOK, body: "<html>", expectedErr: ErrMalformedResponse},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"x"}`, expectedErr: ErrUnexpectedHTTPStatus},
		{name: "redirect status", status: http.StatusNotModified, body: "", expectedErr: ErrUnexpectedHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recorder := httptest.NewRecorder()
			recorder.WriteHeader(tt.status)
			_, _ = recorder.WriteString(tt.body)

			response, err := readResponse(recorder.Result())
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, response)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, response.StatusCode)
		})
	}
}

// TestReadResponse_HTTPError tests that the status and body are kept on non-2xx responses.
func TestReadResponse_HTTPError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	recorder.WriteHeader(http.StatusForbidden)
	_, _ = recorder.WriteString(`{"error":"denied"}`)

	_, err := readResponse(recorder.Result())

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.JSONEq(t, `{"error":"denied"}`, string(httpErr.Body))
	assert.Contains(t, httpErr.Error(), "403 Forbidden")
}

// TestResponse_EmptyBody tests that an empty body behaves as null.
func TestResponse_EmptyBody(t *testing.T) {
	t.Parallel()

	response := &Response{StatusCode: http.StatusNoContent}

	assert.False(t, response.JSON().Exists())
	assert.Equal(t, "null", response.Pretty())

	target := map[string]any{"kept": true}
	require.NoError(t, response.Decode(&target))
	assert.Equal(t, map[string]any{"kept": true}, target)
}

// TestResponse_Pretty tests that the body is indented.
func TestResponse_Pretty(t *testing.T) {
	t.Parallel()

	response := &Response{StatusCode: http.StatusOK, Body: []byte(`{"a":{"b":1}}`)}

	pretty := response.Pretty()
	assert.Contains(t, pretty, "\n")
	assert.JSONEq(t, `{"a":{"b":1}}`, pretty)
}
