package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/google/uuid"

	"github.com/Mikhail-Beresnev/shared-ng/internal/config"
	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
	"github.com/Mikhail-Beresnev/shared-ng/internal/utils"
)

// ErrNilRequest is returned by LogTransport for a nil request.
var ErrNilRequest = errors.New("request is nil")

// LogTransport writes every request/response exchange to the debug log.
// Each exchange gets its own correlation id so that the request line
// and the response line can be matched up in interleaved output.
type LogTransport struct {
	next http.RoundTripper
	// dumpLimit caps a single dump, in bytes.
	dumpLimit uint64
}

// NewLogTransport wraps next. A zero dumpLimit means config.DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, dumpLimit uint64) http.RoundTripper {
	if dumpLimit == 0 {
		dumpLimit = config.DefaultMaxLogLength
	}

	return &LogTransport{next: next, dumpLimit: dumpLimit}
}

// RoundTrip implements http.RoundTripper.
// Outside debug level the request goes straight to the next transport.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := logger.WithName(req.Context(), "http")
	ctx = logger.WithKV(ctx, correlationIDKey, uuid.NewString())

	logger.DebugKV(ctx, "Sending request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"dump", t.dump(httputil.DumpRequest(req, hasTextBody(req.Header))))

	started := time.Now()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.DebugKV(ctx, "Request failed",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"elapsed", time.Since(started),
			"error", err)

		return nil, err
	}

	logger.DebugKV(ctx, "Received response",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"elapsed", time.Since(started),
		"dump", t.dump(httputil.DumpResponse(resp, hasTextBody(resp.Header))))

	return resp, nil
}

// hasTextBody reports whether a body is worth printing.
// Multipart image uploads and binary downloads are logged by headers only.
func hasTextBody(header http.Header) bool {
	return utils.IsTextContentType(header.Get("Content-Type"))
}

func (t *LogTransport) dump(raw []byte, err error) string {
	if err != nil {
		return "<dump failed: " + err.Error() + ">"
	}

	return t.truncate(raw)
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) <= t.dumpLimit {
		return string(data)
	}

	return string(data[:t.dumpLimit]) + "... [truncated]"
}
