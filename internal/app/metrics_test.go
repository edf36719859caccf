package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
	http_transport "github.com/Mikhail-Beresnev/shared-ng/internal/transport/http"
)

// TestPrintMetricsSummary tests that gathered request metrics are logged.
func TestPrintMetricsSummary(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	registry := prometheus.NewRegistry()

	metrics, err := http_transport.NewClientMetrics(registry)
	require.NoError(t, err)

	client := &http.Client{Transport: http_transport.NewMetricsTransport(http.DefaultTransport, metrics)}

	for range 3 {
		response, getErr := client.Get(server.URL)
		require.NoError(t, getErr)
		require.NoError(t, response.Body.Close())
	}

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

	require.NoError(t, printMetricsSummary(ctx, registry))

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}

	assert.Contains(t, messages, "Requests:")
	assert.Contains(t, messages, "  GET     204: 3")
}
