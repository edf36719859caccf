package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Mikhail-Beresnev/shared-ng/internal/client/api"
	"github.com/Mikhail-Beresnev/shared-ng/internal/config"
	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
)

// newService creates the API service with a fresh metrics registry.
// The session is verified once during construction.
func newService(ctx context.Context, cfg *config.Config, opts ...api.Option) (*api.ServiceImpl, *prometheus.Registry) {
	registry := prometheus.NewRegistry()

	opts = append([]api.Option{api.WithRegisterer(registry)}, opts...)

	service, err := api.NewService(ctx, cfg, opts...)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize API service: %v", err)
	}

	return service, registry
}

// finish prints the metrics summary when enabled.
func finish(ctx context.Context, cfg *config.Config, registry prometheus.Gatherer) {
	if !cfg.ShowMetrics {
		return
	}

	if err := printMetricsSummary(ctx, registry); err != nil {
		logger.WarnKV(ctx, "Failed to collect request metrics", "error", err)
	}
}
