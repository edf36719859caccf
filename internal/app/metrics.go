package app

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
	http_transport "github.com/Mikhail-Beresnev/shared-ng/internal/transport/http"
)

// printMetricsSummary logs request counts and average latency per method.
func printMetricsSummary(ctx context.Context, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	logger.Info(ctx, "")
	logger.Info(ctx, "Requests:")

	for _, family := range families {
		switch family.GetName() {
		case http_transport.RequestsTotalMetric:
			for _, metric := range family.GetMetric() {
				logger.Infof(ctx, "  %-7s %s: %d",
					strings.ToUpper(labelValue(metric, "method")),
					labelValue(metric, "code"),
					int64(metric.GetCounter().GetValue()))
			}
		case http_transport.RequestDurationMetric:
			for _, metric := range family.GetMetric() {
				histogram := metric.GetHistogram()
				if histogram.GetSampleCount() == 0 {
					continue
				}

				average := time.Duration(histogram.GetSampleSum() / float64(histogram.GetSampleCount()) * float64(time.Second))
				logger.Infof(ctx, "  %-7s average: %s",
					strings.ToUpper(labelValue(metric, "method")),
					average.Round(time.Millisecond))
			}
		}
	}

	return nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}

	return ""
}
