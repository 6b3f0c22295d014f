package streams

import (
	"log-stats/internal/shared/metrics"
)

var (
	metricLinesReadTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_read_total",
		},
	)

	metricReadErrorsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "read_errors_total",
		},
	)
)
