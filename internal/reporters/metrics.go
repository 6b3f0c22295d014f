package reporters

import (
	"log-stats/internal/shared/metrics"
)

// metricReportsEmittedTotal counts rendered reports by trigger (periodic, end_of_stream, interrupt, read_error).
// A non-empty error_code means the report could not be written.
var (
	metricReportsEmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "reports_emitted_total",
		},
		[]string{"trigger", metrics.FieldErrorCode},
	)
)
