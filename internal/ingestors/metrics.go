package ingestors

import (
	"log-stats/internal/shared/metrics"
)

const (
	resultAccepted  = "accepted"
	resultMalformed = "malformed"
)

// metricLinesProcessedTotal counts lines handled by the ingestion loop, by parse result.
// Malformed lines are skipped and never reach the aggregate.
var (
	metricLinesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_processed_total",
		},
		[]string{"result"},
	)
)
