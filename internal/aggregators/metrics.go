package aggregators

import (
	"log-stats/internal/shared/metrics"
)

// metricEntriesAppliedTotal counts entries applied to the aggregate.
//
// The status_tracked label is "false" when the entry's status code got no counter,
// e.g. a 418 under the allow_list policy. Its bytes are still added to the total.
var (
	metricEntriesAppliedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "entries_applied_total",
		},
		[]string{"status_tracked"},
	)

	metricBytesAppliedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "bytes_applied_total",
		},
	)
)
