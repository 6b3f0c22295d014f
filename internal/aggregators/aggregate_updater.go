package aggregators

import (
	"strconv"

	"log-stats/internal/models"
)

//go:generate mockgen -source=aggregate_updater.go -destination=./mocks/aggregate_updater_mock.go -package=mocks
type AggregateUpdater interface {
	// Apply mutates state by accumulating entry. It never fails.
	Apply(state *models.AggregateState, entry *models.LogEntry)
}

type aggregateUpdater struct {
	policy models.StatusCodePolicy
}

func NewAggregateUpdater(policy models.StatusCodePolicy) AggregateUpdater {
	return &aggregateUpdater{policy: policy}
}

func (u *aggregateUpdater) Apply(state *models.AggregateState, entry *models.LogEntry) {
	// Bytes count for every accepted line, whether or not its status code is tracked.
	state.TotalBytes += entry.ByteSize
	state.AcceptedLines++

	tracked := u.policy.Tracks(entry.StatusCode)
	if tracked {
		state.StatusCounts[entry.StatusCode]++
	}

	metricEntriesAppliedTotal.WithLabelValues(strconv.FormatBool(tracked)).Inc()
	metricBytesAppliedTotal.Add(float64(entry.ByteSize))
}
