package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregateState_Snapshot_CopiesAndDropsZeroCounts(t *testing.T) {
	t.Parallel()

	state := NewAggregateState()
	state.TotalBytes = 30
	state.AcceptedLines = 3
	state.StatusCounts["200"] = 2
	state.StatusCounts["404"] = 0

	at := time.Date(2026, 1, 1, 0, 0, 1, 0, time.FixedZone("CET", 3600))
	snapshot := state.Snapshot(TriggerPeriodic, at)

	assert.Equal(t, uint64(30), snapshot.TotalBytes)
	assert.Equal(t, uint64(3), snapshot.AcceptedLines)
	assert.Equal(t, map[string]uint64{"200": 2}, snapshot.StatusCounts)
	assert.Equal(t, TriggerPeriodic, snapshot.Trigger)
	assert.Equal(t, time.UTC, snapshot.ReportedAt.Location())

	// later mutations must not leak into the snapshot
	state.StatusCounts["200"]++
	state.TotalBytes += 5
	assert.Equal(t, uint64(2), snapshot.StatusCounts["200"])
	assert.Equal(t, uint64(30), snapshot.TotalBytes)
}

func TestAggregateState_Reset(t *testing.T) {
	t.Parallel()

	state := NewAggregateState()
	state.TotalBytes = 99
	state.AcceptedLines = 10
	state.StatusCounts["500"] = 4

	state.Reset()

	assert.Equal(t, uint64(0), state.TotalBytes)
	assert.Equal(t, uint64(0), state.AcceptedLines)
	assert.Empty(t, state.StatusCounts)
	assert.NotNil(t, state.StatusCounts, "map stays usable after reset")
}

func TestReportSnapshot_SortedStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		counts   map[string]uint64
		expected []string
	}{
		{
			name:     "allow-listed codes ascending",
			counts:   map[string]uint64{"500": 1, "200": 3, "404": 2, "301": 1},
			expected: []string{"200", "301", "404", "500"},
		},
		{
			name:     "zero counts omitted",
			counts:   map[string]uint64{"200": 0, "401": 1},
			expected: []string{"401"},
		},
		{
			name:     "mixed widths sort numerically",
			counts:   map[string]uint64{"1000": 1, "99": 1, "200": 1},
			expected: []string{"99", "200", "1000"},
		},
		{
			name:     "empty",
			counts:   map[string]uint64{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snapshot := &ReportSnapshot{StatusCounts: tt.counts}
			assert.Equal(t, tt.expected, snapshot.SortedStatusCodes())
		})
	}
}
