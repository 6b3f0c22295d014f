package models

import (
	"sort"
	"time"
)

// AggregateState is the running total owned by the ingestion loop. Only the loop mutates it.
//
// Invariant: sum(StatusCounts) <= AcceptedLines, and TotalBytes never decreases between resets.
type AggregateState struct {
	TotalBytes    uint64
	StatusCounts  map[string]uint64
	AcceptedLines uint64
}

func NewAggregateState() *AggregateState {
	return &AggregateState{
		StatusCounts: make(map[string]uint64),
	}
}

// Reset clears all counters, starting a new window.
func (s *AggregateState) Reset() {
	s.TotalBytes = 0
	s.AcceptedLines = 0
	clear(s.StatusCounts)
}

// Snapshot copies the state so it can be rendered or published without aliasing the live map.
func (s *AggregateState) Snapshot(trigger ReportTrigger, reportedAt time.Time) *ReportSnapshot {
	counts := make(map[string]uint64, len(s.StatusCounts))
	for code, count := range s.StatusCounts {
		if count > 0 {
			counts[code] = count
		}
	}
	return &ReportSnapshot{
		TotalBytes:    s.TotalBytes,
		StatusCounts:  counts,
		AcceptedLines: s.AcceptedLines,
		Trigger:       trigger,
		ReportedAt:    reportedAt.UTC(),
	}
}

// ReportSnapshot is an immutable copy of the aggregate at report time.
//
// Example JSON:
//
//	{
//	  "fileSize": 30,
//	  "statusCodes": {"200": 1, "404": 1},
//	  "acceptedLines": 2,
//	  "trigger": "end_of_stream",
//	  "reportedAt": "2026-01-01T00:00:01Z"
//	}
type ReportSnapshot struct {
	TotalBytes    uint64            `json:"fileSize"`
	StatusCounts  map[string]uint64 `json:"statusCodes"`
	AcceptedLines uint64            `json:"acceptedLines"`
	Trigger       ReportTrigger     `json:"trigger"`
	ReportedAt    time.Time         `json:"reportedAt"`
}

// SortedStatusCodes returns the codes with a positive count in ascending numeric order.
// Codes are digit tokens, so shorter tokens sort first and equal lengths sort lexically.
func (r *ReportSnapshot) SortedStatusCodes() []string {
	codes := make([]string, 0, len(r.StatusCounts))
	for code, count := range r.StatusCounts {
		if count > 0 {
			codes = append(codes, code)
		}
	}
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) < len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return codes
}
