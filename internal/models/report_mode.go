package models

import "fmt"

// ReportMode selects whether counters survive a periodic report.
type ReportMode string

const (
	// ReportCumulative keeps running totals since process start.
	ReportCumulative ReportMode = "cumulative"
	// ReportWindowed clears all counters after each periodic report.
	ReportWindowed ReportMode = "windowed"
)

func NewReportModeFromString(s string) (ReportMode, error) {
	switch ReportMode(s) {
	case ReportCumulative, ReportWindowed:
		return ReportMode(s), nil
	default:
		return "", fmt.Errorf("invalid report mode: %q", s)
	}
}

// ResetsAfterPeriodicReport reports whether a periodic report closes the current window.
func (m ReportMode) ResetsAfterPeriodicReport() bool {
	switch m {
	case ReportCumulative:
		return false
	case ReportWindowed:
		return true
	default:
		panic(fmt.Sprintf("invalid ReportMode: %q", m))
	}
}

// ReportTrigger names what caused a report.
type ReportTrigger string

const (
	TriggerPeriodic    ReportTrigger = "periodic"
	TriggerEndOfStream ReportTrigger = "end_of_stream"
	TriggerInterrupt   ReportTrigger = "interrupt"
	TriggerReadError   ReportTrigger = "read_error"
)

// IsTerminal reports whether the trigger ends the stream.
func (t ReportTrigger) IsTerminal() bool {
	return t != TriggerPeriodic
}
