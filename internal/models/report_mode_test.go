package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportModeFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected ReportMode
		wantErr  bool
	}{
		{name: "cumulative", input: "cumulative", expected: ReportCumulative},
		{name: "windowed", input: "windowed", expected: ReportWindowed},
		{name: "unknown", input: "hourly", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mode, err := NewReportModeFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestReportMode_ResetsAfterPeriodicReport(t *testing.T) {
	t.Parallel()

	assert.False(t, ReportCumulative.ResetsAfterPeriodicReport())
	assert.True(t, ReportWindowed.ResetsAfterPeriodicReport())
	assert.Panics(t, func() {
		ReportMode("invalid").ResetsAfterPeriodicReport()
	}, "ResetsAfterPeriodicReport should panic on invalid ReportMode")
}

func TestReportTrigger_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, TriggerPeriodic.IsTerminal())
	assert.True(t, TriggerEndOfStream.IsTerminal())
	assert.True(t, TriggerInterrupt.IsTerminal())
	assert.True(t, TriggerReadError.IsTerminal())
}
