package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLines(statuses ...string) string {
	var b strings.Builder
	for _, status := range statuses {
		b.WriteString(`10.0.0.1 - [2024-03-01 08:00:00.123456] "GET /projects/1216 HTTP/1.1" ` + status + " 10\n")
	}
	return b.String()
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand(strings.NewReader(input), &out)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Defaults(t *testing.T) {
	out, err := execute(t, logLines("200", "301", "999"), "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "File size: 30\n200: 1\n301: 1\n", out)
}

func TestRootCommand_Flags(t *testing.T) {
	out, err := execute(t, logLines("200", "200", "500"),
		"--log-level", "error",
		"--report-every", "2",
		"--report-mode", "windowed",
	)
	require.NoError(t, err)
	assert.Equal(t, "File size: 20\n200: 2\nFile size: 10\n500: 1\n", out)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logstats.yml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\nreport:\n  status_codes: any\n"), 0o600))

	out, err := execute(t, logLines("418"), "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "File size: 10\n418: 1\n", out)
}

func TestRootCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "invalid mode", args: []string{"--report-mode", "rolling"}, wantErr: "report.mode (oneof=cumulative windowed)"},
		{name: "zero cadence", args: []string{"--report-every", "0"}, wantErr: "report.every"},
		{name: "unknown flag", args: []string{"--follow"}, wantErr: "unknown flag"},
		{name: "positional args", args: []string{"access.log"}, wantErr: "unknown command"},
		{name: "bad log level", args: []string{"--log-level", "loud"}, wantErr: "failed to initialize logger"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, out)
		})
	}
}
