package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"log-stats/internal/shared/configs"
	"log-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `1.2.3.4 - [2024-01-01 10:00:00.000001] "GET /projects/260 HTTP/1.1" 200 512
bad line
1.2.3.4 - [2024-01-01 10:00:01.000001] "GET /projects/260 HTTP/1.1" 404 100
1.2.3.4 - [2024-01-01 10:00:02.000001] "GET /projects/260 HTTP/1.1" 418 8
`

func testConfig() *configs.Config {
	return &configs.Config{
		Log: configs.LogConfig{Level: "error"},
		Report: configs.ReportConfig{
			Every:       10,
			Mode:        "cumulative",
			StatusCodes: "allow_list",
		},
		Server: configs.ServerConfig{
			Port:              0,
			ReadHeaderTimeout: 1,
			ReadTimeout:       1,
			WriteTimeout:      1,
			IdleTimeout:       1,
			ShutdownTimeout:   1,
		},
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(cfg *configs.Config)
	}{
		{name: "log level", mutate: func(cfg *configs.Config) { cfg.Log.Level = "loud" }},
		{name: "report mode", mutate: func(cfg *configs.Config) { cfg.Report.Mode = "rolling" }},
		{name: "status code policy", mutate: func(cfg *configs.Config) { cfg.Report.StatusCodes = "some" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			tt.mutate(cfg)

			app, err := New(cfg, strings.NewReader(""), io.Discard)
			require.Error(t, err)
			assert.Nil(t, app)
		})
	}
}

func TestApp_Run_EndOfInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app, err := New(testConfig(), strings.NewReader(sampleInput), &out)
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "File size: 620\n200: 1\n404: 1\n", out.String())
}

func TestApp_Run_AnyStatusCodes(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Report.StatusCodes = "any"

	var out bytes.Buffer
	app, err := New(cfg, strings.NewReader(sampleInput), &out)
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "File size: 620\n200: 1\n404: 1\n418: 1\n", out.String())
}

func TestApp_Run_CancelledContextStillReports(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	app, err := New(testConfig(), pr, &out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.Run(ctx))
	assert.Equal(t, "File size: 0\n", out.String())
}

func TestApp_Run_ReadErrorFails(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app, err := New(testConfig(), io.MultiReader(strings.NewReader(sampleInput), iotest.ErrReader(assert.AnError)), &out)
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_9000", svcErr.Code)
	assert.Equal(t, "File size: 620\n200: 1\n404: 1\n", out.String())
}

func TestApp_Run_WithServer(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Server.Enabled = true

	var out bytes.Buffer
	app, err := New(cfg, strings.NewReader(sampleInput), &out)
	require.NoError(t, err)
	require.NotNil(t, app.server)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "File size: 620\n200: 1\n404: 1\n", out.String())
}
