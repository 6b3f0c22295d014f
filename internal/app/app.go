package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"log-stats/internal/aggregators"
	internalhttp "log-stats/internal/http"
	"log-stats/internal/ingestors"
	"log-stats/internal/models"
	"log-stats/internal/parsers"
	"log-stats/internal/reporters"
	"log-stats/internal/shared/configs"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/ulid"
	"log-stats/internal/streams"
)

const appName = "log-stats"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	stdin     io.Reader
	ingestor  ingestors.Ingestor
	server    *http.Server // nil unless server.enabled
}

// New wires the ingestion pipeline over stdin and stdout. Diagnostics go to stderr.
func New(config *configs.Config, stdin io.Reader, stdout io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()

	mode, err := models.NewReportModeFromString(config.Report.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report mode: %w", err)
	}
	policy, err := models.NewStatusCodePolicyFromString(config.Report.StatusCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize status code policy: %w", err)
	}

	ingestor := ingestors.NewStreamIngestor(
		streams.NewReaderLineSource(),
		parsers.NewAccessLogParser(),
		aggregators.NewAggregateUpdater(policy),
		reporters.NewTextReporter(stdout),
		config.Report.Every,
		mode,
	)

	app := &App{
		config:    config,
		appLogger: appLogger,
		stdin:     stdin,
		ingestor:  ingestor,
	}

	if config.Server.Enabled {
		httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
		app.server = &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Server.Port),
			Handler:           internalhttp.NewRouter(ingestor, httpLogger),
			ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
			ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
			WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
			IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
		}
	}

	return app, nil
}

// Run consumes stdin until end of input, a read error or ctx cancellation.
// Cancellation is a normal termination: the final report is written and Run returns nil.
func (app *App) Run(ctx context.Context) error {
	app.appLogger.Info().
		Str(loggers.FieldReportMode, app.config.Report.Mode).
		Msgf("starting %s (report_every=%d, status_codes=%s, server_enabled=%t)",
			appName,
			app.config.Report.Every,
			app.config.Report.StatusCodes,
			app.config.Server.Enabled)

	if app.server != nil {
		listener, err := net.Listen("tcp", app.server.Addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", app.server.Addr, err)
		}
		go app.serve(listener)
		defer app.shutdownServer()
	}

	ingestorLogger := app.appLogger.With().Str(loggers.FieldComponent, "ingestor").Logger()
	return app.ingestor.Run(ingestorLogger.WithContext(ctx), app.stdin)
}

func (app *App) serve(listener net.Listener) {
	app.appLogger.Info().Msgf("serving /stats, /metrics and /healthz on %s", listener.Addr())
	if err := app.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.appLogger.Error().Err(err).Msg("http server stopped unexpectedly")
	}
}

func (app *App) shutdownServer() {
	// ctx passed to Run may already be cancelled here, so the grace period gets its own.
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.config.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.appLogger.Warn().Err(err).Msg("http server forced to shutdown")
		return
	}
	app.appLogger.Info().Msg("http server stopped")
}
