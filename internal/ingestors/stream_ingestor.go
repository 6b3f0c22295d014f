package ingestors

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"log-stats/internal/aggregators"
	"log-stats/internal/models"
	"log-stats/internal/parsers"
	"log-stats/internal/reporters"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/streams"
)

const DefaultReportEvery = 10

//go:generate mockgen -source=stream_ingestor.go -destination=./mocks/stream_ingestor_mock.go -package=mocks
type StreamIngestor interface {
	// Run consumes r line by line until end of input, a read error, or ctx cancellation.
	// Exactly one final report is emitted on every exit path.
	Run(ctx context.Context, r io.Reader) error
}

// SnapshotReader exposes the most recent report without touching the live aggregate.
type SnapshotReader interface {
	// Latest returns the last reported snapshot, or nil before the first report.
	Latest() *models.ReportSnapshot
}

type Ingestor interface {
	StreamIngestor
	SnapshotReader
}

// streamIngestor is the single-threaded control loop:
//
//	RUNNING     read a line, parse it, apply it; every `every` accepted lines go to FLUSHING
//	FLUSHING    report; periodic flushes return to RUNNING (after a reset in windowed mode)
//	TERMINATED  reached through the deferred final report on end of input, read error or interrupt
//
// The aggregate is owned by Run and never shared; readers get published snapshot copies.
type streamIngestor struct {
	source   streams.LineSource
	parser   parsers.LineParser
	updater  aggregators.AggregateUpdater
	reporter reporters.Reporter
	every    uint64
	mode     models.ReportMode
	now      func() time.Time

	latest atomic.Pointer[models.ReportSnapshot]
}

func NewStreamIngestor(source streams.LineSource, parser parsers.LineParser, updater aggregators.AggregateUpdater, reporter reporters.Reporter, every int, mode models.ReportMode) Ingestor {
	if every <= 0 {
		every = DefaultReportEvery
	}
	return &streamIngestor{
		source:   source,
		parser:   parser,
		updater:  updater,
		reporter: reporter,
		every:    uint64(every),
		mode:     mode,
		now:      time.Now,
	}
}

func (s *streamIngestor) Latest() *models.ReportSnapshot {
	return s.latest.Load()
}

func (s *streamIngestor) Run(ctx context.Context, r io.Reader) (err error) {
	logger := loggers.Ctx(ctx)
	logger.Info().
		Str(loggers.FieldReportMode, string(s.mode)).
		Uint64("report_every", s.every).
		Msg("started consuming stream")

	state := models.NewAggregateState()
	var malformed uint64

	readCtx, cancelRead := context.WithCancel(ctx)
	defer cancelRead()
	lines := s.source.Lines(readCtx, r)

	trigger := models.TriggerEndOfStream
	sinkFailed := false
	defer func() {
		if sinkFailed {
			return
		}
		if reportErr := s.flush(logger, state, trigger); reportErr != nil && err == nil {
			err = reportErr
		}
		logger.Info().
			Str(loggers.FieldTrigger, string(trigger)).
			Uint64(loggers.FieldAcceptedLines, state.AcceptedLines).
			Uint64(loggers.FieldMalformed, malformed).
			Uint64(loggers.FieldTotalBytes, state.TotalBytes).
			Msg("stream terminated")
	}()

	for {
		// an interrupt observed between lines wins over lines already waiting
		if ctx.Err() != nil {
			trigger = models.TriggerInterrupt
			return nil
		}

		select {
		case <-ctx.Done():
			trigger = models.TriggerInterrupt
			return nil

		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				trigger = models.TriggerReadError
				svcErr := errInternalStreamReadFailed(line.Err)
				logger.Error().
					Err(line.Err).
					Str(loggers.FieldErrorCode, svcErr.Code).
					Msg("stream read failed")
				return svcErr
			}

			entry, ok := s.parser.Parse(line.Text)
			if !ok {
				malformed++
				metricLinesProcessedTotal.WithLabelValues(resultMalformed).Inc()
				continue
			}
			s.updater.Apply(state, entry)
			metricLinesProcessedTotal.WithLabelValues(resultAccepted).Inc()

			if state.AcceptedLines%s.every != 0 {
				continue
			}
			if reportErr := s.flush(logger, state, models.TriggerPeriodic); reportErr != nil {
				sinkFailed = true
				logger.Error().Err(reportErr).Msg("periodic report failed")
				return reportErr
			}
			if s.mode.ResetsAfterPeriodicReport() {
				state.Reset()
			}
		}
	}
}

// flush publishes a snapshot of state and renders it.
func (s *streamIngestor) flush(logger *loggers.Logger, state *models.AggregateState, trigger models.ReportTrigger) error {
	snapshot := state.Snapshot(trigger, s.now())
	s.latest.Store(snapshot)
	if err := s.reporter.Report(snapshot); err != nil {
		return err
	}

	logger.Debug().
		Str(loggers.FieldTrigger, string(trigger)).
		Bool("final", trigger.IsTerminal()).
		Uint64(loggers.FieldAcceptedLines, snapshot.AcceptedLines).
		Uint64(loggers.FieldTotalBytes, snapshot.TotalBytes).
		Msg("report emitted")
	return nil
}
