package reporters

import (
	"bytes"
	"io"
	"strconv"
	"sync"

	"log-stats/internal/models"
	"log-stats/internal/shared/metrics"
)

//go:generate mockgen -source=text_reporter.go -destination=./mocks/reporter_mock.go -package=mocks
type Reporter interface {
	// Report renders snapshot to the output sink and flushes it before returning.
	Report(snapshot *models.ReportSnapshot) error
}

type flusher interface {
	Flush() error
}

// textReporter renders:
//
//	File size: <total bytes>
//	<code>: <count>
//
// one code line per positive count, codes ascending.
type textReporter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

func (r *textReporter) Report(snapshot *models.ReportSnapshot) error {
	var buf bytes.Buffer
	buf.WriteString("File size: ")
	buf.WriteString(strconv.FormatUint(snapshot.TotalBytes, 10))
	buf.WriteByte('\n')
	for _, code := range snapshot.SortedStatusCodes() {
		buf.WriteString(code)
		buf.WriteString(": ")
		buf.WriteString(strconv.FormatUint(snapshot.StatusCounts[code], 10))
		buf.WriteByte('\n')
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// one Write per report so a report is never interleaved or half-written by us
	if _, err := r.w.Write(buf.Bytes()); err != nil {
		svcErr := errInternalReportWriteFailed(err)
		metricReportsEmittedTotal.WithLabelValues(string(snapshot.Trigger), svcErr.Code).Inc()
		return svcErr
	}
	if f, ok := r.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			svcErr := errInternalReportFlushFailed(err)
			metricReportsEmittedTotal.WithLabelValues(string(snapshot.Trigger), svcErr.Code).Inc()
			return svcErr
		}
	}

	metricReportsEmittedTotal.WithLabelValues(string(snapshot.Trigger), metrics.ValueNoError).Inc()
	return nil
}
