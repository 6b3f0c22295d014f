package reporters

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeInternalReportWriteFailed = "RPT_9000"
	codeInternalReportFlushFailed = "RPT_9001"
)

// errInternalReportWriteFailed returns an error when the report cannot be written to the sink.
func errInternalReportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportWriteFailed, fmt.Errorf("reportWriteFailed: %w", cause))
}

// errInternalReportFlushFailed returns an error when the sink cannot be flushed after a report.
func errInternalReportFlushFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportFlushFailed, fmt.Errorf("reportFlushFailed: %w", cause))
}
