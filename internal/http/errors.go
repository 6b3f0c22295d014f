package http

import (
	"log-stats/internal/shared/svcerrors"
)

const (
	codeStatsNotReported = "STATS_1000"
)

// errStatsNotReported returns an error when no report has been emitted yet.
func errStatsNotReported() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeStatsNotReported, "no report has been emitted yet", nil)
}
