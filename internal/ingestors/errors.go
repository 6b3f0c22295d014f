package ingestors

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeInternalStreamReadFailed = "ING_9000"
)

// errInternalStreamReadFailed returns an error when the input stream fails with something other than EOF.
func errInternalStreamReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStreamReadFailed, fmt.Errorf("streamReadFailed: %w", cause))
}
