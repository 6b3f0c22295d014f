package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a fresh time-ordered id. It tags each run and each HTTP request.
var NewULID = func() string {
	return ulid.Make().String()
}
