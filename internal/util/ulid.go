package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string, used to correlate a request's log
// entries. ulid.Make reads from crypto/rand, which is safe for concurrent
// use by request handlers.
func NewULID() string {
	return ulid.Make().String()
}
