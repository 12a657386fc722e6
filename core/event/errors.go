package event

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord indicates a raw origin record missing a required field
// (title or start date). Normalizers wrap this sentinel so callers can
// detect it with errors.Is and apply a skip-and-log policy.
var ErrMalformedRecord = errors.New("malformed record")

// FetchError wraps an adapter read failure. A fetch failure is fatal to the
// whole reconciliation pass; no partial state is acted on.
type FetchError struct {
	// Origin names the backend that failed ("database" or "calendar").
	Origin string
	// Err is the underlying adapter error.
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s events: %v", e.Origin, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CreateError wraps an adapter write failure. It is local to a single event:
// the failed push is recorded in the report and the pass continues.
type CreateError struct {
	// Origin names the backend the event was being pushed to.
	Origin string
	// Title is the title of the event whose push failed.
	Title string
	// Err is the underlying adapter error.
	Err error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("create %q in %s: %v", e.Title, e.Origin, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}
