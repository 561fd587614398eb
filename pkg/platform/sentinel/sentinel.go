package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Catalogs and audit sinks return
// these (optionally wrapped) and the kernel service translates them into
// domain errors at its boundary:
//   - ErrNotFound: a catalog has no entry for the requested key
//   - ErrUnavailable: an audit sink cannot accept events right now
//
// For validation errors (bad input, unknown enum values), use
// pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
