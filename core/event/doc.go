// Package event defines the canonical sync event model shared by both
// origin adapters and the reconciliation engine.
//
// Each origin (the Notion database and the Google Calendar) has its own
// schema, identity scheme, and update semantics. Normalization into
// SyncEvent absorbs all source-specific quirks so the reconciler operates
// on one shape regardless of origin.
//
// # Invariants
//
//   - Title is non-empty (records without one are rejected as malformed)
//   - End >= Start; End defaults to Start when the origin omits an end
//   - Tags is never empty; ["Unknown"] is substituted when no tags survive
//
// # Error Taxonomy
//
//   - ErrMalformedRecord: a single raw record missing a required field
//   - FetchError: an origin read failure, fatal to the whole pass
//   - CreateError: an origin write failure, local to one event
package event
