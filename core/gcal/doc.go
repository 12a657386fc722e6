// Package gcal adapts Google Calendar to the calendar-origin side of the
// reconciliation engine.
//
// It wraps the Calendar v3 service behind a small API interface
// (ListEvents, InsertEvent) so the source can be unit tested without
// network access. ListEvents requests single events only and follows
// result pages to the end.
//
// # Schema Mapping
//
// A calendar event maps onto the canonical sync event with fixed values
// for the concepts the calendar lacks: the icon is always empty, done is
// always false, and tags are always ["Unknown"]. Both timed (RFC 3339)
// and all-day (date-only) events are handled.
//
// When pushing, the database event's icon emoji becomes a summary prefix
// and its tags become the comma-joined description.
package gcal
