// Package notion adapts a Notion database to the database-origin side of
// the reconciliation engine.
//
// It wraps the official Notion API client behind a small API interface
// (QueryDatabase, CreatePage) so the source can be unit tested without
// network access, mirroring how the engine's other collaborators are
// abstracted.
//
// # Schema Mapping
//
// A database row maps to a canonical sync event through four configurable
// properties: a title property ("Calendar"), a date range property
// ("Date"), a completion checkbox ("Done"), and a multi-select tag
// property ("Tags"). The page icon emoji is carried over; pages created by
// the sync get a placeholder icon since the calendar origin has none.
//
// # Fetch Semantics
//
// FetchOpenEvents queries with a compound filter (Done is false AND Date is
// not empty) and follows pagination cursors. Pages missing a required
// property are skipped and logged rather than failing the fetch.
package notion
