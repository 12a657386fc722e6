// Package reconcile implements bidirectional reconciliation of events
// between two independent origins: a structured database (Notion) and a
// calendar (Google Calendar).
//
// The package consists of three parts:
//
//  1. Matching heuristic: Present and ComputeMissing decide which
//     candidate events already exist on the opposite origin, using title
//     containment only. No persisted cross-origin mapping is maintained,
//     so idempotence is best-effort.
//
//  2. Source interfaces: DatabaseSource and CalendarSource abstract the
//     origin adapters (core/notion, core/gcal) behind fetch/create
//     capabilities, keeping the engine unit-testable without network
//     access (see core/reconcile/mocks).
//
//  3. Engine: drives one pass. It fetches both origins, computes the
//     missing set per direction, pushes missing events one at a time, and
//     aggregates per-event outcomes into a SyncReport.
//
// # Failure Semantics
//
// A fetch failure on either origin is fatal to the pass: no pushes are
// attempted. A create failure is local to its event and recorded as a
// failed outcome; the remaining pushes still run. The engine never
// retries; retry policy belongs to the adapter layer if desired.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(notionSource, gcalSource, 24*time.Hour, logger)
//	report, err := engine.Run(ctx)
package reconcile
