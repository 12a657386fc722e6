// Package sync exposes the reconciliation engine over HTTP.
//
// It follows the Handler/Service split: the Service owns pass execution
// and retains the most recent report, the Handler translates HTTP requests
// into service calls.
//
// # Endpoints
//
//   - POST /sync: run one reconciliation pass and return its report
//   - GET /sync/report: return the report of the most recent pass
//
// Passes are serialized with a mutex; concurrent triggers queue rather
// than overlap, respecting both origins' rate limits.
package sync
