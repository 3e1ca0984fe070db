// Package brewing contains the tea-brewing domain model and the in-memory
// store behind the HTTP API.
//
// The four entities — Teapot, Tea, Brew, Steep — are plain value types with a
// camelCase JSON wire representation. The Store owns all four collections and
// is the sole arbiter of filtering, pagination, relationship checks, cascade
// deletion, and steep numbering.
//
// # Concurrency
//
// The Store serialises every logical operation under a single mutex, including
// the compound sequences (fetch existing → merge fields → write back for
// PATCH, and count steeps → assign number → insert for steep creation).
// Without that discipline, concurrent PATCHes on one entity could lose
// updates and concurrent steep creation could assign duplicate numbers.
//
// # Error Handling
//
// "Not found" is a sentinel return value, never a panic or a user-facing
// error. Handlers translate sentinels with errors.Is():
//
//	if errors.Is(err, brewing.ErrBrewNotFound) {
//	    // 404
//	}
package brewing
