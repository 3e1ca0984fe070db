// Package api provides the HTTP REST server for the teapot service.
//
// It translates HTTP verbs, paths, and query strings into brewing.Store
// calls, and store results and sentinel errors back into HTTP responses.
// Request-body validation, optional-field defaulting, and pagination
// clamping all live here; the store only ever sees typed, valid values.
//
// The server follows the usual lifecycle pattern:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: handlers are safe for concurrent use; all shared state is
// behind the store's own lock.
package api
