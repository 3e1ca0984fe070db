// Package metrics exposes Prometheus instrumentation for the teapot service.
//
// A private registry carries:
//   - teapot_http_requests_total (counter: method, route, status)
//   - teapot_http_request_duration_seconds (histogram: method, route)
//   - teapot_store_entities (gauge: entity kind, polled at scrape time)
//   - the standard Go runtime and process collectors
//
// The API server observes requests through ObserveRequest in its middleware
// chain and mounts Handler() on the configured metrics path.
package metrics
