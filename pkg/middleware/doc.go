// Package middleware provides HTTP middleware for the ftd dev server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus request metrics middleware
//
// Both are plain func(http.Handler) http.Handler and compose with chi:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry())
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//
// Labels use the chi route pattern ("/{page}") rather than the raw path so
// request metrics stay low-cardinality.
//
// # Prometheus Metrics
//
//   - ftd_http_requests_total: requests by route, method and status class
//   - ftd_http_request_duration_seconds: request duration by route
//
// Expose them next to the render metrics:
//
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
