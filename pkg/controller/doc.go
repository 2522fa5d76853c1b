// Package controller contains the HTTP middlewares and helper handlers that
// wrap the application's routes.
//
// Middlewares:
//   - WithLogger: request ID, request-scoped logger and access log.
//   - WithRecovery: turns handler panics into a logged 500 response.
//   - WithMetrics: request duration histogram.
//   - WithCORS: permissive CORS headers for the read-only endpoints.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers.
//   - Health: liveness probe.
package controller
