// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for a configured origin and answers OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecovery: Turns a handler panic into a 500 response instead of a dropped connection.
//
// Provided helpers:
//   - Pprof: Returns a handler exposing net/http/pprof under PprofPath.
package controller
