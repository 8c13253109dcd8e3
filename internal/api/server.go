// Package api configures and exposes the HTTP server, routes, metrics and
// related middleware for the exercises.
package api

import (
	"drills/internal/api/handler/v1handler"
	"drills/internal/config"
	"drills/pkg/controller"
	"net/http"
	"time"

	"github.com/go-faster/jx"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes caps the size of request headers.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigin is the allowed cross-origin caller; empty disables CORS.
	CORSOrigin string
	// Pprof mounts the profiling endpoints.
	Pprof bool
}

// NewOptions maps the HTTP settings of cfg onto Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigin:        cfg.HTTP.CORSOrigin,
		Pprof:             cfg.HTTP.Pprof,
	}
}

// Deps holds the collaborators of the server.
type Deps struct {
	v1handler.Deps

	// Metrics serves the Prometheus exposition at Options.MetricsPath.
	Metrics http.Handler
}

// timeoutBody is what http.TimeoutHandler answers with when a request
// outlives Options.RequestTimeout.
func timeoutBody() string {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str("TIMEOUT") })
		e.Field("message", func(e *jx.Encoder) { e.Str("request timed out") })
	})

	return string(e.Bytes())
}

// NewHandler builds the routed and wrapped handler served by NewServer:
// - Prometheus metrics endpoint (MetricsPath)
// - v1 API routes
// - pprof endpoints when enabled
// wrapped with recovery, CORS, request timeout and access logging.
func NewHandler(deps Deps, opts Options) http.Handler {
	mux := http.NewServeMux()

	if deps.Metrics != nil {
		mux.Handle(opts.MetricsPath, deps.Metrics)
	}

	v1handler.New(deps.Deps).Register(mux)

	if opts.Pprof {
		mux.Handle(controller.PprofPath, controller.Pprof())
	}

	var handler http.Handler = controller.WithRecovery(mux)
	handler = controller.WithCORS(handler, opts.CORSOrigin)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody())
	}

	return controller.WithLogger(handler)
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) *http.Server {
	return &http.Server{
		Addr:              opts.Addr,
		Handler:           NewHandler(deps, opts),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}
