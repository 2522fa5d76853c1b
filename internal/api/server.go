// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the person check service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"personcheck/internal/api/handler/pagehandler"
	"personcheck/internal/api/handler/v1handler"
	"personcheck/internal/config"
	"personcheck/internal/validation"
	"personcheck/pkg/controller"
	"personcheck/pkg/logger"
	"personcheck/pkg/metrics"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is written by http.TimeoutHandler when a request exceeds RequestTimeout.
const timeoutBody = `<!DOCTYPE html><html><body><h1>503 Service Unavailable</h1><p>request timed out</p></body></html>`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is applied to every request via http.TimeoutHandler; zero disables it.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// PprofEnabled mounts the pprof handlers under controller.PprofPrefix.
	PprofEnabled bool
}

// NewOptions constructs an Options value from the provided application configuration.
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
		PprofEnabled:      cfg.HTTP.PprofEnabled,
	}
}

type Deps struct {
	Validator validation.Validator
	// Registry receives every metric the server exposes. A fresh registry
	// with the runtime collectors is used when nil.
	Registry *prometheus.Registry
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - the HTML validation page on every unmatched path
// - the JSON validation endpoint under /v1/validate
// - health probe, Prometheus metrics and OpenTelemetry validation counters
// - embedded OpenAPI v1 spec and Swagger UI
// - pprof endpoints when enabled
// The mux is wrapped with CORS, panic recovery, metrics and logging middlewares
// and a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	reg := deps.Registry
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	httpMetrics, err := metrics.NewHTTP(reg)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}
	validations, err := metrics.NewValidations(reg)
	if err != nil {
		return nil, fmt.Errorf("could not create validation metrics: %w", err)
	}

	mux := http.NewServeMux()

	// html page
	page, err := pagehandler.New(pagehandler.Deps{Validator: deps.Validator, Validations: validations})
	if err != nil {
		return nil, fmt.Errorf("could not create page handler: %w", err)
	}
	mux.Handle("/", page)

	// v1 api
	v1 := v1handler.New(v1handler.Deps{Validator: deps.Validator, Validations: validations})
	mux.HandleFunc("GET /v1/validate", v1.Validate)

	mux.HandleFunc("GET /healthz", controller.Health)

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Person Check Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// pprof
	if opts.PprofEnabled {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	handler := controller.WithCORS(mux)
	handler = controller.WithRecovery(handler)
	handler = controller.WithMetrics(httpMetrics, handler)
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	server := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Slog(ctx).Handler(), slog.LevelError),
	}
	server.RegisterOnShutdown(func() {
		if err := validations.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not shut down validation metrics", zap.Error(err))
		}
	})

	return server, nil
}
