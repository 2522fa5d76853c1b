// Package metrics defines the Prometheus and OpenTelemetry instruments shared
// by the HTTP layer.
package metrics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides histogram buckets in seconds for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewRegistry returns a Prometheus registry preloaded with the Go runtime and
// process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// HTTP holds the request instruments recorded by the metrics middleware.
type HTTP struct {
	requests *prometheus.HistogramVec
}

// NewHTTP registers the HTTP request histogram on reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	requests := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "personcheck",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by method and status code.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "code"})
	if err := reg.Register(requests); err != nil {
		return nil, fmt.Errorf("could not register request histogram: %w", err)
	}

	return &HTTP{requests: requests}, nil
}

// Observe records a finished request.
func (m *HTTP) Observe(method string, code int, seconds float64) {
	m.requests.WithLabelValues(method, strconv.Itoa(code)).Observe(seconds)
}

// Validations counts validation outcomes through an OpenTelemetry meter whose
// readings are exported to Prometheus.
type Validations struct {
	provider *sdkmetric.MeterProvider
	outcomes metric.Int64Counter
}

// NewValidations creates a meter provider exporting to reg and the outcome
// counter on top of it.
func NewValidations(reg prometheus.Registerer) (*Validations, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	outcomes, err := mp.Meter("personcheck/validation").Int64Counter("personcheck.validations",
		metric.WithDescription("Validation outcomes by reason; reason is \"VALID\" for accepted input."),
		metric.WithUnit("{validation}"))
	if err != nil {
		return nil, fmt.Errorf("could not create validations counter: %w", err)
	}

	return &Validations{provider: mp, outcomes: outcomes}, nil
}

// Record counts a single outcome. An empty reason means the input was accepted.
func (v *Validations) Record(ctx context.Context, endpoint, reason string) {
	if reason == "" {
		reason = "VALID"
	}
	v.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("reason", reason),
	))
}

// Shutdown flushes and stops the meter provider.
func (v *Validations) Shutdown(ctx context.Context) error {
	return v.provider.Shutdown(ctx) //nolint: wrapcheck
}
