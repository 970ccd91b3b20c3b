package tracer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/FACorreiaa/go-study-spaces/app/observability/metrics"
)

// Providers owns the tracer and meter providers plus the /metrics server.
type Providers struct {
	tp     *trace.TracerProvider
	mp     *metric.MeterProvider
	server *http.Server
	logger *slog.Logger
}

// InitTracingAndMetrics installs global otel providers, creates the
// application instruments and, when port is set, serves Prometheus metrics on
// it. Call Shutdown on exit.
func InitTracingAndMetrics(serviceName, port string, logger *slog.Logger) (*Providers, error) {
	tp := trace.NewTracerProvider(
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)
	otel.SetTracerProvider(tp)

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)

	metrics.InitAppMetrics()

	p := &Providers{tp: tp, mp: mp, logger: logger}
	if port == "" {
		return p, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	p.server = &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		logger.Info("Starting metrics server", slog.String("address", p.server.Addr))
		if err := p.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server error", slog.Any("error", err))
		}
	}()
	return p, nil
}

// Shutdown flushes the providers and stops the metrics server.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.server != nil {
		errs = append(errs, p.server.Shutdown(ctx))
	}
	errs = append(errs, p.tp.Shutdown(ctx), p.mp.Shutdown(ctx))
	return errors.Join(errs...)
}
