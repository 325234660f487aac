package observability

import (
	"context"
	"log"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	registry         *promclient.Registry
	meterProvider    *metric.MeterProvider
	meter            otelmetric.Meter
	analysisCounter  otelmetric.Int64Counter
	analysisDuration otelmetric.Float64Histogram
}

// New builds an instance-scoped meter provider. The exporter registers into
// the instance's own registry, never the global default, so constructing a
// second Observability cannot collide on collector names.
func New(serviceName string) *Observability {
	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	analysisCounter, _ := meter.Int64Counter(
		"analyses.processed",
		otelmetric.WithDescription("Number of analyses processed"),
	)

	analysisDuration, _ := meter.Float64Histogram(
		"analyses.duration",
		otelmetric.WithDescription("Analysis processing duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		registry:         registry,
		meterProvider:    provider,
		meter:            meter,
		analysisCounter:  analysisCounter,
		analysisDuration: analysisDuration,
	}
}

// Gatherer exposes the instance's metric registry for scraping. May be nil
// when the exporter failed to initialize.
func (o *Observability) Gatherer() promclient.Gatherer {
	if o.registry == nil {
		return nil
	}
	return o.registry
}

func (o *Observability) RecordAnalysis(ctx context.Context, status string) {
	if o.analysisCounter != nil {
		o.analysisCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordAnalysisDuration(ctx context.Context, duration time.Duration, status string) {
	if o.analysisDuration != nil {
		o.analysisDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
