package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "sportsdesk"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	registry := prometheus.NewRegistry()
	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, nil, err
	}
	return exporter, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	sourceAttempts metric.Int64Counter
	sourceErrors   metric.Int64Counter
	sourceLatency  metric.Float64Histogram
	cacheHits      metric.Int64Counter
	staleServes    metric.Int64Counter
	intents        metric.Int64Counter
	httpRequests   metric.Int64Counter
	httpLatency    metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("sportsdesk")

	sourceAttempts, err := meter.Int64Counter("source_fetch_attempts_total")
	if err != nil {
		return nil, err
	}
	sourceErrors, err := meter.Int64Counter("source_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	sourceLatency, err := meter.Float64Histogram("source_fetch_duration_seconds")
	if err != nil {
		return nil, err
	}
	cacheHits, err := meter.Int64Counter("game_cache_hits_total")
	if err != nil {
		return nil, err
	}
	staleServes, err := meter.Int64Counter("game_cache_stale_serves_total")
	if err != nil {
		return nil, err
	}
	intents, err := meter.Int64Counter("chat_intents_total")
	if err != nil {
		return nil, err
	}
	httpRequests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	httpLatency, err := meter.Float64Histogram("http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		sourceAttempts: sourceAttempts,
		sourceErrors:   sourceErrors,
		sourceLatency:  sourceLatency,
		cacheHits:      cacheHits,
		staleServes:    staleServes,
		intents:        intents,
		httpRequests:   httpRequests,
		httpLatency:    httpLatency,
	}, nil
}

func (o *otelInstruments) recordSourceAttempt(sport string, duration time.Duration, err error) {
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("sport", sport))
	o.sourceAttempts.Add(ctx, 1, attrs)
	o.sourceLatency.Record(ctx, duration.Seconds(), attrs)
	if err != nil {
		o.sourceErrors.Add(ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordCacheHit(sport string) {
	o.cacheHits.Add(context.Background(), 1, metric.WithAttributes(attribute.String("sport", sport)))
}

func (o *otelInstruments) recordStaleServe(sport string) {
	o.staleServes.Add(context.Background(), 1, metric.WithAttributes(attribute.String("sport", sport)))
}

func (o *otelInstruments) recordIntent(category string) {
	o.intents.Add(context.Background(), 1, metric.WithAttributes(attribute.String("category", category)))
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("status", strconv.Itoa(status)),
	)
	o.httpRequests.Add(ctx, 1, attrs)
	o.httpLatency.Record(ctx, duration.Seconds(), attrs)
}
