package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	OpenDataRequestsTotal          metric.Int64Counter
	OpenDataRequestDurationSeconds metric.Float64Histogram
	SearchRequestsTotal            metric.Int64Counter
	SearchFallbackTotal            metric.Int64Counter
	DatasetRecordsTotal            metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments from the global MeterProvider.
// Safe to call more than once; only the first call does anything. Callers that
// run before the exporter is configured get no-op instruments.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("StudySpaces")
		var err error
		m := &AppMetrics{}

		m.OpenDataRequestsTotal, err = meter.Int64Counter(
			"opendata_requests_total",
			metric.WithDescription("Total number of requests sent to the open data portal"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create opendata_requests_total: %v", err)
		}

		m.OpenDataRequestDurationSeconds, err = meter.Float64Histogram(
			"opendata_request_duration_seconds",
			metric.WithDescription("Duration of open data portal requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create opendata_request_duration_seconds: %v", err)
		}

		m.SearchRequestsTotal, err = meter.Int64Counter(
			"search_requests_total",
			metric.WithDescription("Total number of search queries answered"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create search_requests_total: %v", err)
		}

		m.SearchFallbackTotal, err = meter.Int64Counter(
			"search_fallback_total",
			metric.WithDescription("Searches where no result matched and the full set was returned"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create search_fallback_total: %v", err)
		}

		m.DatasetRecordsTotal, err = meter.Int64Counter(
			"dataset_records_total",
			metric.WithDescription("Records assembled from datastore resources"),
			metric.WithUnit("{record}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create dataset_records_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialised instruments, initialising them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
