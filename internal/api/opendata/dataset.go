package opendata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-study-spaces/app/observability/metrics"
)

// Dataset names a package and says how to turn one of its records into T.
type Dataset[T any] struct {
	Name      string
	PackageID string
	// Decode maps one raw record. Nil means plain json.Unmarshal into T.
	Decode func(raw json.RawMessage) (T, error)
}

// DecodeJSON is the default record mapping.
func DecodeJSON[T any](raw json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}

// Assemble fetches the dataset's package, then every datastore-active
// resource in catalog order, one at a time, and returns all decoded records
// as one flat slice. The first failing resource fails the whole call.
func Assemble[T any](ctx context.Context, catalog Catalog, ds Dataset[T], logger *slog.Logger) ([]T, error) {
	ctx, span := otel.Tracer("OpenDataAssembler").Start(ctx, "Assemble", trace.WithAttributes(
		attribute.String("dataset.name", ds.Name),
		attribute.String("dataset.package_id", ds.PackageID),
	))
	defer span.End()

	decode := ds.Decode
	if decode == nil {
		decode = DecodeJSON[T]
	}

	pkg, err := catalog.PackageShow(ctx, ds.PackageID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "package_show failed")
		return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
	}

	out := make([]T, 0)
	active := 0
	for _, r := range pkg.Resources {
		if !r.DatastoreActive {
			continue
		}
		active++

		records, err := catalog.DatastoreSearch(ctx, r)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "datastore_search failed")
			return nil, fmt.Errorf("dataset %s: resource %q: %w", ds.Name, r.ID, err)
		}
		for i, raw := range records {
			v, err := decode(raw)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "record decode failed")
				return nil, fmt.Errorf("dataset %s: resource %q: record %d: %w", ds.Name, r.ID, i, &ParseError{Err: err})
			}
			out = append(out, v)
		}
	}

	metrics.Get().DatasetRecordsTotal.Add(ctx, int64(len(out)),
		otelmetric.WithAttributes(attribute.String("dataset", ds.Name)))
	logger.InfoContext(ctx, "Assembled dataset",
		slog.String("dataset", ds.Name),
		slog.Int("resources", active),
		slog.Int("records", len(out)))
	span.SetAttributes(attribute.Int("dataset.records", len(out)))
	span.SetStatus(codes.Ok, "")
	return out, nil
}
