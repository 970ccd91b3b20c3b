package search

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-study-spaces/app/observability/metrics"
	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service answers study space searches.
type Service interface {
	Search(ctx context.Context, query string, loc *types.UserLocation) ([]types.SearchResult, error)
	MapLayer(ctx context.Context, query string, loc *types.UserLocation) (*MapLayer, error)
}

type ServiceImpl struct {
	source Source
	logger *slog.Logger
}

func NewServiceImpl(source Source, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		source: source,
		logger: logger,
	}
}

// Search filters the source's results by query. When a location is given
// every result carries its distance from it in kilometres.
func (s *ServiceImpl) Search(ctx context.Context, query string, loc *types.UserLocation) ([]types.SearchResult, error) {
	ctx, span := otel.Tracer("SearchService").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("search.query", query),
		attribute.String("search.source", s.source.Name()),
		attribute.Bool("search.has_location", loc != nil),
	))
	defer span.End()

	candidates, err := s.source.Results(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load search candidates",
			slog.String("source", s.source.Name()),
			slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "source failed")
		return nil, fmt.Errorf("load %s results: %w", s.source.Name(), err)
	}

	results, fallback := Filter(query, candidates)
	withDistances(results, loc)

	m := metrics.Get()
	attrs := metric.WithAttributes(attribute.String("source", s.source.Name()))
	m.SearchRequestsTotal.Add(ctx, 1, attrs)
	if fallback {
		m.SearchFallbackTotal.Add(ctx, 1, attrs)
		s.logger.DebugContext(ctx, "No result matched, returning full set",
			slog.String("query", query),
			slog.Int("count", len(results)))
	}

	span.SetAttributes(
		attribute.Int("search.results", len(results)),
		attribute.Bool("search.fallback", fallback),
	)
	span.SetStatus(codes.Ok, "")
	return results, nil
}

func (s *ServiceImpl) MapLayer(ctx context.Context, query string, loc *types.UserLocation) (*MapLayer, error) {
	results, err := s.Search(ctx, query, loc)
	if err != nil {
		return nil, err
	}
	return BuildMapLayer(results, loc), nil
}
