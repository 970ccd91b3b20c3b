package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-study-spaces/internal/api/datasets"
	"github.com/FACorreiaa/go-study-spaces/internal/api/opendata"
	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

// Source supplies the candidate set a query is filtered against.
type Source interface {
	Name() string
	Results(ctx context.Context) ([]types.SearchResult, error)
}

var (
	_ Source = (*SampleSource)(nil)
	_ Source = (*LiveSource)(nil)
)

// SampleSource serves the built-in Toronto sample set.
type SampleSource struct{}

func NewSampleSource() *SampleSource { return &SampleSource{} }

func (s *SampleSource) Name() string { return "sample" }

func (s *SampleSource) Results(_ context.Context) ([]types.SearchResult, error) {
	return append([]types.SearchResult(nil), sampleResults...), nil
}

const liveResultsKey = "live-results"

// LiveSource assembles every registered dataset from the portal and maps the
// records to search results. Datasets load concurrently; the combined slice
// keeps registry order. Any dataset failing fails the whole load.
type LiveSource struct {
	registry *datasets.Registry
	catalog  opendata.Catalog
	logger   *slog.Logger
	cache    *cache.Cache
}

// NewLiveSource builds a live source. A positive ttl keeps the combined
// results in memory for that long; zero fetches on every call.
func NewLiveSource(registry *datasets.Registry, catalog opendata.Catalog, ttl time.Duration, logger *slog.Logger) *LiveSource {
	s := &LiveSource{
		registry: registry,
		catalog:  catalog,
		logger:   logger,
	}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

func (s *LiveSource) Name() string { return "live" }

func (s *LiveSource) Results(ctx context.Context) ([]types.SearchResult, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(liveResultsKey); ok {
			s.logger.DebugContext(ctx, "Serving live results from cache")
			return append([]types.SearchResult(nil), cached.([]types.SearchResult)...), nil
		}
	}

	loaders := s.registry.All()
	parts := make([][]types.SearchResult, len(loaders))

	g, gctx := errgroup.WithContext(ctx)
	for i, l := range loaders {
		g.Go(func() error {
			res, err := l.Results(gctx, s.catalog, s.logger)
			if err != nil {
				return fmt.Errorf("load %s: %w", l.Name(), err)
			}
			parts[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]types.SearchResult, 0)
	for _, p := range parts {
		out = append(out, p...)
	}

	if s.cache != nil {
		s.cache.SetDefault(liveResultsKey, append([]types.SearchResult(nil), out...))
	}
	return out, nil
}
