package container

import (
	"fmt"
	"log/slog"

	"github.com/FACorreiaa/go-study-spaces/config"
	"github.com/FACorreiaa/go-study-spaces/internal/api/datasets"
	"github.com/FACorreiaa/go-study-spaces/internal/api/opendata"
	"github.com/FACorreiaa/go-study-spaces/internal/api/search"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *slog.Logger
	Catalog         opendata.Catalog
	Registry        *datasets.Registry
	SearchService   search.Service
	SearchHandler   *search.Handler
	DatasetsHandler *datasets.Handler
}

// NewContainer wires the open data client, the dataset registry and the
// search source selected by search.source.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	client := opendata.NewClient(cfg.OpenData.BaseURL, logger,
		opendata.WithTimeout(cfg.OpenData.RequestTimeout),
		opendata.WithUserAgent(cfg.OpenData.UserAgent),
	)

	p := cfg.OpenData.Packages
	registry := datasets.NewRegistry(datasets.Packages{
		Parks:        p.Parks,
		GreenSpaces:  p.GreenSpaces,
		Wifi:         p.Wifi,
		GreenStreets: p.GreenStreets,
	})

	var source search.Source
	switch cfg.Search.Source {
	case config.SourceSample:
		source = search.NewSampleSource()
	case config.SourceLive:
		source = search.NewLiveSource(registry, client, cfg.OpenData.CacheTTL, logger)
	default:
		return nil, fmt.Errorf("unknown search source %q", cfg.Search.Source)
	}
	logger.Info("Search source selected",
		slog.String("source", source.Name()),
		slog.Int("datasets", len(registry.All())))

	searchService := search.NewServiceImpl(source, logger)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		Catalog:         client,
		Registry:        registry,
		SearchService:   searchService,
		SearchHandler:   search.NewHandler(searchService, logger),
		DatasetsHandler: datasets.NewHandler(registry, client, logger),
	}, nil
}
