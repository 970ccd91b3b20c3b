// Package datasets binds the Toronto open data packages to their record types
// and to the search result mapping.
package datasets

import (
	"context"
	"log/slog"

	"github.com/FACorreiaa/go-study-spaces/internal/api/opendata"
	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

const (
	NameParks        = "parks"
	NameGreenSpaces  = "green_spaces"
	NameWifi         = "wifi"
	NameGreenStreets = "green_streets"
)

// Packages holds the portal package id of each dataset.
type Packages struct {
	Parks        string
	GreenSpaces  string
	Wifi         string
	GreenStreets string
}

// Loader hides the record type of a dataset so datasets of different types
// can live in one registry.
type Loader interface {
	Name() string
	PackageID() string
	Category() types.Category
	// Records returns the typed records, e.g. []types.ParkAsset.
	Records(ctx context.Context, catalog opendata.Catalog, logger *slog.Logger) (any, error)
	// Results returns the records that can be placed on a map, as search results.
	Results(ctx context.Context, catalog opendata.Catalog, logger *slog.Logger) ([]types.SearchResult, error)
}

type binding[T any] struct {
	ds       opendata.Dataset[T]
	category types.Category
	toResult func(T) (types.SearchResult, bool)
}

func (b binding[T]) Name() string             { return b.ds.Name }
func (b binding[T]) PackageID() string        { return b.ds.PackageID }
func (b binding[T]) Category() types.Category { return b.category }

func (b binding[T]) Records(ctx context.Context, catalog opendata.Catalog, logger *slog.Logger) (any, error) {
	return opendata.Assemble(ctx, catalog, b.ds, logger)
}

func (b binding[T]) Results(ctx context.Context, catalog opendata.Catalog, logger *slog.Logger) ([]types.SearchResult, error) {
	records, err := opendata.Assemble(ctx, catalog, b.ds, logger)
	if err != nil {
		return nil, err
	}
	out := make([]types.SearchResult, 0, len(records))
	for _, r := range records {
		if res, ok := b.toResult(r); ok {
			out = append(out, res)
		}
	}
	if skipped := len(records) - len(out); skipped > 0 {
		logger.DebugContext(ctx, "Skipped records without coordinates",
			slog.String("dataset", b.ds.Name),
			slog.Int("skipped", skipped))
	}
	return out, nil
}

func bind[T any](name, packageID string, category types.Category, toResult func(T) (types.SearchResult, bool)) Loader {
	return binding[T]{
		ds:       opendata.Dataset[T]{Name: name, PackageID: packageID},
		category: category,
		toResult: toResult,
	}
}

// Registry is the ordered set of live datasets.
type Registry struct {
	loaders []Loader
}

// NewRegistry registers every dataset with a package id, in a fixed order.
func NewRegistry(p Packages) *Registry {
	r := &Registry{}
	if p.Parks != "" {
		r.loaders = append(r.loaders, bind(NameParks, p.Parks, types.CategoryPark, ParkResult))
	}
	if p.GreenSpaces != "" {
		r.loaders = append(r.loaders, bind(NameGreenSpaces, p.GreenSpaces, types.CategoryGreenSpace, GreenSpaceResult))
	}
	if p.Wifi != "" {
		r.loaders = append(r.loaders, bind(NameWifi, p.Wifi, types.CategoryWifi, WifiResult))
	}
	if p.GreenStreets != "" {
		r.loaders = append(r.loaders, bind(NameGreenStreets, p.GreenStreets, types.CategoryGreenStreet, GreenStreetResult))
	}
	return r
}

// All returns the loaders in registration order.
func (r *Registry) All() []Loader {
	return append([]Loader(nil), r.loaders...)
}

// Get finds a loader by name.
func (r *Registry) Get(name string) (Loader, bool) {
	for _, l := range r.loaders {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}
