package search

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

const (
	// Toronto city hall, the view when there is nothing to show.
	defaultCenterLat = 43.6532
	defaultCenterLng = -79.3832
	defaultZoom      = 11

	fitPaddingPx = 20
	fitMaxZoom   = 15

	userLocationColor = "#3b82f6"
)

// MapView tells the client where to point the map. Either Bounds is set and
// the client fits to it, or Center and Zoom are used directly.
type MapView struct {
	Center  [2]float64     `json:"center"`
	Zoom    int            `json:"zoom,omitempty"`
	Bounds  *[2][2]float64 `json:"bounds,omitempty"` // [[south, west], [north, east]]
	Padding [2]int         `json:"padding"`
	MaxZoom int            `json:"max_zoom"`
}

// MapLayer is the map rendering of one search: numbered markers plus the
// optional user location, as a GeoJSON FeatureCollection.
type MapLayer struct {
	View     MapView                    `json:"view"`
	Features *geojson.FeatureCollection `json:"features"`
}

// BuildMapLayer numbers results from 1 in their given order and colours each
// marker by category. The view covers every marker, the user's included.
func BuildMapLayer(results []types.SearchResult, loc *types.UserLocation) *MapLayer {
	fc := geojson.NewFeatureCollection()
	var bound orb.Bound
	seen := false
	extend := func(p orb.Point) {
		if !seen {
			bound = p.Bound()
			seen = true
			return
		}
		bound = bound.Extend(p)
	}

	if loc != nil {
		p := orb.Point{loc.Lng, loc.Lat}
		f := geojson.NewFeature(p)
		f.Properties["kind"] = "user-location"
		f.Properties["name"] = "Your Location"
		f.Properties["marker-color"] = userLocationColor
		fc.Append(f)
		extend(p)
	}

	for i, r := range results {
		p := orb.Point{r.Lng(), r.Lat()}
		cat, _ := types.ParseCategory(string(r.Type))
		style := types.StyleFor(cat)

		f := geojson.NewFeature(p)
		f.ID = r.ID
		f.Properties["kind"] = "result"
		f.Properties["rank"] = i + 1
		f.Properties["name"] = r.Name
		f.Properties["type"] = string(r.Type)
		f.Properties["description"] = r.Description
		f.Properties["features"] = append([]string{}, r.Features...)
		f.Properties["marker-color"] = style.Color
		f.Properties["marker-symbol"] = style.Icon
		if r.Address != "" {
			f.Properties["address"] = r.Address
		}
		if r.Distance != nil {
			f.Properties["distance"] = *r.Distance
			f.Properties["distance_text"] = fmt.Sprintf("%.1f km away", *r.Distance)
		}
		fc.Append(f)
		extend(p)
	}

	view := MapView{
		Padding: [2]int{fitPaddingPx, fitPaddingPx},
		MaxZoom: fitMaxZoom,
	}
	if !seen {
		view.Center = [2]float64{defaultCenterLat, defaultCenterLng}
		view.Zoom = defaultZoom
		return &MapLayer{View: view, Features: fc}
	}

	center := bound.Center()
	view.Center = [2]float64{center.Lat(), center.Lon()}
	view.Bounds = &[2][2]float64{
		{bound.Min.Lat(), bound.Min.Lon()},
		{bound.Max.Lat(), bound.Max.Lon()},
	}
	fc.BBox = geojson.NewBBox(bound)
	return &MapLayer{View: view, Features: fc}
}
