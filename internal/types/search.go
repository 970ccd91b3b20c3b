package types

import "strings"

// Category tags a search result with the kind of place it is.
type Category string

const (
	CategoryGreenSpace  Category = "green_space"
	CategoryPark        Category = "park"
	CategoryCafe        Category = "cafe"
	CategoryWifi        Category = "wifi"
	CategoryGreenStreet Category = "green_street"
	CategoryBench       Category = "bench"
)

// Categories lists every valid tag in display order.
var Categories = []Category{
	CategoryGreenSpace,
	CategoryPark,
	CategoryCafe,
	CategoryWifi,
	CategoryGreenStreet,
	CategoryBench,
}

// Valid reports whether c is one of the enumerated tags.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the tag with its separator shown as a space ("green space").
func (c Category) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// ParseCategory accepts a tag in either its wire form ("green_space") or its
// label form ("Green Space").
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_"))
	return c, c.Valid()
}

// MarkerStyle is how a category is drawn on the map.
type MarkerStyle struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// DefaultMarker is used for anything outside the enumeration.
var DefaultMarker = MarkerStyle{Color: "#6b7280", Icon: "map-pin"}

var markerStyles = map[Category]MarkerStyle{
	CategoryGreenSpace:  {Color: "#22c55e", Icon: "tree-pine"},
	CategoryPark:        {Color: "#16a34a", Icon: "tree-pine"},
	CategoryCafe:        {Color: "#f59e0b", Icon: "coffee"},
	CategoryWifi:        {Color: "#a855f7", Icon: "wifi"},
	CategoryGreenStreet: {Color: "#059669", Icon: "leaf"},
	CategoryBench:       {Color: "#3b82f6", Icon: "armchair"},
}

// StyleFor never fails: unknown tags get DefaultMarker.
func StyleFor(c Category) MarkerStyle {
	if s, ok := markerStyles[c]; ok {
		return s
	}
	return DefaultMarker
}

// UserLocation is the optional browser geolocation sent with a query.
type UserLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchResult is the normalised, UI-facing form of any dataset record.
type SearchResult struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        Category   `json:"type"`
	Description string     `json:"description"`
	Coordinates [2]float64 `json:"coordinates"` // lat, lng
	Features    []string   `json:"features"`
	Address     string     `json:"address,omitempty"`
	Distance    *float64   `json:"distance,omitempty"` // km, only with a user location
}

// Lat returns the latitude half of Coordinates.
func (r SearchResult) Lat() float64 { return r.Coordinates[0] }

// Lng returns the longitude half of Coordinates.
func (r SearchResult) Lng() float64 { return r.Coordinates[1] }

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
