package datasets

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Centroid reads the GeoJSON geometry string the portal stores on every
// record and returns the centre of its bounds as lat, lng.
func Centroid(geometry string) (lat, lng float64, ok bool) {
	if strings.TrimSpace(geometry) == "" {
		return 0, 0, false
	}
	g, err := geojson.UnmarshalGeometry([]byte(geometry))
	if err != nil || g == nil || g.Geometry() == nil {
		return 0, 0, false
	}
	b := g.Geometry().Bound()
	if b.IsEmpty() {
		return 0, 0, false
	}
	c := b.Center()
	return c.Lat(), c.Lon(), validLatLng(c.Lat(), c.Lon())
}

// parseLatLng handles the string-typed coordinate columns.
func parseLatLng(latStr, lngStr string) (lat, lng float64, ok bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, validLatLng(lat, lng)
}

func validLatLng(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
