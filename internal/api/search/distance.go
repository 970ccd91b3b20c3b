package search

import (
	"math"

	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

const earthRadiusKm = 6371

// calculateDistance is the haversine great-circle distance in kilometres.
func calculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// withDistances sets Distance on every result, in place. A nil location
// clears it.
func withDistances(results []types.SearchResult, loc *types.UserLocation) {
	for i := range results {
		if loc == nil {
			results[i].Distance = nil
			continue
		}
		d := calculateDistance(loc.Lat, loc.Lng, results[i].Lat(), results[i].Lng())
		results[i].Distance = &d
	}
}
