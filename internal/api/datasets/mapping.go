package datasets

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

// resultNamespace keeps result ids stable for the same upstream record.
var resultNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://open.toronto.ca"))

func resultID(dataset string, recordID types.FlexInt) string {
	return uuid.NewSHA1(resultNamespace, []byte(fmt.Sprintf("%s:%d", dataset, recordID.Int()))).String()
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func nonEmpty[S ~string](values ...S) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v := strings.TrimSpace(string(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstNonEmpty[S ~string](values ...S) string {
	for _, v := range values {
		if v := strings.TrimSpace(string(v)); v != "" {
			return v
		}
	}
	return ""
}

// ParkResult maps a park. Records without a usable geometry are dropped.
func ParkResult(a types.ParkAsset) (types.SearchResult, bool) {
	lat, lng, ok := Centroid(a.Geometry.String())
	if !ok {
		return types.SearchResult{}, false
	}
	return types.SearchResult{
		ID:          resultID(NameParks, a.ID),
		Name:        firstNonEmpty(a.Name.String(), "Park"),
		Type:        types.CategoryPark,
		Description: firstNonEmpty(a.Type.String(), "Park"),
		Coordinates: [2]float64{lat, lng},
		Features:    splitList(a.Amenities.String()),
		Address:     strings.TrimSpace(a.Address.String()),
	}, true
}

func GreenSpaceResult(a types.GreenSpaceAsset) (types.SearchResult, bool) {
	lat, lng, ok := Centroid(a.Geometry.String())
	if !ok {
		return types.SearchResult{}, false
	}
	return types.SearchResult{
		ID:          resultID(NameGreenSpaces, a.ID),
		Name:        firstNonEmpty(a.AreaName, a.AreaLongCode, "Green space"),
		Type:        types.CategoryGreenSpace,
		Description: firstNonEmpty(a.AreaDesc, a.AreaClass, "Green space"),
		Coordinates: [2]float64{lat, lng},
		Features:    nonEmpty(a.AreaClass),
	}, true
}

// WifiResult prefers the LATITUDE/LONGITUDE columns and falls back to the
// geometry.
func WifiResult(a types.WifiAsset) (types.SearchResult, bool) {
	lat, lng, ok := parseLatLng(a.Latitude.String(), a.Longitude.String())
	if !ok {
		lat, lng, ok = Centroid(a.Geometry.String())
	}
	if !ok {
		return types.SearchResult{}, false
	}
	desc := "Free public Wi-Fi"
	if p := strings.TrimSpace(a.Provider.String()); p != "" {
		desc += " provided by " + p
	}
	return types.SearchResult{
		ID:          resultID(NameWifi, a.ID),
		Name:        firstNonEmpty(a.Name.String(), "Wi-Fi hotspot"),
		Type:        types.CategoryWifi,
		Description: desc,
		Coordinates: [2]float64{lat, lng},
		Features:    nonEmpty("Free Wi-Fi", a.LocationType.String()),
		Address:     strings.TrimSpace(a.Address.String()),
	}, true
}

func GreenStreetResult(a types.GreenStreetAsset) (types.SearchResult, bool) {
	lat, lng, ok := Centroid(a.Geometry.String())
	if !ok {
		return types.SearchResult{}, false
	}
	desc := "Green street"
	if s := strings.TrimSpace(a.Status.String()); s != "" {
		desc += " (" + strings.ToLower(s) + ")"
	}
	return types.SearchResult{
		ID:          resultID(NameGreenStreets, a.ID),
		Name:        firstNonEmpty(a.StreetName.String(), "Green street"),
		Type:        types.CategoryGreenStreet,
		Description: desc,
		Coordinates: [2]float64{lat, lng},
		Features:    nonEmpty(a.Status),
	}, true
}
