package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"green_space", CategoryGreenSpace, true},
		{"Green Space", CategoryGreenSpace, true},
		{" cafe ", CategoryCafe, true},
		{"WIFI", CategoryWifi, true},
		{"green street", CategoryGreenStreet, true},
		{"bench", CategoryBench, true},
		{"library", Category("library"), false},
		{"", Category(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCategory(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStyleFor_UnknownFallsBackToDefault(t *testing.T) {
	for _, c := range Categories {
		style := StyleFor(c)
		assert.NotEqual(t, DefaultMarker, style, "category %s should have its own marker", c)
	}
	assert.Equal(t, DefaultMarker, StyleFor(Category("library")))
	assert.Equal(t, DefaultMarker, StyleFor(""))
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "green space", CategoryGreenSpace.Label())
	assert.Equal(t, "cafe", CategoryCafe.Label())
}

func TestSearchResult_JSONOmitsMissingDistance(t *testing.T) {
	r := SearchResult{ID: "x", Name: "Bench", Type: CategoryBench, Coordinates: [2]float64{43.6, -79.4}, Features: []string{"Seating"}}
	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "distance")
	assert.NotContains(t, string(raw), "address")
	assert.Contains(t, string(raw), `"coordinates":[43.6,-79.4]`)

	d := 1.5
	r.Distance = &d
	raw, err = json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"distance":1.5`)
}
