package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

func names(results []types.SearchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"cafe", "with", "wi-fi"}, Tokenize("  Cafe\twith   WI-FI \n"))
	assert.Empty(t, Tokenize("   "))
}

func TestMatches(t *testing.T) {
	quiet := types.SearchResult{
		Name:        "Queen's Park",
		Type:        types.CategoryPark,
		Description: "quiet park with trees",
		Features:    []string{"Benches"},
	}
	garden := types.SearchResult{Name: "Music Garden", Type: types.CategoryGreenSpace}

	tests := []struct {
		name   string
		result types.SearchResult
		tokens []string
		want   bool
	}{
		{name: "description token", result: quiet, tokens: []string{"quiet"}, want: true},
		{name: "feature token", result: quiet, tokens: []string{"benches"}, want: true},
		{name: "any token is enough", result: quiet, tokens: []string{"xyz", "trees"}, want: true},
		{name: "tag with underscore as space", result: garden, tokens: []string{"space"}, want: true},
		{name: "tag as written", result: garden, tokens: []string{"green_space"}, want: true},
		{name: "no token", result: quiet, tokens: []string{"coffee"}, want: false},
		{name: "empty tokens", result: quiet, tokens: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.result, tt.tokens))
		})
	}
}

func TestFilter_QuietKeepsQuietPark(t *testing.T) {
	in := []types.SearchResult{
		{ID: "1", Name: "Loud Plaza", Type: types.CategoryBench, Description: "busy corner"},
		{ID: "2", Name: "Queen's Park", Type: types.CategoryPark, Description: "quiet park with trees"},
	}
	out, fallback := Filter("quiet", in)
	assert.False(t, fallback)
	assert.Equal(t, []string{"Queen's Park"}, names(out))
}

func TestFilter_CafeWithGoodCoffee(t *testing.T) {
	const query = "cafe with good coffee"
	out, fallback := Filter(query, sampleResults)
	require.False(t, fallback)

	got := names(out)
	assert.Contains(t, got, "Balzac's Coffee Roasters")
	assert.Contains(t, got, "Dark Horse Espresso Bar")
	assert.Contains(t, got, "Pilot Coffee Roasters")
	assert.NotContains(t, got, "Toronto Reference Library")
	assert.Less(t, len(out), len(sampleResults))

	for _, r := range out {
		assert.True(t, Matches(r, Tokenize(query)), "%s should match", r.Name)
	}
}

func TestFilter_NoMatchReturnsEverything(t *testing.T) {
	out, fallback := Filter("xyz123", sampleResults)
	assert.True(t, fallback)
	assert.Equal(t, names(sampleResults), names(out))
}

func TestFilter_KeepsInputOrder(t *testing.T) {
	in := []types.SearchResult{
		{ID: "a", Name: "Green street one", Type: types.CategoryGreenStreet},
		{ID: "b", Name: "Bench", Type: types.CategoryBench},
		{ID: "c", Name: "Garden", Type: types.CategoryGreenSpace},
	}
	out, fallback := Filter("green", in)
	assert.False(t, fallback)
	assert.Equal(t, []string{"Green street one", "Garden"}, names(out))
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	in := []types.SearchResult{{ID: "a", Name: "Bench"}}

	out, _ := Filter("bench", in)
	out[0].Name = "changed"
	assert.Equal(t, "Bench", in[0].Name)

	out, _ = Filter("nothing", in)
	out[0].Name = "changed"
	assert.Equal(t, "Bench", in[0].Name)
}

func TestCalculateDistance(t *testing.T) {
	assert.InDelta(t, 0, calculateDistance(43.6532, -79.3832, 43.6532, -79.3832), 1e-9)
	assert.InDelta(t, 111.195, calculateDistance(0, 0, 0, 1), 0.01)
	assert.InDelta(t,
		calculateDistance(43.6532, -79.3832, 43.6719, -79.3868),
		calculateDistance(43.6719, -79.3868, 43.6532, -79.3832), 1e-9)
}

func TestWithDistances(t *testing.T) {
	results := []types.SearchResult{{Coordinates: [2]float64{0, 1}}}

	withDistances(results, &types.UserLocation{Lat: 0, Lng: 0})
	require.NotNil(t, results[0].Distance)
	assert.InDelta(t, 111.195, *results[0].Distance, 0.01)

	withDistances(results, nil)
	assert.Nil(t, results[0].Distance)
}
