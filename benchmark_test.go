package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appLogger "github.com/FACorreiaa/go-study-spaces/app/logger"
	"github.com/FACorreiaa/go-study-spaces/config"
	"github.com/FACorreiaa/go-study-spaces/internal/container"
	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

// BenchmarkSuite serves the sample source through the full handler stack.
type BenchmarkSuite struct {
	handler http.Handler
	logger  *slog.Logger
}

func setupBenchmarkSuite(b *testing.B) *BenchmarkSuite {
	b.Helper()
	logger := appLogger.New("benchmark", io.Discard)

	cfg, err := config.LoadFromBytes([]byte(`
server:
  HTTPPort: "0"
search:
  source: sample
`))
	if err != nil {
		b.Fatalf("config: %v", err)
	}
	c, err := container.NewContainer(&cfg, logger)
	if err != nil {
		b.Fatalf("container: %v", err)
	}
	return &BenchmarkSuite{
		handler: newHandler(c, logger, 5*time.Second),
		logger:  logger,
	}
}

func (suite *BenchmarkSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.handler.ServeHTTP(w, req)
	return w
}

// BenchmarkSearch benchmarks a matching query
func BenchmarkSearch(b *testing.B) {
	suite := setupBenchmarkSuite(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		suite.get("/api/search?q=cafe+with+good+coffee")
	}
}

// BenchmarkSearchWithLocation adds the distance calculation
func BenchmarkSearchWithLocation(b *testing.B) {
	suite := setupBenchmarkSuite(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		suite.get("/api/search?q=quiet+park&lat=43.6532&lng=-79.3832")
	}
}

// BenchmarkSearchFallback benchmarks a query that matches nothing
func BenchmarkSearchFallback(b *testing.B) {
	suite := setupBenchmarkSuite(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		suite.get("/api/search?q=xyz123")
	}
}

// BenchmarkMapLayer benchmarks the GeoJSON rendering
func BenchmarkMapLayer(b *testing.B) {
	suite := setupBenchmarkSuite(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		suite.get("/api/search/map?q=park&lat=43.6532&lng=-79.3832")
	}
}

// BenchmarkConcurrentRequests benchmarks concurrent requests handling
func BenchmarkConcurrentRequests(b *testing.B) {
	suite := setupBenchmarkSuite(b)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			suite.get("/api/search?q=wifi")
		}
	})
}

// BenchmarkJSONSerialization benchmarks encoding and decoding a response
func BenchmarkJSONSerialization(b *testing.B) {
	d := 1.5
	resp := types.SearchResponse{Results: []types.SearchResult{{
		ID:          "sample-queens-park",
		Name:        "Queen's Park",
		Type:        types.CategoryPark,
		Description: "quiet park with trees",
		Coordinates: [2]float64{43.6640, -79.3925},
		Features:    []string{"Shade trees", "Benches"},
		Distance:    &d,
	}}}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		data, _ := json.Marshal(resp)

		var out types.SearchResponse
		_ = json.Unmarshal(data, &out)
	}
}
