package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-study-spaces/internal/api/datasets"
	"github.com/FACorreiaa/go-study-spaces/internal/api/search"
)

// Config contains dependencies needed for the router setup
type Config struct {
	SearchHandler   *search.Handler
	DatasetsHandler *datasets.Handler
	AllowedOrigins  []string
}

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// SetupRouter initializes and configures the application routes.
// Server-wide middleware (logger, requestID, recoverer) is applied in
// main.go before this router is mounted.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", cfg.SearchHandler.Search)
		r.Get("/search/map", cfg.SearchHandler.Map)

		if cfg.DatasetsHandler != nil {
			r.Get("/datasets", cfg.DatasetsHandler.ListDatasets)
			r.Get("/datasets/{name}", cfg.DatasetsHandler.GetDataset)
		}
	})

	return r
}
