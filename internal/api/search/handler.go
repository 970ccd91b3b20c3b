package search

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-study-spaces/internal/api"
	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

var (
	errMissingQuery   = errors.New("query parameter q is required")
	errInvalidLatLng  = errors.New("lat and lng must be numbers")
	errLatLngOutRange = errors.New("lat must be within [-90, 90] and lng within [-180, 180]")
)

// parseParams reads q and the optional lat/lng pair.
func parseParams(r *http.Request) (string, *types.UserLocation, error) {
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		return "", nil, errMissingQuery
	}

	// A location needs both halves; one alone is ignored.
	latStr, lngStr := strings.TrimSpace(q.Get("lat")), strings.TrimSpace(q.Get("lng"))
	if latStr == "" || lngStr == "" {
		return query, nil, nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return "", nil, errInvalidLatLng
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return "", nil, errInvalidLatLng
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", nil, errLatLngOutRange
	}
	return query, &types.UserLocation{Lat: lat, Lng: lng}, nil
}

// Search godoc
// @Summary      Search Study Spaces
// @Description  Filters the places by the words in q. When nothing matches, every place is returned. With lat and lng the results carry a distance and are sorted nearest first.
// @Tags         Search
// @Produce      json
// @Param        q query string true "Free-text query"
// @Param        lat query number false "User latitude"
// @Param        lng query number false "User longitude"
// @Success      200 {object} types.SearchResponse "Search Results"
// @Failure      400 {object} api.Response "Invalid Parameters"
// @Router       /api/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SearchHandler").Start(r.Context(), "Search", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/search"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Search"))

	query, loc, err := parseParams(r)
	if err != nil {
		l.WarnContext(ctx, "Invalid search parameters", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid parameters")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.service.Search(ctx, query, loc)
	if err != nil {
		// Degrade to an empty result set; the page keeps working.
		l.ErrorContext(ctx, "Search failed, returning no results", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		results = nil
	} else {
		span.SetStatus(codes.Ok, "")
	}
	if results == nil {
		results = []types.SearchResult{}
	}

	l.DebugContext(ctx, "Search answered", slog.String("query", query), slog.Int("count", len(results)))
	api.WriteJSONResponse(w, r, http.StatusOK, types.SearchResponse{Results: results})
}

// Map godoc
// @Summary      Search Results As Map Markers
// @Description  Runs the same search and renders it as a GeoJSON feature collection plus the view to fit it.
// @Tags         Search
// @Produce      json
// @Param        q query string true "Free-text query"
// @Param        lat query number false "User latitude"
// @Param        lng query number false "User longitude"
// @Success      200 {object} MapLayer "Map Layer"
// @Failure      400 {object} api.Response "Invalid Parameters"
// @Router       /api/search/map [get]
func (h *Handler) Map(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SearchHandler").Start(r.Context(), "Map", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/search/map"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Map"))

	query, loc, err := parseParams(r)
	if err != nil {
		l.WarnContext(ctx, "Invalid search parameters", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid parameters")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	layer, err := h.service.MapLayer(ctx, query, loc)
	if err != nil {
		l.ErrorContext(ctx, "Search failed, returning empty map", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		layer = BuildMapLayer(nil, loc)
	} else {
		span.SetStatus(codes.Ok, "")
	}

	api.WriteJSONResponse(w, r, http.StatusOK, layer)
}
