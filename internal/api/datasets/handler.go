package datasets

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-study-spaces/internal/api"
	"github.com/FACorreiaa/go-study-spaces/internal/api/opendata"
	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

type Handler struct {
	registry *Registry
	catalog  opendata.Catalog
	logger   *slog.Logger
}

func NewHandler(registry *Registry, catalog opendata.Catalog, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		catalog:  catalog,
		logger:   logger,
	}
}

// DatasetInfo describes one registered dataset.
type DatasetInfo struct {
	Name      string         `json:"name"`
	PackageID string         `json:"package_id"`
	Category  types.Category `json:"category"`
}

// ListDatasets godoc
// @Summary      List Datasets
// @Description  Lists the registered open data packages.
// @Tags         Datasets
// @Produce      json
// @Success      200 {object} map[string][]DatasetInfo "Datasets"
// @Router       /api/datasets [get]
func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	all := h.registry.All()
	out := make([]DatasetInfo, 0, len(all))
	for _, l := range all {
		out = append(out, DatasetInfo{Name: l.Name(), PackageID: l.PackageID(), Category: l.Category()})
	}
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"datasets": out})
}

// GetDataset godoc
// @Summary      Get Dataset Records
// @Description  Assembles every datastore record of one dataset, fetched fresh from the portal.
// @Tags         Datasets
// @Produce      json
// @Param        name path string true "Dataset name"
// @Success      200 {object} map[string]any "Dataset Records"
// @Failure      404 {object} api.Response "Unknown Dataset"
// @Failure      502 {object} api.Response "Portal Unavailable"
// @Failure      504 {object} api.Response "Portal Timeout"
// @Router       /api/datasets/{name} [get]
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DatasetsHandler").Start(r.Context(), "GetDataset", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/datasets/{name}"),
	))
	defer span.End()

	name := chi.URLParam(r, "name")
	l := h.logger.With(slog.String("handler", "GetDataset"), slog.String("dataset", name))

	loader, ok := h.registry.Get(name)
	if !ok {
		l.WarnContext(ctx, "Unknown dataset")
		span.SetStatus(codes.Error, "unknown dataset")
		api.ErrorResponse(w, r, http.StatusNotFound, "Unknown dataset")
		return
	}

	records, err := loader.Records(ctx, h.catalog, h.logger)
	if err != nil {
		l.ErrorContext(ctx, "Failed to assemble dataset", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "assemble failed")
		api.ErrorResponse(w, r, statusFor(err), "Failed to load dataset from the open data portal")
		return
	}

	span.SetStatus(codes.Ok, "")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{
		"dataset": name,
		"records": records,
	})
}

// statusFor maps an upstream failure to what this service reports.
func statusFor(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
