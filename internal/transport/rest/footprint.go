package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint/engine"
)

// footprintService defines the minimal interface needed by FootprintHandler.
type footprintService interface {
	CalculatePersonal(ctx context.Context, input footprint.PersonalInput) (*footprint.PersonalResult, error)
	CalculateIndustrial(ctx context.Context, input footprint.IndustrialInput) (*footprint.IndustrialResult, error)
	GetPersonal(ctx context.Context, id int64) (*domain.PersonalRecord, error)
	GetIndustrial(ctx context.Context, id int64) (*domain.IndustrialRecord, error)
	ListPersonal(ctx context.Context, input footprint.ListInput) (*footprint.RecordPage[domain.PersonalRecord], error)
	ListIndustrial(ctx context.Context, input footprint.ListInput) (*footprint.RecordPage[domain.IndustrialRecord], error)
	PersonalReport(ctx context.Context, id int64) (*footprint.PersonalResult, error)
	IndustrialReport(ctx context.Context, id int64) (*footprint.IndustrialResult, error)
	Summary(ctx context.Context) (*domain.EmissionsSummary, error)
	Factors() engine.FactorTable
}

// FootprintHandler serves the calculation, factor and record endpoints.
type FootprintHandler struct {
	svc          footprintService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewFootprintHandler creates a FootprintHandler. maxBodyBytes <= 0
// disables the request body limit.
func NewFootprintHandler(svc footprintService, logger *slog.Logger, maxBodyBytes int64) *FootprintHandler {
	return &FootprintHandler{
		svc:          svc,
		log:          logger.With("handler", "footprint"),
		maxBodyBytes: maxBodyBytes,
	}
}

// ---------------------------------------------------------------------------
// Calculation
// ---------------------------------------------------------------------------

// CalculatePersonal handles POST /api/calculate/personal.
func (h *FootprintHandler) CalculatePersonal(w http.ResponseWriter, r *http.Request) {
	var req personalRequest
	if !decodeJSON(h.log, w, r, h.maxBodyBytes, &req) {
		return
	}

	result, err := h.svc.CalculatePersonal(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonalResult(result, false))
}

// CalculateIndustrial handles POST /api/calculate/industrial.
func (h *FootprintHandler) CalculateIndustrial(w http.ResponseWriter, r *http.Request) {
	var req industrialRequest
	if !decodeJSON(h.log, w, r, h.maxBodyBytes, &req) {
		return
	}

	result, err := h.svc.CalculateIndustrial(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIndustrialResult(result, false))
}

// Factors handles GET /api/emission-factors.
func (h *FootprintHandler) Factors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Factors())
}
