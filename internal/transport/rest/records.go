package rest

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint"
)

// ListPersonal handles GET /api/emissions/personal.
func (h *FootprintHandler) ListPersonal(w http.ResponseWriter, r *http.Request) {
	input, ok := h.listInput(w, r)
	if !ok {
		return
	}

	page, err := h.svc.ListPersonal(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPage(page, func(rec domain.PersonalRecord) *personalRecordResponse {
		return toPersonalRecord(&rec)
	}))
}

// ListIndustrial handles GET /api/emissions/industrial.
func (h *FootprintHandler) ListIndustrial(w http.ResponseWriter, r *http.Request) {
	input, ok := h.listInput(w, r)
	if !ok {
		return
	}

	page, err := h.svc.ListIndustrial(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPage(page, func(rec domain.IndustrialRecord) *industrialRecordResponse {
		return toIndustrialRecord(&rec)
	}))
}

// GetPersonal handles GET /api/emissions/personal/{id}.
func (h *FootprintHandler) GetPersonal(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.GetPersonal(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonalRecord(rec))
}

// GetIndustrial handles GET /api/emissions/industrial/{id}.
func (h *FootprintHandler) GetIndustrial(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.GetIndustrial(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIndustrialRecord(rec))
}

// PersonalReport handles GET /api/emissions/personal/{id}/report.
func (h *FootprintHandler) PersonalReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.PersonalReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonalResult(result, true))
}

// IndustrialReport handles GET /api/emissions/industrial/{id}/report.
func (h *FootprintHandler) IndustrialReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.IndustrialReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIndustrialResult(result, true))
}

// Summary handles GET /api/emissions/summary.
func (h *FootprintHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummary(summary))
}

// pathID parses the {id} path segment. Non-numeric ids cannot exist.
func (h *FootprintHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

// listInput reads ?limit=&offset=&mine= from the query string.
func (h *FootprintHandler) listInput(w http.ResponseWriter, r *http.Request) (footprint.ListInput, bool) {
	var (
		input footprint.ListInput
		errs  []domain.FieldError
	)
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}
	if v := q.Get("mine"); v != "" {
		mine, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "mine", Message: "must be a boolean"})
		}
		input.OnlyMine = mine
	}

	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return input, false
	}
	return input, true
}
