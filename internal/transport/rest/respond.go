package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// msgInvalidInput is the only detail a client gets for a rejected body.
const msgInvalidInput = "Invalid input data"

var errTrailingData = errors.New("unexpected data after JSON body")

// writeJSON marshals before writing the header so an unencodable value
// turns into a 500 instead of a truncated success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"Internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n')) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps service errors to HTTP responses. Field-level validation
// details are logged, never returned.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		log.WarnContext(r.Context(), "invalid input",
			slog.Any("fields", verr.Fields()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, msgInvalidInput)
	case errors.Is(err, domain.ErrValidation):
		log.WarnContext(r.Context(), "invalid input", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, msgInvalidInput)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads a size-limited JSON body into dst. Any failure is
// reported as invalid input, except an oversized body.
func decodeJSON(log *slog.Logger, w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		// Exactly one JSON value per body.
		switch extra := dec.Decode(&json.RawMessage{}); {
		case extra == nil:
			err = errTrailingData
		case !errors.Is(extra, io.EOF):
			err = extra
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		log.WarnContext(r.Context(), "malformed request body", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return false
	}
	return true
}
