package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"billboard-ops/internal/core/domain"
)

// errorBody is the JSON shape of every error response. Conflicts carries the
// reference codes of the bookings behind an availability conflict.
type errorBody struct {
	Error     string   `json:"error"`
	Conflicts []string `json:"conflicts,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the header is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain error kinds onto status codes: not found 404,
// conflict 409, invalid state and validation 400. Anything else is logged
// and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeJSON(w, status, errorBody{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorBody{Error: err.Error(), Conflicts: domain.ConflictCodes(err)})
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.Validation("invalid JSON: %v", err)
	}
	return nil
}
