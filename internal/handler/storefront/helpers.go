package storefront

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vitrine-store/vitrine/internal/domain"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

// respondError maps a domain error to an HTTP status and writes a structured
// JSON error body. Validation errors carry per-field messages.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	if domain.IsValidationError(err) {
		logger.Info("request rejected", "path", r.URL.Path, "error", err.Error())
		respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": map[string]interface{}{
				"code":   domain.EINVALID,
				"fields": domain.GetValidationFields(err),
			},
		})
		return
	}

	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	status := statusFromCode(code)

	if status >= 500 {
		logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err.Error())
	} else {
		logger.Info("request rejected", "path", r.URL.Path, "status", status, "error", err.Error())
	}

	respondJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// statusFromCode maps domain error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v, rejecting unknown garbage with
// a domain validation error.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Invalid("request.decode", "Invalid JSON request body")
	}
	return nil
}
