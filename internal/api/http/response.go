package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"churchplus-backend/internal/domain"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/validation"
)

type errorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeError maps service errors onto status codes. Anything unrecognised
// is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validation.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  vErr.Error(),
			Field:  vErr.Field,
			Reason: string(vErr.Reason),
		})
	case errors.As(err, &fieldErrs):
		fe := fieldErrs[0]
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid request body",
			Field:  fe.Field(),
			Reason: fe.Tag(),
		})
	case errors.Is(err, errInvalidBody),
		errors.Is(err, errMissingParameter),
		errors.Is(err, domain.ErrMalformedID),
		errors.Is(err, domain.ErrMemberAlreadyExists):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrContributionNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	default:
		logger.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
