// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/packtrack/packtrack-be/internal/core/domain"
)

// errorResponse is the JSON body every failed request gets.
type errorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondMessage(logger *slog.Logger, w http.ResponseWriter, status int, message string) {
	respondJSON(logger, w, status, errorResponse{Error: message})
}

// respondDomainError maps the error taxonomy onto HTTP statuses. Errors
// outside the taxonomy are treated as internal and their detail kept
// out of the response body.
func respondDomainError(logger *slog.Logger, w http.ResponseWriter, err error) {
	var (
		validationErr   *domain.ValidationError
		notFoundErr     *domain.NotFoundError
		deletedErr      *domain.AlreadyDeletedError
		duplicateErr    *domain.DuplicateError
		stockErr        *domain.InsufficientStockError
		invariantErr    *domain.InvariantViolationError
		unauthorizedErr *domain.UnauthorizedError
	)

	switch {
	case errors.As(err, &validationErr):
		respondJSON(logger, w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.As(err, &stockErr):
		respondJSON(logger, w, http.StatusBadRequest, errorResponse{
			Error:   "insufficient stock",
			Details: stockErr.Shortfalls,
		})
	case errors.As(err, &deletedErr):
		respondJSON(logger, w, http.StatusBadRequest, errorResponse{Error: deletedErr.Error()})
	case errors.As(err, &notFoundErr):
		respondJSON(logger, w, http.StatusNotFound, errorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &duplicateErr):
		respondJSON(logger, w, http.StatusConflict, errorResponse{Error: duplicateErr.Error()})
	case errors.As(err, &invariantErr):
		respondJSON(logger, w, http.StatusConflict, errorResponse{Error: invariantErr.Error()})
	case errors.As(err, &unauthorizedErr):
		respondJSON(logger, w, http.StatusUnauthorized, errorResponse{Error: unauthorizedErr.Error()})
	default:
		respondJSON(logger, w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
