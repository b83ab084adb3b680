// internal/handlers/auth.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// AuthHandler handles production house registration, login and reads.
type AuthHandler struct {
	service ports.ProductionHouseService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service ports.ProductionHouseService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "auth")),
	}
}

// RegisterRequest represents the request body for registering a house
type RegisterRequest struct {
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	OpeningStock map[string]int `json:"opening_stock,omitempty"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and house profile
type LoginResponse struct {
	Token string                  `json:"token"`
	House *domain.ProductionHouse `json:"production_house"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	openingStock, err := domain.NewQuantitySet(req.OpeningStock)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}

	house, err := h.service.Register(ctx, req.Name, req.Email, req.Password, openingStock)
	if err != nil {
		h.logger.ErrorContext(ctx, "registration failed",
			slog.String("email", req.Email),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, house)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, house, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, LoginResponse{Token: token, House: house})
}

// ListHouses handles GET /api/v1/production-houses
func (h *AuthHandler) ListHouses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	houses, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list production houses",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, houses)
}

// GetHouse handles GET /api/v1/production-houses/{id}
func (h *AuthHandler) GetHouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid production house ID format")
		return
	}

	house, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, house)
}

// GetStock handles GET /api/v1/production-houses/{id}/stock
func (h *AuthHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid production house ID format")
		return
	}

	stock, err := h.service.Stock(ctx, id)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"production_house_id": id.String(),
		"stock":               stock.ToMap(),
	})
}
