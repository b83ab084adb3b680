// internal/handlers/transaction.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

const dateLayout = "2006-01-02"

// TransactionHandler handles ledger HTTP requests
type TransactionHandler struct {
	service ports.TransactionService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service ports.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "transaction")),
	}
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := req.ToDomain()
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}

	created, err := h.service.Create(ctx, tx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create transaction",
			slog.String("kind", req.Kind),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, created)
}

// GetTransaction handles GET /api/v1/transactions/{id}
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	tx, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, tx)
}

// ListTransactions handles GET /api/v1/transactions
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := parseTransactionListParams(r)

	result, err := h.service.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list transactions",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

// UpdateTransaction handles PATCH /api/v1/transactions/{id}
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var update domain.TransactionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.service.Update(ctx, id, update)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update transaction",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, tx)
}

// DeleteTransaction handles DELETE /api/v1/transactions/{id}
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete transaction",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]string{
		"message": "Transaction deleted successfully",
		"id":      id.String(),
	})
}

// parseTransactionListParams parses query parameters for listing
func parseTransactionListParams(r *http.Request) ports.TransactionListParams {
	params := ports.TransactionListParams{
		Page:     1,
		PageSize: 20,
	}

	q := r.URL.Query()

	if page := q.Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if size := q.Get("page_size"); size != "" {
		if s, err := strconv.Atoi(size); err == nil && s > 0 {
			if s > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = s
			}
		}
	}

	params.Kind = q.Get("kind")
	params.PartyID = q.Get("party_id")
	params.FactoryID = q.Get("factory_id")
	params.SourceKind = q.Get("source_kind")
	params.SourceID = q.Get("source_id")

	if from := q.Get("from"); from != "" {
		if t, err := time.Parse(dateLayout, from); err == nil {
			params.DateFrom = &t
		}
	}
	if to := q.Get("to"); to != "" {
		if t, err := time.Parse(dateLayout, to); err == nil {
			// Widen to the end of the day so the range is inclusive.
			end := t.Add(24*time.Hour - time.Nanosecond)
			params.DateTo = &end
		}
	}

	if includeDisabled := q.Get("include_disabled"); includeDisabled != "" {
		if val, err := strconv.ParseBool(includeDisabled); err == nil {
			params.IncludeDisabled = val
		}
	}

	return params
}

// Request/Response DTOs

// CreateTransactionRequest represents the request body for creating a
// ledger record. Quantities arrive as a raw map so unknown keys can be
// ignored rather than failing the decode.
type CreateTransactionRequest struct {
	Kind          string              `json:"kind"`
	SourceKind    string              `json:"source_kind"`
	SourceID      string              `json:"source_id"`
	PartyID       string              `json:"party_id"`
	FactoryID     string              `json:"factory_id"`
	Date          string              `json:"date"`
	Vehicle       string              `json:"vehicle,omitempty"`
	VehicleNumber string              `json:"vehicle_number,omitempty"`
	Quantities    map[string]int      `json:"quantities"`
	Items         []domain.PalletLine `json:"items,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *CreateTransactionRequest) ToDomain() (*domain.Transaction, error) {
	sourceID, err := uuid.Parse(r.SourceID)
	if err != nil {
		return nil, domain.NewValidationError("source_id", "must be a valid UUID")
	}
	partyID, err := uuid.Parse(r.PartyID)
	if err != nil {
		return nil, domain.NewValidationError("party_id", "must be a valid UUID")
	}
	factoryID, err := uuid.Parse(r.FactoryID)
	if err != nil {
		return nil, domain.NewValidationError("factory_id", "must be a valid UUID")
	}

	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be formatted YYYY-MM-DD")
	}

	quantities, err := domain.NewQuantitySet(r.Quantities)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		Kind:          domain.TransactionKind(r.Kind),
		SourceKind:    domain.SourceKind(r.SourceKind),
		SourceID:      sourceID,
		PartyID:       partyID,
		FactoryID:     factoryID,
		Date:          date,
		Vehicle:       r.Vehicle,
		VehicleNumber: r.VehicleNumber,
		Quantities:    quantities,
		Items:         r.Items,
	}, nil
}
