// internal/handlers/directory.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// DirectoryHandler handles CRUD for the reference entities transactions
// point at: parties, factories, pallets and associate companies.
type DirectoryHandler struct {
	service ports.DirectoryService
	logger  *slog.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(service ports.DirectoryService, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "directory")),
	}
}

// NamedEntityRequest is the request body shared by the name-only
// reference entities.
type NamedEntityRequest struct {
	Name string `json:"name"`
}

// FactoryRequest is the request body for factories, which also carry
// their owning party.
type FactoryRequest struct {
	Name    string `json:"name"`
	PartyID string `json:"party_id"`
}

func (h *DirectoryHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Parties

// CreateParty handles POST /api/v1/parties
func (h *DirectoryHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var req NamedEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	party := &domain.Party{Name: req.Name}
	if err := h.service.CreateParty(r.Context(), party); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusCreated, party)
}

// GetParty handles GET /api/v1/parties/{id}
func (h *DirectoryHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	party, err := h.service.GetParty(r.Context(), id)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, party)
}

// ListParties handles GET /api/v1/parties
func (h *DirectoryHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.service.ListParties(r.Context())
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, parties)
}

// UpdateParty handles PUT /api/v1/parties/{id}
func (h *DirectoryHandler) UpdateParty(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req NamedEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	party := &domain.Party{ID: id, Name: req.Name}
	if err := h.service.UpdateParty(r.Context(), party); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, party)
}

// DeleteParty handles DELETE /api/v1/parties/{id}
func (h *DirectoryHandler) DeleteParty(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteParty(r.Context(), id); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Party deleted successfully"})
}

// Factories

// CreateFactory handles POST /api/v1/factories
func (h *DirectoryHandler) CreateFactory(w http.ResponseWriter, r *http.Request) {
	var req FactoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	partyID, err := uuid.Parse(req.PartyID)
	if err != nil {
		respondDomainError(h.logger, w, domain.NewValidationError("party_id", "must be a valid UUID"))
		return
	}

	factory := &domain.Factory{Name: req.Name, PartyID: partyID}
	if err := h.service.CreateFactory(r.Context(), factory); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusCreated, factory)
}

// GetFactory handles GET /api/v1/factories/{id}
func (h *DirectoryHandler) GetFactory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	factory, err := h.service.GetFactory(r.Context(), id)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, factory)
}

// ListFactories handles GET /api/v1/factories with an optional party_id
// filter
func (h *DirectoryHandler) ListFactories(w http.ResponseWriter, r *http.Request) {
	var partyID *uuid.UUID
	if raw := r.URL.Query().Get("party_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondDomainError(h.logger, w, domain.NewValidationError("party_id", "must be a valid UUID"))
			return
		}
		partyID = &id
	}

	factories, err := h.service.ListFactories(r.Context(), partyID)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, factories)
}

// UpdateFactory handles PUT /api/v1/factories/{id}
func (h *DirectoryHandler) UpdateFactory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req FactoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	partyID, err := uuid.Parse(req.PartyID)
	if err != nil {
		respondDomainError(h.logger, w, domain.NewValidationError("party_id", "must be a valid UUID"))
		return
	}

	factory := &domain.Factory{ID: id, Name: req.Name, PartyID: partyID}
	if err := h.service.UpdateFactory(r.Context(), factory); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, factory)
}

// DeleteFactory handles DELETE /api/v1/factories/{id}
func (h *DirectoryHandler) DeleteFactory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteFactory(r.Context(), id); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Factory deleted successfully"})
}

// Pallets

// CreatePallet handles POST /api/v1/pallets
func (h *DirectoryHandler) CreatePallet(w http.ResponseWriter, r *http.Request) {
	var req NamedEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pallet := &domain.Pallet{Name: req.Name}
	if err := h.service.CreatePallet(r.Context(), pallet); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusCreated, pallet)
}

// GetPallet handles GET /api/v1/pallets/{id}
func (h *DirectoryHandler) GetPallet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	pallet, err := h.service.GetPallet(r.Context(), id)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, pallet)
}

// ListPallets handles GET /api/v1/pallets
func (h *DirectoryHandler) ListPallets(w http.ResponseWriter, r *http.Request) {
	pallets, err := h.service.ListPallets(r.Context())
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, pallets)
}

// UpdatePallet handles PUT /api/v1/pallets/{id}
func (h *DirectoryHandler) UpdatePallet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req NamedEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pallet := &domain.Pallet{ID: id, Name: req.Name}
	if err := h.service.UpdatePallet(r.Context(), pallet); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, pallet)
}

// DeletePallet handles DELETE /api/v1/pallets/{id}
func (h *DirectoryHandler) DeletePallet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePallet(r.Context(), id); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Pallet deleted successfully"})
}

// Associate companies

// CreateAssociateCompany handles POST /api/v1/associate-companies
func (h *DirectoryHandler) CreateAssociateCompany(w http.ResponseWriter, r *http.Request) {
	var req NamedEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	company := &domain.AssociateCompany{Name: req.Name}
	if err := h.service.CreateAssociateCompany(r.Context(), company); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusCreated, company)
}

// GetAssociateCompany handles GET /api/v1/associate-companies/{id}
func (h *DirectoryHandler) GetAssociateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	company, err := h.service.GetAssociateCompany(r.Context(), id)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, company)
}

// ListAssociateCompanies handles GET /api/v1/associate-companies
func (h *DirectoryHandler) ListAssociateCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListAssociateCompanies(r.Context())
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, companies)
}

// UpdateAssociateCompany handles PUT /api/v1/associate-companies/{id}
func (h *DirectoryHandler) UpdateAssociateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req NamedEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	company := &domain.AssociateCompany{ID: id, Name: req.Name}
	if err := h.service.UpdateAssociateCompany(r.Context(), company); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, company)
}

// DeleteAssociateCompany handles DELETE /api/v1/associate-companies/{id}
func (h *DirectoryHandler) DeleteAssociateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAssociateCompany(r.Context(), id); err != nil {
		respondDomainError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Associate company deleted successfully"})
}
