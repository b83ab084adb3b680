// internal/core/domain/entities.go
package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProductionHouse is a stock-holding site. It doubles as the API
// login principal.
type ProductionHouse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Stock        QuantitySet `json:"stock"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Validate checks registration fields. The password itself is validated
// by the auth service before hashing.
func (h *ProductionHouse) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if _, err := mail.ParseAddress(h.Email); err != nil {
		return NewValidationError("email", "must be a valid email address")
	}
	if err := h.Stock.Validate(); err != nil {
		return err
	}
	return nil
}

// PrepareForStorage fills generated fields ahead of the insert.
func (h *ProductionHouse) PrepareForStorage() {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	h.Email = strings.ToLower(strings.TrimSpace(h.Email))
	if h.Stock == nil {
		h.Stock = make(QuantitySet)
	}
	now := time.Now()
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
	}
	h.UpdatedAt = now
}

// Party is a customer organisation owning one or more factories.
type Party struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Party) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "is required")
	}
	return nil
}

// Factory is a delivery site belonging to a party.
type Factory struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	PartyID   uuid.UUID `json:"party_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Factory) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if f.PartyID == uuid.Nil {
		return NewValidationError("party_id", "is required")
	}
	return nil
}

// Pallet is a named pallet size usable as a transaction line item.
// Names are unique.
type Pallet struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Pallet) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "is required")
	}
	return nil
}

// AssociateCompany is a stockless counterparty a transaction may be
// sourced from. Names are unique.
type AssociateCompany struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *AssociateCompany) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "is required")
	}
	return nil
}
