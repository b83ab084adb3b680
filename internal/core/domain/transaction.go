// internal/core/domain/transaction.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionKind distinguishes outbound orders from inbound bills.
type TransactionKind string

const (
	KindOrder TransactionKind = "order"
	KindBill  TransactionKind = "bill"
)

// IsValid reports whether k is a known transaction kind.
func (k TransactionKind) IsValid() bool {
	return k == KindOrder || k == KindBill
}

// SequenceName returns the counter this kind draws its numbers from.
// Orders and bills number independently.
func (k TransactionKind) SequenceName() string {
	if k == KindBill {
		return "billId"
	}
	return "orderId"
}

// CustomIDPrefix returns the human-readable id prefix for the kind.
func (k TransactionKind) CustomIDPrefix() string {
	if k == KindBill {
		return "BILL"
	}
	return "ORD"
}

// FormatCustomID renders a sequence value as a display id, zero-padded
// to four digits and widening naturally past 9999.
func FormatCustomID(kind TransactionKind, seq int64) string {
	return fmt.Sprintf("%s-%04d", kind.CustomIDPrefix(), seq)
}

// SourceKind identifies which entity type a transaction draws from.
// Only production-house sources hold stock; associate companies are
// pass-through counterparties.
type SourceKind string

const (
	SourceProductionHouse  SourceKind = "production_house"
	SourceAssociateCompany SourceKind = "associate_company"
)

// IsValid reports whether k is a known source kind.
func (k SourceKind) IsValid() bool {
	return k == SourceProductionHouse || k == SourceAssociateCompany
}

// TransactionStatus is the lifecycle state of a ledger record. Records
// are never hard-deleted; a disabled record keeps its quantities for
// audit and restoration.
type TransactionStatus string

const (
	StatusActive   TransactionStatus = "active"
	StatusDisabled TransactionStatus = "disabled"
)

// PalletLine is one pallet line item on a transaction.
type PalletLine struct {
	PalletSize string `json:"pallet_size"`
	Quantity   int    `json:"quantity"`
}

// Transaction is a ledger record: one order or bill against a source,
// carrying the material quantities it moved.
type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	CustomID      string            `json:"custom_transaction_id"`
	Kind          TransactionKind   `json:"kind"`
	SourceKind    SourceKind        `json:"source_kind"`
	SourceID      uuid.UUID         `json:"source_id"`
	PartyID       uuid.UUID         `json:"party_id"`
	FactoryID     uuid.UUID         `json:"factory_id"`
	Date          time.Time         `json:"date"`
	Vehicle       string            `json:"vehicle,omitempty"`
	VehicleNumber string            `json:"vehicle_number,omitempty"`
	Quantities    QuantitySet       `json:"quantities"`
	Items         []PalletLine      `json:"items,omitempty"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Validate performs domain validation on a transaction before it is
// sequenced or persisted.
func (t *Transaction) Validate() error {
	if !t.Kind.IsValid() {
		return NewValidationError("kind", "must be order or bill")
	}
	if !t.SourceKind.IsValid() {
		return NewValidationError("source_kind", "must be production_house or associate_company")
	}
	if t.SourceID == uuid.Nil {
		return NewValidationError("source_id", "is required")
	}
	if t.PartyID == uuid.Nil {
		return NewValidationError("party_id", "is required")
	}
	if t.FactoryID == uuid.Nil {
		return NewValidationError("factory_id", "is required")
	}
	if t.Date.IsZero() {
		return NewValidationError("date", "is required")
	}
	if t.Vehicle == "" {
		return NewValidationError("vehicle", "is required")
	}
	if t.VehicleNumber == "" {
		return NewValidationError("vehicle_number", "is required")
	}
	if err := t.Quantities.Validate(); err != nil {
		return err
	}
	for i, item := range t.Items {
		if item.PalletSize == "" {
			return NewValidationError(fmt.Sprintf("items[%d].pallet_size", i), "is required")
		}
		if item.Quantity <= 0 {
			return NewValidationError(fmt.Sprintf("items[%d].quantity", i), "must be positive")
		}
	}
	return nil
}

// DrawsStock reports whether creating this transaction consumes stock.
// Only orders sourced from a production house do.
func (t *Transaction) DrawsStock() bool {
	return t.Kind == KindOrder && t.SourceKind == SourceProductionHouse
}

// RestoresStock reports whether disabling this transaction returns its
// quantities to the source. Only records that drew stock at creation
// restore it: bills never deducted, so they never credit back.
func (t *Transaction) RestoresStock() bool {
	return t.Kind == KindOrder && t.SourceKind == SourceProductionHouse && !t.Quantities.IsZero()
}

// IsDisabled reports whether the record has been soft-deleted.
func (t *Transaction) IsDisabled() bool {
	return t.Status == StatusDisabled
}

// PrepareForStorage fills generated fields ahead of the insert.
func (t *Transaction) PrepareForStorage() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = StatusActive
	}
	if t.Quantities == nil {
		t.Quantities = make(QuantitySet)
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// TransactionUpdate carries the only fields editable after creation.
// Quantities, source, party, factory, kind and the custom id are
// immutable once the record exists.
type TransactionUpdate struct {
	Vehicle       *string    `json:"vehicle,omitempty"`
	VehicleNumber *string    `json:"vehicle_number,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
}

// IsEmpty reports whether the update carries no changes.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Vehicle == nil && u.VehicleNumber == nil && u.Date == nil
}

// Validate checks the editable fields.
func (u TransactionUpdate) Validate() error {
	if u.IsEmpty() {
		return NewValidationError("update", "no editable fields provided")
	}
	if u.Date != nil && u.Date.IsZero() {
		return NewValidationError("date", "must be a valid date")
	}
	return nil
}
