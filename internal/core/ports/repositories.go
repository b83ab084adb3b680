// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/packtrack/packtrack-be/internal/core/domain"
)

// SequenceRepository allocates named monotonic counters. Next runs
// against the caller's Querier, so an allocation inside a transaction
// rolls back with it and committed numbers stay gap-free.
type SequenceRepository interface {
	Next(ctx context.Context, q Querier, name string) (int64, error)
	Current(ctx context.Context, q Querier, name string) (int64, error)
}

// InventoryRepository manages the per-house material counters.
type InventoryRepository interface {
	// LockStock reads a house's counters with a row lock, serialising
	// concurrent writers against the same house for the rest of the
	// enclosing transaction.
	LockStock(ctx context.Context, q Querier, houseID uuid.UUID) (domain.QuantitySet, error)
	// Deduct subtracts the positive quantities, guarded per column so
	// the update misses instead of driving a counter negative.
	Deduct(ctx context.Context, q Querier, houseID uuid.UUID, quantities domain.QuantitySet) error
	// Restore adds the positive quantities back.
	Restore(ctx context.Context, q Querier, houseID uuid.UUID, quantities domain.QuantitySet) error
	// Stock reads a house's counters without locking.
	Stock(ctx context.Context, houseID uuid.UUID) (domain.QuantitySet, error)
}

// TransactionListParams holds filters for listing ledger records.
type TransactionListParams struct {
	Kind            string
	PartyID         string
	FactoryID       string
	SourceKind      string
	SourceID        string
	DateFrom        *time.Time
	DateTo          *time.Time
	IncludeDisabled bool
	Page            int
	PageSize        int
}

// TransactionListResult holds one page of ledger records.
type TransactionListResult struct {
	Transactions []*domain.Transaction `json:"transactions"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalCount   int64                 `json:"total_count"`
	TotalPages   int                   `json:"total_pages"`
}

// PalletStat aggregates pallet movement for one pallet size across
// active transactions.
type PalletStat struct {
	PalletSize string `json:"pallet_size"`
	TotalOut   int64  `json:"total_out"`
	TotalIn    int64  `json:"total_in"`
	NetBalance int64  `json:"net_balance"`
}

// TransactionRepository persists and queries ledger records.
type TransactionRepository interface {
	Insert(ctx context.Context, q Querier, tx *domain.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// FindByIDForUpdate locks the record row inside the caller's
	// transaction, guarding the delete path against double restores.
	FindByIDForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*domain.Transaction, error)
	List(ctx context.Context, params TransactionListParams) (*TransactionListResult, error)
	UpdateEditable(ctx context.Context, id uuid.UUID, update domain.TransactionUpdate) (*domain.Transaction, error)
	Disable(ctx context.Context, q Querier, id uuid.UUID) error
	PalletStats(ctx context.Context) ([]PalletStat, error)
}

// ProductionHouseRepository persists stock-holding sites.
type ProductionHouseRepository interface {
	Create(ctx context.Context, house *domain.ProductionHouse) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ProductionHouse, error)
	FindByEmail(ctx context.Context, email string) (*domain.ProductionHouse, error)
	List(ctx context.Context) ([]*domain.ProductionHouse, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// DirectoryRepository persists the reference entities transactions
// point at: parties, factories, pallets and associate companies.
type DirectoryRepository interface {
	CreateParty(ctx context.Context, party *domain.Party) error
	UpdateParty(ctx context.Context, party *domain.Party) error
	DeleteParty(ctx context.Context, id uuid.UUID) error
	FindPartyByID(ctx context.Context, id uuid.UUID) (*domain.Party, error)
	ListParties(ctx context.Context) ([]*domain.Party, error)

	CreateFactory(ctx context.Context, factory *domain.Factory) error
	UpdateFactory(ctx context.Context, factory *domain.Factory) error
	DeleteFactory(ctx context.Context, id uuid.UUID) error
	FindFactoryByID(ctx context.Context, id uuid.UUID) (*domain.Factory, error)
	ListFactories(ctx context.Context, partyID *uuid.UUID) ([]*domain.Factory, error)

	CreatePallet(ctx context.Context, pallet *domain.Pallet) error
	UpdatePallet(ctx context.Context, pallet *domain.Pallet) error
	DeletePallet(ctx context.Context, id uuid.UUID) error
	FindPalletByID(ctx context.Context, id uuid.UUID) (*domain.Pallet, error)
	ListPallets(ctx context.Context) ([]*domain.Pallet, error)

	CreateAssociateCompany(ctx context.Context, company *domain.AssociateCompany) error
	UpdateAssociateCompany(ctx context.Context, company *domain.AssociateCompany) error
	DeleteAssociateCompany(ctx context.Context, id uuid.UUID) error
	FindAssociateCompanyByID(ctx context.Context, id uuid.UUID) (*domain.AssociateCompany, error)
	ListAssociateCompanies(ctx context.Context) ([]*domain.AssociateCompany, error)
}
