// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/packtrack/packtrack-be/internal/core/domain"
)

// TransactionService is the application service port for the ledger.
// Create and Delete are atomic: stock movement, sequencing and the
// record write share one transaction.
type TransactionService interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	List(ctx context.Context, params TransactionListParams) (*TransactionListResult, error)
	Update(ctx context.Context, id uuid.UUID, update domain.TransactionUpdate) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Report(ctx context.Context, params TransactionListParams) ([]*domain.Transaction, error)
	PalletStats(ctx context.Context) ([]PalletStat, error)
}

// ProductionHouseService covers registration, login and house reads.
type ProductionHouseService interface {
	Register(ctx context.Context, name, email, password string, openingStock domain.QuantitySet) (*domain.ProductionHouse, error)
	Login(ctx context.Context, email, password string) (string, *domain.ProductionHouse, error)
	VerifyToken(ctx context.Context, token string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductionHouse, error)
	List(ctx context.Context) ([]*domain.ProductionHouse, error)
	Stock(ctx context.Context, id uuid.UUID) (domain.QuantitySet, error)
}

// DirectoryService manages the reference entities.
type DirectoryService interface {
	CreateParty(ctx context.Context, party *domain.Party) error
	UpdateParty(ctx context.Context, party *domain.Party) error
	DeleteParty(ctx context.Context, id uuid.UUID) error
	GetParty(ctx context.Context, id uuid.UUID) (*domain.Party, error)
	ListParties(ctx context.Context) ([]*domain.Party, error)

	CreateFactory(ctx context.Context, factory *domain.Factory) error
	UpdateFactory(ctx context.Context, factory *domain.Factory) error
	DeleteFactory(ctx context.Context, id uuid.UUID) error
	GetFactory(ctx context.Context, id uuid.UUID) (*domain.Factory, error)
	ListFactories(ctx context.Context, partyID *uuid.UUID) ([]*domain.Factory, error)

	CreatePallet(ctx context.Context, pallet *domain.Pallet) error
	UpdatePallet(ctx context.Context, pallet *domain.Pallet) error
	DeletePallet(ctx context.Context, id uuid.UUID) error
	GetPallet(ctx context.Context, id uuid.UUID) (*domain.Pallet, error)
	ListPallets(ctx context.Context) ([]*domain.Pallet, error)

	CreateAssociateCompany(ctx context.Context, company *domain.AssociateCompany) error
	UpdateAssociateCompany(ctx context.Context, company *domain.AssociateCompany) error
	DeleteAssociateCompany(ctx context.Context, id uuid.UUID) error
	GetAssociateCompany(ctx context.Context, id uuid.UUID) (*domain.AssociateCompany, error)
	ListAssociateCompanies(ctx context.Context) ([]*domain.AssociateCompany, error)
}

// ExportJobStatus is the lifecycle of an async report export.
type ExportJobStatus string

const (
	ExportStatusPending    ExportJobStatus = "pending"
	ExportStatusProcessing ExportJobStatus = "processing"
	ExportStatusCompleted  ExportJobStatus = "completed"
	ExportStatusFailed     ExportJobStatus = "failed"
)

// ExportJob tracks one queued report export.
type ExportJob struct {
	ID          string                `json:"id"`
	Status      ExportJobStatus       `json:"status"`
	Params      TransactionListParams `json:"params"`
	DownloadURL string                `json:"download_url,omitempty"`
	Error       string                `json:"error,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	CompletedAt *time.Time            `json:"completed_at,omitempty"`
}

// ExportService enqueues report exports and reports their progress.
type ExportService interface {
	Enqueue(ctx context.Context, params TransactionListParams) (*ExportJob, error)
	Status(ctx context.Context, jobID string) (*ExportJob, error)
}
