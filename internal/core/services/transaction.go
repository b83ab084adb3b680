// internal/core/services/transaction.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

const (
	statsCacheKey = "stats:pallets"
	statsCacheTTL = 5 * time.Minute
)

// TransactionService implements the ledger workflow. Every create and
// delete runs inside one database transaction: stock validation,
// sequence allocation, the record write and the counter delta commit
// or roll back together.
type TransactionService struct {
	db        ports.Database
	txRepo    ports.TransactionRepository
	invRepo   ports.InventoryRepository
	seqRepo   ports.SequenceRepository
	houseRepo ports.ProductionHouseRepository
	dirRepo   ports.DirectoryRepository
	cache     ports.CacheRepository
	logger    *slog.Logger
}

var _ ports.TransactionService = (*TransactionService)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	db ports.Database,
	txRepo ports.TransactionRepository,
	invRepo ports.InventoryRepository,
	seqRepo ports.SequenceRepository,
	houseRepo ports.ProductionHouseRepository,
	dirRepo ports.DirectoryRepository,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{
		db:        db,
		txRepo:    txRepo,
		invRepo:   invRepo,
		seqRepo:   seqRepo,
		houseRepo: houseRepo,
		dirRepo:   dirRepo,
		cache:     cache,
		logger:    logger.With(slog.String("service", "transaction")),
	}
}

// Create validates the record and its references, then runs the atomic
// workflow: lock and check stock when the record draws any, allocate
// the next sequence number, persist, and apply the negative delta.
func (s *TransactionService) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, tx); err != nil {
		return nil, err
	}

	tx.PrepareForStorage()

	err := s.db.Transaction(ctx, func(ptx pgx.Tx) error {
		if tx.DrawsStock() {
			stock, err := s.invRepo.LockStock(ctx, ptx, tx.SourceID)
			if err != nil {
				return err
			}
			if shortfalls := tx.Quantities.Shortfalls(stock); len(shortfalls) > 0 {
				return domain.NewInsufficientStockError(shortfalls)
			}
		}

		seq, err := s.seqRepo.Next(ctx, ptx, tx.Kind.SequenceName())
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}
		tx.CustomID = domain.FormatCustomID(tx.Kind, seq)

		if err := s.txRepo.Insert(ctx, ptx, tx); err != nil {
			return err
		}

		if tx.DrawsStock() {
			if err := s.invRepo.Deduct(ctx, ptx, tx.SourceID, tx.Quantities); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStatsCache(ctx)

	s.logger.InfoContext(ctx, "transaction created",
		slog.String("id", tx.ID.String()),
		slog.String("custom_id", tx.CustomID),
		slog.String("kind", string(tx.Kind)))

	return tx, nil
}

// checkReferences verifies the party, factory and source exist before
// the unit of work begins.
func (s *TransactionService) checkReferences(ctx context.Context, tx *domain.Transaction) error {
	if _, err := s.dirRepo.FindPartyByID(ctx, tx.PartyID); err != nil {
		if _, ok := asNotFound(err); ok {
			return domain.NewValidationError("party_id", "references an unknown party")
		}
		return err
	}

	factory, err := s.dirRepo.FindFactoryByID(ctx, tx.FactoryID)
	if err != nil {
		if _, ok := asNotFound(err); ok {
			return domain.NewValidationError("factory_id", "references an unknown factory")
		}
		return err
	}
	if factory.PartyID != tx.PartyID {
		return domain.NewValidationError("factory_id", "does not belong to the given party")
	}

	switch tx.SourceKind {
	case domain.SourceProductionHouse:
		exists, err := s.houseRepo.Exists(ctx, tx.SourceID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewValidationError("source_id", "references an unknown production house")
		}
	case domain.SourceAssociateCompany:
		if _, err := s.dirRepo.FindAssociateCompanyByID(ctx, tx.SourceID); err != nil {
			if _, ok := asNotFound(err); ok {
				return domain.NewValidationError("source_id", "references an unknown associate company")
			}
			return err
		}
	}
	return nil
}

// GetByID loads one record.
func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.txRepo.FindByID(ctx, id)
}

// List returns one filtered page.
func (s *TransactionService) List(ctx context.Context, params ports.TransactionListParams) (*ports.TransactionListResult, error) {
	return s.txRepo.List(ctx, params)
}

// Update applies the allow-listed editable fields.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, update domain.TransactionUpdate) (*domain.Transaction, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.UpdateEditable(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "transaction updated",
		slog.String("id", id.String()))

	return tx, nil
}

// Delete soft-deletes a record and restores its stored quantities to a
// production-house source. The row lock taken by FindByIDForUpdate
// serialises concurrent deletes, so the second caller observes the
// disabled status instead of restoring twice.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.Transaction(ctx, func(ptx pgx.Tx) error {
		record, err := s.txRepo.FindByIDForUpdate(ctx, ptx, id)
		if err != nil {
			return err
		}
		if record.IsDisabled() {
			return domain.NewAlreadyDeletedError("transaction", id.String())
		}

		if record.RestoresStock() {
			if err := s.invRepo.Restore(ctx, ptx, record.SourceID, record.Quantities); err != nil {
				return err
			}
		}

		return s.txRepo.Disable(ctx, ptx, id)
	})
	if err != nil {
		return err
	}

	s.invalidateStatsCache(ctx)

	s.logger.InfoContext(ctx, "transaction deleted",
		slog.String("id", id.String()))

	return nil
}

// Report returns every record matching the filters, unpaginated, for
// export rendering.
func (s *TransactionService) Report(ctx context.Context, params ports.TransactionListParams) ([]*domain.Transaction, error) {
	const batchSize = 500

	params.Page = 1
	params.PageSize = batchSize

	var all []*domain.Transaction
	for {
		page, err := s.txRepo.List(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Transactions...)
		if len(page.Transactions) < batchSize {
			return all, nil
		}
		params.Page++
	}
}

// PalletStats returns the per-size pallet balance, cached briefly and
// invalidated on every ledger mutation.
func (s *TransactionService) PalletStats(ctx context.Context) ([]ports.PalletStat, error) {
	var stats []ports.PalletStat
	err := s.cache.GetOrSet(ctx, statsCacheKey, &stats, func() (interface{}, error) {
		return s.txRepo.PalletStats(ctx)
	}, statsCacheTTL)
	if err != nil {
		// Cache trouble must not take the endpoint down.
		s.logger.WarnContext(ctx, "stats cache unavailable, querying directly",
			slog.String("error", err.Error()))
		return s.txRepo.PalletStats(ctx)
	}
	return stats, nil
}

func (s *TransactionService) invalidateStatsCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate stats cache",
			slog.String("error", err.Error()))
	}
}

func asNotFound(err error) (*domain.NotFoundError, bool) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
