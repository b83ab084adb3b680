// internal/core/services/transaction_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
	"github.com/packtrack/packtrack-be/internal/core/services"
	"github.com/packtrack/packtrack-be/test/helpers"
	"github.com/packtrack/packtrack-be/test/mocks"
)

type transactionMocks struct {
	db        *mocks.MockDatabase
	txRepo    *mocks.MockTransactionRepository
	invRepo   *mocks.MockInventoryRepository
	seqRepo   *mocks.MockSequenceRepository
	houseRepo *mocks.MockProductionHouseRepository
	dirRepo   *mocks.MockDirectoryRepository
	cache     *mocks.MockCacheRepository
}

func newTransactionService(t *testing.T) (*services.TransactionService, *transactionMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &transactionMocks{
		db:        mocks.NewMockDatabase(ctrl),
		txRepo:    mocks.NewMockTransactionRepository(ctrl),
		invRepo:   mocks.NewMockInventoryRepository(ctrl),
		seqRepo:   mocks.NewMockSequenceRepository(ctrl),
		houseRepo: mocks.NewMockProductionHouseRepository(ctrl),
		dirRepo:   mocks.NewMockDirectoryRepository(ctrl),
		cache:     mocks.NewMockCacheRepository(ctrl),
	}

	svc := services.NewTransactionService(
		m.db, m.txRepo, m.invRepo, m.seqRepo, m.houseRepo, m.dirRepo, m.cache,
		helpers.TestLogger(),
	)
	return svc, m
}

// expectTransaction makes the mocked unit of work run fn directly.
func expectTransaction(m *transactionMocks) {
	m.db.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		})
}

func expectValidReferences(m *transactionMocks, tx *domain.Transaction) {
	m.dirRepo.EXPECT().
		FindPartyByID(gomock.Any(), tx.PartyID).
		Return(&domain.Party{ID: tx.PartyID, Name: "Test Party"}, nil)
	m.dirRepo.EXPECT().
		FindFactoryByID(gomock.Any(), tx.FactoryID).
		Return(&domain.Factory{ID: tx.FactoryID, Name: "Test Factory", PartyID: tx.PartyID}, nil)
	if tx.SourceKind == domain.SourceProductionHouse {
		m.houseRepo.EXPECT().
			Exists(gomock.Any(), tx.SourceID).
			Return(true, nil)
	} else {
		m.dirRepo.EXPECT().
			FindAssociateCompanyByID(gomock.Any(), tx.SourceID).
			Return(&domain.AssociateCompany{ID: tx.SourceID, Name: "Test Company"}, nil)
	}
}

func TestTransactionService_Create(t *testing.T) {
	ampleStock := domain.QuantitySet{
		domain.MaterialFilmWhite: 100,
		domain.MaterialPattiRole: 100,
		domain.MaterialThermocol: 100,
	}

	t.Run("order_from_house_validates_and_deducts_stock", func(t *testing.T) {
		svc, m := newTransactionService(t)
		tx := helpers.CreateTestTransaction()

		expectValidReferences(m, tx)
		expectTransaction(m)
		gomock.InOrder(
			m.invRepo.EXPECT().
				LockStock(gomock.Any(), gomock.Any(), tx.SourceID).
				Return(ampleStock, nil),
			m.seqRepo.EXPECT().
				Next(gomock.Any(), gomock.Any(), "orderId").
				Return(int64(1), nil),
			m.txRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any(), tx).
				Return(nil),
			m.invRepo.EXPECT().
				Deduct(gomock.Any(), gomock.Any(), tx.SourceID, tx.Quantities).
				Return(nil),
		)
		m.cache.EXPECT().Delete(gomock.Any(), "stats:pallets").Return(nil)

		created, err := svc.Create(context.Background(), tx)

		require.NoError(t, err)
		assert.Equal(t, "ORD-0001", created.CustomID)
		assert.Equal(t, domain.StatusActive, created.Status)
		assert.NotEqual(t, uuid.Nil, created.ID)
	})

	t.Run("insufficient_stock_reports_every_shortfall", func(t *testing.T) {
		svc, m := newTransactionService(t)
		tx := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.Quantities = domain.QuantitySet{
				domain.MaterialFilmWhite: 50,
				domain.MaterialThermocol: 30,
			}
		})

		expectValidReferences(m, tx)
		expectTransaction(m)
		m.invRepo.EXPECT().
			LockStock(gomock.Any(), gomock.Any(), tx.SourceID).
			Return(domain.QuantitySet{
				domain.MaterialFilmWhite: 10,
				domain.MaterialThermocol: 5,
			}, nil)

		_, err := svc.Create(context.Background(), tx)

		require.Error(t, err)
		var insufficientErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
		require.Len(t, insufficientErr.Shortfalls, 2)
		assert.Equal(t, domain.MaterialFilmWhite, insufficientErr.Shortfalls[0].Kind)
		assert.Equal(t, 50, insufficientErr.Shortfalls[0].Requested)
		assert.Equal(t, 10, insufficientErr.Shortfalls[0].Available)
		assert.Equal(t, domain.MaterialThermocol, insufficientErr.Shortfalls[1].Kind)
	})

	t.Run("bill_skips_stock_validation_and_numbers_independently", func(t *testing.T) {
		svc, m := newTransactionService(t)
		tx := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.Kind = domain.KindBill
		})

		expectValidReferences(m, tx)
		expectTransaction(m)
		gomock.InOrder(
			m.seqRepo.EXPECT().
				Next(gomock.Any(), gomock.Any(), "billId").
				Return(int64(1), nil),
			m.txRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any(), tx).
				Return(nil),
		)
		m.cache.EXPECT().Delete(gomock.Any(), "stats:pallets").Return(nil)

		created, err := svc.Create(context.Background(), tx)

		require.NoError(t, err)
		assert.Equal(t, "BILL-0001", created.CustomID)
	})

	t.Run("order_from_associate_company_skips_stock", func(t *testing.T) {
		svc, m := newTransactionService(t)
		tx := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.SourceKind = domain.SourceAssociateCompany
		})

		expectValidReferences(m, tx)
		expectTransaction(m)
		gomock.InOrder(
			m.seqRepo.EXPECT().
				Next(gomock.Any(), gomock.Any(), "orderId").
				Return(int64(42), nil),
			m.txRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any(), tx).
				Return(nil),
		)
		m.cache.EXPECT().Delete(gomock.Any(), "stats:pallets").Return(nil)

		created, err := svc.Create(context.Background(), tx)

		require.NoError(t, err)
		assert.Equal(t, "ORD-0042", created.CustomID)
	})

	t.Run("validation_fails_for_missing_party", func(t *testing.T) {
		svc, _ := newTransactionService(t)
		tx := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.PartyID = uuid.Nil
		})

		_, err := svc.Create(context.Background(), tx)

		require.Error(t, err)
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "party_id", validationErr.Field)
	})

	t.Run("unknown_party_reference_rejected", func(t *testing.T) {
		svc, m := newTransactionService(t)
		tx := helpers.CreateTestTransaction()

		m.dirRepo.EXPECT().
			FindPartyByID(gomock.Any(), tx.PartyID).
			Return(nil, domain.NewNotFoundError("party", tx.PartyID.String()))

		_, err := svc.Create(context.Background(), tx)

		require.Error(t, err)
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "party_id", validationErr.Field)
	})

	t.Run("factory_must_belong_to_party", func(t *testing.T) {
		svc, m := newTransactionService(t)
		tx := helpers.CreateTestTransaction()

		m.dirRepo.EXPECT().
			FindPartyByID(gomock.Any(), tx.PartyID).
			Return(&domain.Party{ID: tx.PartyID, Name: "Test Party"}, nil)
		m.dirRepo.EXPECT().
			FindFactoryByID(gomock.Any(), tx.FactoryID).
			Return(&domain.Factory{ID: tx.FactoryID, Name: "Other Factory", PartyID: uuid.New()}, nil)

		_, err := svc.Create(context.Background(), tx)

		require.Error(t, err)
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "factory_id", validationErr.Field)
	})

	t.Run("sequence_error_aborts_the_unit_of_work", func(t *testing.T) {
		svc, m := newTransactionService(t)
		tx := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.SourceKind = domain.SourceAssociateCompany
		})

		expectValidReferences(m, tx)
		expectTransaction(m)
		m.seqRepo.EXPECT().
			Next(gomock.Any(), gomock.Any(), "orderId").
			Return(int64(0), errors.New("connection reset"))

		_, err := svc.Create(context.Background(), tx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to allocate sequence")
	})

	t.Run("deduct_conflict_surfaces_invariant_violation", func(t *testing.T) {
		svc, m := newTransactionService(t)
		tx := helpers.CreateTestTransaction()

		expectValidReferences(m, tx)
		expectTransaction(m)
		gomock.InOrder(
			m.invRepo.EXPECT().
				LockStock(gomock.Any(), gomock.Any(), tx.SourceID).
				Return(ampleStock, nil),
			m.seqRepo.EXPECT().
				Next(gomock.Any(), gomock.Any(), "orderId").
				Return(int64(7), nil),
			m.txRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any(), tx).
				Return(nil),
			m.invRepo.EXPECT().
				Deduct(gomock.Any(), gomock.Any(), tx.SourceID, tx.Quantities).
				Return(domain.NewInvariantViolationError("stock changed between validation and apply")),
		)

		_, err := svc.Create(context.Background(), tx)

		require.Error(t, err)
		var invariantErr *domain.InvariantViolationError
		assert.ErrorAs(t, err, &invariantErr)
	})
}

func TestTransactionService_Delete(t *testing.T) {
	t.Run("restores_stock_and_disables", func(t *testing.T) {
		svc, m := newTransactionService(t)
		record := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.CustomID = "ORD-0001"
		})

		expectTransaction(m)
		gomock.InOrder(
			m.txRepo.EXPECT().
				FindByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).
				Return(record, nil),
			m.invRepo.EXPECT().
				Restore(gomock.Any(), gomock.Any(), record.SourceID, record.Quantities).
				Return(nil),
			m.txRepo.EXPECT().
				Disable(gomock.Any(), gomock.Any(), record.ID).
				Return(nil),
		)
		m.cache.EXPECT().Delete(gomock.Any(), "stats:pallets").Return(nil)

		err := svc.Delete(context.Background(), record.ID)

		require.NoError(t, err)
	})

	t.Run("second_delete_observes_disabled_status", func(t *testing.T) {
		svc, m := newTransactionService(t)
		record := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.Status = domain.StatusDisabled
		})

		expectTransaction(m)
		m.txRepo.EXPECT().
			FindByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).
			Return(record, nil)

		err := svc.Delete(context.Background(), record.ID)

		require.Error(t, err)
		var deletedErr *domain.AlreadyDeletedError
		assert.ErrorAs(t, err, &deletedErr)
	})

	t.Run("bill_delete_skips_restore", func(t *testing.T) {
		svc, m := newTransactionService(t)
		record := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.Kind = domain.KindBill
			tx.CustomID = "BILL-0001"
		})

		// The bill carries positive quantities and a production-house
		// source, but it never deducted stock, so no Restore call.
		expectTransaction(m)
		gomock.InOrder(
			m.txRepo.EXPECT().
				FindByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).
				Return(record, nil),
			m.txRepo.EXPECT().
				Disable(gomock.Any(), gomock.Any(), record.ID).
				Return(nil),
		)
		m.cache.EXPECT().Delete(gomock.Any(), "stats:pallets").Return(nil)

		err := svc.Delete(context.Background(), record.ID)

		require.NoError(t, err)
	})

	t.Run("associate_company_source_skips_restore", func(t *testing.T) {
		svc, m := newTransactionService(t)
		record := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.SourceKind = domain.SourceAssociateCompany
		})

		expectTransaction(m)
		gomock.InOrder(
			m.txRepo.EXPECT().
				FindByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).
				Return(record, nil),
			m.txRepo.EXPECT().
				Disable(gomock.Any(), gomock.Any(), record.ID).
				Return(nil),
		)
		m.cache.EXPECT().Delete(gomock.Any(), "stats:pallets").Return(nil)

		err := svc.Delete(context.Background(), record.ID)

		require.NoError(t, err)
	})

	t.Run("zero_quantity_record_skips_restore", func(t *testing.T) {
		svc, m := newTransactionService(t)
		record := helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.Quantities = domain.QuantitySet{}
		})

		expectTransaction(m)
		gomock.InOrder(
			m.txRepo.EXPECT().
				FindByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).
				Return(record, nil),
			m.txRepo.EXPECT().
				Disable(gomock.Any(), gomock.Any(), record.ID).
				Return(nil),
		)
		m.cache.EXPECT().Delete(gomock.Any(), "stats:pallets").Return(nil)

		err := svc.Delete(context.Background(), record.ID)

		require.NoError(t, err)
	})

	t.Run("record_not_found", func(t *testing.T) {
		svc, m := newTransactionService(t)
		id := uuid.New()

		expectTransaction(m)
		m.txRepo.EXPECT().
			FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, domain.NewNotFoundError("transaction", id.String()))

		err := svc.Delete(context.Background(), id)

		require.Error(t, err)
		var notFoundErr *domain.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestTransactionService_Update(t *testing.T) {
	vehicle := "Eicher Pro"

	t.Run("applies_editable_fields", func(t *testing.T) {
		svc, m := newTransactionService(t)
		record := helpers.CreateTestTransaction()
		update := domain.TransactionUpdate{Vehicle: &vehicle}

		m.txRepo.EXPECT().
			UpdateEditable(gomock.Any(), record.ID, update).
			Return(record, nil)

		result, err := svc.Update(context.Background(), record.ID, update)

		require.NoError(t, err)
		assert.Equal(t, record, result)
	})

	t.Run("rejects_empty_update", func(t *testing.T) {
		svc, _ := newTransactionService(t)

		_, err := svc.Update(context.Background(), uuid.New(), domain.TransactionUpdate{})

		require.Error(t, err)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestTransactionService_Report(t *testing.T) {
	t.Run("collects_every_page", func(t *testing.T) {
		svc, m := newTransactionService(t)

		fullPage := helpers.CreateTestTransactions(500)
		lastPage := helpers.CreateTestTransactions(20)

		gomock.InOrder(
			m.txRepo.EXPECT().
				List(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, params ports.TransactionListParams) (*ports.TransactionListResult, error) {
					assert.Equal(t, 1, params.Page)
					assert.Equal(t, 500, params.PageSize)
					return &ports.TransactionListResult{Transactions: fullPage}, nil
				}),
			m.txRepo.EXPECT().
				List(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, params ports.TransactionListParams) (*ports.TransactionListResult, error) {
					assert.Equal(t, 2, params.Page)
					return &ports.TransactionListResult{Transactions: lastPage}, nil
				}),
		)

		all, err := svc.Report(context.Background(), ports.TransactionListParams{})

		require.NoError(t, err)
		assert.Len(t, all, 520)
	})
}

func TestTransactionService_PalletStats(t *testing.T) {
	stats := []ports.PalletStat{
		{PalletSize: "48x40", TotalOut: 120, TotalIn: 40, NetBalance: 80},
	}

	t.Run("served_through_cache", func(t *testing.T) {
		svc, m := newTransactionService(t)

		m.cache.EXPECT().
			GetOrSet(gomock.Any(), "stats:pallets", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}, fetch func() (interface{}, error), ttl time.Duration) error {
				fetched, err := fetch()
				require.NoError(t, err)
				*dest.(*[]ports.PalletStat) = fetched.([]ports.PalletStat)
				return nil
			})
		m.txRepo.EXPECT().PalletStats(gomock.Any()).Return(stats, nil)

		result, err := svc.PalletStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stats, result)
	})

	t.Run("falls_back_to_direct_query_when_cache_fails", func(t *testing.T) {
		svc, m := newTransactionService(t)

		m.cache.EXPECT().
			GetOrSet(gomock.Any(), "stats:pallets", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))
		m.txRepo.EXPECT().PalletStats(gomock.Any()).Return(stats, nil)

		result, err := svc.PalletStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stats, result)
	})
}
