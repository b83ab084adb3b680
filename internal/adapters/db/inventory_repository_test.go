// internal/adapters/db/inventory_repository_test.go
package db_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packtrack/packtrack-be/internal/adapters/db"
	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/test/helpers"
)

// stockRows builds a full 17-column stock row for the mock.
func stockRows(stock domain.QuantitySet) *pgxmock.Rows {
	cols := make([]string, len(domain.MaterialKinds))
	vals := make([]any, len(domain.MaterialKinds))
	for i, kind := range domain.MaterialKinds {
		cols[i] = string(kind)
		vals[i] = stock.Get(kind)
	}
	return pgxmock.NewRows(cols).AddRow(vals...)
}

func TestInventoryRepository_LockStock(t *testing.T) {
	repo := db.NewInventoryRepository(nil, helpers.TestLogger())
	houseID := uuid.New()

	t.Run("reads_counters_with_row_lock", func(t *testing.T) {
		mock := helpers.SetupMockPool(t)
		stock := domain.QuantitySet{
			domain.MaterialFilmWhite: 12,
			domain.MaterialPatiya:    3,
		}

		mock.ExpectQuery(`SELECT .+ FROM production_houses WHERE id = \$1 FOR UPDATE`).
			WithArgs(houseID).
			WillReturnRows(stockRows(stock))

		result, err := repo.LockStock(context.Background(), mock, houseID)

		require.NoError(t, err)
		assert.Equal(t, stock, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_house_maps_to_not_found", func(t *testing.T) {
		mock := helpers.SetupMockPool(t)

		mock.ExpectQuery(`SELECT .+ FROM production_houses WHERE id = \$1 FOR UPDATE`).
			WithArgs(houseID).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.LockStock(context.Background(), mock, houseID)

		require.Error(t, err)
		var notFoundErr *domain.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestInventoryRepository_Deduct(t *testing.T) {
	repo := db.NewInventoryRepository(nil, helpers.TestLogger())
	houseID := uuid.New()
	quantities := domain.QuantitySet{
		domain.MaterialFilmWhite: 5,
		domain.MaterialThermocol: 2,
	}

	t.Run("applies_guarded_update", func(t *testing.T) {
		mock := helpers.SetupMockPool(t)

		mock.ExpectExec(`UPDATE production_houses SET`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Deduct(context.Background(), mock, houseID, quantities)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero_rows_means_concurrent_consumption", func(t *testing.T) {
		mock := helpers.SetupMockPool(t)

		mock.ExpectExec(`UPDATE production_houses SET`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Deduct(context.Background(), mock, houseID, quantities)

		require.Error(t, err)
		var invariantErr *domain.InvariantViolationError
		assert.ErrorAs(t, err, &invariantErr)
	})

	t.Run("zero_quantities_touch_nothing", func(t *testing.T) {
		mock := helpers.SetupMockPool(t)

		err := repo.Deduct(context.Background(), mock, houseID, domain.QuantitySet{})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInventoryRepository_Restore(t *testing.T) {
	repo := db.NewInventoryRepository(nil, helpers.TestLogger())
	houseID := uuid.New()
	quantities := domain.QuantitySet{domain.MaterialPattiRole: 4}

	t.Run("adds_quantities_back", func(t *testing.T) {
		mock := helpers.SetupMockPool(t)

		mock.ExpectExec(`UPDATE production_houses SET`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Restore(context.Background(), mock, houseID, quantities)

		require.NoError(t, err)
	})

	t.Run("missing_house_maps_to_not_found", func(t *testing.T) {
		mock := helpers.SetupMockPool(t)

		mock.ExpectExec(`UPDATE production_houses SET`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Restore(context.Background(), mock, houseID, quantities)

		require.Error(t, err)
		var notFoundErr *domain.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}
