// internal/adapters/db/inventory_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// InventoryRepository manages the material counters on
// production_houses. Column names come from the fixed material-kind
// whitelist, never from request input.
type InventoryRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.InventoryRepository = (*InventoryRepository)(nil)

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *Database, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "inventory")),
	}
}

// materialColumns returns the stock column list in stable order.
func materialColumns() []string {
	cols := make([]string, len(domain.MaterialKinds))
	for i, kind := range domain.MaterialKinds {
		cols[i] = string(kind)
	}
	return cols
}

func scanStockRow(row pgx.Row, houseID uuid.UUID) (domain.QuantitySet, error) {
	values := make([]int, len(domain.MaterialKinds))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}

	if err := row.Scan(dest...); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("production house", houseID.String())
		}
		return nil, fmt.Errorf("failed to read stock for house %s: %w", houseID, err)
	}

	stock := make(domain.QuantitySet, len(values))
	for i, kind := range domain.MaterialKinds {
		if values[i] > 0 {
			stock[kind] = values[i]
		}
	}
	return stock, nil
}

// LockStock reads a house's counters with FOR UPDATE. Concurrent
// writers against the same house queue behind the lock for the rest of
// the enclosing transaction.
func (r *InventoryRepository) LockStock(ctx context.Context, q ports.Querier, houseID uuid.UUID) (domain.QuantitySet, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM production_houses WHERE id = $1 FOR UPDATE`,
		strings.Join(materialColumns(), ", "),
	)
	return scanStockRow(q.QueryRow(ctx, query, houseID), houseID)
}

// Deduct subtracts the positive quantities in one conditional UPDATE.
// Every touched column carries a col >= n guard; a zero-row result
// means a concurrent writer consumed the stock after our read, which
// the caller must treat as fatal for the transaction.
func (r *InventoryRepository) Deduct(ctx context.Context, q ports.Querier, houseID uuid.UUID, quantities domain.QuantitySet) error {
	positive := quantities.Positive()
	if len(positive) == 0 {
		return nil
	}

	builder := sq.Update("production_houses").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": houseID})

	for _, kind := range positive.PositiveKinds() {
		col := string(kind)
		n := positive[kind]
		builder = builder.
			Set(col, sq.Expr(col+" - ?", n)).
			Where(sq.Expr(col+" >= ?", n))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build deduct query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to deduct stock for house %s: %w", houseID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewInvariantViolationError(
			fmt.Sprintf("stock for house %s changed between validation and apply", houseID))
	}

	r.logger.DebugContext(ctx, "stock deducted",
		slog.String("house_id", houseID.String()),
		slog.Int("kinds", len(positive)))

	return nil
}

// Restore adds the positive quantities back to the house counters.
func (r *InventoryRepository) Restore(ctx context.Context, q ports.Querier, houseID uuid.UUID, quantities domain.QuantitySet) error {
	positive := quantities.Positive()
	if len(positive) == 0 {
		return nil
	}

	builder := sq.Update("production_houses").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": houseID})

	for _, kind := range positive.PositiveKinds() {
		col := string(kind)
		builder = builder.Set(col, sq.Expr(col+" + ?", positive[kind]))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build restore query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore stock for house %s: %w", houseID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("production house", houseID.String())
	}

	r.logger.DebugContext(ctx, "stock restored",
		slog.String("house_id", houseID.String()),
		slog.Int("kinds", len(positive)))

	return nil
}

// Stock reads a house's counters without locking.
func (r *InventoryRepository) Stock(ctx context.Context, houseID uuid.UUID) (domain.QuantitySet, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM production_houses WHERE id = $1`,
		strings.Join(materialColumns(), ", "),
	)
	return scanStockRow(r.db.QueryRow(ctx, query, houseID), houseID)
}
