// internal/adapters/db/transaction_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// TransactionRepository persists ledger records and their pallet line
// items.
type TransactionRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *Database, logger *slog.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "transaction")),
	}
}

// transactionColumns is the full select list: fixed columns, then the
// material quantity columns in stable order, then lifecycle columns.
func transactionColumns() []string {
	cols := []string{
		"id", "custom_transaction_id", "kind", "source_kind", "source_id",
		"party_id", "factory_id", "date", "vehicle", "vehicle_number",
	}
	cols = append(cols, materialColumns()...)
	return append(cols, "status", "created_at", "updated_at")
}

// Insert writes the record and its line items through the caller's
// Querier so it shares the enclosing unit of work.
func (r *TransactionRepository) Insert(ctx context.Context, q ports.Querier, tx *domain.Transaction) error {
	cols := transactionColumns()
	args := []any{
		tx.ID, tx.CustomID, tx.Kind, tx.SourceKind, tx.SourceID,
		tx.PartyID, tx.FactoryID, tx.Date, tx.Vehicle, tx.VehicleNumber,
	}
	for _, kind := range domain.MaterialKinds {
		args = append(args, tx.Quantities.Get(kind))
	}
	args = append(args, tx.Status, tx.CreatedAt, tx.UpdatedAt)

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		`INSERT INTO transactions (%s) VALUES (%s)`,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", tx.CustomID, err)
	}

	for _, item := range tx.Items {
		_, err := q.Exec(ctx,
			`INSERT INTO transaction_items (id, transaction_id, pallet_size, quantity)
			 VALUES ($1, $2, $3, $4)`,
			uuid.New(), tx.ID, item.PalletSize, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert item for transaction %s: %w", tx.CustomID, err)
		}
	}

	r.logger.DebugContext(ctx, "transaction inserted",
		slog.String("id", tx.ID.String()),
		slog.String("custom_id", tx.CustomID))

	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	values := make([]int, len(domain.MaterialKinds))

	dest := []any{
		&tx.ID, &tx.CustomID, &tx.Kind, &tx.SourceKind, &tx.SourceID,
		&tx.PartyID, &tx.FactoryID, &tx.Date, &tx.Vehicle, &tx.VehicleNumber,
	}
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &tx.Status, &tx.CreatedAt, &tx.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	tx.Quantities = make(domain.QuantitySet)
	for i, kind := range domain.MaterialKinds {
		if values[i] > 0 {
			tx.Quantities[kind] = values[i]
		}
	}
	return &tx, nil
}

// FindByID loads one record with its line items.
func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE id = $1`,
		strings.Join(transactionColumns(), ", "),
	)

	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("transaction", id.String())
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", id, err)
	}

	if err := r.loadItems(ctx, r.db, []*domain.Transaction{tx}); err != nil {
		return nil, err
	}
	return tx, nil
}

// FindByIDForUpdate locks the record row inside the caller's
// transaction. The delete path relies on this lock so concurrent
// deletes of the same record serialise and the second sees the
// disabled status.
func (r *TransactionRepository) FindByIDForUpdate(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.Transaction, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE id = $1 FOR UPDATE`,
		strings.Join(transactionColumns(), ", "),
	)

	tx, err := scanTransaction(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("transaction", id.String())
		}
		return nil, fmt.Errorf("failed to lock transaction %s: %w", id, err)
	}

	if err := r.loadItems(ctx, q, []*domain.Transaction{tx}); err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *TransactionRepository) loadItems(ctx context.Context, q ports.Querier, txs []*domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(txs))
	byID := make(map[uuid.UUID]*domain.Transaction, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
		byID[tx.ID] = tx
	}

	rows, err := q.Query(ctx,
		`SELECT transaction_id, pallet_size, quantity
		 FROM transaction_items
		 WHERE transaction_id = ANY($1)
		 ORDER BY pallet_size`,
		ids)
	if err != nil {
		return fmt.Errorf("failed to load transaction items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var txID uuid.UUID
		var item domain.PalletLine
		if err := rows.Scan(&txID, &item.PalletSize, &item.Quantity); err != nil {
			return fmt.Errorf("failed to scan transaction item: %w", err)
		}
		if tx, ok := byID[txID]; ok {
			tx.Items = append(tx.Items, item)
		}
	}
	return rows.Err()
}

func applyListFilters(builder sq.SelectBuilder, params ports.TransactionListParams) sq.SelectBuilder {
	if params.Kind != "" {
		builder = builder.Where(sq.Eq{"kind": params.Kind})
	}
	if params.PartyID != "" {
		builder = builder.Where(sq.Eq{"party_id": params.PartyID})
	}
	if params.FactoryID != "" {
		builder = builder.Where(sq.Eq{"factory_id": params.FactoryID})
	}
	if params.SourceKind != "" {
		builder = builder.Where(sq.Eq{"source_kind": params.SourceKind})
	}
	if params.SourceID != "" {
		builder = builder.Where(sq.Eq{"source_id": params.SourceID})
	}
	if params.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"date": *params.DateFrom})
	}
	if params.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"date": *params.DateTo})
	}
	if !params.IncludeDisabled {
		builder = builder.Where(sq.Eq{"status": domain.StatusActive})
	}
	return builder
}

// List returns one page of records matching the filters, newest date
// first, with the total count computed in the same query.
func (r *TransactionRepository) List(ctx context.Context, params ports.TransactionListParams) (*ports.TransactionListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 20
	}

	cols := append(transactionColumns(), "COUNT(*) OVER() AS total_count")
	builder := sq.Select(cols...).
		From("transactions").
		PlaceholderFormat(sq.Dollar).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(params.PageSize)).
		Offset(uint64((params.Page - 1) * params.PageSize))

	builder = applyListFilters(builder, params)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var totalCount int64
	var txs []*domain.Transaction
	for rows.Next() {
		tx, count, err := scanTransactionWithCount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		totalCount = count
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	if err := r.loadItems(ctx, r.db, txs); err != nil {
		return nil, err
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(params.PageSize)))
	}

	return &ports.TransactionListResult{
		Transactions: txs,
		Page:         params.Page,
		PageSize:     params.PageSize,
		TotalCount:   totalCount,
		TotalPages:   totalPages,
	}, nil
}

func scanTransactionWithCount(rows pgx.Rows) (*domain.Transaction, int64, error) {
	var tx domain.Transaction
	var totalCount int64
	values := make([]int, len(domain.MaterialKinds))

	dest := []any{
		&tx.ID, &tx.CustomID, &tx.Kind, &tx.SourceKind, &tx.SourceID,
		&tx.PartyID, &tx.FactoryID, &tx.Date, &tx.Vehicle, &tx.VehicleNumber,
	}
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &tx.Status, &tx.CreatedAt, &tx.UpdatedAt, &totalCount)

	if err := rows.Scan(dest...); err != nil {
		return nil, 0, err
	}

	tx.Quantities = make(domain.QuantitySet)
	for i, kind := range domain.MaterialKinds {
		if values[i] > 0 {
			tx.Quantities[kind] = values[i]
		}
	}
	return &tx, totalCount, nil
}

// UpdateEditable applies the allow-listed fields and returns the fresh
// record. Anything outside the allow-list never reaches this query.
func (r *TransactionRepository) UpdateEditable(ctx context.Context, id uuid.UUID, update domain.TransactionUpdate) (*domain.Transaction, error) {
	builder := sq.Update("transactions").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if update.Vehicle != nil {
		builder = builder.Set("vehicle", *update.Vehicle)
	}
	if update.VehicleNumber != nil {
		builder = builder.Set("vehicle_number", *update.VehicleNumber)
	}
	if update.Date != nil {
		builder = builder.Set("date", *update.Date)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("transaction", id.String())
	}

	return r.FindByID(ctx, id)
}

// Disable soft-deletes the record through the caller's Querier.
func (r *TransactionRepository) Disable(ctx context.Context, q ports.Querier, id uuid.UUID) error {
	tag, err := q.Exec(ctx,
		`UPDATE transactions SET status = $1, updated_at = NOW() WHERE id = $2`,
		domain.StatusDisabled, id)
	if err != nil {
		return fmt.Errorf("failed to disable transaction %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("transaction", id.String())
	}
	return nil
}

// PalletStats aggregates pallet movement across active records. Orders
// move pallets out, bills bring them back; the net balance is what is
// still in the field.
func (r *TransactionRepository) PalletStats(ctx context.Context) ([]ports.PalletStat, error) {
	query := `
		SELECT i.pallet_size,
		       COALESCE(SUM(CASE WHEN t.kind = 'order' THEN i.quantity ELSE 0 END), 0) AS total_out,
		       COALESCE(SUM(CASE WHEN t.kind = 'bill' THEN i.quantity ELSE 0 END), 0) AS total_in
		FROM transaction_items i
		JOIN transactions t ON t.id = i.transaction_id
		WHERE t.status = 'active'
		GROUP BY i.pallet_size
		ORDER BY i.pallet_size`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate pallet stats: %w", err)
	}
	defer rows.Close()

	var stats []ports.PalletStat
	for rows.Next() {
		var s ports.PalletStat
		if err := rows.Scan(&s.PalletSize, &s.TotalOut, &s.TotalIn); err != nil {
			return nil, fmt.Errorf("failed to scan pallet stat: %w", err)
		}
		s.NetBalance = s.TotalOut - s.TotalIn
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
