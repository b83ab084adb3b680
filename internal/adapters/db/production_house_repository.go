// internal/adapters/db/production_house_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// ProductionHouseRepository persists stock-holding sites together with
// their material counters.
type ProductionHouseRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.ProductionHouseRepository = (*ProductionHouseRepository)(nil)

// NewProductionHouseRepository creates a new production house repository
func NewProductionHouseRepository(db *Database, logger *slog.Logger) *ProductionHouseRepository {
	return &ProductionHouseRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "production_house")),
	}
}

func houseColumns() []string {
	cols := []string{"id", "name", "email", "password_hash"}
	cols = append(cols, materialColumns()...)
	return append(cols, "created_at", "updated_at")
}

// Create inserts a house with its opening stock.
func (r *ProductionHouseRepository) Create(ctx context.Context, house *domain.ProductionHouse) error {
	cols := houseColumns()
	args := []any{house.ID, house.Name, house.Email, house.PasswordHash}
	for _, kind := range domain.MaterialKinds {
		args = append(args, house.Stock.Get(kind))
	}
	args = append(args, house.CreatedAt, house.UpdatedAt)

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		`INSERT INTO production_houses (%s) VALUES (%s)`,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateError("production house", "email", house.Email)
		}
		return fmt.Errorf("failed to create production house: %w", err)
	}

	r.logger.InfoContext(ctx, "production house created",
		slog.String("id", house.ID.String()),
		slog.String("name", house.Name))

	return nil
}

func scanHouse(row pgx.Row) (*domain.ProductionHouse, error) {
	var house domain.ProductionHouse
	values := make([]int, len(domain.MaterialKinds))

	dest := []any{&house.ID, &house.Name, &house.Email, &house.PasswordHash}
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &house.CreatedAt, &house.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	house.Stock = make(domain.QuantitySet)
	for i, kind := range domain.MaterialKinds {
		if values[i] > 0 {
			house.Stock[kind] = values[i]
		}
	}
	return &house, nil
}

// FindByID loads one house.
func (r *ProductionHouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProductionHouse, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM production_houses WHERE id = $1`,
		strings.Join(houseColumns(), ", "),
	)

	house, err := scanHouse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("production house", id.String())
		}
		return nil, fmt.Errorf("failed to find production house %s: %w", id, err)
	}
	return house, nil
}

// FindByEmail loads one house by login email.
func (r *ProductionHouseRepository) FindByEmail(ctx context.Context, email string) (*domain.ProductionHouse, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM production_houses WHERE email = $1`,
		strings.Join(houseColumns(), ", "),
	)

	house, err := scanHouse(r.db.QueryRow(ctx, query, strings.ToLower(email)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("production house", email)
		}
		return nil, fmt.Errorf("failed to find production house by email: %w", err)
	}
	return house, nil
}

// List returns all houses ordered by name.
func (r *ProductionHouseRepository) List(ctx context.Context) ([]*domain.ProductionHouse, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM production_houses ORDER BY name`,
		strings.Join(houseColumns(), ", "),
	)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list production houses: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.ProductionHouse, error) {
		return scanHouse(rows)
	})
}

// Exists reports whether a house id is present.
func (r *ProductionHouseRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM production_houses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check production house %s: %w", id, err)
	}
	return exists, nil
}
