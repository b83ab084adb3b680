// internal/adapters/db/directory_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// DirectoryRepository persists the reference entities: parties,
// factories, pallets and associate companies.
type DirectoryRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.DirectoryRepository = (*DirectoryRepository)(nil)

// NewDirectoryRepository creates a new directory repository
func NewDirectoryRepository(db *Database, logger *slog.Logger) *DirectoryRepository {
	return &DirectoryRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "directory")),
	}
}

func prepareTimestamps(createdAt *time.Time, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

// Parties

func (r *DirectoryRepository) CreateParty(ctx context.Context, party *domain.Party) error {
	if party.ID == uuid.Nil {
		party.ID = uuid.New()
	}
	prepareTimestamps(&party.CreatedAt, &party.UpdatedAt)

	_, err := r.db.Exec(ctx,
		`INSERT INTO parties (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		party.ID, party.Name, party.CreatedAt, party.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create party: %w", err)
	}
	return nil
}

func (r *DirectoryRepository) UpdateParty(ctx context.Context, party *domain.Party) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE parties SET name = $1, updated_at = NOW() WHERE id = $2`,
		party.Name, party.ID)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", party.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("party", party.ID.String())
	}
	return nil
}

func (r *DirectoryRepository) DeleteParty(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete party %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("party", id.String())
	}
	return nil
}

func (r *DirectoryRepository) FindPartyByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	var party domain.Party
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM parties WHERE id = $1`, id).
		Scan(&party.ID, &party.Name, &party.CreatedAt, &party.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("party", id.String())
		}
		return nil, fmt.Errorf("failed to find party %s: %w", id, err)
	}
	return &party, nil
}

func (r *DirectoryRepository) ListParties(ctx context.Context) ([]*domain.Party, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM parties ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.Party, error) {
		var p domain.Party
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// Factories

func (r *DirectoryRepository) CreateFactory(ctx context.Context, factory *domain.Factory) error {
	if factory.ID == uuid.Nil {
		factory.ID = uuid.New()
	}
	prepareTimestamps(&factory.CreatedAt, &factory.UpdatedAt)

	_, err := r.db.Exec(ctx,
		`INSERT INTO factories (id, name, party_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		factory.ID, factory.Name, factory.PartyID, factory.CreatedAt, factory.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create factory: %w", err)
	}
	return nil
}

func (r *DirectoryRepository) UpdateFactory(ctx context.Context, factory *domain.Factory) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE factories SET name = $1, party_id = $2, updated_at = NOW() WHERE id = $3`,
		factory.Name, factory.PartyID, factory.ID)
	if err != nil {
		return fmt.Errorf("failed to update factory %s: %w", factory.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("factory", factory.ID.String())
	}
	return nil
}

func (r *DirectoryRepository) DeleteFactory(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM factories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete factory %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("factory", id.String())
	}
	return nil
}

func (r *DirectoryRepository) FindFactoryByID(ctx context.Context, id uuid.UUID) (*domain.Factory, error) {
	var f domain.Factory
	err := r.db.QueryRow(ctx,
		`SELECT id, name, party_id, created_at, updated_at FROM factories WHERE id = $1`, id).
		Scan(&f.ID, &f.Name, &f.PartyID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("factory", id.String())
		}
		return nil, fmt.Errorf("failed to find factory %s: %w", id, err)
	}
	return &f, nil
}

func (r *DirectoryRepository) ListFactories(ctx context.Context, partyID *uuid.UUID) ([]*domain.Factory, error) {
	query := `SELECT id, name, party_id, created_at, updated_at FROM factories`
	args := []any{}
	if partyID != nil {
		query += ` WHERE party_id = $1`
		args = append(args, *partyID)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list factories: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.Factory, error) {
		var f domain.Factory
		if err := rows.Scan(&f.ID, &f.Name, &f.PartyID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		return &f, nil
	})
}

// Pallets

func (r *DirectoryRepository) CreatePallet(ctx context.Context, pallet *domain.Pallet) error {
	if pallet.ID == uuid.Nil {
		pallet.ID = uuid.New()
	}
	prepareTimestamps(&pallet.CreatedAt, &pallet.UpdatedAt)

	_, err := r.db.Exec(ctx,
		`INSERT INTO pallets (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		pallet.ID, pallet.Name, pallet.CreatedAt, pallet.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateError("pallet", "name", pallet.Name)
		}
		return fmt.Errorf("failed to create pallet: %w", err)
	}
	return nil
}

func (r *DirectoryRepository) UpdatePallet(ctx context.Context, pallet *domain.Pallet) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE pallets SET name = $1, updated_at = NOW() WHERE id = $2`,
		pallet.Name, pallet.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateError("pallet", "name", pallet.Name)
		}
		return fmt.Errorf("failed to update pallet %s: %w", pallet.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("pallet", pallet.ID.String())
	}
	return nil
}

func (r *DirectoryRepository) DeletePallet(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pallets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pallet %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("pallet", id.String())
	}
	return nil
}

func (r *DirectoryRepository) FindPalletByID(ctx context.Context, id uuid.UUID) (*domain.Pallet, error) {
	var p domain.Pallet
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM pallets WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("pallet", id.String())
		}
		return nil, fmt.Errorf("failed to find pallet %s: %w", id, err)
	}
	return &p, nil
}

func (r *DirectoryRepository) ListPallets(ctx context.Context) ([]*domain.Pallet, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM pallets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pallets: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.Pallet, error) {
		var p domain.Pallet
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// Associate companies

func (r *DirectoryRepository) CreateAssociateCompany(ctx context.Context, company *domain.AssociateCompany) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	prepareTimestamps(&company.CreatedAt, &company.UpdatedAt)

	_, err := r.db.Exec(ctx,
		`INSERT INTO associate_companies (id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		company.ID, company.Name, company.CreatedAt, company.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateError("associate company", "name", company.Name)
		}
		return fmt.Errorf("failed to create associate company: %w", err)
	}
	return nil
}

func (r *DirectoryRepository) UpdateAssociateCompany(ctx context.Context, company *domain.AssociateCompany) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE associate_companies SET name = $1, updated_at = NOW() WHERE id = $2`,
		company.Name, company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateError("associate company", "name", company.Name)
		}
		return fmt.Errorf("failed to update associate company %s: %w", company.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("associate company", company.ID.String())
	}
	return nil
}

func (r *DirectoryRepository) DeleteAssociateCompany(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM associate_companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete associate company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("associate company", id.String())
	}
	return nil
}

func (r *DirectoryRepository) FindAssociateCompanyByID(ctx context.Context, id uuid.UUID) (*domain.AssociateCompany, error) {
	var c domain.AssociateCompany
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM associate_companies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("associate company", id.String())
		}
		return nil, fmt.Errorf("failed to find associate company %s: %w", id, err)
	}
	return &c, nil
}

func (r *DirectoryRepository) ListAssociateCompanies(ctx context.Context) ([]*domain.AssociateCompany, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM associate_companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list associate companies: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.AssociateCompany, error) {
		var c domain.AssociateCompany
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		return &c, nil
	})
}
