// internal/core/services/directory.go
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// DirectoryService manages the reference entities transactions point
// at. Thin on purpose: validation here, persistence in the repository.
type DirectoryService struct {
	dirRepo ports.DirectoryRepository
	logger  *slog.Logger
}

var _ ports.DirectoryService = (*DirectoryService)(nil)

// NewDirectoryService creates a new directory service
func NewDirectoryService(dirRepo ports.DirectoryRepository, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		dirRepo: dirRepo,
		logger:  logger.With(slog.String("service", "directory")),
	}
}

func (s *DirectoryService) CreateParty(ctx context.Context, party *domain.Party) error {
	if err := party.Validate(); err != nil {
		return err
	}
	return s.dirRepo.CreateParty(ctx, party)
}

func (s *DirectoryService) UpdateParty(ctx context.Context, party *domain.Party) error {
	if err := party.Validate(); err != nil {
		return err
	}
	return s.dirRepo.UpdateParty(ctx, party)
}

func (s *DirectoryService) DeleteParty(ctx context.Context, id uuid.UUID) error {
	return s.dirRepo.DeleteParty(ctx, id)
}

func (s *DirectoryService) GetParty(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	return s.dirRepo.FindPartyByID(ctx, id)
}

func (s *DirectoryService) ListParties(ctx context.Context) ([]*domain.Party, error) {
	return s.dirRepo.ListParties(ctx)
}

func (s *DirectoryService) CreateFactory(ctx context.Context, factory *domain.Factory) error {
	if err := factory.Validate(); err != nil {
		return err
	}
	// The owning party must exist; factories cannot dangle.
	if _, err := s.dirRepo.FindPartyByID(ctx, factory.PartyID); err != nil {
		if _, ok := asNotFound(err); ok {
			return domain.NewValidationError("party_id", "references an unknown party")
		}
		return err
	}
	return s.dirRepo.CreateFactory(ctx, factory)
}

func (s *DirectoryService) UpdateFactory(ctx context.Context, factory *domain.Factory) error {
	if err := factory.Validate(); err != nil {
		return err
	}
	return s.dirRepo.UpdateFactory(ctx, factory)
}

func (s *DirectoryService) DeleteFactory(ctx context.Context, id uuid.UUID) error {
	return s.dirRepo.DeleteFactory(ctx, id)
}

func (s *DirectoryService) GetFactory(ctx context.Context, id uuid.UUID) (*domain.Factory, error) {
	return s.dirRepo.FindFactoryByID(ctx, id)
}

func (s *DirectoryService) ListFactories(ctx context.Context, partyID *uuid.UUID) ([]*domain.Factory, error) {
	return s.dirRepo.ListFactories(ctx, partyID)
}

func (s *DirectoryService) CreatePallet(ctx context.Context, pallet *domain.Pallet) error {
	if err := pallet.Validate(); err != nil {
		return err
	}
	return s.dirRepo.CreatePallet(ctx, pallet)
}

func (s *DirectoryService) UpdatePallet(ctx context.Context, pallet *domain.Pallet) error {
	if err := pallet.Validate(); err != nil {
		return err
	}
	return s.dirRepo.UpdatePallet(ctx, pallet)
}

func (s *DirectoryService) DeletePallet(ctx context.Context, id uuid.UUID) error {
	return s.dirRepo.DeletePallet(ctx, id)
}

func (s *DirectoryService) GetPallet(ctx context.Context, id uuid.UUID) (*domain.Pallet, error) {
	return s.dirRepo.FindPalletByID(ctx, id)
}

func (s *DirectoryService) ListPallets(ctx context.Context) ([]*domain.Pallet, error) {
	return s.dirRepo.ListPallets(ctx)
}

func (s *DirectoryService) CreateAssociateCompany(ctx context.Context, company *domain.AssociateCompany) error {
	if err := company.Validate(); err != nil {
		return err
	}
	return s.dirRepo.CreateAssociateCompany(ctx, company)
}

func (s *DirectoryService) UpdateAssociateCompany(ctx context.Context, company *domain.AssociateCompany) error {
	if err := company.Validate(); err != nil {
		return err
	}
	return s.dirRepo.UpdateAssociateCompany(ctx, company)
}

func (s *DirectoryService) DeleteAssociateCompany(ctx context.Context, id uuid.UUID) error {
	return s.dirRepo.DeleteAssociateCompany(ctx, id)
}

func (s *DirectoryService) GetAssociateCompany(ctx context.Context, id uuid.UUID) (*domain.AssociateCompany, error) {
	return s.dirRepo.FindAssociateCompanyByID(ctx, id)
}

func (s *DirectoryService) ListAssociateCompanies(ctx context.Context) ([]*domain.AssociateCompany, error) {
	return s.dirRepo.ListAssociateCompanies(ctx)
}
