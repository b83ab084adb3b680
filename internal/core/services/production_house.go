// internal/core/services/production_house.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

const minPasswordLength = 8

// ProductionHouseService handles registration, login and house reads.
// A production house is the API's login principal.
type ProductionHouseService struct {
	houseRepo  ports.ProductionHouseRepository
	invRepo    ports.InventoryRepository
	jwtSecret  []byte
	jwtExpiry  time.Duration
	bcryptCost int
	logger     *slog.Logger
}

var _ ports.ProductionHouseService = (*ProductionHouseService)(nil)

// NewProductionHouseService creates a new production house service
func NewProductionHouseService(
	houseRepo ports.ProductionHouseRepository,
	invRepo ports.InventoryRepository,
	jwtSecret string,
	jwtExpiry time.Duration,
	bcryptCost int,
	logger *slog.Logger,
) *ProductionHouseService {
	if bcryptCost == 0 {
		bcryptCost = 12
	}
	return &ProductionHouseService{
		houseRepo:  houseRepo,
		invRepo:    invRepo,
		jwtSecret:  []byte(jwtSecret),
		jwtExpiry:  jwtExpiry,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("service", "production_house")),
	}
}

// Register creates a house with its opening stock.
func (s *ProductionHouseService) Register(ctx context.Context, name, email, password string, openingStock domain.QuantitySet) (*domain.ProductionHouse, error) {
	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("password",
			fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	house := &domain.ProductionHouse{
		Name:  name,
		Email: email,
		Stock: openingStock,
	}
	if err := house.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	house.PasswordHash = string(hash)
	house.PrepareForStorage()

	if err := s.houseRepo.Create(ctx, house); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "production house registered",
		slog.String("id", house.ID.String()),
		slog.String("name", house.Name))

	return house, nil
}

// Login verifies credentials and issues a signed token.
func (s *ProductionHouseService) Login(ctx context.Context, email, password string) (string, *domain.ProductionHouse, error) {
	house, err := s.houseRepo.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := asNotFound(err); ok {
			// Same error for unknown email and bad password.
			return "", nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(house.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.NewUnauthorizedError("invalid credentials")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   house.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.InfoContext(ctx, "production house logged in",
		slog.String("id", house.ID.String()))

	return token, house, nil
}

// VerifyToken parses and validates a bearer token, returning the house
// id it was issued to.
func (s *ProductionHouseService) VerifyToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.jwtSecret, nil
		})
	if err != nil || !token.Valid {
		return uuid.Nil, domain.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, domain.NewUnauthorizedError("invalid token claims")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.NewUnauthorizedError("invalid token subject")
	}
	return id, nil
}

// GetByID loads one house.
func (s *ProductionHouseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductionHouse, error) {
	return s.houseRepo.FindByID(ctx, id)
}

// List returns all houses.
func (s *ProductionHouseService) List(ctx context.Context) ([]*domain.ProductionHouse, error) {
	return s.houseRepo.List(ctx)
}

// Stock returns a house's current counters.
func (s *ProductionHouseService) Stock(ctx context.Context, id uuid.UUID) (domain.QuantitySet, error) {
	return s.invRepo.Stock(ctx, id)
}
