// internal/core/services/production_house_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/services"
	"github.com/packtrack/packtrack-be/test/helpers"
	"github.com/packtrack/packtrack-be/test/mocks"
)

const testJWTSecret = "test-secret-test-secret-test-secret"

func newHouseService(t *testing.T) (*services.ProductionHouseService, *mocks.MockProductionHouseRepository, *mocks.MockInventoryRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	houseRepo := mocks.NewMockProductionHouseRepository(ctrl)
	invRepo := mocks.NewMockInventoryRepository(ctrl)

	svc := services.NewProductionHouseService(
		houseRepo, invRepo, testJWTSecret, 2*time.Hour, bcrypt.MinCost,
		helpers.TestLogger(),
	)
	return svc, houseRepo, invRepo
}

func TestProductionHouseService_Register(t *testing.T) {
	t.Run("creates_house_with_opening_stock", func(t *testing.T) {
		svc, houseRepo, _ := newHouseService(t)
		opening := helpers.CreateTestQuantitySet()

		houseRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, house *domain.ProductionHouse) error {
				assert.NotEqual(t, uuid.Nil, house.ID)
				assert.Equal(t, "north@example.com", house.Email)
				assert.NotEmpty(t, house.PasswordHash)
				assert.NotEqual(t, "opensesame", house.PasswordHash)
				return nil
			})

		house, err := svc.Register(context.Background(), "North Unit", "North@Example.com", "opensesame", opening)

		require.NoError(t, err)
		assert.Equal(t, opening, house.Stock)
	})

	t.Run("rejects_short_password", func(t *testing.T) {
		svc, _, _ := newHouseService(t)

		_, err := svc.Register(context.Background(), "North Unit", "north@example.com", "short", nil)

		require.Error(t, err)
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "password", validationErr.Field)
	})

	t.Run("rejects_invalid_email", func(t *testing.T) {
		svc, _, _ := newHouseService(t)

		_, err := svc.Register(context.Background(), "North Unit", "not-an-email", "opensesame", nil)

		require.Error(t, err)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("duplicate_email_surfaces_conflict", func(t *testing.T) {
		svc, houseRepo, _ := newHouseService(t)

		houseRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.NewDuplicateError("production house", "email", "north@example.com"))

		_, err := svc.Register(context.Background(), "North Unit", "north@example.com", "opensesame", nil)

		require.Error(t, err)
		var dupErr *domain.DuplicateError
		assert.ErrorAs(t, err, &dupErr)
	})
}

func TestProductionHouseService_Login(t *testing.T) {
	password := "opensesame"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	house := helpers.CreateTestProductionHouse(func(h *domain.ProductionHouse) {
		h.PasswordHash = string(hash)
	})

	t.Run("issues_verifiable_token", func(t *testing.T) {
		svc, houseRepo, _ := newHouseService(t)

		houseRepo.EXPECT().
			FindByEmail(gomock.Any(), house.Email).
			Return(house, nil)

		token, loggedIn, err := svc.Login(context.Background(), house.Email, password)

		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, house.ID, loggedIn.ID)

		id, err := svc.VerifyToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, house.ID, id)
	})

	t.Run("wrong_password_and_unknown_email_look_alike", func(t *testing.T) {
		svc, houseRepo, _ := newHouseService(t)

		houseRepo.EXPECT().
			FindByEmail(gomock.Any(), house.Email).
			Return(house, nil)
		houseRepo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.NewNotFoundError("production house", "nobody@example.com"))

		_, _, badPassErr := svc.Login(context.Background(), house.Email, "wrong-password")
		_, _, badEmailErr := svc.Login(context.Background(), "nobody@example.com", password)

		require.Error(t, badPassErr)
		require.Error(t, badEmailErr)
		assert.Equal(t, badPassErr.Error(), badEmailErr.Error())
	})
}

func TestProductionHouseService_VerifyToken(t *testing.T) {
	t.Run("rejects_garbage_token", func(t *testing.T) {
		svc, _, _ := newHouseService(t)

		_, err := svc.VerifyToken(context.Background(), "not.a.token")

		require.Error(t, err)
		var unauthorizedErr *domain.UnauthorizedError
		assert.ErrorAs(t, err, &unauthorizedErr)
	})

	t.Run("rejects_token_signed_with_other_secret", func(t *testing.T) {
		svc, _, _ := newHouseService(t)

		claims := jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("another-secret-another-secret-12"))
		require.NoError(t, err)

		_, err = svc.VerifyToken(context.Background(), forged)

		require.Error(t, err)
		var unauthorizedErr *domain.UnauthorizedError
		assert.ErrorAs(t, err, &unauthorizedErr)
	})

	t.Run("rejects_expired_token", func(t *testing.T) {
		svc, _, _ := newHouseService(t)

		claims := jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(testJWTSecret))
		require.NoError(t, err)

		_, err = svc.VerifyToken(context.Background(), expired)

		require.Error(t, err)
	})
}

func TestProductionHouseService_Stock(t *testing.T) {
	svc, _, invRepo := newHouseService(t)
	houseID := uuid.New()
	stock := helpers.CreateTestQuantitySet()

	invRepo.EXPECT().
		Stock(gomock.Any(), houseID).
		Return(stock, nil)

	result, err := svc.Stock(context.Background(), houseID)

	require.NoError(t, err)
	assert.Equal(t, stock, result)
}
