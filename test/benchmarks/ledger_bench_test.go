package benchmarks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/packtrack/packtrack-be/internal/adapters/db"
	redis_a "github.com/packtrack/packtrack-be/internal/adapters/redis_adapter"
	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
	"github.com/packtrack/packtrack-be/internal/core/services"
	"github.com/packtrack/packtrack-be/test/helpers"
)

func BenchmarkLedgerOperations(b *testing.B) {
	// Setup
	testDB := helpers.SetupTestDB(&testing.T{})
	defer testDB.Database.Close()
	testRedis := helpers.SetupTestRedis(&testing.T{})

	logger := helpers.TestLogger()
	cache := redis_a.NewCache(testRedis.Client, time.Hour, logger)

	txRepo := db.NewTransactionRepository(testDB.Database, logger)
	invRepo := db.NewInventoryRepository(testDB.Database, logger)
	seqRepo := db.NewSequenceRepository(logger)
	houseRepo := db.NewProductionHouseRepository(testDB.Database, logger)
	dirRepo := db.NewDirectoryRepository(testDB.Database, logger)

	service := services.NewTransactionService(
		testDB.Database, txRepo, invRepo, seqRepo, houseRepo, dirRepo, cache, logger)

	ctx := context.Background()

	// Seed references with enough stock to never run dry
	house := helpers.CreateTestProductionHouse(func(h *domain.ProductionHouse) {
		h.Stock = domain.QuantitySet{
			domain.MaterialFilmWhite: 1 << 30,
			domain.MaterialPattiRole: 1 << 30,
			domain.MaterialThermocol: 1 << 30,
		}
	})
	if err := houseRepo.Create(ctx, house); err != nil {
		b.Fatalf("failed to seed production house: %v", err)
	}

	party := helpers.CreateTestParty()
	if err := dirRepo.CreateParty(ctx, party); err != nil {
		b.Fatalf("failed to seed party: %v", err)
	}

	factory := helpers.CreateTestFactory(party.ID)
	if err := dirRepo.CreateFactory(ctx, factory); err != nil {
		b.Fatalf("failed to seed factory: %v", err)
	}

	newOrder := func() *domain.Transaction {
		return helpers.CreateTestTransaction(func(tx *domain.Transaction) {
			tx.CustomID = ""
			tx.SourceID = house.ID
			tx.PartyID = party.ID
			tx.FactoryID = factory.ID
			tx.Quantities = domain.QuantitySet{
				domain.MaterialFilmWhite: 3,
				domain.MaterialPattiRole: 1,
			}
		})
	}

	b.Run("Create", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.Create(ctx, newOrder())
		}
	})

	// Pre-create records for read benchmarks
	var txIDs []uuid.UUID
	for i := 0; i < 100; i++ {
		created, err := service.Create(ctx, newOrder())
		if err != nil {
			b.Fatalf("failed to seed transaction: %v", err)
		}
		txIDs = append(txIDs, created.ID)
	}

	b.Run("Read", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			id := txIDs[i%len(txIDs)]
			_, _ = service.GetByID(ctx, id)
		}
	})

	b.Run("List", func(b *testing.B) {
		params := ports.TransactionListParams{
			Page:     1,
			PageSize: 50,
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.List(ctx, params)
		}
	})

	b.Run("FilteredList", func(b *testing.B) {
		from := time.Now().AddDate(0, 0, -30)
		params := ports.TransactionListParams{
			Kind:     string(domain.KindOrder),
			PartyID:  party.ID.String(),
			DateFrom: &from,
			Page:     1,
			PageSize: 50,
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.List(ctx, params)
		}
	})

	b.Run("DeleteRestore", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			created, err := service.Create(ctx, newOrder())
			if err != nil {
				b.Fatalf("failed to create transaction: %v", err)
			}
			b.StartTimer()

			_ = service.Delete(ctx, created.ID)
		}
	})
}

func BenchmarkQuantitySetOperations(b *testing.B) {
	raw := map[string]int{
		"film_white": 40,
		"patti_role": 10,
		"thermocol":  5,
	}

	available := domain.QuantitySet{
		domain.MaterialFilmWhite: 100,
		domain.MaterialPattiRole: 5,
	}

	b.Run("Parse", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = domain.NewQuantitySet(raw)
		}
	})

	qty, _ := domain.NewQuantitySet(raw)

	b.Run("Shortfalls", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = qty.Shortfalls(available)
		}
	})

	b.Run("Positive", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = qty.Positive()
		}
	})
}

// Memory allocation benchmarks
func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("Transaction", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = &domain.Transaction{
				ID:         uuid.New(),
				Kind:       domain.KindOrder,
				SourceKind: domain.SourceProductionHouse,
				SourceID:   uuid.New(),
				Quantities: domain.QuantitySet{domain.MaterialFilmWhite: 10},
				Status:     domain.StatusActive,
			}
		}
	})

	b.Run("ListResult", func(b *testing.B) {
		txs := helpers.CreateTestTransactions(100)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = &ports.TransactionListResult{
				Transactions: txs,
				Page:         1,
				PageSize:     50,
				TotalCount:   100,
				TotalPages:   2,
			}
		}
	})
}
