// cmd/seeder/main.go
//
// Seeds a development database with production houses, directory
// entities and a randomized transaction ledger. Safe to run twice:
// named rows are inserted only when missing and ledger rows go through
// the same sequence counters the API uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/pkg/config"
	"github.com/packtrack/packtrack-be/internal/pkg/logger"
)

const defaultPassword = "packtrack123"

var houseSeeds = []struct {
	Name  string
	Email string
}{
	{"Shree Ganesh Packaging", "ganesh@packtrack.dev"},
	{"Mahavir Packing Works", "mahavir@packtrack.dev"},
}

var partySeeds = []string{
	"Asian Paints Ltd",
	"Kirloskar Brothers",
	"Bharat Forge",
}

var factorySeeds = map[string][]string{
	"Asian Paints Ltd":   {"Khandala Plant", "Rohtak Plant"},
	"Kirloskar Brothers": {"Kirloskarvadi Works"},
	"Bharat Forge":       {"Mundhwa Forge Shop"},
}

var palletSeeds = []string{"48x40", "42x42", "36x36", "Euro 1200x800"}

var associateCompanySeeds = []string{
	"Sagar Transport Co",
	"Deccan Logistics",
}

func main() {
	var (
		txCount = flag.Int("transactions", 50, "number of ledger transactions to seed")
		clean   = flag.Bool("clean", false, "truncate all tables before seeding")
	)
	flag.Parse()

	slogger := logger.SetupLogger("info", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.GetDatabaseURL())
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slogger.Error("database unreachable", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeder := &seeder{
		pool:       pool,
		bcryptCost: cfg.Security.BcryptCost,
		logger:     slogger,
	}

	if *clean {
		if err := seeder.truncate(ctx); err != nil {
			slogger.Error("failed to truncate tables", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slogger.Info("tables truncated")
	}

	if err := seeder.run(ctx, *txCount); err != nil {
		slogger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("seeding complete")
}

type seeder struct {
	pool       *pgxpool.Pool
	bcryptCost int
	logger     *slog.Logger
}

func (s *seeder) truncate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		TRUNCATE TABLE transaction_items, transactions, sequence_counters,
			associate_companies, pallets, factories, parties,
			production_houses CASCADE`)
	return err
}

func (s *seeder) run(ctx context.Context, txCount int) error {
	houseIDs, err := s.seedHouses(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed production houses: %w", err)
	}

	partyIDs, factoryIDs, err := s.seedDirectory(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed directory: %w", err)
	}

	companyIDs, err := s.seedAssociateCompanies(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed associate companies: %w", err)
	}

	if txCount > 0 {
		if err := s.seedTransactions(ctx, txCount, houseIDs, companyIDs, partyIDs, factoryIDs); err != nil {
			return fmt.Errorf("failed to seed transactions: %w", err)
		}
	}

	return nil
}

// seedHouses inserts the demo houses with generous opening stock so
// seeded orders do not run dry.
func (s *seeder) seedHouses(ctx context.Context) ([]uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var ids []uuid.UUID
	for _, seed := range houseSeeds {
		var id uuid.UUID
		err := s.pool.QueryRow(ctx, `
			INSERT INTO production_houses
				(name, email, password_hash,
				 film_white, film_blue, patti_role, angle_board_24,
				 angle_board_32, angle_board_36, angle_board_39,
				 angle_board_48, cap_hit, cap_simple, firmshit, thermocol,
				 mettle_angle, black_cover, packing_clip, patiya, plypatia)
			VALUES ($1, $2, $3,
				5000, 5000, 5000, 5000, 5000, 5000, 5000, 5000, 5000,
				5000, 5000, 5000, 5000, 5000, 5000, 5000, 5000)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			seed.Name, seed.Email, string(hash)).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	s.logger.Info("production houses seeded", slog.Int("count", len(ids)))
	return ids, nil
}

func (s *seeder) seedDirectory(ctx context.Context) ([]uuid.UUID, []uuid.UUID, error) {
	var partyIDs, factoryIDs []uuid.UUID

	for _, name := range partySeeds {
		var id uuid.UUID
		err := s.pool.QueryRow(ctx, `
			SELECT id FROM parties WHERE name = $1`, name).Scan(&id)
		if err == pgx.ErrNoRows {
			err = s.pool.QueryRow(ctx, `
				INSERT INTO parties (name) VALUES ($1) RETURNING id`, name).Scan(&id)
		}
		if err != nil {
			return nil, nil, err
		}
		partyIDs = append(partyIDs, id)

		for _, factoryName := range factorySeeds[name] {
			var factoryID uuid.UUID
			err := s.pool.QueryRow(ctx, `
				SELECT id FROM factories WHERE name = $1 AND party_id = $2`,
				factoryName, id).Scan(&factoryID)
			if err == pgx.ErrNoRows {
				err = s.pool.QueryRow(ctx, `
					INSERT INTO factories (name, party_id)
					VALUES ($1, $2) RETURNING id`, factoryName, id).Scan(&factoryID)
			}
			if err != nil {
				return nil, nil, err
			}
			factoryIDs = append(factoryIDs, factoryID)
		}
	}

	for _, name := range palletSeeds {
		if _, err := s.pool.Exec(ctx, `
			INSERT INTO pallets (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return nil, nil, err
		}
	}

	s.logger.Info("directory seeded",
		slog.Int("parties", len(partyIDs)),
		slog.Int("factories", len(factoryIDs)),
		slog.Int("pallets", len(palletSeeds)))

	return partyIDs, factoryIDs, nil
}

func (s *seeder) seedAssociateCompanies(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, name := range associateCompanySeeds {
		var id uuid.UUID
		err := s.pool.QueryRow(ctx, `
			INSERT INTO associate_companies (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, name).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	s.logger.Info("associate companies seeded", slog.Int("count", len(ids)))
	return ids, nil
}

// nextSequence advances a named counter the same way the API does, so
// seeded and live records never collide on custom IDs.
func (s *seeder) nextSequence(ctx context.Context, name string) (int64, error) {
	var value int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO sequence_counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value`, name).Scan(&value)
	return value, err
}

func (s *seeder) seedTransactions(
	ctx context.Context,
	count int,
	houseIDs, companyIDs, partyIDs, factoryIDs []uuid.UUID,
) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	columns := []string{
		"id", "custom_transaction_id", "kind", "source_kind", "source_id",
		"party_id", "factory_id", "date", "vehicle", "vehicle_number",
	}
	for _, kind := range domain.MaterialKinds {
		columns = append(columns, string(kind))
	}
	columns = append(columns, "status")

	vehicles := []string{"Tata 407", "Eicher Pro", "Ashok Leyland Dost"}

	var rows [][]interface{}
	for i := 0; i < count; i++ {
		kind := domain.KindOrder
		seqName := "orderId"
		prefix := "ORD"
		if rng.Intn(4) == 0 {
			kind = domain.KindBill
			seqName = "billId"
			prefix = "BILL"
		}

		seq, err := s.nextSequence(ctx, seqName)
		if err != nil {
			return err
		}

		sourceKind := domain.SourceProductionHouse
		sourceID := houseIDs[rng.Intn(len(houseIDs))]
		if len(companyIDs) > 0 && rng.Intn(5) == 0 {
			sourceKind = domain.SourceAssociateCompany
			sourceID = companyIDs[rng.Intn(len(companyIDs))]
		}

		vehicle := vehicles[rng.Intn(len(vehicles))]
		vehicleNumber := fmt.Sprintf("MH%02d%c%c%04d",
			rng.Intn(40)+1, 'A'+rune(rng.Intn(26)), 'A'+rune(rng.Intn(26)), rng.Intn(10000))

		row := []interface{}{
			uuid.New(),
			fmt.Sprintf("%s-%04d", prefix, seq),
			string(kind),
			string(sourceKind),
			sourceID,
			partyIDs[rng.Intn(len(partyIDs))],
			factoryIDs[rng.Intn(len(factoryIDs))],
			time.Now().AddDate(0, 0, -rng.Intn(120)),
			vehicle,
			vehicleNumber,
		}
		for range domain.MaterialKinds {
			qty := 0
			if rng.Intn(3) != 0 {
				qty = rng.Intn(20)
			}
			row = append(row, qty)
		}
		row = append(row, string(domain.StatusActive))

		rows = append(rows, row)
	}

	copied, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"transactions"},
		columns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return err
	}

	s.logger.Info("transactions seeded", slog.Int64("count", copied))
	return nil
}
