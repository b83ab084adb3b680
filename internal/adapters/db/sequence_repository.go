// internal/adapters/db/sequence_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// SequenceRepository allocates named counters from the
// sequence_counters table. Allocation happens through the caller's
// Querier so a rolled-back create never burns a number.
type SequenceRepository struct {
	logger *slog.Logger
}

var _ ports.SequenceRepository = (*SequenceRepository)(nil)

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(logger *slog.Logger) *SequenceRepository {
	return &SequenceRepository{
		logger: logger.With(slog.String("repository", "sequence")),
	}
}

// Next atomically increments the named counter and returns its new
// value. The first call for a name returns 1.
func (r *SequenceRepository) Next(ctx context.Context, q ports.Querier, name string) (int64, error) {
	query := `
		INSERT INTO sequence_counters (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name)
		DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value`

	var value int64
	if err := q.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance sequence %s: %w", name, err)
	}

	r.logger.DebugContext(ctx, "sequence advanced",
		slog.String("name", name),
		slog.Int64("value", value))

	return value, nil
}

// Current returns the last allocated value for a counter, zero when the
// counter has never been used.
func (r *SequenceRepository) Current(ctx context.Context, q ports.Querier, name string) (int64, error) {
	var value int64
	err := q.QueryRow(ctx, `SELECT value FROM sequence_counters WHERE name = $1`, name).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read sequence %s: %w", name, err)
	}
	return value, nil
}
