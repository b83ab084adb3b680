// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"

	"github.com/packtrack/packtrack-be/internal/adapters/storage"
	"github.com/packtrack/packtrack-be/internal/pkg/config"
)

const (
	TypeCleanupExports   = "cleanup:exports"
	TypeCleanupTempFiles = "cleanup:temp_files"
)

// CleanupProcessor prunes expired export objects and stale temp files
type CleanupProcessor struct {
	storage storage.StorageClient
	config  *config.Config
	logger  *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(storage storage.StorageClient, config *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		storage: storage,
		config:  config,
		logger:  logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupExports deletes export objects past the retention period.
// Their job records expire from the cache on their own TTL.
func (p *CleanupProcessor) CleanupExports(ctx context.Context, t *asynq.Task) error {
	cutoff := time.Now().Add(-p.config.Export.RetentionPeriod)

	keys, err := p.storage.ListWithAge(ctx, "exports/", cutoff)
	if err != nil {
		return fmt.Errorf("failed to list expired exports: %w", err)
	}

	if len(keys) == 0 {
		p.logger.DebugContext(ctx, "no expired exports to clean up")
		return nil
	}

	if err := p.storage.DeleteMultiple(ctx, keys); err != nil {
		return fmt.Errorf("failed to delete expired exports: %w", err)
	}

	p.logger.InfoContext(ctx, "expired exports cleaned up",
		slog.Int("objects_deleted", len(keys)))

	return nil
}

// CleanupTempFiles removes old temporary files
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up temp files")

	tempDir := p.config.Export.TempDir
	maxAge := 24 * time.Hour

	var deletedCount int
	err := filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				p.logger.WarnContext(ctx, "failed to delete temp file",
					slog.String("file", path),
					slog.String("error", err.Error()))
			} else {
				deletedCount++
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))

	return nil
}
