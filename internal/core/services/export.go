// internal/core/services/export.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// TypeReportExport is the asynq task type for report exports.
const TypeReportExport = "report:export"

// ExportJobTTL bounds how long job status is kept after enqueue.
const ExportJobTTL = 24 * time.Hour

// ExportJobKey builds the cache key for one job. The worker uses the
// same key to publish progress.
func ExportJobKey(jobID string) string {
	return "export:job:" + jobID
}

// ExportTaskPayload is the asynq payload for one export.
type ExportTaskPayload struct {
	JobID  string                      `json:"job_id"`
	Params ports.TransactionListParams `json:"params"`
}

// ExportService enqueues report exports and tracks their status in the
// cache. The worker updates the same job record as it progresses.
type ExportService struct {
	client *asynq.Client
	cache  ports.CacheRepository
	logger *slog.Logger
}

var _ ports.ExportService = (*ExportService)(nil)

// NewExportService creates a new export service
func NewExportService(client *asynq.Client, cache ports.CacheRepository, logger *slog.Logger) *ExportService {
	return &ExportService{
		client: client,
		cache:  cache,
		logger: logger.With(slog.String("service", "export")),
	}
}

// Enqueue records a pending job and queues the export task.
func (s *ExportService) Enqueue(ctx context.Context, params ports.TransactionListParams) (*ports.ExportJob, error) {
	job := &ports.ExportJob{
		ID:        uuid.New().String(),
		Status:    ports.ExportStatusPending,
		Params:    params,
		CreatedAt: time.Now(),
	}

	if err := s.cache.SetWithTTL(ctx, ExportJobKey(job.ID), job, ExportJobTTL); err != nil {
		return nil, fmt.Errorf("failed to record export job: %w", err)
	}

	payload, err := json.Marshal(ExportTaskPayload{JobID: job.ID, Params: params})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export payload: %w", err)
	}

	task := asynq.NewTask(TypeReportExport, payload)
	info, err := s.client.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue export task: %w", err)
	}

	s.logger.InfoContext(ctx, "export job enqueued",
		slog.String("job_id", job.ID),
		slog.String("task_id", info.ID))

	return job, nil
}

// Status returns the current state of a job.
func (s *ExportService) Status(ctx context.Context, jobID string) (*ports.ExportJob, error) {
	var job ports.ExportJob
	if err := s.cache.Get(ctx, ExportJobKey(jobID), &job); err != nil {
		// Expired and missing jobs look the same to the caller.
		return nil, domain.NewNotFoundError("export job", jobID)
	}
	return &job, nil
}
