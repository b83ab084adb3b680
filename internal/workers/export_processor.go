// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/packtrack/packtrack-be/internal/adapters/storage"
	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
	"github.com/packtrack/packtrack-be/internal/core/services"
	"github.com/packtrack/packtrack-be/internal/pkg/config"
)

const exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProcessor renders queued report exports to xlsx and publishes
// them to object storage. Job progress goes through the same cache
// record the API polls.
type ExportProcessor struct {
	txService ports.TransactionService
	cache     ports.CacheRepository
	storage   storage.StorageClient
	config    *config.Config
	logger    *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(txService ports.TransactionService, cache ports.CacheRepository, storage storage.StorageClient, config *config.Config, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		txService: txService,
		cache:     cache,
		storage:   storage,
		config:    config,
		logger:    logger.With(slog.String("processor", "export")),
	}
}

// ProcessExport handles one report:export task
func (p *ExportProcessor) ProcessExport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload services.ExportTaskPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing export",
		slog.String("job_id", payload.JobID))

	job := p.loadJob(ctx, payload)
	job.Status = ports.ExportStatusProcessing
	p.saveJob(ctx, job)

	transactions, err := p.txService.Report(ctx, payload.Params)
	if err != nil {
		p.failJob(ctx, job, fmt.Sprintf("failed to build report: %v", err))
		return fmt.Errorf("failed to build report for job %s: %w", payload.JobID, err)
	}

	buf, err := renderWorkbook(transactions)
	if err != nil {
		p.failJob(ctx, job, fmt.Sprintf("failed to render workbook: %v", err))
		return fmt.Errorf("failed to render workbook for job %s: %w", payload.JobID, err)
	}

	key := exportObjectKey(payload.JobID)
	if _, err := p.storage.Upload(ctx, key, buf, exportContentType); err != nil {
		p.failJob(ctx, job, fmt.Sprintf("failed to store export: %v", err))
		return fmt.Errorf("failed to store export for job %s: %w", payload.JobID, err)
	}

	url, err := p.storage.GetPresignedURL(ctx, key, p.config.Export.URLExpiry)
	if err != nil {
		p.failJob(ctx, job, fmt.Sprintf("failed to sign download URL: %v", err))
		return fmt.Errorf("failed to sign download URL for job %s: %w", payload.JobID, err)
	}

	now := time.Now()
	job.Status = ports.ExportStatusCompleted
	job.DownloadURL = url
	job.Error = ""
	job.CompletedAt = &now
	p.saveJob(ctx, job)

	p.logger.InfoContext(ctx, "export completed",
		slog.String("job_id", payload.JobID),
		slog.Int("rows", len(transactions)),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// loadJob fetches the job record, falling back to a fresh one when the
// cache entry expired between enqueue and pickup.
func (p *ExportProcessor) loadJob(ctx context.Context, payload services.ExportTaskPayload) *ports.ExportJob {
	var job ports.ExportJob
	if err := p.cache.Get(ctx, services.ExportJobKey(payload.JobID), &job); err != nil {
		return &ports.ExportJob{
			ID:        payload.JobID,
			Params:    payload.Params,
			CreatedAt: time.Now(),
		}
	}
	return &job
}

func (p *ExportProcessor) saveJob(ctx context.Context, job *ports.ExportJob) {
	if err := p.cache.SetWithTTL(ctx, services.ExportJobKey(job.ID), job, services.ExportJobTTL); err != nil {
		p.logger.WarnContext(ctx, "failed to update export job status",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()))
	}
}

func (p *ExportProcessor) failJob(ctx context.Context, job *ports.ExportJob, msg string) {
	now := time.Now()
	job.Status = ports.ExportStatusFailed
	job.Error = msg
	job.CompletedAt = &now
	p.saveJob(ctx, job)
}

func exportObjectKey(jobID string) string {
	return "exports/" + jobID + ".xlsx"
}

// renderWorkbook lays the report out as one sheet: identity and routing
// columns first, then one column per material kind.
func renderWorkbook(transactions []*domain.Transaction) (*bytes.Buffer, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, title := range []string{
		"Transaction ID", "Kind", "Date", "Source Kind", "Source ID",
		"Party ID", "Factory ID", "Vehicle", "Vehicle Number", "Status",
	} {
		header.AddCell().SetString(title)
	}
	for _, kind := range domain.MaterialKinds {
		header.AddCell().SetString(string(kind))
	}

	for _, tx := range transactions {
		row := sheet.AddRow()
		row.AddCell().SetString(tx.CustomID)
		row.AddCell().SetString(string(tx.Kind))
		row.AddCell().SetString(tx.Date.Format("2006-01-02"))
		row.AddCell().SetString(string(tx.SourceKind))
		row.AddCell().SetString(tx.SourceID.String())
		row.AddCell().SetString(tx.PartyID.String())
		row.AddCell().SetString(tx.FactoryID.String())
		row.AddCell().SetString(tx.Vehicle)
		row.AddCell().SetString(tx.VehicleNumber)
		row.AddCell().SetString(string(tx.Status))
		for _, kind := range domain.MaterialKinds {
			row.AddCell().SetInt(tx.Quantities.Get(kind))
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return &buf, nil
}
