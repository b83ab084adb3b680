// internal/handlers/report.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/packtrack/packtrack-be/internal/core/ports"
)

// ReportHandler serves filtered reports, pallet statistics and the
// async export surface.
type ReportHandler struct {
	txService     ports.TransactionService
	exportService ports.ExportService
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(txService ports.TransactionService, exportService ports.ExportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		txService:     txService,
		exportService: exportService,
		logger:        logger.With(slog.String("handler", "report")),
	}
}

// GetReport handles GET /api/v1/reports/transactions. It returns every
// matching record, unpaginated.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := parseTransactionListParams(r)

	transactions, err := h.txService.Report(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build report",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// ExportReport handles POST /api/v1/reports/export. The export renders
// asynchronously; the response carries a job id to poll.
func (h *ReportHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := parseTransactionListParams(r)

	job, err := h.exportService.Enqueue(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue export",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusAccepted, job)
}

// ExportStatus handles GET /api/v1/reports/export/{id}
func (h *ReportHandler) ExportStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID := r.PathValue("id")
	if jobID == "" {
		respondMessage(h.logger, w, http.StatusBadRequest, "Missing export job ID")
		return
	}

	job, err := h.exportService.Status(ctx, jobID)
	if err != nil {
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, job)
}

// PalletStats handles GET /api/v1/stats/pallets
func (h *ReportHandler) PalletStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.txService.PalletStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute pallet stats",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"stats": stats,
	})
}
