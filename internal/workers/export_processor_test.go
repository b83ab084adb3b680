// internal/workers/export_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/packtrack/packtrack-be/internal/adapters/storage"
	"github.com/packtrack/packtrack-be/internal/core/ports"
	"github.com/packtrack/packtrack-be/internal/core/services"
	"github.com/packtrack/packtrack-be/internal/workers"
	"github.com/packtrack/packtrack-be/test/helpers"
	"github.com/packtrack/packtrack-be/test/mocks"
)

func TestExportProcessor_ProcessExport(t *testing.T) {
	ctx := context.Background()
	cfg := helpers.LoadTestConfig()

	newTask := func(t *testing.T, payload services.ExportTaskPayload) *asynq.Task {
		t.Helper()
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		return asynq.NewTask(services.TypeReportExport, data)
	}

	t.Run("renders_and_publishes_completed_export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		txService := mocks.NewMockTransactionService(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		store, err := storage.NewLocalStorage(t.TempDir(), helpers.TestLogger())
		require.NoError(t, err)

		payload := services.ExportTaskPayload{
			JobID:  "job-1",
			Params: ports.TransactionListParams{Page: 1, PageSize: 20},
		}

		cache.EXPECT().
			Get(gomock.Any(), services.ExportJobKey("job-1"), gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) error {
				*dest.(*ports.ExportJob) = ports.ExportJob{
					ID:        "job-1",
					Status:    ports.ExportStatusPending,
					Params:    payload.Params,
					CreatedAt: time.Now(),
				}
				return nil
			})

		var savedStatuses []ports.ExportJobStatus
		var finalJob *ports.ExportJob
		cache.EXPECT().
			SetWithTTL(gomock.Any(), services.ExportJobKey("job-1"), gomock.Any(), services.ExportJobTTL).
			Times(2).
			DoAndReturn(func(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
				job := value.(*ports.ExportJob)
				savedStatuses = append(savedStatuses, job.Status)
				finalJob = job
				return nil
			})

		txService.EXPECT().
			Report(gomock.Any(), payload.Params).
			Return(helpers.CreateTestTransactions(3), nil)

		processor := workers.NewExportProcessor(txService, cache, store, cfg, helpers.TestLogger())
		err = processor.ProcessExport(ctx, newTask(t, payload))
		require.NoError(t, err)

		assert.Equal(t, []ports.ExportJobStatus{
			ports.ExportStatusProcessing,
			ports.ExportStatusCompleted,
		}, savedStatuses)
		require.NotNil(t, finalJob)
		assert.True(t, strings.HasPrefix(finalJob.DownloadURL, "file://"))
		assert.NotNil(t, finalJob.CompletedAt)
		assert.Empty(t, finalJob.Error)

		exists, err := store.Exists(ctx, "exports/job-1.xlsx")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("report_failure_marks_job_failed_and_retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		txService := mocks.NewMockTransactionService(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		store, err := storage.NewLocalStorage(t.TempDir(), helpers.TestLogger())
		require.NoError(t, err)

		payload := services.ExportTaskPayload{JobID: "job-2"}

		// Cache entry expired between enqueue and pickup
		cache.EXPECT().
			Get(gomock.Any(), services.ExportJobKey("job-2"), gomock.Any()).
			Return(errors.New("cache miss"))

		var savedStatuses []ports.ExportJobStatus
		var finalJob *ports.ExportJob
		cache.EXPECT().
			SetWithTTL(gomock.Any(), services.ExportJobKey("job-2"), gomock.Any(), services.ExportJobTTL).
			Times(2).
			DoAndReturn(func(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
				job := value.(*ports.ExportJob)
				savedStatuses = append(savedStatuses, job.Status)
				finalJob = job
				return nil
			})

		txService.EXPECT().
			Report(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database unavailable"))

		processor := workers.NewExportProcessor(txService, cache, store, cfg, helpers.TestLogger())
		err = processor.ProcessExport(ctx, newTask(t, payload))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to build report")

		assert.Equal(t, []ports.ExportJobStatus{
			ports.ExportStatusProcessing,
			ports.ExportStatusFailed,
		}, savedStatuses)
		require.NotNil(t, finalJob)
		assert.Contains(t, finalJob.Error, "database unavailable")
	})

	t.Run("malformed_payload_rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		txService := mocks.NewMockTransactionService(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		store, err := storage.NewLocalStorage(t.TempDir(), helpers.TestLogger())
		require.NoError(t, err)

		processor := workers.NewExportProcessor(txService, cache, store, cfg, helpers.TestLogger())
		task := asynq.NewTask(services.TypeReportExport, []byte("not json"))

		err = processor.ProcessExport(ctx, task)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal payload")
	})
}

func TestCleanupProcessor_CleanupExports(t *testing.T) {
	ctx := context.Background()
	cfg := helpers.LoadTestConfig()

	store, err := storage.NewLocalStorage(t.TempDir(), helpers.TestLogger())
	require.NoError(t, err)

	// Fresh files survive cleanup
	_, err = store.Upload(ctx, "exports/fresh.xlsx", strings.NewReader("x"), "")
	require.NoError(t, err)

	processor := workers.NewCleanupProcessor(store, cfg, helpers.TestLogger())
	err = processor.CleanupExports(ctx, asynq.NewTask(workers.TypeCleanupExports, nil))
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "exports/fresh.xlsx")
	require.NoError(t, err)
	assert.True(t, exists)
}
