// internal/adapters/storage/local_test.go
package storage_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packtrack/packtrack-be/internal/adapters/storage"
	"github.com/packtrack/packtrack-be/test/helpers"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir(), helpers.TestLogger())
	require.NoError(t, err)

	t.Run("upload_and_download_round_trip", func(t *testing.T) {
		_, err := store.Upload(ctx, "exports/report-1.xlsx", strings.NewReader("sheet data"), "")
		require.NoError(t, err)

		data, err := store.Download(ctx, "exports/report-1.xlsx")
		require.NoError(t, err)
		assert.Equal(t, "sheet data", string(data))

		exists, err := store.Exists(ctx, "exports/report-1.xlsx")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("list_filters_by_prefix", func(t *testing.T) {
		_, err := store.Upload(ctx, "exports/report-2.xlsx", strings.NewReader("x"), "")
		require.NoError(t, err)
		_, err = store.Upload(ctx, "other/file.txt", strings.NewReader("y"), "")
		require.NoError(t, err)

		keys, err := store.List(ctx, "exports/")
		require.NoError(t, err)
		for _, key := range keys {
			assert.True(t, strings.HasPrefix(key, "exports/"))
		}
		assert.Contains(t, keys, "exports/report-2.xlsx")
		assert.NotContains(t, keys, "other/file.txt")
	})

	t.Run("presigned_url_requires_existing_file", func(t *testing.T) {
		url, err := store.GetPresignedURL(ctx, "exports/report-1.xlsx", time.Hour)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "file://"))

		_, err = store.GetPresignedURL(ctx, "exports/missing.xlsx", time.Hour)
		assert.Error(t, err)
	})

	t.Run("delete_is_idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "exports/report-1.xlsx"))
		require.NoError(t, store.Delete(ctx, "exports/report-1.xlsx"))

		exists, err := store.Exists(ctx, "exports/report-1.xlsx")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete_multiple_removes_batch", func(t *testing.T) {
		_, err := store.Upload(ctx, "exports/a.xlsx", strings.NewReader("a"), "")
		require.NoError(t, err)
		_, err = store.Upload(ctx, "exports/b.xlsx", strings.NewReader("b"), "")
		require.NoError(t, err)

		require.NoError(t, store.DeleteMultiple(ctx, []string{"exports/a.xlsx", "exports/b.xlsx"}))

		exists, err := store.Exists(ctx, "exports/a.xlsx")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
