package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/whoops/internal/domain"
	apperrors "github.com/shhac/whoops/internal/errors"
	"github.com/shhac/whoops/internal/logging"
)

var baseTime = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func sampleReport(id string, age time.Duration) domain.Report {
	return domain.Report{
		ID:        id,
		Timestamp: baseTime.Add(-age),
		Kind:      domain.KindPanic,
		Title:     "Panic",
		Message:   "boom " + id,
		Device:    domain.Device{OS: "linux", Arch: "amd64"},
	}
}

// repositories runs a test against both implementations.
func repositories(t *testing.T) map[string]Repository {
	return map[string]Repository{
		"json":   NewJSONRepository(t.TempDir(), logging.NewNopLogger()),
		"memory": NewMemoryRepository(),
	}
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			want := sampleReport("a1", 0)
			want.Status = &domain.Status{Code: "Unavailable", Message: "down"}
			require.NoError(t, repo.SaveReport(want))

			got, err := repo.LoadReport("a1")
			require.NoError(t, err)
			assert.Equal(t, want.Message, got.Message)
			assert.True(t, want.Timestamp.Equal(got.Timestamp))
			require.NotNil(t, got.Status)
			assert.Equal(t, "Unavailable", got.Status.Code)
		})
	}
}

func TestRepository_ListNewestFirstWithLimit(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.SaveReport(sampleReport("old", 2*time.Hour)))
			require.NoError(t, repo.SaveReport(sampleReport("new", 0)))
			require.NoError(t, repo.SaveReport(sampleReport("mid", time.Hour)))

			all, err := repo.ListReports(0)
			require.NoError(t, err)
			ids := make([]string, len(all))
			for i, r := range all {
				ids[i] = r.ID
			}
			assert.Equal(t, []string{"new", "mid", "old"}, ids)

			limited, err := repo.ListReports(2)
			require.NoError(t, err)
			assert.Len(t, limited, 2)
		})
	}
}

func TestRepository_DeleteAndClear(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.SaveReport(sampleReport("a", 0)))
			require.NoError(t, repo.SaveReport(sampleReport("b", time.Minute)))

			require.NoError(t, repo.DeleteReport("a"))
			_, err := repo.LoadReport("a")
			assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
			assert.ErrorIs(t, repo.DeleteReport("a"), apperrors.ErrReportNotFound)

			require.NoError(t, repo.ClearReports())
			reports, err := repo.ListReports(0)
			require.NoError(t, err)
			assert.Empty(t, reports)

			// Clearing twice is fine.
			assert.NoError(t, repo.ClearReports())
		})
	}
}

func TestJSONRepository_ListEmptyWhenMissingDir(t *testing.T) {
	repo := NewJSONRepository(filepath.Join(t.TempDir(), "nothing-here"), logging.NewNopLogger())
	reports, err := repo.ListReports(0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestJSONRepository_SkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONRepository(dir, logging.NewNopLogger())
	require.NoError(t, repo.SaveReport(sampleReport("good", 0)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, reportsDir, "bad.json"), []byte("{"), 0644))

	reports, err := repo.ListReports(0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "good", reports[0].ID)
}

func TestJSONRepository_PrunesOldest(t *testing.T) {
	repo := NewJSONRepository(t.TempDir(), logging.NewNopLogger())

	for i := 0; i <= maxReports; i++ {
		r := sampleReport(fmt.Sprintf("r%03d", i), time.Duration(maxReports-i)*time.Minute)
		require.NoError(t, repo.SaveReport(r))
	}

	reports, err := repo.ListReports(0)
	require.NoError(t, err)
	assert.Len(t, reports, maxReports)

	_, err = repo.LoadReport("r000")
	assert.ErrorIs(t, err, apperrors.ErrReportNotFound, "oldest report should be pruned")
}
