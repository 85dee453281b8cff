package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shhac/whoops/internal/domain"
	apperrors "github.com/shhac/whoops/internal/errors"
)

const (
	reportsDir     = "reports"
	maxReports     = 100
	filePermission = 0644
	dirPermission  = 0755
)

// JSONRepository implements Repository with one JSON file per report.
type JSONRepository struct {
	basePath string
	logger   *slog.Logger
}

// NewJSONRepository creates a new JSON-based storage repository
func NewJSONRepository(basePath string, logger *slog.Logger) *JSONRepository {
	return &JSONRepository{
		basePath: basePath,
		logger:   logger,
	}
}

// SaveReport writes a report and prunes the oldest reports beyond maxReports.
func (r *JSONRepository) SaveReport(report domain.Report) error {
	path, err := r.reportPath(report.ID)
	if err != nil {
		return err
	}
	if err := r.ensureReportsDir(); err != nil {
		return fmt.Errorf("ensure reports directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := atomicWriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write report file: %w: %w", apperrors.ErrStorageUnavailable, err)
	}

	r.logger.Debug("saved report",
		slog.String("id", report.ID),
		slog.String("path", path))

	return r.prune()
}

// LoadReport reads a single report.
func (r *JSONRepository) LoadReport(id string) (*domain.Report, error) {
	path, err := r.reportPath(id)
	if err != nil {
		return nil, err
	}
	report, err := readReport(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("report %q: %w", id, apperrors.ErrReportNotFound)
		}
		return nil, err
	}

	r.logger.Debug("loaded report", slog.String("id", id))
	return report, nil
}

// ListReports returns reports newest first. Unreadable files are skipped.
func (r *JSONRepository) ListReports(limit int) ([]domain.Report, error) {
	dir := filepath.Join(r.basePath, reportsDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// No reports yet, not an error
			return []domain.Report{}, nil
		}
		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	reports := make([]domain.Report, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		report, err := readReport(filepath.Join(dir, entry.Name()))
		if err != nil {
			r.logger.Warn("skipping unreadable report",
				slog.String("file", entry.Name()),
				slog.Any("error", err))
			continue
		}
		reports = append(reports, *report)
	}

	sortNewestFirst(reports)
	if limit > 0 && limit < len(reports) {
		reports = reports[:limit]
	}

	r.logger.Debug("listed reports", slog.Int("count", len(reports)))
	return reports, nil
}

// DeleteReport removes a report file.
func (r *JSONRepository) DeleteReport(id string) error {
	path, err := r.reportPath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("report %q: %w", id, apperrors.ErrReportNotFound)
		}
		return fmt.Errorf("delete report file: %w", err)
	}

	r.logger.Debug("deleted report", slog.String("id", id))
	return nil
}

// ClearReports removes every stored report.
func (r *JSONRepository) ClearReports() error {
	dir := filepath.Join(r.basePath, reportsDir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove reports directory: %w", err)
	}

	r.logger.Debug("cleared reports")
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	// Clean up temp file on any failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// validateReportID checks that an id is safe for use as a filename.
func validateReportID(id string) error {
	if id == "" {
		return apperrors.ValidationError{Field: "id", Message: "must not be empty"}
	}
	if strings.Contains(id, "..") {
		return apperrors.ValidationError{Field: "id", Message: `must not contain ".."`}
	}
	if strings.ContainsAny(id, "/\\") {
		return apperrors.ValidationError{Field: "id", Message: "must not contain path separators"}
	}
	if strings.ContainsRune(id, 0) {
		return apperrors.ValidationError{Field: "id", Message: "must not contain null bytes"}
	}
	return nil
}

func (r *JSONRepository) ensureReportsDir() error {
	path := filepath.Join(r.basePath, reportsDir)
	if err := os.MkdirAll(path, dirPermission); err != nil {
		return fmt.Errorf("create reports directory: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// reportPath validates id and resolves its file, refusing anything that
// escapes the reports directory.
func (r *JSONRepository) reportPath(id string) (string, error) {
	if err := validateReportID(id); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrInvalidReportID, err)
	}
	base := filepath.Join(r.basePath, reportsDir)
	path := filepath.Join(base, id+".json")
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("path %q escapes reports directory: %w", path, apperrors.ErrInvalidReportID)
	}
	return path, nil
}

// prune deletes the oldest reports beyond maxReports.
func (r *JSONRepository) prune() error {
	reports, err := r.ListReports(0)
	if err != nil {
		return err
	}
	for _, old := range reports[min(len(reports), maxReports):] {
		if err := r.DeleteReport(old.ID); err != nil {
			return fmt.Errorf("prune report %s: %w", old.ID, err)
		}
	}
	return nil
}

func readReport(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &report, nil
}

func sortNewestFirst(reports []domain.Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Timestamp.After(reports[j].Timestamp)
	})
}
