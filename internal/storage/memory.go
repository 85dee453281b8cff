package storage

import (
	"fmt"
	"sync"

	"github.com/shhac/whoops/internal/domain"
	apperrors "github.com/shhac/whoops/internal/errors"
)

// MemoryRepository implements Repository using in-memory storage for tests
type MemoryRepository struct {
	reports map[string]domain.Report
	mu      sync.RWMutex
}

// NewMemoryRepository creates a new in-memory storage repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		reports: make(map[string]domain.Report),
	}
}

// SaveReport stores a report in memory
func (m *MemoryRepository) SaveReport(report domain.Report) error {
	if err := validateReportID(report.ID); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidReportID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports[report.ID] = report
	return nil
}

// LoadReport retrieves a report from memory
func (m *MemoryRepository) LoadReport(id string) (*domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	report, ok := m.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %q: %w", id, apperrors.ErrReportNotFound)
	}
	return &report, nil
}

// ListReports returns stored reports newest first
func (m *MemoryRepository) ListReports(limit int) ([]domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reports := make([]domain.Report, 0, len(m.reports))
	for _, r := range m.reports {
		reports = append(reports, r)
	}
	sortNewestFirst(reports)

	if limit > 0 && limit < len(reports) {
		reports = reports[:limit]
	}
	return reports, nil
}

// DeleteReport removes a report from memory
func (m *MemoryRepository) DeleteReport(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reports[id]; !ok {
		return fmt.Errorf("report %q: %w", id, apperrors.ErrReportNotFound)
	}
	delete(m.reports, id)
	return nil
}

// ClearReports removes all reports
func (m *MemoryRepository) ClearReports() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports = make(map[string]domain.Report)
	return nil
}
