package storage

import "github.com/shhac/whoops/internal/domain"

// Repository defines persistence operations for crash reports.
type Repository interface {
	SaveReport(report domain.Report) error
	LoadReport(id string) (*domain.Report, error)
	// ListReports returns reports newest first. limit <= 0 means all.
	ListReports(limit int) ([]domain.Report, error)
	DeleteReport(id string) error
	ClearReports() error
}
