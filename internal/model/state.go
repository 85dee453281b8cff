package model

import (
	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/whoops/internal/domain"
)

// ViewerState represents the report viewer's state with Fyne data bindings.
// UI components bind to these values for reactive updates.
type ViewerState struct {
	// Reports loaded from storage, newest first
	Reports binding.UntypedList // []domain.Report

	// Selection state
	SelectedID binding.String

	// Detail pane mode: "cards" or "raw"
	Mode binding.String

	// Status bar message
	Status binding.String
}

// DefaultMode is the detail pane mode of a new state.
const DefaultMode = "cards"

// NewViewerState creates a new ViewerState with initialized bindings.
// Creating it needs no running fyne app; setting values does.
func NewViewerState() *ViewerState {
	mode := DefaultMode

	return &ViewerState{
		Reports:    binding.NewUntypedList(),
		SelectedID: binding.NewString(),
		Mode:       binding.BindString(&mode),
		Status:     binding.NewString(),
	}
}

// SetReports replaces the report list.
func (s *ViewerState) SetReports(reports []domain.Report) error {
	items := make([]any, len(reports))
	for i, r := range reports {
		items[i] = r
	}
	return s.Reports.Set(items)
}

// ReportAt returns the report at index i, or false when out of range.
func (s *ViewerState) ReportAt(i int) (domain.Report, bool) {
	v, err := s.Reports.GetValue(i)
	if err != nil {
		return domain.Report{}, false
	}
	r, ok := v.(domain.Report)
	return r, ok
}

// Selected returns the selected report, if any.
func (s *ViewerState) Selected() (domain.Report, bool) {
	id, _ := s.SelectedID.Get()
	if id == "" {
		return domain.Report{}, false
	}
	for i := 0; i < s.Reports.Length(); i++ {
		if r, ok := s.ReportAt(i); ok && r.ID == id {
			return r, true
		}
	}
	return domain.Report{}, false
}
