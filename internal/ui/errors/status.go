package errors

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/whoops/internal/model"
)

// StatusBar summarises the report store. The indicator changes shape, not
// just colour:
//   - no reports: confirm icon (checkmark)
//   - reports present: error icon (X shape)
//
// A non-empty Status message replaces the summary text.
type StatusBar struct {
	widget.BaseWidget

	state       *model.ViewerState
	statusLabel *widget.Label
	indicator   *widget.Icon
}

// NewStatusBar creates a status bar bound to the viewer state.
func NewStatusBar(state *model.ViewerState) *StatusBar {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.ConfirmIcon()),
	}
	s.ExtendBaseWidget(s)

	state.Reports.AddListener(binding.NewDataListener(s.Update))
	state.Status.AddListener(binding.NewDataListener(s.Update))
	s.Update()

	return s
}

// Update refreshes the bar from the current state.
func (s *StatusBar) Update() {
	count := s.state.Reports.Length()
	message, _ := s.state.Status.Get()

	if count == 0 {
		s.indicator.SetResource(theme.ConfirmIcon())
	} else {
		s.indicator.SetResource(theme.ErrorIcon())
	}

	switch {
	case message != "":
		s.statusLabel.SetText(message)
	case count == 0:
		s.statusLabel.SetText("No crash reports")
	case count == 1:
		s.statusLabel.SetText("1 crash report")
	default:
		s.statusLabel.SetText(fmt.Sprintf("%d crash reports", count))
	}
}

// Text returns the text currently shown.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// SetMessage sets a transient message; "" restores the summary.
func (s *StatusBar) SetMessage(message string) {
	_ = s.state.Status.Set(message)
	s.Update()
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(s.indicator, s.statusLabel))
}
