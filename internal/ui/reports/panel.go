// Package reports shows the stored crash reports as a filterable list.
package reports

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/model"
	"github.com/shhac/whoops/internal/ui/components"
)

// Kind filter choices.
const (
	filterAll    = "All"
	filterPanics = "Panics"
	filterErrors = "Errors"
)

// ReportPanel lists reports newest first with a text and kind filter.
// Selecting a row sets the viewer's SelectedID.
type ReportPanel struct {
	widget.BaseWidget

	state  *model.ViewerState
	logger *slog.Logger

	visible     binding.UntypedList
	listWidget  *widget.List
	statusLabel *widget.Label
	filterEntry *widget.Entry
	kindSelect  *widget.Select

	mu          sync.Mutex
	filterQuery string
	kindFilter  string // "" (all), domain.KindPanic or domain.KindError
	all         []domain.Report
	shown       []domain.Report

	onSelect func(r domain.Report)
	onDelete func(r domain.Report)

	content *fyne.Container
}

// NewReportPanel creates a panel that follows state.Reports.
func NewReportPanel(state *model.ViewerState, logger *slog.Logger) *ReportPanel {
	p := &ReportPanel{
		state:   state,
		logger:  logger,
		visible: binding.NewUntypedList(),
	}
	p.ExtendBaseWidget(p)
	p.buildUI()

	state.Reports.AddListener(binding.NewDataListener(p.Sync))
	return p
}

func (p *ReportPanel) buildUI() {
	p.statusLabel = widget.NewLabel("Reports (0)")

	p.filterEntry = widget.NewEntry()
	p.filterEntry.SetPlaceHolder("Filter reports...")
	p.filterEntry.OnChanged = func(query string) {
		p.mu.Lock()
		p.filterQuery = strings.ToLower(query)
		p.mu.Unlock()
		p.applyFilter()
	}

	p.kindSelect = widget.NewSelect([]string{filterAll, filterPanics, filterErrors}, func(selected string) {
		p.mu.Lock()
		switch selected {
		case filterPanics:
			p.kindFilter = domain.KindPanic
		case filterErrors:
			p.kindFilter = domain.KindError
		default:
			p.kindFilter = ""
		}
		p.mu.Unlock()
		p.applyFilter()
	})
	p.kindSelect.Selected = filterAll

	p.listWidget = widget.NewListWithData(p.visible, newRow, p.updateRow)
	p.listWidget.OnSelected = func(id widget.ListItemID) {
		r, ok := p.reportAt(id)
		if !ok {
			return
		}
		_ = p.state.SelectedID.Set(r.ID)
		if p.onSelect != nil {
			p.onSelect(r)
		}
	}

	header := container.NewVBox(
		p.statusLabel,
		container.NewBorder(nil, nil, nil, p.kindSelect, p.filterEntry),
	)
	p.content = container.NewBorder(header, nil, nil, nil, p.listWidget)
}

// newRow builds the row template:
// Border(left: kind icon, right: time + delete, center: VBox(title, hint)).
func newRow() fyne.CanvasObject {
	icon := widget.NewIcon(theme.ErrorIcon())
	title := widget.NewLabel("")
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis
	hint := components.NewHintLabel("", components.DefaultHintRunes)
	timeLabel := widget.NewLabel("")
	deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	deleteButton.Importance = widget.LowImportance

	return container.NewBorder(nil, nil,
		icon,
		container.NewHBox(timeLabel, deleteButton),
		container.NewVBox(title, hint),
	)
}

func (p *ReportPanel) updateRow(item binding.DataItem, obj fyne.CanvasObject) {
	v, err := item.(binding.Untyped).Get()
	if err != nil {
		p.logger.Error("failed to get report row", slog.Any("error", err))
		return
	}
	r, ok := v.(domain.Report)
	if !ok {
		p.logger.Error("invalid report row type")
		return
	}

	border := obj.(*fyne.Container)
	center := border.Objects[0].(*fyne.Container)
	icon := border.Objects[1].(*widget.Icon)
	right := border.Objects[2].(*fyne.Container)

	if r.Kind == domain.KindPanic {
		icon.SetResource(theme.ErrorIcon())
	} else {
		icon.SetResource(theme.WarningIcon())
	}
	center.Objects[0].(*widget.Label).SetText(rowTitle(r))
	center.Objects[1].(*components.HintLabel).SetText(r.Message)
	right.Objects[0].(*widget.Label).SetText(r.Timestamp.Local().Format("Jan 2 15:04:05"))
	right.Objects[1].(*widget.Button).OnTapped = func() {
		if p.onDelete != nil {
			p.onDelete(r)
		}
	}
}

func rowTitle(r domain.Report) string {
	switch {
	case r.Title != "":
		return r.Title
	case r.Type != "":
		return r.Type
	default:
		return r.Kind
	}
}

// Sync copies state.Reports into the panel and reapplies the filter.
func (p *ReportPanel) Sync() {
	n := p.state.Reports.Length()
	reports := make([]domain.Report, 0, n)
	for i := 0; i < n; i++ {
		if r, ok := p.state.ReportAt(i); ok {
			reports = append(reports, r)
		}
	}

	p.mu.Lock()
	p.all = reports
	p.mu.Unlock()
	p.applyFilter()
}

func (p *ReportPanel) applyFilter() {
	p.mu.Lock()
	query, kind := p.filterQuery, p.kindFilter
	var shown []domain.Report
	for _, r := range p.all {
		if matches(r, query, kind) {
			shown = append(shown, r)
		}
	}
	p.shown = shown
	total := len(p.all)
	p.mu.Unlock()

	items := make([]any, len(shown))
	for i, r := range shown {
		items[i] = r
	}
	if err := p.visible.Set(items); err != nil {
		p.logger.Error("failed to set report list", slog.Any("error", err))
		return
	}

	if query != "" || kind != "" {
		p.statusLabel.SetText(fmt.Sprintf("Reports (%d of %d)", len(shown), total))
	} else {
		p.statusLabel.SetText(fmt.Sprintf("Reports (%d)", total))
	}
}

func matches(r domain.Report, query, kind string) bool {
	if kind != "" && r.Kind != kind {
		return false
	}
	if query == "" {
		return true
	}
	for _, field := range []string{r.Title, r.Type, r.Message} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (p *ReportPanel) reportAt(i int) (domain.Report, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.shown) {
		return domain.Report{}, false
	}
	return p.shown[i], true
}

// Shown returns the reports that pass the current filter.
func (p *ReportPanel) Shown() []domain.Report {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Report(nil), p.shown...)
}

// SetFilter sets the text filter.
func (p *ReportPanel) SetFilter(query string) {
	p.filterEntry.SetText(query)
}

// Select selects the row at index i.
func (p *ReportPanel) Select(i int) {
	p.listWidget.Select(i)
}

// UnselectAll clears the list selection.
func (p *ReportPanel) UnselectAll() {
	p.listWidget.UnselectAll()
}

// SetOnSelect sets the callback invoked when a row is selected.
func (p *ReportPanel) SetOnSelect(fn func(r domain.Report)) {
	p.onSelect = fn
}

// SetOnDelete sets the callback invoked by a row's delete button.
func (p *ReportPanel) SetOnDelete(fn func(r domain.Report)) {
	p.onDelete = fn
}

// CreateRenderer implements fyne.Widget.
func (p *ReportPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
