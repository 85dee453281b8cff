package detail

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/whoops/internal/card"
	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/ui/components"
	"github.com/shhac/whoops/internal/ui/rawview"
)

// Panel shows the selected report, either as cards or as raw JSON.
type Panel struct {
	widget.BaseWidget

	store    card.Store
	duration time.Duration
	logger   *slog.Logger

	report *domain.Report
	cards  []*components.ExpandableCard
	raw    string
	tabs   *components.ModeTabs
}

// NewPanel creates an empty detail panel. store receives each card's
// expansion state; duration drives the card animations.
func NewPanel(store card.Store, duration time.Duration, logger *slog.Logger) *Panel {
	p := &Panel{
		store:    store,
		duration: duration,
		logger:   logger,
	}
	p.tabs = components.NewModeTabs(placeholder(), placeholder())
	p.ExtendBaseWidget(p)
	return p
}

// SetReport replaces the displayed report. nil shows the empty placeholder.
func (p *Panel) SetReport(r *domain.Report) {
	p.report = r
	p.cards = nil
	p.raw = ""

	if r == nil {
		p.tabs.SetContent(placeholder(), placeholder())
		return
	}

	p.cards = BuildCards(*r, p.store, p.duration)
	objects := make([]fyne.CanvasObject, len(p.cards))
	for i, c := range p.cards {
		objects[i] = c
	}

	raw, err := RawJSON(*r)
	if err != nil {
		p.logger.Error("failed to render raw report", slog.String("id", r.ID), slog.Any("error", err))
		raw = err.Error()
	}
	p.raw = raw

	p.tabs.SetContent(
		container.NewVScroll(container.NewVBox(objects...)),
		container.NewScroll(rawview.NewJSONView(raw)),
	)
	p.logger.Debug("showing report", slog.String("id", r.ID), slog.Int("cards", len(p.cards)))
}

// Report returns the displayed report, or nil.
func (p *Panel) Report() *domain.Report {
	return p.report
}

// Cards returns the section cards of the displayed report.
func (p *Panel) Cards() []*components.ExpandableCard {
	return p.cards
}

// RawText returns the displayed report as JSON, or "" when empty.
func (p *Panel) RawText() string {
	return p.raw
}

// SetExpandedAll expands or collapses every card.
func (p *Panel) SetExpandedAll(expanded bool) {
	for _, c := range p.cards {
		c.SetExpanded(expanded)
	}
}

// SetMode switches between components.ModeCards and components.ModeRaw.
func (p *Panel) SetMode(mode string) {
	p.tabs.SetMode(mode)
}

// Mode returns the current display mode.
func (p *Panel) Mode() string {
	return p.tabs.Mode()
}

// SetOnModeChange registers a callback for user mode switches.
func (p *Panel) SetOnModeChange(fn func(mode string)) {
	p.tabs.SetOnModeChange(fn)
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.tabs)
}

func placeholder() fyne.CanvasObject {
	l := widget.NewLabel("Select a report")
	l.Importance = widget.LowImportance
	return container.NewCenter(l)
}
