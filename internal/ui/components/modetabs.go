package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Detail view modes.
const (
	ModeCards = "cards"
	ModeRaw   = "raw"
)

// modeLabels lists the modes in display order.
var modeLabels = []struct{ mode, label string }{
	{ModeCards, "Cards"},
	{ModeRaw, "Raw JSON"},
}

func labelFor(mode string) string {
	for _, m := range modeLabels {
		if m.mode == mode {
			return m.label
		}
	}
	return ""
}

func modeFor(label string) string {
	for _, m := range modeLabels {
		if m.label == label {
			return m.mode
		}
	}
	return ModeCards
}

// ModeTabs switches the report detail pane between the card stack and the
// raw JSON document with a horizontal radio group.
type ModeTabs struct {
	widget.BaseWidget

	selector *widget.RadioGroup
	views    map[string]fyne.CanvasObject
	stack    *fyne.Container

	onModeChange func(mode string)
}

// NewModeTabs creates the switch showing cards first.
func NewModeTabs(cards, raw fyne.CanvasObject) *ModeTabs {
	m := &ModeTabs{stack: container.NewStack()}

	labels := make([]string, len(modeLabels))
	for i, ml := range modeLabels {
		labels[i] = ml.label
	}
	m.selector = widget.NewRadioGroup(labels, func(label string) {
		mode := modeFor(label)
		m.show(mode)
		if m.onModeChange != nil {
			m.onModeChange(mode)
		}
	})
	m.selector.Horizontal = true
	m.selector.Selected = labelFor(ModeCards)
	m.selector.Required = true

	m.SetContent(cards, raw)
	m.ExtendBaseWidget(m)
	return m
}

// SetOnModeChange registers fn, called after the user or SetMode changes
// the mode.
func (m *ModeTabs) SetOnModeChange(fn func(mode string)) {
	m.onModeChange = fn
}

// SetMode selects ModeCards or ModeRaw. Unknown modes and the current mode
// are ignored.
func (m *ModeTabs) SetMode(mode string) {
	label := labelFor(mode)
	if label == "" || mode == m.Mode() {
		return
	}
	m.selector.SetSelected(label)
}

// Mode returns the selected mode.
func (m *ModeTabs) Mode() string {
	return modeFor(m.selector.Selected)
}

// SetContent replaces both views, keeping the current mode.
func (m *ModeTabs) SetContent(cards, raw fyne.CanvasObject) {
	m.views = map[string]fyne.CanvasObject{ModeCards: cards, ModeRaw: raw}
	m.show(m.Mode())
}

func (m *ModeTabs) show(mode string) {
	m.stack.Objects = []fyne.CanvasObject{m.views[mode]}
	m.stack.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (m *ModeTabs) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(m.selector, nil, nil, nil, m.stack))
}
