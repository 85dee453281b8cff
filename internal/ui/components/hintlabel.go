package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var _ desktop.Hoverable = (*HintLabel)(nil)

// DefaultHintRunes is the preview length used by report list rows.
const DefaultHintRunes = 48

// maxTipLines bounds the hover popup for long multi-line messages.
const maxTipLines = 12

// HintLabel is a one-line, low importance preview of a longer message.
// Only the first line is shown, cut to a rune budget; hovering a shortened
// preview pops up the message in full.
type HintLabel struct {
	widget.BaseWidget

	message  string
	preview  string
	maxRunes int
	label    *widget.Label
	popup    *widget.PopUp
}

// NewHintLabel creates a preview of message at most maxRunes long.
// Budgets under 2 fall back to DefaultHintRunes.
func NewHintLabel(message string, maxRunes int) *HintLabel {
	if maxRunes < 2 {
		maxRunes = DefaultHintRunes
	}
	h := &HintLabel{maxRunes: maxRunes}
	h.label = widget.NewLabel("")
	h.label.Importance = widget.LowImportance
	h.setMessage(message)
	h.ExtendBaseWidget(h)
	return h
}

// SetText replaces the message.
func (h *HintLabel) SetText(message string) {
	h.setMessage(message)
	h.label.SetText(h.preview)
}

func (h *HintLabel) setMessage(message string) {
	h.message = message
	first, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	h.preview = shorten(first, h.maxRunes)
	h.label.Text = h.preview
}

// Shortened reports whether the preview hides part of the message.
func (h *HintLabel) Shortened() bool {
	return h.preview != strings.TrimSpace(h.message)
}

// MouseIn pops up the full message when the preview is shortened.
func (h *HintLabel) MouseIn(_ *desktop.MouseEvent) {
	if !h.Shortened() {
		return
	}
	c := fyne.CurrentApp().Driver().CanvasForObject(h)
	if c == nil {
		return
	}
	h.popup = widget.NewPopUp(widget.NewLabel(tipText(h.message)), c)
	h.popup.ShowAtRelativePosition(fyne.NewPos(0, h.Size().Height), h)
}

// MouseMoved is part of desktop.Hoverable.
func (h *HintLabel) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut dismisses the popup.
func (h *HintLabel) MouseOut() {
	if h.popup != nil {
		h.popup.Hide()
		h.popup = nil
	}
}

// CreateRenderer implements fyne.Widget.
func (h *HintLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.label)
}

// shorten cuts s to limit runes, the last being "…".
func shorten(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func tipText(message string) string {
	lines := strings.Split(strings.TrimSpace(message), "\n")
	if len(lines) > maxTipLines {
		lines = append(lines[:maxTipLines], "…")
	}
	return strings.Join(lines, "\n")
}
