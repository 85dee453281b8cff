package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/shhac/whoops/internal/ui/components"
)

// shortcut is one window-level key binding. The same table drives the
// bindings and the shortcut reference dialog.
type shortcut struct {
	action   string
	label    string
	key      fyne.KeyName
	modifier fyne.KeyModifier
	run      func(w *ReportWindow)
}

var shortcuts = []shortcut{
	{"Reload Reports", "⌘ R", fyne.KeyR, fyne.KeyModifierSuper, (*ReportWindow).Reload},
	{"Copy Report", "⌘ ⇧ C", fyne.KeyC, fyne.KeyModifierSuper | fyne.KeyModifierShift, (*ReportWindow).CopySelected},
	{"Delete Report", "⌘ ⌫", fyne.KeyBackspace, fyne.KeyModifierSuper, (*ReportWindow).confirmDeleteSelected},
	{"Expand All Cards", "⌘ E", fyne.KeyE, fyne.KeyModifierSuper, func(w *ReportWindow) { w.detailPanel.SetExpandedAll(true) }},
	{"Collapse All Cards", "⌘ ⇧ E", fyne.KeyE, fyne.KeyModifierSuper | fyne.KeyModifierShift, func(w *ReportWindow) { w.detailPanel.SetExpandedAll(false) }},
	{"Cards View", "⌘ 1", fyne.Key1, fyne.KeyModifierSuper, func(w *ReportWindow) { w.SetMode(components.ModeCards) }},
	{"Raw View", "⌘ 2", fyne.Key2, fyne.KeyModifierSuper, func(w *ReportWindow) { w.SetMode(components.ModeRaw) }},
	{"Preferences", "⌘ ,", fyne.KeyComma, fyne.KeyModifierSuper, (*ReportWindow).showPreferences},
}

// setupKeyboardShortcuts registers the shortcut table on the window canvas.
func (w *ReportWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	for _, s := range shortcuts {
		canvas.AddShortcut(&desktop.CustomShortcut{
			KeyName:  s.key,
			Modifier: s.modifier,
		}, func(fyne.Shortcut) {
			w.logger.Debug("keyboard shortcut: " + s.action)
			s.run(w)
		})
	}

	// Escape: clear the selection
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			w.logger.Debug("keyboard shortcut: escape (clear selection)")
			_ = w.state.SelectedID.Set("")
			w.reportPanel.UnselectAll()
			w.showSelected()
		}
	})

	w.logger.Info("keyboard shortcuts configured")
}
