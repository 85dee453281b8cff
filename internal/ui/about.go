package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/whoops/internal/logging"
)

// ShowAboutDialog shows the version and where whoops writes its logs.
func ShowAboutDialog(parent fyne.Window, version string) {
	logDir, err := logging.LogDir("whoops")
	if err != nil {
		logDir = "unavailable"
	}

	logs := widget.NewLabel(logDir)
	logs.Selectable = true
	logs.TextStyle = fyne.TextStyle{Monospace: true}

	content := container.NewVBox(
		container.NewHBox(widget.NewIcon(theme.ErrorIcon()),
			widget.NewLabelWithStyle("Whoops", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})),
		widget.NewLabel("Crash reports for Go programs, version "+version),
		widget.NewSeparator(),
		container.New(layout.NewFormLayout(), widget.NewLabel("Logs"), logs),
	)
	dialog.ShowCustom("About Whoops", "Close", content, parent)
}

// ShowShortcutDialog lists the window's keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	rows := container.New(layout.NewFormLayout())
	for _, s := range shortcuts {
		rows.Add(widget.NewLabelWithStyle(s.label, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
		rows.Add(widget.NewLabel(s.action))
	}
	rows.Add(widget.NewLabelWithStyle("Esc", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	rows.Add(widget.NewLabel("Clear Selection"))

	dialog.ShowCustom("Keyboard Shortcuts", "Close", container.NewVScroll(rows), parent)
}
