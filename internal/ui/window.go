// Package ui assembles the desktop crash report viewer.
package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/model"
	"github.com/shhac/whoops/internal/ui/detail"
	uierrors "github.com/shhac/whoops/internal/ui/errors"
	"github.com/shhac/whoops/internal/ui/reports"
	"github.com/shhac/whoops/internal/ui/settings"
)

// AppController defines the app-level operations the window needs.
type AppController interface {
	State() *model.ViewerState
	Logger() *slog.Logger
	Version() string
	AnimationDuration() time.Duration
	Reload() error
	DeleteReport(id string) error
	ClearReports() error
}

// ReportWindow is the main viewer window: report list on the left, the
// selected report's cards on the right.
type ReportWindow struct {
	fyneApp fyne.App
	window  fyne.Window
	app     AppController
	state   *model.ViewerState
	logger  *slog.Logger

	toolbar     *widget.Toolbar
	reportPanel *reports.ReportPanel
	detailPanel *detail.Panel
	statusBar   *uierrors.StatusBar
}

// NewReportWindow creates the viewer window and loads the report list.
func NewReportWindow(fyneApp fyne.App, app AppController) *ReportWindow {
	window := fyneApp.NewWindow("Whoops - Crash Reports")

	w := &ReportWindow{
		fyneApp: fyneApp,
		window:  window,
		app:     app,
		state:   app.State(),
		logger:  app.Logger(),
	}

	settings.LoadThemePreference(fyneApp)
	duration := settings.AnimationDuration(fyneApp.Preferences(), app.AnimationDuration())

	w.reportPanel = reports.NewReportPanel(w.state, w.logger)
	w.detailPanel = detail.NewPanel(fyneApp.Preferences(), duration, w.logger)
	w.statusBar = uierrors.NewStatusBar(w.state)
	w.toolbar = w.buildToolbar()

	w.wireCallbacks()
	w.SetContent()
	w.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(1100, 750))

	w.Reload()
	return w
}

func (w *ReportWindow) buildToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), w.Reload),
		widget.NewToolbarAction(theme.ContentCopyIcon(), w.CopySelected),
		widget.NewToolbarAction(theme.DeleteIcon(), w.confirmDeleteSelected),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MoveDownIcon(), func() { w.detailPanel.SetExpandedAll(true) }),
		widget.NewToolbarAction(theme.MoveUpIcon(), func() { w.detailPanel.SetExpandedAll(false) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), w.confirmClear),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), w.showPreferences),
		widget.NewToolbarAction(theme.HelpIcon(), func() { ShowShortcutDialog(w.window) }),
		widget.NewToolbarAction(theme.InfoIcon(), func() { ShowAboutDialog(w.window, w.app.Version()) }),
	)
}

func (w *ReportWindow) wireCallbacks() {
	w.state.SelectedID.AddListener(binding.NewDataListener(w.showSelected))
	w.state.Reports.AddListener(binding.NewDataListener(w.showSelected))

	w.reportPanel.SetOnDelete(func(r domain.Report) {
		w.confirmDelete(r.ID)
	})

	w.detailPanel.SetOnModeChange(func(mode string) {
		_ = w.state.Mode.Set(mode)
	})
}

// showSelected mirrors SelectedID into the detail panel.
func (w *ReportWindow) showSelected() {
	r, ok := w.state.Selected()
	if !ok {
		if w.detailPanel.Report() != nil {
			w.detailPanel.SetReport(nil)
		}
		return
	}
	if cur := w.detailPanel.Report(); cur != nil && cur.ID == r.ID {
		return
	}
	w.detailPanel.SetReport(&r)
}

// Reload re-reads reports from storage.
func (w *ReportWindow) Reload() {
	if err := w.app.Reload(); err != nil {
		w.logger.Error("failed to load reports", slog.Any("error", err))
		uierrors.ShowError(err, w.window, w.Reload)
		return
	}
	w.reportPanel.Sync()
	w.showSelected()
	w.statusBar.SetMessage("")
}

// CopySelected puts the selected report's JSON on the clipboard.
func (w *ReportWindow) CopySelected() {
	raw := w.detailPanel.RawText()
	if raw == "" {
		return
	}
	w.fyneApp.Clipboard().SetContent(raw)
	w.statusBar.SetMessage(fmt.Sprintf("Copied report %s", w.detailPanel.Report().ID))
	w.logger.Debug("copied report", slog.String("id", w.detailPanel.Report().ID))
}

func (w *ReportWindow) confirmDeleteSelected() {
	if r := w.detailPanel.Report(); r != nil {
		w.confirmDelete(r.ID)
	}
}

func (w *ReportWindow) confirmDelete(id string) {
	dialog.ShowConfirm("Delete Report",
		"Delete this crash report?",
		func(confirmed bool) {
			if confirmed {
				w.DeleteReport(id)
			}
		},
		w.window,
	)
}

// DeleteReport removes a report and clears the selection when it was shown.
func (w *ReportWindow) DeleteReport(id string) {
	if cur, _ := w.state.SelectedID.Get(); cur == id {
		_ = w.state.SelectedID.Set("")
		w.reportPanel.UnselectAll()
	}
	if err := w.app.DeleteReport(id); err != nil {
		w.logger.Error("failed to delete report", slog.String("id", id), slog.Any("error", err))
		uierrors.ShowError(err, w.window, nil)
		return
	}
	w.reportPanel.Sync()
	w.showSelected()
	w.statusBar.SetMessage("")
}

func (w *ReportWindow) confirmClear() {
	dialog.ShowConfirm("Clear Reports",
		"Are you sure you want to delete all crash reports?",
		func(confirmed bool) {
			if confirmed {
				w.ClearReports()
			}
		},
		w.window,
	)
}

// ClearReports removes every report.
func (w *ReportWindow) ClearReports() {
	_ = w.state.SelectedID.Set("")
	w.reportPanel.UnselectAll()
	if err := w.app.ClearReports(); err != nil {
		w.logger.Error("failed to clear reports", slog.Any("error", err))
		uierrors.ShowError(err, w.window, nil)
		return
	}
	w.reportPanel.Sync()
	w.showSelected()
	w.statusBar.SetMessage("")
}

func (w *ReportWindow) showPreferences() {
	current := settings.AnimationDuration(w.fyneApp.Preferences(), w.app.AnimationDuration())
	settings.ShowPreferencesDialog(w.fyneApp, w.window, current, settings.PreferencesCallbacks{
		OnThemeChange: func(mode string) {
			settings.ApplyTheme(w.fyneApp, mode)
		},
		OnAnimationChange: func(d time.Duration) {
			w.rebuildDetail(d)
		},
		OnResetCards: func() {
			settings.ResetCardState(w.fyneApp.Preferences(), detail.SectionKeys)
			w.rebuildDetail(settings.AnimationDuration(w.fyneApp.Preferences(), w.app.AnimationDuration()))
		},
	})
}

// rebuildDetail replaces the detail panel so new cards pick up d and the
// stored expansion state.
func (w *ReportWindow) rebuildDetail(d time.Duration) {
	mode := w.detailPanel.Mode()
	w.detailPanel = detail.NewPanel(w.fyneApp.Preferences(), d, w.logger)
	w.detailPanel.SetOnModeChange(func(mode string) {
		_ = w.state.Mode.Set(mode)
	})
	w.detailPanel.SetMode(mode)
	w.SetContent()
	w.showSelected()
}

// SetContent builds and sets the window layout:
//
//	┌──────────────────────────────────────────────┐
//	│ Toolbar                                      │
//	├───────────────┬──────────────────────────────┤
//	│ Report list   │ Cards / Raw                  │
//	│               │                              │
//	├───────────────┴──────────────────────────────┤
//	│ Status bar                                   │
//	└──────────────────────────────────────────────┘
func (w *ReportWindow) SetContent() {
	split := container.NewHSplit(w.reportPanel, w.detailPanel)
	split.SetOffset(0.35)

	w.window.SetContent(container.NewBorder(w.toolbar, w.statusBar, nil, nil, split))
}

// SetMode switches the detail pane between cards and raw JSON.
func (w *ReportWindow) SetMode(mode string) {
	w.detailPanel.SetMode(mode)
	_ = w.state.Mode.Set(mode)
}

// Detail returns the detail panel.
func (w *ReportWindow) Detail() *detail.Panel {
	return w.detailPanel
}

// Reports returns the report list panel.
func (w *ReportWindow) Reports() *reports.ReportPanel {
	return w.reportPanel
}

// Window returns the underlying Fyne window.
func (w *ReportWindow) Window() fyne.Window {
	return w.window
}
