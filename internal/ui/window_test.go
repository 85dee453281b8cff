package ui

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/logging"
	"github.com/shhac/whoops/internal/model"
	"github.com/shhac/whoops/internal/storage"
	"github.com/shhac/whoops/internal/ui/components"
	"github.com/shhac/whoops/internal/card"
)

// fakeController serves reports from a MemoryRepository.
type fakeController struct {
	state     *model.ViewerState
	repo      *storage.MemoryRepository
	reloadErr error
}

func newFakeController(t *testing.T, reports ...domain.Report) *fakeController {
	t.Helper()
	repo := storage.NewMemoryRepository()
	for _, r := range reports {
		require.NoError(t, repo.SaveReport(r))
	}
	return &fakeController{state: model.NewViewerState(), repo: repo}
}

func (f *fakeController) State() *model.ViewerState { return f.state }
func (f *fakeController) Logger() *slog.Logger { return logging.NewNopLogger() }
func (f *fakeController) Version() string { return "test" }
func (f *fakeController) AnimationDuration() time.Duration { return 0 }

func (f *fakeController) Reload() error {
	if f.reloadErr != nil {
		return f.reloadErr
	}
	reports, err := f.repo.ListReports(0)
	if err != nil {
		return err
	}
	return f.state.SetReports(reports)
}

func (f *fakeController) DeleteReport(id string) error {
	if err := f.repo.DeleteReport(id); err != nil {
		return err
	}
	return f.Reload()
}

func (f *fakeController) ClearReports() error {
	if err := f.repo.ClearReports(); err != nil {
		return err
	}
	return f.Reload()
}

func report(id string, age time.Duration) domain.Report {
	return domain.Report{
		ID:        id,
		Timestamp: time.Now().Add(-age),
		Kind:      domain.KindPanic,
		Title:     "Panic " + id,
		Message:   "boom",
		Device:    domain.Device{OS: "linux", Arch: "amd64"},
	}
}

func TestReportWindow_LoadsAndSelects(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newFakeController(t, report("aaaa", 0), report("bbbb", time.Minute))
	w := NewReportWindow(app, ctrl)
	defer w.Window().Close()

	require.Len(t, w.Reports().Shown(), 2)
	assert.Nil(t, w.Detail().Report())

	w.Reports().Select(1)
	w.showSelected()
	require.NotNil(t, w.Detail().Report())
	assert.Equal(t, "bbbb", w.Detail().Report().ID)
	assert.Len(t, w.Detail().Cards(), 3)
}

func TestReportWindow_CardStateUsesPreferences(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newFakeController(t, report("aaaa", 0))
	w := NewReportWindow(app, ctrl)
	defer w.Window().Close()

	w.Reports().Select(0)
	w.showSelected()
	device := w.Detail().Cards()[1]
	test.Tap(device)

	assert.True(t, app.Preferences().Bool(card.KeyDevice))
}

func TestReportWindow_DeleteClearsSelection(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newFakeController(t, report("aaaa", 0), report("bbbb", time.Minute))
	w := NewReportWindow(app, ctrl)
	defer w.Window().Close()

	w.Reports().Select(0)
	w.showSelected()
	w.DeleteReport("aaaa")

	assert.Nil(t, w.Detail().Report())
	shown := w.Reports().Shown()
	require.Len(t, shown, 1)
	assert.Equal(t, "bbbb", shown[0].ID)
}

func TestReportWindow_Clear(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newFakeController(t, report("aaaa", 0), report("bbbb", time.Minute))
	w := NewReportWindow(app, ctrl)
	defer w.Window().Close()

	w.ClearReports()
	assert.Empty(t, w.Reports().Shown())
	assert.Equal(t, "No crash reports", w.statusBar.Text())
}

func TestReportWindow_CopySelected(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newFakeController(t, report("aaaa", 0))
	w := NewReportWindow(app, ctrl)
	defer w.Window().Close()

	w.CopySelected()
	assert.Empty(t, app.Clipboard().Content(), "nothing selected")

	w.Reports().Select(0)
	w.showSelected()
	w.CopySelected()
	assert.Contains(t, app.Clipboard().Content(), `"id": "aaaa"`)
	assert.Equal(t, "Copied report aaaa", w.statusBar.Text())
}

func TestReportWindow_SetMode(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newFakeController(t)
	w := NewReportWindow(app, ctrl)
	defer w.Window().Close()

	w.SetMode(components.ModeRaw)
	mode, _ := ctrl.state.Mode.Get()
	assert.Equal(t, components.ModeRaw, mode)
	assert.Equal(t, components.ModeRaw, w.Detail().Mode())
}

func TestReportWindow_ReloadFailureKeepsWindow(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := newFakeController(t)
	ctrl.reloadErr = errors.New("disk on fire")
	w := NewReportWindow(app, ctrl)
	defer w.Window().Close()

	assert.Empty(t, w.Reports().Shown())
}

func TestShortcutTableLabelsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range shortcuts {
		assert.False(t, seen[s.label], "duplicate shortcut %s", s.label)
		seen[s.label] = true
		assert.NotNil(t, s.run)
	}
}
