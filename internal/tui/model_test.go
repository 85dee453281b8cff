package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/whoops/internal/card"
	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/logging"
	"github.com/shhac/whoops/internal/storage"
)

func seededRepo(t *testing.T) *storage.MemoryRepository {
	t.Helper()
	repo := storage.NewMemoryRepository()
	now := time.Now()
	for _, r := range []domain.Report{
		{ID: "aaaa", Timestamp: now, Kind: domain.KindPanic, Title: "Runtime Error", Message: "nil pointer dereference",
			Stack: "goroutine 1 [running]:\nmain.main()", Device: domain.Device{OS: "linux", Arch: "amd64"}},
		{ID: "bbbb", Timestamp: now.Add(-time.Minute), Kind: domain.KindError, Title: "Service Unavailable", Message: "connection refused",
			Status: &domain.Status{Code: "Unavailable", Message: "connection refused"}},
	} {
		require.NoError(t, repo.SaveReport(r))
	}
	return repo
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, repo storage.Repository, store card.Store) Model {
	t.Helper()
	m := New(repo, logging.NewNopLogger(), Options{Store: store})
	msg := m.Init()()
	m, _ = update(t, m, msg)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
	return m
}

func TestModel_LoadsReports(t *testing.T) {
	m := loaded(t, seededRepo(t), nil)

	require.Len(t, m.shown, 2)
	assert.Equal(t, "aaaa", m.shown[0].ID)
	view := m.View()
	assert.Contains(t, view, "2 crash reports")
	assert.Contains(t, view, "Runtime Error")
}

func TestModel_OpenAndToggleWithKeys(t *testing.T) {
	store := card.MapStore{}
	m := loaded(t, seededRepo(t), store)
	m.opts.Duration = 0

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, detailView, m.mode)
	require.Len(t, m.cards, 3)
	assert.True(t, m.cards[0].Focused)
	assert.True(t, m.cards[0].Expanded(), "exception card starts expanded")
	assert.False(t, m.cards[1].Expanded())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.cards[1].Expanded())
	assert.True(t, store[card.KeyDevice])
	assert.Contains(t, m.View(), "linux")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.cards[1].Expanded(), "enter toggles like space")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, listView, m.mode)
	assert.Nil(t, m.cards)
}

func TestModel_AnimatedToggleSchedulesFrames(t *testing.T) {
	m := loaded(t, seededRepo(t), nil)
	m.opts.Duration = DefaultDuration

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, cmd)

	device := m.cards[1]
	for device.Animating() {
		m, _ = update(t, m, FrameMsg{CardID: device.ID})
	}
	assert.Equal(t, card.ExpandedAngle, device.Angle())
}

func TestModel_MouseClickTogglesCard(t *testing.T) {
	m := loaded(t, seededRepo(t), nil)
	m.opts.Duration = 0
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	top := m.cardBounds()[2][0]
	m, _ = update(t, m, tea.MouseMsg{
		X: 5, Y: top + detailHeaderLines,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, 2, m.focus)
	assert.True(t, m.cards[2].Expanded())
}

func TestModel_ExpandAndCollapseAll(t *testing.T) {
	m := loaded(t, seededRepo(t), nil)
	m.opts.Duration = 0
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.cards, 4, "status card for gRPC reports")

	m, _ = update(t, m, runes("e"))
	for _, c := range m.cards {
		assert.True(t, c.Expanded())
	}
	m, _ = update(t, m, runes("E"))
	for _, c := range m.cards {
		assert.False(t, c.Expanded())
	}
}

func TestModel_Filter(t *testing.T) {
	m := loaded(t, seededRepo(t), nil)

	m, _ = update(t, m, runes("/"))
	require.True(t, m.filtering)
	m, _ = update(t, m, runes("refused"))
	require.Len(t, m.shown, 1)
	assert.Equal(t, "bbbb", m.shown[0].ID)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.filtering)
	assert.Len(t, m.shown, 2)
}

func TestModel_DeleteNeedsConfirmation(t *testing.T) {
	repo := seededRepo(t)
	m := loaded(t, repo, nil)

	m, cmd := update(t, m, runes("d"))
	assert.Nil(t, cmd)
	assert.Equal(t, "aaaa", m.pendingDelete)

	m, cmd = update(t, m, runes("d"))
	require.NotNil(t, cmd)
	m, cmd = update(t, m, cmd())
	require.NotNil(t, cmd, "deletion reloads the list")
	m, _ = update(t, m, cmd())

	require.Len(t, m.shown, 1)
	assert.Equal(t, "bbbb", m.shown[0].ID)
	_, err := repo.LoadReport("aaaa")
	assert.Error(t, err)
}

func TestModel_OtherKeyCancelsDelete(t *testing.T) {
	m := loaded(t, seededRepo(t), nil)

	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.pendingDelete)
}

func TestModel_Quit(t *testing.T) {
	m := loaded(t, seededRepo(t), nil)
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
