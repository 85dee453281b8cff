package detail

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/whoops/internal/card"
	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/logging"
	"github.com/shhac/whoops/internal/ui/components"
)

func sampleReport(withStatus bool) domain.Report {
	r := domain.Report{
		ID:        "0123456789abcdef",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Kind:      domain.KindPanic,
		Title:     "Runtime Error",
		Type:      "runtime.boundsError",
		Message:   "index out of range [3] with length 2",
		Stack:     "goroutine 1 [running]:\nmain.main()\n\t/tmp/main.go:5",
		Goroutine: "goroutine 1 [running]:",
		Device:    domain.Device{OS: "linux", Arch: "amd64", GoVersion: "go1.25.5", NumCPU: 8},
		Application: domain.Application{
			Name: "whoops", Version: "dev",
			Settings: map[string]string{"vcs.revision": "abc123"},
		},
	}
	if withStatus {
		r.Kind = domain.KindError
		r.Status = &domain.Status{Code: "Unavailable", Message: "connection refused", Proto: `{"code": 14}`}
	}
	return r
}

func TestBuildCards_Sections(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	store := card.MapStore{}
	cards := BuildCards(sampleReport(false), store, 0)
	require.Len(t, cards, 3)

	assert.Equal(t, "Runtime Error", cards[0].Title)
	assert.Equal(t, "runtime.boundsError: index out of range [3] with length 2", cards[0].Subtitle)
	assert.True(t, cards[0].Expanded(), "exception card starts expanded")
	assert.True(t, cards[0].ContentVisible())

	assert.Equal(t, "Device", cards[1].Title)
	assert.Equal(t, "linux/amd64, go1.25.5", cards[1].Subtitle)
	assert.False(t, cards[1].Expanded())
	assert.False(t, cards[1].ContentVisible())

	assert.Equal(t, "whoops dev", cards[2].Subtitle)

	withStatus := BuildCards(sampleReport(true), store, 0)
	require.Len(t, withStatus, 4)
	assert.Equal(t, "gRPC Status", withStatus[3].Title)
	assert.Equal(t, "Unavailable", withStatus[3].Subtitle)
}

func TestBuildCards_RemembersExpansion(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	store := card.MapStore{}
	first := BuildCards(sampleReport(false), store, 0)
	test.Tap(first[0])
	test.Tap(first[1])

	again := BuildCards(sampleReport(false), store, 0)
	assert.False(t, again[0].Expanded())
	assert.True(t, again[1].Expanded())
	assert.Equal(t, false, store[card.KeyException])
	assert.Equal(t, true, store[card.KeyDevice])
}

func TestRawJSON(t *testing.T) {
	raw, err := RawJSON(sampleReport(true))
	require.NoError(t, err)
	assert.Contains(t, raw, `"id": "0123456789abcdef"`)
	assert.Contains(t, raw, `"code": "Unavailable"`)
}

func TestPanel_SetReport(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p := NewPanel(card.MapStore{}, 0, logging.NewNopLogger())
	w := test.NewWindow(p)
	defer w.Close()

	assert.Nil(t, p.Report())
	assert.Empty(t, p.Cards())

	r := sampleReport(true)
	p.SetReport(&r)
	assert.Len(t, p.Cards(), 4)
	assert.Contains(t, p.RawText(), r.ID)

	p.SetExpandedAll(true)
	for _, c := range p.Cards() {
		assert.True(t, c.Expanded())
	}
	p.SetExpandedAll(false)
	for _, c := range p.Cards() {
		assert.False(t, c.Expanded())
	}

	p.SetMode(components.ModeRaw)
	assert.Equal(t, components.ModeRaw, p.Mode())

	p.SetReport(nil)
	assert.Nil(t, p.Report())
	assert.Empty(t, p.RawText())
	assert.Equal(t, components.ModeRaw, p.Mode(), "mode survives report changes")
}
