package components

import (
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/whoops/internal/card"
)

// newTestCard builds a card whose content callback counts its invocations.
func newTestCard(calls *int, opts ...Option) *ExpandableCard {
	return NewExpandableCard(theme.ComputerIcon(), "Device information", "linux/amd64", func() fyne.CanvasObject {
		*calls++
		return widget.NewLabel("cpu: 8")
	}, opts...)
}

func TestExpandableCard_InitialState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	tests := []struct {
		name      string
		expanded  bool
		wantAngle float64
		wantCalls int
	}{
		{"collapsed by default", false, card.CollapsedAngle, 0},
		{"initially expanded", true, card.ExpandedAngle, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			c := newTestCard(&calls, WithExpanded(tt.expanded))

			assert.Equal(t, tt.expanded, c.Expanded())
			assert.Equal(t, tt.expanded, c.ContentVisible())
			assert.Equal(t, tt.wantAngle, c.Rotation())
			assert.Equal(t, tt.wantAngle, c.button.Chevron.Angle())
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestExpandableCard_TapCardThenButton(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	calls := 0
	c := newTestCard(&calls)
	w := test.NewWindow(c)
	defer w.Close()

	require.False(t, c.ContentVisible())
	require.Equal(t, card.CollapsedAngle, c.Rotation())

	test.Tap(c)
	assert.True(t, c.Expanded())
	assert.True(t, c.ContentVisible())
	assert.Equal(t, card.ExpandedAngle, c.RotationTarget())
	assert.Equal(t, 1, calls, "content is built on expansion")

	c.finishAnimations()
	assert.Equal(t, card.ExpandedAngle, c.Rotation())

	test.Tap(c.button)
	assert.False(t, c.Expanded())
	assert.Equal(t, card.CollapsedAngle, c.RotationTarget())

	c.finishAnimations()
	assert.False(t, c.ContentVisible())
	assert.Equal(t, card.CollapsedAngle, c.Rotation())
	assert.Equal(t, card.CollapsedAngle, c.button.Chevron.Angle())
}

func TestExpandableCard_CardAndButtonAreEquivalent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	viaCard, viaButton := 0, 0
	a := newTestCard(&viaCard)
	b := newTestCard(&viaButton)

	test.Tap(a)
	test.Tap(b.button)
	a.finishAnimations()
	b.finishAnimations()

	assert.Equal(t, a.Expanded(), b.Expanded())
	assert.Equal(t, a.ContentVisible(), b.ContentVisible())
	assert.Equal(t, a.Rotation(), b.Rotation())
}

func TestExpandableCard_EvenTogglesRestore(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	for _, initial := range []bool{false, true} {
		calls := 0
		c := newTestCard(&calls, WithExpanded(initial))

		for i := 0; i < 4; i++ {
			c.Toggle()
		}
		c.finishAnimations()

		assert.Equal(t, initial, c.Expanded())
		assert.Equal(t, initial, c.ContentVisible())
		assert.Equal(t, card.AngleFor(initial), c.Rotation())
	}
}

func TestExpandableCard_RapidToggleReverses(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	calls := 0
	c := newTestCard(&calls, WithAnimationDuration(time.Hour))
	c.Toggle()
	require.True(t, c.Expanded())

	// Freeze both animations halfway through the expansion.
	rotation, reveal := c.rotation.Value, c.reveal.Value
	rotation.Snap(card.CollapsedAngle)
	rotation.Retarget(card.ExpandedAngle)
	rotation.Step(0.5)
	reveal.Snap(0)
	reveal.Retarget(1)
	reveal.Step(0.5)
	c.Refresh()
	require.InDelta(t, -90, c.Rotation(), 1e-9)

	c.Toggle()

	assert.False(t, c.Expanded())
	assert.InDelta(t, -90, rotation.Start(), 1e-9, "rotation reverses from where it was")
	assert.InDelta(t, 0.5, reveal.Start(), 1e-9, "reveal reverses from where it was")
	assert.Equal(t, card.CollapsedAngle, c.RotationTarget())

	c.finishAnimations()
	assert.Equal(t, card.CollapsedAngle, c.Rotation())
	assert.False(t, c.ContentVisible())
}

func TestExpandableCard_ContentRebuiltAfterCollapse(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	calls := 0
	c := newTestCard(&calls, WithAnimationDuration(0))

	c.Toggle()
	c.Toggle()
	c.Toggle()

	assert.Equal(t, 2, calls)
	assert.True(t, c.ContentVisible())
}

func TestExpandableCard_StateStore(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	calls := 0
	first := newTestCard(&calls, WithStateStore(app.Preferences(), "card.device"))
	first.Toggle()

	second := newTestCard(&calls, WithStateStore(app.Preferences(), "card.device"))
	assert.True(t, second.Expanded(), "state should be restored from preferences")
	assert.True(t, second.ContentVisible())
}

func TestExpandableCard_OnToggle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var got []bool
	calls := 0
	c := newTestCard(&calls, WithOnToggle(func(expanded bool) {
		got = append(got, expanded)
	}))

	test.Tap(c)
	c.SetExpanded(true) // already expanded
	test.Tap(c.button)

	assert.Equal(t, []bool{true, false}, got)
}

func TestExpandableCard_MinSizeGrowsWhenExpanded(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	calls := 0
	c := newTestCard(&calls, WithMinWidth(300))
	w := test.NewWindow(c)
	defer w.Close()

	collapsed := c.MinSize()
	assert.GreaterOrEqual(t, collapsed.Width, float32(300))

	c.Toggle()
	c.finishAnimations()
	expanded := c.MinSize()

	assert.Greater(t, expanded.Height, collapsed.Height)
}

func TestExpandableCard_WheelOverBodyScrollsParent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	c := NewExpandableCard(theme.ComputerIcon(), "Threads", "", func() fyne.CanvasObject {
		lines := container.NewVBox()
		for i := 0; i < 30; i++ {
			lines.Add(widget.NewLabel(fmt.Sprintf("frame %d", i)))
		}
		return lines
	}, WithExpanded(true), WithAnimationDuration(0))
	scroll := container.NewVScroll(c)

	w := test.NewWindow(scroll)
	defer w.Close()
	w.SetPadded(false)
	w.Resize(fyne.NewSize(300, 300))
	require.Greater(t, c.MinSize().Height, float32(300))

	test.Scroll(w.Canvas(), fyne.NewPos(50, 150), 0, -50)

	assert.Equal(t, float32(50), scroll.Offset.Y)
}

func TestCollapsibleSection_RestoresSavedState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	store := card.MapStore{}
	body := widget.NewLabel("stack")

	first := NewCollapsibleSection(theme.ErrorIcon(), "Stack", "12 frames", body, store, "card.stack")
	assert.False(t, first.Expanded())
	first.Toggle()

	second := NewCollapsibleSection(theme.ErrorIcon(), "Stack", "12 frames", body, store, "card.stack")
	assert.True(t, second.Expanded())
	assert.True(t, second.ContentVisible())
}
