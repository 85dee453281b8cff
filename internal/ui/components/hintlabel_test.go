package components

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 8, "short"},
		{"exactly8", 8, "exactly8"},
		{"runtime error: index out of range", 8, "runtime…"},
		{"héllo wörld", 6, "héllo…"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shorten(tt.in, tt.limit), tt.in)
	}
}

func TestHintLabel_FirstLineOnly(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHintLabel("assignment to entry in nil map\n\ngoroutine 1 [running]", 0)
	assert.Equal(t, "assignment to entry in nil map", h.label.Text)
	assert.True(t, h.Shortened())
}

func TestHintLabel_SetText(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHintLabel("nil pointer dereference", 10)
	assert.True(t, h.Shortened())
	assert.Equal(t, "nil point…", h.label.Text)

	h.SetText("ok")
	assert.False(t, h.Shortened())
	assert.Equal(t, "ok", h.label.Text)
}

func TestHintLabel_DefaultBudget(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHintLabel("x", 0)
	assert.Equal(t, DefaultHintRunes, h.maxRunes)
}

func TestTipText_CapsLines(t *testing.T) {
	long := strings.Repeat("frame\n", maxTipLines+5)
	lines := strings.Split(tipText(long), "\n")
	assert.Len(t, lines, maxTipLines+1)
	assert.Equal(t, "…", lines[maxTipLines])
}
