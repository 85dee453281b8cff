package tui

import (
	"math"

	"github.com/shhac/whoops/internal/card"
)

// chevronGlyphs are the arrow glyphs for an up-pointing chevron rotated
// counter-clockwise in 45° steps, from expanded (0°) to collapsed (-180°).
var chevronGlyphs = []string{"↑", "↖", "←", "↙", "↓"}

// ChevronGlyph returns the arrow closest to angle degrees.
func ChevronGlyph(angle float64) string {
	span := card.ExpandedAngle - card.CollapsedAngle
	step := span / float64(len(chevronGlyphs)-1)
	i := int(math.Round((card.ExpandedAngle - angle) / step))
	i = max(0, min(i, len(chevronGlyphs)-1))
	return chevronGlyphs[i]
}

// revealedLines returns how many of n lines are shown at reveal fraction v.
func revealedLines(n int, v float64) int {
	if v >= 1 {
		return n
	}
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) * v))
}
