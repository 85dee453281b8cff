package components

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Chevron draws an "expand less" caret rotated by an arbitrary angle.
// At 0 degrees it points up; positive angles rotate clockwise.
type Chevron struct {
	widget.BaseWidget

	angle float64
}

// NewChevron creates a chevron at the given angle in degrees.
func NewChevron(angle float64) *Chevron {
	c := &Chevron{angle: angle}
	c.ExtendBaseWidget(c)
	return c
}

// Angle returns the current rotation in degrees.
func (c *Chevron) Angle() float64 {
	return c.angle
}

// SetAngle rotates the chevron and redraws it.
func (c *Chevron) SetAngle(angle float64) {
	if c.angle == angle {
		return
	}
	c.angle = angle
	c.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (c *Chevron) CreateRenderer() fyne.WidgetRenderer {
	fg := theme.Color(theme.ColorNameForeground)
	r := &chevronRenderer{
		chevron: c,
		left:    canvas.NewLine(fg),
		right:   canvas.NewLine(fg),
	}
	r.Refresh()
	return r
}

type chevronRenderer struct {
	chevron     *Chevron
	left, right *canvas.Line
}

func (r *chevronRenderer) Layout(size fyne.Size) {
	cx, cy := size.Width/2, size.Height/2
	s := fyne.Min(size.Width, size.Height)

	// Caret points relative to the centre, pointing up.
	pts := [3][2]float64{
		{-0.3 * float64(s), 0.15 * float64(s)},
		{0, -0.15 * float64(s)},
		{0.3 * float64(s), 0.15 * float64(s)},
	}
	rad := r.chevron.angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	var pos [3]fyne.Position
	for i, p := range pts {
		x := p[0]*cos - p[1]*sin
		y := p[0]*sin + p[1]*cos
		pos[i] = fyne.NewPos(cx+float32(x), cy+float32(y))
	}

	r.left.Position1, r.left.Position2 = pos[0], pos[1]
	r.right.Position1, r.right.Position2 = pos[1], pos[2]
}

func (r *chevronRenderer) MinSize() fyne.Size {
	s := theme.IconInlineSize()
	return fyne.NewSquareSize(s)
}

func (r *chevronRenderer) Refresh() {
	fg := theme.Color(theme.ColorNameForeground)
	width := fyne.Max(1.5, theme.IconInlineSize()/10)
	for _, l := range []*canvas.Line{r.left, r.right} {
		l.StrokeColor = fg
		l.StrokeWidth = width
	}
	r.Layout(r.chevron.Size())
	canvas.Refresh(r.chevron)
}

func (r *chevronRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.left, r.right}
}

func (r *chevronRenderer) Destroy() {}
