package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	_ fyne.Tappable     = (*ToggleButton)(nil)
	_ desktop.Hoverable = (*ToggleButton)(nil)
)

// toggleButtonSize matches a 24dp filled tonal icon button.
const toggleButtonSize = 24

// ToggleButton is a small round tonal button holding a rotatable chevron.
type ToggleButton struct {
	widget.BaseWidget

	Chevron  *Chevron
	OnTapped func()

	hovered bool
}

// NewToggleButton creates a button whose chevron starts at angle.
func NewToggleButton(angle float64, tapped func()) *ToggleButton {
	b := &ToggleButton{Chevron: NewChevron(angle), OnTapped: tapped}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped implements fyne.Tappable.
func (b *ToggleButton) Tapped(_ *fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// MouseIn highlights the button.
func (b *ToggleButton) MouseIn(_ *desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseMoved is required by desktop.Hoverable but needs no action.
func (b *ToggleButton) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut removes the highlight.
func (b *ToggleButton) MouseOut() {
	b.hovered = false
	b.Refresh()
}

// Cursor implements desktop.Cursorable.
func (b *ToggleButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget.
func (b *ToggleButton) CreateRenderer() fyne.WidgetRenderer {
	r := &toggleButtonRenderer{
		button: b,
		circle: canvas.NewCircle(theme.Color(theme.ColorNameButton)),
	}
	r.Refresh()
	return r
}

type toggleButtonRenderer struct {
	button *ToggleButton
	circle *canvas.Circle
}

func (r *toggleButtonRenderer) Layout(size fyne.Size) {
	d := fyne.Min(size.Width, size.Height)
	off := fyne.NewPos((size.Width-d)/2, (size.Height-d)/2)
	r.circle.Move(off)
	r.circle.Resize(fyne.NewSquareSize(d))

	inner := d * 0.75
	r.button.Chevron.Move(off.AddXY((d-inner)/2, (d-inner)/2))
	r.button.Chevron.Resize(fyne.NewSquareSize(inner))
}

func (r *toggleButtonRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(toggleButtonSize)
}

func (r *toggleButtonRenderer) Refresh() {
	if r.button.hovered {
		r.circle.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		r.circle.FillColor = theme.Color(theme.ColorNameButton)
	}
	r.circle.Refresh()
	r.Layout(r.button.Size())
	r.button.Chevron.Refresh()
}

func (r *toggleButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.circle, r.button.Chevron}
}

func (r *toggleButtonRenderer) Destroy() {}
