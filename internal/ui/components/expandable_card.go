package components

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/whoops/internal/anim"
	"github.com/shhac/whoops/internal/card"
	"github.com/shhac/whoops/internal/ui/colorutil"
)

// Compile-time interface checks.
var (
	_ fyne.Tappable      = (*ExpandableCard)(nil)
	_ desktop.Cursorable = (*ExpandableCard)(nil)
)

const (
	subtitleAlpha       = 0.62
	cardHorizontalInset = 8
	headerTextPadding   = 6
)

type cardOptions struct {
	expanded bool
	store    card.Store
	key      string
	duration time.Duration
	minWidth float32
	padding  float32
	onToggle func(expanded bool)
}

// Option configures an ExpandableCard.
type Option func(*cardOptions)

// WithExpanded sets the initial expansion state. Cards start collapsed.
func WithExpanded(expanded bool) Option {
	return func(o *cardOptions) { o.expanded = expanded }
}

// WithStateStore retains the expansion state under key in store, so a card
// recreated with the same key comes back the way the user left it.
func WithStateStore(store card.Store, key string) Option {
	return func(o *cardOptions) {
		o.store = store
		o.key = key
	}
}

// WithAnimationDuration overrides the rotation and reveal duration.
// Zero disables animation.
func WithAnimationDuration(d time.Duration) Option {
	return func(o *cardOptions) { o.duration = d }
}

// WithMinWidth sets a minimum width for the card.
func WithMinWidth(w float32) Option {
	return func(o *cardOptions) { o.minWidth = w }
}

// WithPadding sets the inset between the card edge and the expanded content.
func WithPadding(p float32) Option {
	return func(o *cardOptions) { o.padding = p }
}

// WithOnToggle registers a callback invoked after every toggle.
func WithOnToggle(fn func(expanded bool)) Option {
	return func(o *cardOptions) { o.onToggle = fn }
}

// ExpandableCard is an elevated card with a leading icon, a bold title, a
// dimmed subtitle and a round toggle button. Tapping the card or the button
// toggles a content region underneath the header.
//
// The content callback is deferred: it runs when the card expands and its
// result is dropped once a collapse finishes.
type ExpandableCard struct {
	widget.BaseWidget

	Icon     fyne.Resource
	Title    string
	Subtitle string

	content  func() fyne.CanvasObject
	state    *card.State
	opts     cardOptions
	button   *ToggleButton
	rotation *anim.Animator
	reveal   *anim.Animator

	body fyne.CanvasObject
}

// NewExpandableCard creates a card. icon, title, subtitle and content are
// required.
func NewExpandableCard(icon fyne.Resource, title, subtitle string, content func() fyne.CanvasObject, opts ...Option) *ExpandableCard {
	o := cardOptions{
		duration: canvas.DurationStandard,
		padding:  theme.Padding(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &ExpandableCard{
		Icon:     icon,
		Title:    title,
		Subtitle: subtitle,
		content:  content,
		opts:     o,
	}
	c.state = card.NewState(o.expanded, o.store, o.key)

	c.button = NewToggleButton(c.state.TargetAngle(), c.Toggle)
	c.rotation = anim.NewAnimator(anim.NewFloat(c.state.TargetAngle()), o.duration, func(v float64) {
		c.button.Chevron.SetAngle(v)
	})
	c.reveal = anim.NewAnimator(anim.NewFloat(revealFor(c.state.Expanded())), o.duration, c.onRevealTick)

	if c.state.Expanded() {
		c.body = c.content()
	}
	c.state.AddListener(c.apply)

	c.ExtendBaseWidget(c)
	return c
}

// Expanded reports whether the card is expanded.
func (c *ExpandableCard) Expanded() bool {
	return c.state.Expanded()
}

// Toggle flips the expansion state.
func (c *ExpandableCard) Toggle() {
	c.state.Toggle()
}

// SetExpanded expands or collapses the card.
func (c *ExpandableCard) SetExpanded(expanded bool) {
	c.state.Set(expanded)
}

// ContentVisible reports whether the content is currently on screen. It
// stays true while a collapse is still animating.
func (c *ExpandableCard) ContentVisible() bool {
	return c.body != nil && c.body.Visible()
}

// Rotation returns the toggle icon's current angle in degrees.
func (c *ExpandableCard) Rotation() float64 {
	return c.rotation.Value.Value()
}

// RotationTarget returns the angle the toggle icon is moving toward.
func (c *ExpandableCard) RotationTarget() float64 {
	return c.rotation.Value.Target()
}

// Tapped implements fyne.Tappable; a tap anywhere on the card toggles it.
func (c *ExpandableCard) Tapped(_ *fyne.PointEvent) {
	c.Toggle()
}

// Cursor implements desktop.Cursorable.
func (c *ExpandableCard) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget.
func (c *ExpandableCard) CreateRenderer() fyne.WidgetRenderer {
	fg := theme.Color(theme.ColorNameForeground)

	r := &expandableCardRenderer{
		card:       c,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)),
		icon:       widget.NewIcon(c.Icon),
		title:      canvas.NewText(c.Title, fg),
		subtitle:   canvas.NewText(c.Subtitle, colorutil.ApplyAlpha(fg, subtitleAlpha)),
		bodyHolder: container.NewStack(),
		fade:       canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)),
	}
	r.title.TextStyle = fyne.TextStyle{Bold: true}

	texts := container.New(
		layout.NewCustomPaddedLayout(headerTextPadding, headerTextPadding, headerTextPadding, headerTextPadding),
		container.NewVBox(r.title, r.subtitle),
	)
	r.header = container.NewBorder(nil, nil,
		container.NewCenter(r.icon),
		container.NewCenter(c.button),
		texts,
	)

	r.body = container.New(
		layout.NewCustomPaddedLayout(0, c.opts.padding, c.opts.padding, c.opts.padding),
		r.bodyHolder,
	)
	r.clip = container.NewScroll(container.NewWithoutLayout())
	r.clip.Direction = container.ScrollNone
	r.clip.Hide()

	r.Refresh()
	return r
}

// apply runs after every state change. Rotation and reveal are retargeted
// from the same value in the same call.
func (c *ExpandableCard) apply(expanded bool) {
	if expanded && c.body == nil {
		c.body = c.content()
	}
	if c.body != nil && expanded {
		c.body.Show()
	}

	c.rotation.AnimateTo(card.AngleFor(expanded))
	c.reveal.AnimateTo(revealFor(expanded))

	if c.opts.onToggle != nil {
		c.opts.onToggle(expanded)
	}
	c.Refresh()
}

func (c *ExpandableCard) onRevealTick(v float64) {
	if v == 0 && !c.state.Expanded() && c.body != nil {
		c.body.Hide()
		c.body = nil
	}
	c.Refresh()
}

// finishAnimations lands both animations on their targets.
func (c *ExpandableCard) finishAnimations() {
	c.rotation.Finish()
	c.reveal.Finish()
}

func revealFor(expanded bool) float64 {
	if expanded {
		return 1
	}
	return 0
}

type expandableCardRenderer struct {
	card *ExpandableCard

	background *canvas.Rectangle
	icon       *widget.Icon
	title      *canvas.Text
	subtitle   *canvas.Text
	header     *fyne.Container
	bodyHolder *fyne.Container
	body       *fyne.Container

	// clip crops the body only while the reveal runs. A resting body sits
	// outside it so wheel events reach the enclosing scroller.
	clip    *container.Scroll
	clipped bool
	fade    *canvas.Rectangle
}

func (r *expandableCardRenderer) Layout(size fyne.Size) {
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)

	headerHeight := r.header.MinSize().Height
	r.header.Move(fyne.NewPos(cardHorizontalInset, 0))
	r.header.Resize(fyne.NewSize(size.Width-2*cardHorizontalInset, headerHeight))

	bodySize := fyne.NewSize(size.Width, r.bodyHeight())
	r.clip.Move(fyne.NewPos(0, headerHeight))
	r.clip.Resize(bodySize)
	if r.clipped {
		r.body.Resize(fyne.NewSize(size.Width, r.bodyMin().Height))
	} else {
		r.body.Move(fyne.NewPos(0, headerHeight))
		r.body.Resize(bodySize)
	}
	r.fade.Move(fyne.NewPos(0, headerHeight))
	r.fade.Resize(bodySize)
}

func (r *expandableCardRenderer) MinSize() fyne.Size {
	header := r.header.MinSize()
	width := fyne.Max(header.Width+2*cardHorizontalInset, r.card.opts.minWidth)
	if r.card.body != nil {
		width = fyne.Max(width, r.bodyMin().Width)
	}
	return fyne.NewSize(width, header.Height+r.bodyHeight())
}

// bodyHeight is the visible share of the content's height.
func (r *expandableCardRenderer) bodyHeight() float32 {
	if r.card.body == nil {
		return 0
	}
	return r.bodyMin().Height * float32(r.card.reveal.Value.Value())
}

func (r *expandableCardRenderer) bodyMin() fyne.Size {
	pad := r.card.opts.padding
	return r.card.body.MinSize().AddWidthHeight(2*pad, pad)
}

func (r *expandableCardRenderer) Refresh() {
	c := r.card
	fg := theme.Color(theme.ColorNameForeground)
	bg := theme.Color(theme.ColorNameInputBackground)

	r.background.FillColor = bg
	r.background.StrokeColor = theme.Color(theme.ColorNameShadow)
	r.background.StrokeWidth = 1
	r.background.CornerRadius = theme.Size(theme.SizeNameSelectionRadius)

	r.icon.SetResource(c.Icon)
	r.title.Text = c.Title
	r.title.Color = fg
	r.title.TextSize = theme.TextSize()
	r.subtitle.Text = c.Subtitle
	r.subtitle.Color = colorutil.ApplyAlpha(fg, subtitleAlpha)
	r.subtitle.TextSize = theme.CaptionTextSize()

	if c.body != nil {
		r.bodyHolder.Objects = []fyne.CanvasObject{c.body}
	} else {
		r.bodyHolder.Objects = nil
	}
	reveal := float32(c.reveal.Value.Value())
	r.fade.FillColor = colorutil.ApplyAlpha(bg, 1-reveal)
	r.fade.Hidden = reveal >= 1 || c.body == nil
	r.setClipped(c.body != nil && c.reveal.Value.Running())
	if c.body == nil {
		r.body.Hide()
	} else {
		r.body.Show()
	}

	r.Layout(c.Size())
	r.bodyHolder.Refresh()
	r.title.Refresh()
	r.subtitle.Refresh()
	canvas.Refresh(c)
}

// setClipped moves the body into or out of the clip.
func (r *expandableCardRenderer) setClipped(clipped bool) {
	if clipped == r.clipped {
		return
	}
	r.clipped = clipped
	if clipped {
		r.body.Move(fyne.NewPos(0, 0))
		r.clip.Content = r.body
		r.clip.Show()
	} else {
		r.clip.Content = container.NewWithoutLayout()
		r.clip.Hide()
	}
	r.clip.Refresh()
}

func (r *expandableCardRenderer) Objects() []fyne.CanvasObject {
	if r.clipped {
		return []fyne.CanvasObject{r.background, r.header, r.clip, r.fade}
	}
	return []fyne.CanvasObject{r.background, r.header, r.body, r.fade}
}

func (r *expandableCardRenderer) Destroy() {}
