package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/shhac/whoops/internal/anim"
	"github.com/shhac/whoops/internal/card"
)

// DefaultDuration is the rotation and reveal duration of a terminal card.
const DefaultDuration = 300 * time.Millisecond

const (
	frameInterval = time.Second / 60
	minCardWidth  = 16
)

// FrameMsg advances the animations of the card with the given ID.
type FrameMsg struct {
	CardID int
}

type cardConfig struct {
	expanded bool
	store    card.Store
	key      string
	duration time.Duration
}

// CardOption configures a Card.
type CardOption func(*cardConfig)

// WithExpanded sets the initial expansion state. Cards start collapsed.
func WithExpanded(expanded bool) CardOption {
	return func(c *cardConfig) { c.expanded = expanded }
}

// WithStateStore keeps the expansion state under key in store.
func WithStateStore(store card.Store, key string) CardOption {
	return func(c *cardConfig) {
		c.store = store
		c.key = key
	}
}

// WithDuration overrides DefaultDuration. Zero disables animation.
func WithDuration(d time.Duration) CardOption {
	return func(c *cardConfig) { c.duration = d }
}

// Card is the terminal rendering of an expandable card: a bordered box with
// an icon, a bold title, a dimmed subtitle and a chevron that turns as the
// card opens. The body lines come from a deferred callback that runs on
// expansion; they are dropped once a collapse has finished.
type Card struct {
	ID       int
	Icon     string
	Title    string
	Subtitle string
	Focused  bool

	content  func() []string
	state    *card.State
	rotation *anim.Timeline
	reveal   *anim.Timeline
	lines    []string
	ticking  bool
}

// NewCard creates a card. id routes FrameMsgs and must be unique among the
// cards of one program.
func NewCard(id int, icon, title, subtitle string, content func() []string, opts ...CardOption) *Card {
	cfg := cardConfig{duration: DefaultDuration}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Card{
		ID:       id,
		Icon:     icon,
		Title:    title,
		Subtitle: subtitle,
		content:  content,
	}
	c.state = card.NewState(cfg.expanded, cfg.store, cfg.key)
	c.rotation = anim.NewTimeline(anim.NewFloat(c.state.TargetAngle()), cfg.duration)
	c.reveal = anim.NewTimeline(anim.NewFloat(revealFor(c.state.Expanded())), cfg.duration)
	c.reveal.Curve = anim.EaseOut
	if c.state.Expanded() {
		c.build()
	}
	c.state.AddListener(c.apply)
	return c
}

// Expanded reports whether the card is expanded.
func (c *Card) Expanded() bool {
	return c.state.Expanded()
}

// ContentVisible reports whether body lines are on screen, including while
// a collapse is still running.
func (c *Card) ContentVisible() bool {
	return c.lines != nil
}

// Angle returns the chevron's current rotation in degrees.
func (c *Card) Angle() float64 {
	return c.rotation.Value.Value()
}

// Reveal returns the shown fraction of the body, 0 to 1.
func (c *Card) Reveal() float64 {
	return c.reveal.Value.Value()
}

// Animating reports whether either animation is in flight.
func (c *Card) Animating() bool {
	return c.rotation.Value.Running() || c.reveal.Value.Running()
}

// Toggle flips the expansion state and returns the frame command, if any.
func (c *Card) Toggle() tea.Cmd {
	c.state.Toggle()
	return c.frames()
}

// SetExpanded expands or collapses the card.
func (c *Card) SetExpanded(expanded bool) tea.Cmd {
	c.state.Set(expanded)
	return c.frames()
}

// Finish lands both animations on their targets.
func (c *Card) Finish() {
	c.rotation.Finish()
	c.reveal.Finish()
	c.settle()
}

// Update advances the card on its own FrameMsg and ignores everything else.
func (c *Card) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(FrameMsg)
	if !ok || f.CardID != c.ID {
		return nil
	}
	c.ticking = false
	c.rotation.Advance(frameInterval)
	c.reveal.Advance(frameInterval)
	c.settle()
	return c.frames()
}

// apply runs after every state change; rotation and reveal are retargeted
// from the same value in the same call.
func (c *Card) apply(expanded bool) {
	if expanded && c.lines == nil {
		c.build()
	}
	c.rotation.AnimateTo(card.AngleFor(expanded))
	c.reveal.AnimateTo(revealFor(expanded))
	c.settle()
}

func (c *Card) build() {
	c.lines = c.content()
	if c.lines == nil {
		c.lines = []string{}
	}
}

// settle drops the body once a collapse has come to rest.
func (c *Card) settle() {
	if !c.state.Expanded() && !c.reveal.Value.Running() {
		c.lines = nil
	}
}

func (c *Card) frames() tea.Cmd {
	if c.ticking || !c.Animating() {
		return nil
	}
	c.ticking = true
	id := c.ID
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return FrameMsg{CardID: id} })
}

// View renders the card width cells wide.
func (c *Card) View(width int, th Theme) string {
	style := th.Card
	if c.Focused {
		style = th.FocusedCard
	}
	inner := max(width-style.GetHorizontalFrameSize(), minCardWidth)

	chevron := th.Chevron.Render("(" + ChevronGlyph(c.Angle()) + ")")
	head := th.Title.Render(truncate(c.Icon+" "+c.Title, inner-lipgloss.Width(chevron)-1))
	gap := max(inner-lipgloss.Width(head)-lipgloss.Width(chevron), 1)

	rows := []string{
		head + strings.Repeat(" ", gap) + chevron,
		th.Subtitle.Render(truncate(c.Subtitle, inner)),
	}

	if n := revealedLines(len(c.lines), c.Reveal()); n > 0 {
		body := th.Body
		if c.reveal.Value.Running() {
			body = th.Fading
		}
		rows = append(rows, th.Dim.Render(strings.Repeat("─", inner)))
		for _, line := range c.lines[:n] {
			rows = append(rows, body.Render(truncate(line, inner)))
		}
	}

	return style.Width(inner + style.GetHorizontalPadding()).Render(strings.Join(rows, "\n"))
}

func revealFor(expanded bool) float64 {
	if expanded {
		return 1
	}
	return 0
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
