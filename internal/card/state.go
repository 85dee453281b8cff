// Package card holds the toolkit-independent state of an expandable card.
//
// A card has exactly two states, collapsed and expanded. Every renderer
// (desktop or terminal) derives both the toggle icon rotation and the
// content visibility from the single value held here.
package card

const (
	// ExpandedAngle is the toggle icon rotation, in degrees, when expanded.
	ExpandedAngle = 0.0
	// CollapsedAngle is the toggle icon rotation, in degrees, when collapsed.
	CollapsedAngle = -180.0
)

// Store is the host's save/restore hook for retained state.
// fyne.Preferences satisfies it.
type Store interface {
	BoolWithFallback(key string, fallback bool) bool
	SetBool(key string, value bool)
}

// State is the retained expansion state of one card instance.
type State struct {
	expanded  bool
	key       string
	store     Store
	listeners []func(expanded bool)
}

// NewState creates a state initialised to initial. When store and key are
// set, a previously saved value takes precedence over initial.
func NewState(initial bool, store Store, key string) *State {
	s := &State{expanded: initial, key: key, store: store}
	if s.restorable() {
		s.expanded = store.BoolWithFallback(key, initial)
	}
	return s
}

// Expanded reports whether the card is expanded.
func (s *State) Expanded() bool {
	return s.expanded
}

// Toggle flips the state and returns the new value.
func (s *State) Toggle() bool {
	s.set(!s.expanded)
	return s.expanded
}

// Set changes the state. Setting the current value is a no-op and does not
// notify listeners.
func (s *State) Set(expanded bool) {
	if s.expanded == expanded {
		return
	}
	s.set(expanded)
}

// AddListener registers fn to be called after every change.
func (s *State) AddListener(fn func(expanded bool)) {
	s.listeners = append(s.listeners, fn)
}

// TargetAngle returns the rest rotation for the current state.
func (s *State) TargetAngle() float64 {
	return AngleFor(s.expanded)
}

// AngleFor maps an expansion value to its rest rotation.
func AngleFor(expanded bool) float64 {
	if expanded {
		return ExpandedAngle
	}
	return CollapsedAngle
}

func (s *State) set(expanded bool) {
	s.expanded = expanded
	if s.restorable() {
		s.store.SetBool(s.key, expanded)
	}
	for _, fn := range s.listeners {
		fn(expanded)
	}
}

func (s *State) restorable() bool {
	return s.store != nil && s.key != ""
}

// MapStore is an in-memory Store used by the terminal viewer and tests.
type MapStore map[string]bool

// BoolWithFallback returns the stored value for key or fallback.
func (m MapStore) BoolWithFallback(key string, fallback bool) bool {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// SetBool stores value under key.
func (m MapStore) SetBool(key string, value bool) {
	m[key] = value
}
