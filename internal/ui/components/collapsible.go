package components

import (
	"fyne.io/fyne/v2"

	"github.com/shhac/whoops/internal/card"
)

// NewCollapsibleSection wraps an already-built object in an ExpandableCard.
// The section starts collapsed unless a value was saved under key. A nil
// store keeps the state for the card's lifetime only.
func NewCollapsibleSection(icon fyne.Resource, title, subtitle string, content fyne.CanvasObject, store card.Store, key string, opts ...Option) *ExpandableCard {
	opts = append([]Option{WithStateStore(store, key)}, opts...)
	return NewExpandableCard(icon, title, subtitle, func() fyne.CanvasObject {
		return content
	}, opts...)
}
