package card

// Keys under which each report section's expansion state is saved. The
// desktop and terminal viewers share them.
const (
	KeyException   = "card.exception"
	KeyDevice      = "card.device"
	KeyApplication = "card.application"
	KeyStatus      = "card.status"
)

// SectionKeys lists every section key in display order.
var SectionKeys = []string{KeyException, KeyDevice, KeyApplication, KeyStatus}
