// Package modal holds the dismissal policy of the single page-level modal.
package modal

import "strings"

// RootID is the DOM id of the only modal container on the page.
const RootID = "modal-root"

// Reason names the interaction that asked the modal to close.
type Reason string

const (
	ReasonBackdrop Reason = "backdrop"
	ReasonEscape   Reason = "escape"
	ReasonContent  Reason = "content"
	ReasonButton   Reason = "button"
	ReasonUnknown  Reason = ""
)

// ParseReason maps a query value to a Reason.
func ParseReason(raw string) Reason {
	switch r := Reason(strings.ToLower(strings.TrimSpace(raw))); r {
	case ReasonBackdrop, ReasonEscape, ReasonContent, ReasonButton:
		return r
	case "esc", "escape-key":
		return ReasonEscape
	default:
		return ReasonUnknown
	}
}

// Dismisses reports whether r closes the modal. Clicks inside the content
// never do; the close button, the backdrop and Escape always do.
func Dismisses(r Reason) bool {
	switch r {
	case ReasonBackdrop, ReasonEscape, ReasonButton:
		return true
	default:
		return false
	}
}
