// Package gallery implements the media carousel shown inside record popups.
//
// The carousel is stateless on the server: the current index travels in the
// query string and every request rebuilds a Gallery, applies one operation and
// renders the resulting View.
package gallery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a media item.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindPDF   Kind = "pdf"
)

var (
	// ErrEmpty is returned when a gallery is built without items.
	ErrEmpty = errors.New("gallery: no media items")
	// ErrIndexOutOfRange is returned by Jump for an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("gallery: index out of range")
	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("gallery: unknown media kind")
)

// ParseKind maps an authored type string to a Kind. Empty means image.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "image", "img":
		return KindImage, nil
	case "video":
		return KindVideo, nil
	case "pdf":
		return KindPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}

// Item is one entry of a gallery.
type Item struct {
	URL     string
	Kind    Kind
	Caption string
	// Poster is the preview frame for videos.
	Poster string
	// External items (TikTok posts) render as an outbound link instead of an embed.
	External bool
}

// Fallback messages shown when a media element fails to load.
const (
	VideoFallback = "Sorry, the video could not be loaded. Please try again later."
	PDFFallback   = "Unable to load PDF. Please try opening in a new tab."
	ImageFallback = "Sorry, this image could not be loaded."
)

// FallbackMessage returns the inline message for a failed load of this item.
func (i Item) FallbackMessage() string {
	switch i.Kind {
	case KindVideo:
		return VideoFallback
	case KindPDF:
		return PDFFallback
	default:
		return ImageFallback
	}
}

// Load states of a rendered media element. Elements start in StateLoading;
// the browser hook moves them to StateLoaded or StateFailed.
const (
	StateLoading = "loading"
	StateLoaded  = "loaded"
	StateFailed  = "failed"
)

// Gallery is an ordered, non-empty sequence of items with a current index.
type Gallery struct {
	items []Item
	index int
}

// New returns a gallery positioned at index 0.
func New(items []Item) (*Gallery, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Gallery{items: cp}, nil
}

// Len returns the number of items.
func (g *Gallery) Len() int { return len(g.items) }

// Index returns the current index.
func (g *Gallery) Index() int { return g.index }

// Current returns the item at the current index.
func (g *Gallery) Current() Item { return g.items[g.index] }

// Items returns a copy of every item.
func (g *Gallery) Items() []Item {
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// Next advances one item, wrapping to the start.
func (g *Gallery) Next() int {
	g.index = (g.index + 1) % len(g.items)
	return g.index
}

// Prev moves back one item, wrapping to the end.
func (g *Gallery) Prev() int {
	g.index = (g.index - 1 + len(g.items)) % len(g.items)
	return g.index
}

// Jump moves to index k. Out-of-range values leave the index untouched.
func (g *Gallery) Jump(k int) error {
	if k < 0 || k >= len(g.items) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, k, len(g.items))
	}
	g.index = k
	return nil
}

// Op is a navigation operation carried in the op query parameter.
type Op string

const (
	OpNone Op = ""
	OpNext Op = "next"
	OpPrev Op = "prev"
	OpJump Op = "jump"
)

// ParseOp returns the operation for raw. Unknown values mean OpNone.
func ParseOp(raw string) Op {
	switch Op(strings.ToLower(strings.TrimSpace(raw))) {
	case OpNext:
		return OpNext
	case OpPrev:
		return OpPrev
	case OpJump:
		return OpJump
	default:
		return OpNone
	}
}

// Apply runs op against the gallery. target is only read for OpJump.
func (g *Gallery) Apply(op Op, target int) error {
	switch op {
	case OpNext:
		g.Next()
	case OpPrev:
		g.Prev()
	case OpJump:
		return g.Jump(target)
	}
	return nil
}

// Normalize parses an index from the query string. Non-numeric, negative and
// out-of-range values collapse to 0 so stale links still render.
func Normalize(raw string, n int) int {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || i < 0 || i >= n {
		return 0
	}
	return i
}

// ParseTarget parses a jump target without clamping it, so Jump can reject it.
func ParseTarget(raw string) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIndexOutOfRange, raw)
	}
	return k, nil
}
