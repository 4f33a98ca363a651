package handlers

import (
	"net/url"
	"strconv"

	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	"github.com/nailaham15/nailah-s-portfolio/internal/gallery"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
)

// PortfolioData is the category tabs plus the filtered sections.
type PortfolioData struct {
	Lang     string
	Category portfolio.Category
	Tabs     []portfolio.Tab
	View     portfolio.View
	// BasePath is where tab links point: "/" on the home page, "/projects" otherwise.
	BasePath string
}

// BuildPortfolio filters lib for category.
func BuildPortfolio(lib *content.Library, lang, basePath string, category portfolio.Category) PortfolioData {
	if basePath == "" {
		basePath = "/"
	}
	return PortfolioData{
		Lang:     lang,
		Category: category,
		Tabs:     portfolio.Tabs(lib, category),
		View:     portfolio.Filter(lib, category),
		BasePath: basePath,
	}
}

// CategoryURL is the shareable URL of a category view under basePath.
func CategoryURL(basePath string, c portfolio.Category) string {
	if c == portfolio.CategoryAll {
		return basePath
	}
	return basePath + "?" + url.Values{"category": {string(c)}}.Encode()
}

// RecordData is the popup for one record.
type RecordData struct {
	Lang     string
	Entry    content.Entry
	Prev     content.Entry
	Next     content.Entry
	HasPeers bool
	Gallery  GalleryData
	MoreHref string
}

// BuildRecord assembles the popup for section/id with the gallery at index 0.
func BuildRecord(lib *content.Library, lang string, section content.Section, id int) (RecordData, error) {
	entry, err := lib.Entry(section, id)
	if err != nil {
		return RecordData{}, err
	}
	prev, next, err := lib.Neighbours(section, id)
	if err != nil {
		return RecordData{}, err
	}
	g, err := entry.Gallery()
	if err != nil {
		return RecordData{}, err
	}
	return RecordData{
		Lang:     lang,
		Entry:    entry,
		Prev:     prev,
		Next:     next,
		HasPeers: lib.Count(section) > 1,
		Gallery:  newGalleryData(lang, entry, g.View(false)),
		MoreHref: CategoryURL("/projects", portfolio.Category(section)),
	}, nil
}

// GalleryData is one rendering of a record's gallery.
type GalleryData struct {
	Lang    string
	Section content.Section
	ID      int
	Title   string
	View    gallery.View
	// OOB marks the base gallery when it rides along a fullscreen response.
	OOB bool
}

// GalleryRequest is the navigation state parsed from the query string.
type GalleryRequest struct {
	Index  string
	Op     string
	Target string
}

// BuildGallery applies the requested operation to the entry's gallery.
// An out-of-range jump returns gallery.ErrIndexOutOfRange.
func BuildGallery(lang string, entry content.Entry, req GalleryRequest, fullscreen bool) (GalleryData, error) {
	g, err := entry.Gallery()
	if err != nil {
		return GalleryData{}, err
	}
	if err := g.Jump(gallery.Normalize(req.Index, g.Len())); err != nil {
		return GalleryData{}, err
	}
	op := gallery.ParseOp(req.Op)
	target := 0
	if op == gallery.OpJump {
		if target, err = gallery.ParseTarget(req.Target); err != nil {
			return GalleryData{}, err
		}
	}
	if err := g.Apply(op, target); err != nil {
		return GalleryData{}, err
	}
	return newGalleryData(lang, entry, g.View(fullscreen)), nil
}

func newGalleryData(lang string, entry content.Entry, view gallery.View) GalleryData {
	return GalleryData{
		Lang:    lang,
		Section: entry.Section,
		ID:      entry.ID,
		Title:   entry.Title,
		View:    view,
	}
}

// Base returns the non-fullscreen twin of a fullscreen gallery, flagged for an out-of-band swap.
func (g GalleryData) Base() GalleryData {
	base := g
	base.View.Fullscreen = false
	base.OOB = true
	return base
}

// DOMID is the element id of the base gallery inside the record popup.
func (g GalleryData) DOMID() string {
	return "gallery-" + string(g.Section) + "-" + strconv.Itoa(g.ID)
}

// URL is the fragment URL applying op from the current index. target is only used by jump.
func (g GalleryData) URL(op string, target int) string {
	return g.url(g.View.Fullscreen, op, target)
}

// FullscreenURL opens the overlay at the current index.
func (g GalleryData) FullscreenURL() string {
	return g.url(true, "", 0)
}

func (g GalleryData) url(fullscreen bool, op string, target int) string {
	p := "/fragments/gallery/" + url.PathEscape(string(g.Section)) + "/" + strconv.Itoa(g.ID)
	if fullscreen {
		p += "/fullscreen"
	}
	q := url.Values{"i": {strconv.Itoa(g.View.Index)}}
	if op != "" {
		q.Set("op", op)
	}
	if op == string(gallery.OpJump) {
		q.Set("to", strconv.Itoa(target))
	}
	return p + "?" + q.Encode()
}

// RecordURL is the popup fragment URL of e.
func RecordURL(e content.Entry) string {
	return "/fragments/records/" + url.PathEscape(string(e.Section)) + "/" + strconv.Itoa(e.ID)
}

// RecordHref is the shareable page URL that opens e's popup on load.
func RecordHref(e content.Entry) string {
	q := url.Values{"category": {string(e.Section)}, "record": {strconv.Itoa(e.ID)}}
	return "/projects?" + q.Encode()
}
