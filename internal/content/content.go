// Package content loads the authored portfolio data: per-section records,
// the profile and markdown pages. Everything is read once from an fs.FS
// (the embedded data directory by default) and is read-only afterwards.
package content

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/nailaham15/nailah-s-portfolio/internal/gallery"
)

// ErrNotFound is returned when a section or record does not exist.
var ErrNotFound = errors.New("content: not found")

// Section identifies one portfolio area.
type Section string

const (
	SectionUI            Section = "ui"
	SectionGraphic       Section = "graphic"
	SectionVideo         Section = "video"
	SectionSunshine      Section = "sunshine"
	SectionArchitectural Section = "architectural"
)

// Sections lists every section in page order.
var Sections = []Section{SectionUI, SectionGraphic, SectionVideo, SectionSunshine, SectionArchitectural}

// ParseSection resolves a path segment. "brand" is the legacy name of sunshine.
func ParseSection(raw string) (Section, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "brand" {
		return SectionSunshine, nil
	}
	for _, candidate := range Sections {
		if string(candidate) == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: section %q", ErrNotFound, raw)
}

// TitleKey is the i18n key for the section heading.
func (s Section) TitleKey() string { return "category." + string(s) }

// Detail is a labelled block in the record popup. Exactly one of Text or Items is set.
type Detail struct {
	Key   string
	Text  string
	Items []string
}

// Entry is a record normalised across the three authored shapes.
type Entry struct {
	Section     Section
	ID          int
	Title       string
	Description string
	Cover       string
	Tags        []string
	Tools       []string
	Role        string
	Price       string
	Overview    template.HTML
	Details     []Detail
	Media       []gallery.Item
	// ShowInAll is false for products hidden from the combined view.
	ShowInAll bool
}

// Slug is the stable "<section>-<id>" identifier used for DOM ids.
func (e Entry) Slug() string { return string(e.Section) + "-" + strconv.Itoa(e.ID) }

// Gallery builds a fresh carousel over the entry's media.
func (e Entry) Gallery() (*gallery.Gallery, error) {
	return gallery.New(e.Media)
}

// SectionData is one section with its records in authored order.
type SectionData struct {
	Section     Section
	Description string
	Entries     []Entry
}

// Library is the full loaded content set.
type Library struct {
	sections map[Section]*SectionData
	Profile  Profile
	About    Page
}

// Section returns the records of s in authored order.
func (l *Library) Section(s Section) []Entry {
	if l == nil {
		return nil
	}
	data, ok := l.sections[s]
	if !ok {
		return nil
	}
	return data.Entries
}

// Description returns the authored blurb of s.
func (l *Library) Description(s Section) string {
	if data, ok := l.sections[s]; ok {
		return data.Description
	}
	return ""
}

// Count returns how many records s holds.
func (l *Library) Count(s Section) int { return len(l.Section(s)) }

// Entry looks up one record.
func (l *Library) Entry(s Section, id int) (Entry, error) {
	for _, e := range l.Section(s) {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s/%d", ErrNotFound, s, id)
}

// Neighbours returns the records before and after id, wrapping within the section.
func (l *Library) Neighbours(s Section, id int) (prev, next Entry, err error) {
	entries := l.Section(s)
	for i, e := range entries {
		if e.ID != id {
			continue
		}
		n := len(entries)
		return entries[(i-1+n)%n], entries[(i+1)%n], nil
	}
	return Entry{}, Entry{}, fmt.Errorf("%w: %s/%d", ErrNotFound, s, id)
}
