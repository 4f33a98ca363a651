// Package portfolio decides which records the portfolio section renders for a
// selected category.
package portfolio

import (
	"strings"

	"github.com/nailaham15/nailah-s-portfolio/internal/content"
)

// Category is the tab selected in the portfolio section.
type Category string

const CategoryAll Category = "all"

// Categories lists the tabs in display order.
func Categories() []Category {
	out := []Category{CategoryAll}
	for _, s := range content.Sections {
		out = append(out, Category(s))
	}
	return out
}

// ParseCategory resolves a query value. "brand" is an alias of sunshine and
// anything unknown falls back to all.
func ParseCategory(raw string) Category {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "brand" {
		return Category(content.SectionSunshine)
	}
	for _, c := range Categories() {
		if string(c) == v {
			return c
		}
	}
	return CategoryAll
}

// Section returns the content section for a single-category view.
func (c Category) Section() (content.Section, bool) {
	if c == CategoryAll {
		return "", false
	}
	return content.Section(c), true
}

// LabelKey is the i18n key of the tab label.
func (c Category) LabelKey() string { return "category." + string(c) }

// allLimits caps each section in the combined view. Zero means no cap.
var allLimits = map[content.Section]int{
	content.SectionUI:            2,
	content.SectionGraphic:       6,
	content.SectionVideo:         4,
	content.SectionSunshine:      4,
	content.SectionArchitectural: 0,
}

// SectionView is one section as rendered for a category.
type SectionView struct {
	Section content.Section
	Entries []content.Entry
	// Total is the size of the section, independent of the filter.
	Total int
	// ViewAll is set in the combined view, where each section links to its own tab.
	ViewAll bool
	// Wide sections span the full grid row.
	Wide bool
}

// View is the result of filtering the library.
type View struct {
	Category Category
	Sections []SectionView
}

// Shown returns how many records the view renders in total.
func (v View) Shown() int {
	n := 0
	for _, s := range v.Sections {
		n += len(s.Entries)
	}
	return n
}

// Filter selects the sections and records to render for c. It never mutates lib.
func Filter(lib *content.Library, c Category) View {
	view := View{Category: c}
	if s, ok := c.Section(); ok {
		entries := lib.Section(s)
		view.Sections = []SectionView{{
			Section: s,
			Entries: append([]content.Entry(nil), entries...),
			Total:   len(entries),
			Wide:    true,
		}}
		return view
	}
	for _, s := range content.Sections {
		entries := lib.Section(s)
		selected := make([]content.Entry, 0, len(entries))
		for _, e := range entries {
			if s == content.SectionSunshine && !e.ShowInAll {
				continue
			}
			selected = append(selected, e)
		}
		if limit := allLimits[s]; limit > 0 && len(selected) > limit {
			selected = selected[:limit]
		}
		view.Sections = append(view.Sections, SectionView{
			Section: s,
			Entries: selected,
			Total:   len(entries),
			ViewAll: true,
			Wide:    s == content.SectionArchitectural,
		})
	}
	return view
}

// Tab is one category button.
type Tab struct {
	Category Category
	Active   bool
	Count    int
}

// Tabs returns every category with its record count.
func Tabs(lib *content.Library, active Category) []Tab {
	tabs := make([]Tab, 0, len(content.Sections)+1)
	total := 0
	for _, s := range content.Sections {
		total += lib.Count(s)
	}
	for _, c := range Categories() {
		count := total
		if s, ok := c.Section(); ok {
			count = lib.Count(s)
		}
		tabs = append(tabs, Tab{Category: c, Active: c == active, Count: count})
	}
	return tabs
}
