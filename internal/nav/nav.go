package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/projects"
	Anchor   string // in-page section id on the home page
	LabelKey string // i18n key, e.g. "nav.about"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/", Anchor: "portfolio", LabelKey: "nav.portfolio"},
	{Path: "/", Anchor: "about", LabelKey: "nav.about"},
	{Path: "/", Anchor: "contact", LabelKey: "nav.contact"},
	{Path: "/projects", LabelKey: "nav.projects"},
}

// Build renders navigation items with active state given the current path.
// Anchor links are never active; the client highlights them on scroll.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		href := it.Path
		if it.Anchor != "" {
			href = it.Path + "#" + it.Anchor
		}
		items = append(items, RenderedItem{
			Href:     href,
			LabelKey: it.LabelKey,
			Active:   it.Anchor == "" && isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/projects" or "/projects/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path. Segments that
// match a top-level item use its label key; the rest are title-cased in lang.
func Breadcrumbs(currentPath string, lang language.Tag) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href += "/" + part
		c := Crumb{Href: href, Label: titleFromSegment(part, lang), Active: i == len(parts)-1}
		if i == 0 {
			for _, it := range Main {
				if it.Anchor == "" && it.Path == href {
					c.LabelKey = it.LabelKey
					break
				}
			}
		}
		crumbs = append(crumbs, c)
	}
	return crumbs
}

// WithLeaf appends a final crumb, e.g. the selected category, and deactivates the rest.
func WithLeaf(crumbs []Crumb, c Crumb) []Crumb {
	out := make([]Crumb, 0, len(crumbs)+1)
	for _, existing := range crumbs {
		existing.Active = false
		out = append(out, existing)
	}
	c.Active = true
	return append(out, c)
}

func titleFromSegment(seg string, lang language.Tag) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return cases.Title(lang).String(s)
}
