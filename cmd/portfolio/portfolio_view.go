package main

import (
	"net/url"
	"strings"

	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	"github.com/nailaham15/nailah-s-portfolio/internal/nav"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
	"github.com/nailaham15/nailah-s-portfolio/internal/seo"
)

const projectsPath = "/projects"

func toCategory(v any) portfolio.Category {
	switch c := v.(type) {
	case portfolio.Category:
		return c
	case content.Section:
		return portfolio.Category(c)
	case string:
		return portfolio.ParseCategory(c)
	default:
		return portfolio.CategoryAll
	}
}

// basePathFor picks where tab links of a fragment should point, from the
// page htmx reports the request came from.
func basePathFor(currentURL string) string {
	if currentURL == "" {
		return "/"
	}
	u, err := url.Parse(currentURL)
	if err != nil {
		return "/"
	}
	if u.Path == projectsPath || strings.HasPrefix(u.Path, projectsPath+"/") {
		return projectsPath
	}
	return "/"
}

// projectsTitle is the category label, or the generic projects title for "all".
func projectsTitle(lang string, c portfolio.Category) string {
	if c == portfolio.CategoryAll {
		return i18nBundle.T(lang, "projects.title")
	}
	return i18nBundle.T(lang, c.LabelKey())
}

func projectsCrumbs(crumbs []nav.Crumb, c portfolio.Category) []nav.Crumb {
	if c == portfolio.CategoryAll {
		return crumbs
	}
	return nav.WithLeaf(crumbs, nav.Crumb{
		Href:     handlersPkg.CategoryURL(projectsPath, c),
		LabelKey: c.LabelKey(),
	})
}

func buildProjectsSEO(lib *content.Library, lang string, data handlersPkg.PortfolioData) seo.Meta {
	description := i18nBundle.T(lang, "portfolio.lead")
	if s, ok := data.Category.Section(); ok {
		if d := lib.Description(s); d != "" {
			description = d
		}
	}
	title := projectsTitle(lang, data.Category)
	meta := buildSEO(lang, handlersPkg.CategoryURL(projectsPath, data.Category), title, description, firstCover(data.View))

	base := siteCfg.Site.BaseURL
	var works []seo.CreativeWork
	for _, sec := range data.View.Sections {
		for _, e := range sec.Entries {
			works = append(works, seo.CreativeWork{
				Name:        e.Title,
				Description: e.Description,
				URL:         seo.Absolute(base, handlersPkg.RecordHref(e)),
				Image:       imageURL(e.Cover),
				Keywords:    e.Tags,
			})
		}
	}
	meta.JSONLD = append(meta.JSONLD, seo.JSON(seo.ItemList(title, works)))
	return meta
}

func firstCover(v portfolio.View) string {
	for _, s := range v.Sections {
		for _, e := range s.Entries {
			if e.Cover != "" {
				return e.Cover
			}
		}
	}
	return ""
}
