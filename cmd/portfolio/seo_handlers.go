package main

import (
	"encoding/xml"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
	"github.com/nailaham15/nailah-s-portfolio/internal/requestctx"
	"github.com/nailaham15/nailah-s-portfolio/internal/seo"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// sitemapPaths lists the indexable pages: home, the projects page and one page per non-empty category.
func sitemapPaths(lib *content.Library) []string {
	paths := []string{"/", projectsPath}
	for _, c := range portfolio.Categories() {
		s, ok := c.Section()
		if !ok || lib.Count(s) == 0 {
			continue
		}
		paths = append(paths, handlersPkg.CategoryURL(projectsPath, c))
	}
	return paths
}

// SitemapHandler serves sitemap.xml.
func SitemapHandler(w http.ResponseWriter, r *http.Request) {
	lib, ok := loadLibrary(w, r)
	if !ok {
		return
	}
	set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range sitemapPaths(lib) {
		u := sitemapURL{Loc: seo.Absolute(siteCfg.Site.BaseURL, p), ChangeFreq: "monthly", Priority: 0.6}
		if p == "/" {
			u.Priority = 1.0
		}
		set.URLs = append(set.URLs, u)
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		requestctx.Logger(r.Context()).Error("sitemap marshal failed", zap.Error(err))
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

// RobotsHandler serves robots.txt, pointing crawlers at the sitemap. Fragments are never indexed.
func RobotsHandler(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /fragments/\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Sitemap: " + seo.Absolute(siteCfg.Site.BaseURL, "/sitemap.xml") + "\n")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(b.String()))
}
