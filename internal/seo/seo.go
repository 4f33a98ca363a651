package seo

import (
	"net/url"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Alternate struct {
	Href     string
	Hreflang string
}

// Meta is everything the layout head needs.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
	JSONLD      []string
}

// Absolute joins base and p. With an empty base, p is returned unchanged.
func Absolute(base, p string) string {
	if base == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(base, "/") + escapePath(p)
}

// escapePath percent-encodes spaces and other unsafe characters in authored media paths.
func escapePath(p string) string {
	pathPart, query, hasQuery := strings.Cut(p, "?")
	u := url.URL{Path: pathPart}
	out := u.EscapedPath()
	if hasQuery {
		out += "?" + query
	}
	return out
}

// Alternates lists one hreflang link per language plus x-default.
func Alternates(base, p string, langs []string, fallback string) []Alternate {
	out := make([]Alternate, 0, len(langs)+1)
	for _, l := range langs {
		out = append(out, Alternate{Href: withLang(Absolute(base, p), l), Hreflang: l})
	}
	return append(out, Alternate{Href: withLang(Absolute(base, p), fallback), Hreflang: "x-default"})
}

func withLang(u, lang string) string {
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "hl=" + url.QueryEscape(lang)
}
