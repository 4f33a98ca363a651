package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	"github.com/nailaham15/nailah-s-portfolio/internal/format"
	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	mw "github.com/nailaham15/nailah-s-portfolio/internal/middleware"
	"github.com/nailaham15/nailah-s-portfolio/internal/nav"
	"github.com/nailaham15/nailah-s-portfolio/internal/seo"
)

const seoDescriptionLimit = 160

// nowFunc is swapped in tests.
var nowFunc = time.Now

// buildPageData fills the chrome shared by every full page.
func buildPageData(r *http.Request, lib *content.Library, lang string) handlersPkg.PageData {
	return handlersPkg.PageData{
		Lang:        lang,
		Langs:       i18nBundle.Supported(),
		SiteName:    siteCfg.Site.Name,
		Analytics:   handlersPkg.AnalyticsFromConfig(siteCfg.Analytics),
		CSRFToken:   mw.CSRFToken(r.Context()),
		Year:        format.Year(nowFunc()),
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path, i18nBundle.Tag(lang)),
		Profile:     lib.Profile,
		About:       lib.About,
		Contact:     newContactData(r, lang),
	}
}

// buildSEO assembles the head metadata for the page at p (path plus optional query).
func buildSEO(lang, p, title, description, image string) seo.Meta {
	base := siteCfg.Site.BaseURL
	full := siteCfg.Site.Name
	if title != "" && title != siteCfg.Site.Name {
		full = title + " | " + siteCfg.Site.Name
	}
	canonical := seo.Absolute(base, p)
	img := ""
	if image != "" {
		img = seo.Absolute(base, image)
	}
	return seo.Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		OG: seo.OpenGraph{
			Title:       full,
			Description: description,
			Image:       img,
			Type:        "website",
			URL:         canonical,
			SiteName:    siteCfg.Site.Name,
			Locale:      ogLocale(lang),
		},
		Twitter: seo.Twitter{
			Card:  "summary_large_image",
			Site:  siteCfg.Site.TwitterSite,
			Image: img,
		},
		Alternates: seo.Alternates(base, p, i18nBundle.Supported(), i18nBundle.Fallback()),
	}
}

// ogLocale maps "en" to "en_US" using the most likely region of the tag.
func ogLocale(lang string) string {
	tag := i18nBundle.Tag(lang)
	base, _ := tag.Base()
	region, _ := tag.Region()
	return base.String() + "_" + region.String()
}

func buildHomeSEO(lib *content.Library, lang string) seo.Meta {
	p := lib.Profile
	description := lib.About.SEO.Description
	if description == "" {
		description = seo.PlainText(string(lib.About.Body), seoDescriptionLimit)
	}
	meta := buildSEO(lang, "/", p.DisplayName()+" - "+p.Title, description, p.Portrait)
	meta.OG.Type = "profile"

	var sameAs []string
	for _, l := range p.LinksIn(content.LinkSocial) {
		sameAs = append(sameAs, l.Href)
	}
	base := siteCfg.Site.BaseURL
	meta.JSONLD = append(meta.JSONLD,
		seo.JSON(seo.Person(p.Name, p.Title, seo.Absolute(base, "/"), imageURL(p.Portrait), p.Email, sameAs)),
		seo.JSON(seo.WebSite(siteCfg.Site.Name, seo.Absolute(base, "/"), lang)),
	)
	return meta
}

func imageURL(p string) string {
	if strings.TrimSpace(p) == "" {
		return ""
	}
	return seo.Absolute(siteCfg.Site.BaseURL, p)
}

func newContactData(r *http.Request, lang string) handlersPkg.ContactData {
	return handlersPkg.ContactData{
		Lang:      lang,
		CSRFToken: mw.CSRFToken(r.Context()),
		CSRFField: mw.CSRFFieldName,
	}
}
