package main

import (
	"net/http"

	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
)

// HomeHandler renders the one-page site: hero, portfolio, about and contact.
// ?category= pre-filters the portfolio and ?record= pre-opens a popup.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	lib, ok := loadLibrary(w, r)
	if !ok {
		return
	}
	lang := requestLang(r)
	category := portfolio.ParseCategory(r.URL.Query().Get("category"))

	vm := buildPageData(r, lib, lang)
	vm.Title = lib.Profile.DisplayName()
	vm.Portfolio = handlersPkg.BuildPortfolio(lib, lang, "/", category)
	vm.Record = openRecord(r, lib, lang, category)
	vm.SEO = buildHomeSEO(lib, lang)
	renderPage(w, r, "home", vm)
}

// NotFoundHandler renders the 404 page.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	lib, ok := loadLibrary(w, r)
	if !ok {
		return
	}
	lang := requestLang(r)
	vm := buildPageData(r, lib, lang)
	vm.Title = i18nBundle.T(lang, "error.not_found")
	vm.Breadcrumbs = nil
	vm.SEO = buildSEO(lang, r.URL.Path, "404", "", "")
	vm.SEO.Robots = "noindex"
	vm.Page = "not_found"
	render(w, r, http.StatusNotFound, vm)
}
