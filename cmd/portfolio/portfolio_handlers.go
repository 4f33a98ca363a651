package main

import (
	"net/http"

	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	mw "github.com/nailaham15/nailah-s-portfolio/internal/middleware"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
)

// ProjectsHandler renders the full category page. ?category= pre-filters it.
func ProjectsHandler(w http.ResponseWriter, r *http.Request) {
	lib, ok := loadLibrary(w, r)
	if !ok {
		return
	}
	lang := requestLang(r)
	category := portfolio.ParseCategory(r.URL.Query().Get("category"))

	vm := buildPageData(r, lib, lang)
	vm.Portfolio = handlersPkg.BuildPortfolio(lib, lang, projectsPath, category)
	vm.Title = projectsTitle(lang, category)
	vm.Breadcrumbs = projectsCrumbs(vm.Breadcrumbs, category)
	vm.Record = openRecord(r, lib, lang, category)
	vm.SEO = buildProjectsSEO(lib, lang, vm.Portfolio)
	renderPage(w, r, "projects", vm)
}

// PortfolioFrag swaps the category tabs and sections, pushing the shareable URL.
func PortfolioFrag(w http.ResponseWriter, r *http.Request) {
	lib, ok := loadLibrary(w, r)
	if !ok {
		return
	}
	lang := requestLang(r)
	category := portfolio.ParseCategory(r.URL.Query().Get("category"))
	base := basePathFor(mw.HTMXInfoFromContext(r.Context()).CurrentURL)

	data := handlersPkg.BuildPortfolio(lib, lang, base, category)
	mw.PushURL(w, handlersPkg.CategoryURL(base, category))
	mw.Trigger(w, map[string]any{
		"portfolio:filtered": map[string]any{
			"category": string(category),
			"shown":    data.View.Shown(),
		},
	})
	renderTemplate(w, r, "frag_portfolio", data)
}
