package handlers

import (
	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	"github.com/nailaham15/nailah-s-portfolio/internal/nav"
	"github.com/nailaham15/nailah-s-portfolio/internal/seo"
)

// PageData is the view model for full pages rendered through the base layout.
type PageData struct {
	Title     string
	Lang      string
	Langs     []string
	SiteName  string
	SEO       seo.Meta
	Analytics Analytics
	CSRFToken string
	Year      int

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	Profile   content.Profile
	About     content.Page
	Portfolio PortfolioData
	Contact   ContactData
	// Record pre-opens the modal when a record is addressed in the URL.
	Record *RecordData
	// Page selects the body template: "home", "projects" or "not_found".
	Page string
}
