package main

import (
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/nailaham15/nailah-s-portfolio/internal/testutil"
)

func TestProjectsPageSingleCategory(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/projects?category=brand", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 1, doc.Find(".portfolio-section").Length())
	require.Equal(t, 6, doc.Find("#section-sunshine .card").Length())
	require.Equal(t, 0, doc.Find(".view-all").Length())

	active := doc.Find(`.category-tabs a.active`)
	require.Equal(t, 1, active.Length())
	href, _ := active.Attr("href")
	require.Equal(t, "/projects?category=sunshine", href)

	require.Equal(t, "Sunshine Tonic", doc.Find(`.breadcrumbs [aria-current="page"]`).Text())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	require.Equal(t, testBaseURL+"/projects?category=sunshine", canonical)
	require.Contains(t, doc.Find(`script[type="application/ld+json"]`).Text(), `"ItemList"`)
	require.Equal(t, "Projects", doc.Find(".site-nav a.active").Text())
}

func TestProjectsPageUnknownCategoryFallsBackToAll(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/projects?category=sculpture", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 5, doc.Find(".portfolio-section").Length())
	category, _ := doc.Find("#portfolio-view").Attr("data-category")
	require.Equal(t, "all", category)
}

func TestProjectsPagePreopensRecord(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/projects?category=ui&record=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 1, doc.Find("#modal-root #record-ui-2").Length())
	require.Equal(t, 1, doc.Find("#gallery-ui-2").Length())

	// stale record ids render the page without a popup
	rec = get(t, srv, "/projects?category=ui&record=99", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc = testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 0, doc.Find("#modal-root .modal").Length())
}

func TestPortfolioFragPushesShareableURL(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/fragments/portfolio?category=video", htmx(map[string]string{
		"HX-Current-URL": "https://nailah.example/projects",
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "/projects?category=video", rec.Header().Get("HX-Push-Url"))
	require.Contains(t, rec.Header().Get("HX-Trigger"), "portfolio:filtered")

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 4, doc.Find("#section-video .card").Length())
	require.Equal(t, 0, doc.Find("#section-ui").Length())

	rec = get(t, srv, "/fragments/portfolio?category=all", htmx(map[string]string{
		"HX-Current-URL": "https://nailah.example/#portfolio",
	}))
	require.Equal(t, "/", rec.Header().Get("HX-Push-Url"))
}

func TestPortfolioFragCountsNeverChange(t *testing.T) {
	srv := newTestRouter(t, nil)
	counts := func(category string) []string {
		rec := get(t, srv, "/fragments/portfolio?category="+category, htmx(nil))
		require.Equal(t, http.StatusOK, rec.Code)
		doc := testutil.ParseHTML(t, rec.Body.Bytes())
		return doc.Find(".category-tabs .count").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	}
	all := counts("all")
	require.Equal(t, []string{"24", "4", "6", "4", "6", "4"}, all)
	require.Equal(t, all, counts("graphic"))
}

func TestPortfolioFragLabelsCountsInLocale(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/fragments/portfolio?category=all&hl=id", htmx(nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	label, _ := doc.Find(".category-tabs .count").First().Attr("aria-label")
	require.Equal(t, "24 proyek", label)
}

func TestFragmentsRequireHTMX(t *testing.T) {
	srv := newTestRouter(t, nil)
	for _, target := range []string{
		"/fragments/portfolio?category=ui",
		"/fragments/records/ui/1",
		"/fragments/gallery/ui/1?i=0&op=next",
		"/fragments/modal/close?reason=escape",
	} {
		rec := get(t, srv, target, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, target)
		require.Contains(t, rec.Header().Values("Vary"), "HX-Request", target)
	}
}
