package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/config"
	mw "github.com/nailaham15/nailah-s-portfolio/internal/middleware"
	"github.com/nailaham15/nailah-s-portfolio/internal/testutil"
)

const testBaseURL = "https://nailah.example"

// newTestRouter builds the same router as serve, optionally adding extra routes.
func newTestRouter(t *testing.T, add func(r chi.Router)) http.Handler {
	t.Helper()
	cfg, err := config.Load(
		config.WithEnvFile(""),
		config.WithoutSystemEnv(),
		config.WithEnvMap(map[string]string{
			"PORTFOLIO_DEV":           "true",
			"PORTFOLIO_BASE_URL":      testBaseURL,
			"PORTFOLIO_CONTACT_DELAY": "0s",
		}),
	)
	require.NoError(t, err)
	require.NoError(t, setup(cfg))
	_, err = parseTemplates()
	require.NoError(t, err, "parseTemplates failed")

	r, err := newRouter(zap.NewNop())
	require.NoError(t, err)
	if add != nil {
		r.Group(func(r chi.Router) {
			add(r)
		})
	}
	return r
}

func get(t *testing.T, srv http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Accept-Language", "en")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func htmx(extra map[string]string) map[string]string {
	h := map[string]string{"HX-Request": "true"}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

func TestHealthzOK(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestHomeRendersEverySection(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	for _, id := range []string{"#home", "#portfolio", "#about", "#contact", "#modal-root"} {
		require.Equal(t, 1, doc.Find(id).Length(), "missing %s", id)
	}
	require.Contains(t, doc.Find("title").Text(), "Naepop")
	require.Equal(t, 5, doc.Find(".portfolio-section").Length())
	require.Equal(t, 2, doc.Find("#section-ui .card").Length())
	require.Equal(t, 2, doc.Find("#section-sunshine .card").Length())
	require.Equal(t, 4, doc.Find("#section-architectural .card").Length())
	require.True(t, doc.Find("#section-architectural").HasClass("wide"))
	require.Equal(t, 5, doc.Find(".view-all").Length())
	require.Equal(t, 0, doc.Find("#modal-root .modal").Length())

	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	require.Equal(t, testBaseURL+"/", canonical)
	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
	require.Contains(t, doc.Find(`script[type="application/ld+json"]`).First().Text(), `"@type":"Person"`)

	active := doc.Find(".site-nav a.active")
	require.Equal(t, 1, active.Length())
	require.Equal(t, "Home", active.Text())

	require.Equal(t, 4, doc.Find(".faq details").Length())
	require.Equal(t, 1, doc.Find("#contact-form").Length())
	token, ok := doc.Find(`#contact-form input[name="csrf_token"]`).Attr("value")
	require.True(t, ok)
	require.Len(t, token, 32)
}

func TestHomeLocalizedByQuery(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/?hl=id", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "id", rec.Header().Get("Content-Language"))

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	lang, _ := doc.Find("html").Attr("lang")
	require.Equal(t, "id", lang)
	require.Equal(t, "Beranda", doc.Find(".site-nav a.active").Text())
}

func TestAssetsServedWithETag(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/assets/css/site.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec = get(t, srv, "/assets/css/site.css", map[string]string{"If-None-Match": etag})
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = get(t, srv, "/assets/js/site.js", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "X-CSRF-Token")
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	srv := newTestRouter(t, nil)
	rec := get(t, srv, "/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 1, doc.Find(".not-found").Length())
	robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
	require.Equal(t, "noindex", robots)
}

func TestTestRouterAcceptsExtraRoutes(t *testing.T) {
	srv := newTestRouter(t, func(r chi.Router) {
		r.Use(mw.Locale(i18nBundle))
		r.Get("/echo-lang", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, requestLang(r))
		})
	})
	rec := get(t, srv, "/echo-lang", map[string]string{"Accept-Language": "id-ID,id;q=0.9"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "id", rec.Body.String())
}
