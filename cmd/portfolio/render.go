package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	"github.com/nailaham15/nailah-s-portfolio/internal/format"
	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	mw "github.com/nailaham15/nailah-s-portfolio/internal/middleware"
	"github.com/nailaham15/nailah-s-portfolio/internal/requestctx"
	"github.com/nailaham15/nailah-s-portfolio/templates"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"t": func(lang, key string) string {
			if i18nBundle == nil {
				return key
			}
			return i18nBundle.T(lang, key)
		},
		"fmtNumber": format.FmtNumber,
		"fmtCount":  format.FmtCount,
		"upper":     strings.ToUpper,
		"jsonld": func(s string) template.JS {
			// JSON-LD is produced by seo.JSON from encoding/json output
			return template.JS(s)
		},
		"categoryURL": func(base string, category any) string {
			return handlersPkg.CategoryURL(base, toCategory(category))
		},
		"recordURL":  handlersPkg.RecordURL,
		"recordHref": handlersPkg.RecordHref,
		"dict":       dict,
	}
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

func templateFS() fs.FS {
	if templatesDir != "" {
		return os.DirFS(templatesDir)
	}
	return templates.FS()
}

func parseTemplates() (*template.Template, error) {
	fsys := templateFS()
	// Recursively discover all .tmpl files; ParseFS globs don't support **.
	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %q", templatesDir)
	}
	return template.New("_root").Funcs(templateFuncs()).ParseFS(fsys, files...)
}

func currentTemplates() (*template.Template, error) {
	if devMode || tmplCache == nil {
		return parseTemplates()
	}
	return tmplCache, nil
}

// execute renders name into a buffer first so a failing template never leaves a half-written page.
func execute(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t, err := currentTemplates()
	if err != nil {
		requestctx.Logger(r.Context()).Error("template parse failed", zap.Error(err))
		http.Error(w, "template parse error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		requestctx.Logger(r.Context()).Error("template exec failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// render executes the base layout.
func render(w http.ResponseWriter, r *http.Request, status int, data handlersPkg.PageData) {
	execute(w, r, status, "base", data)
}

// renderPage renders page through the base layout with status 200.
func renderPage(w http.ResponseWriter, r *http.Request, page string, vm handlersPkg.PageData) {
	vm.Page = page
	render(w, r, http.StatusOK, vm)
}

// renderTemplate renders a single named fragment, used for htmx swaps.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	execute(w, r, http.StatusOK, name, data)
}

func requestLang(r *http.Request) string {
	fallback := "en"
	if i18nBundle != nil {
		fallback = i18nBundle.Fallback()
	}
	return mw.LangFromContext(r.Context(), fallback)
}

// loadLibrary fetches the content library, answering 500 itself on failure.
func loadLibrary(w http.ResponseWriter, r *http.Request) (*content.Library, bool) {
	lib, err := contentSvc.Library(r.Context())
	if err != nil {
		requestctx.Logger(r.Context()).Error("content unavailable", zap.Error(err))
		http.Error(w, "content unavailable", http.StatusInternalServerError)
		return nil, false
	}
	return lib, true
}
