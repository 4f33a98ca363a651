package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	"github.com/nailaham15/nailah-s-portfolio/internal/gallery"
	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	"github.com/nailaham15/nailah-s-portfolio/internal/httpx"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
	"github.com/nailaham15/nailah-s-portfolio/internal/requestctx"
)

// recordParams resolves the {section}/{id} URL parameters.
func recordParams(r *http.Request) (content.Section, int, error) {
	section, err := content.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		return "", 0, err
	}
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("%w: record %q", content.ErrNotFound, raw)
	}
	return section, id, nil
}

// openRecord builds the popup addressed by ?record=<id> on a single-section
// page. Anything unresolvable renders the page without a popup.
func openRecord(r *http.Request, lib *content.Library, lang string, c portfolio.Category) *handlersPkg.RecordData {
	raw := r.URL.Query().Get("record")
	if raw == "" {
		return nil
	}
	s, ok := c.Section()
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	rec, err := handlersPkg.BuildRecord(lib, lang, s, id)
	if err != nil {
		return nil
	}
	return &rec
}

func galleryRequest(r *http.Request) handlersPkg.GalleryRequest {
	q := r.URL.Query()
	return handlersPkg.GalleryRequest{
		Index:  q.Get("i"),
		Op:     q.Get("op"),
		Target: q.Get("to"),
	}
}

// writeFragmentError maps domain errors onto the JSON error envelope.
// Not-found answers echo the requested section and id.
func writeFragmentError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		notFound := httpx.NewError("not_found", "record not found", http.StatusNotFound)
		if rctx := chi.RouteContext(ctx); rctx != nil {
			notFound = notFound.WithDetails(map[string]any{
				"section": rctx.URLParam("section"),
				"id":      rctx.URLParam("id"),
			})
		}
		httpx.WriteError(ctx, w, notFound)
	case errors.Is(err, gallery.ErrIndexOutOfRange):
		httpx.WriteError(ctx, w, httpx.NewError("index_out_of_range", err.Error(), http.StatusBadRequest))
	default:
		requestctx.Logger(ctx).Error("fragment failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.NewError("internal", "internal error", http.StatusInternalServerError))
	}
}
