package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/contact"
	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	"github.com/nailaham15/nailah-s-portfolio/internal/httpx"
	mw "github.com/nailaham15/nailah-s-portfolio/internal/middleware"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
	"github.com/nailaham15/nailah-s-portfolio/internal/requestctx"
)

// ContactHandler runs the contact action. htmx gets the form fragment back,
// JSON clients the result envelope, and plain form posts the whole page.
// Validation failures answer 422.
func ContactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := requestctx.Logger(ctx)

	form, err := decodeContactForm(r)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		return
	}

	result, err := contactAction.Submit(ctx, form)
	status := http.StatusOK
	switch {
	case err != nil && ctx.Err() != nil:
		logger.Warn("contact submission abandoned", zap.Error(err))
		return
	case err != nil:
		logger.Error("contact submission failed", zap.Error(err))
		status = http.StatusInternalServerError
	case !result.Success:
		status = http.StatusUnprocessableEntity
	}

	if httpx.WantsJSON(r) {
		httpx.WriteJSON(w, status, result)
		return
	}

	lang := requestLang(r)
	data := newContactData(r, lang)
	data.Submitted = true
	data.Result = result
	if !result.Success {
		data.Form = contactAction.Clean(form)
	}

	if mw.IsHTMX(ctx) {
		if result.Success {
			mw.Trigger(w, map[string]any{"contact:sent": map[string]any{"reference": result.Reference}})
		}
		execute(w, r, status, "frag_contact_form", data)
		return
	}

	lib, ok := loadLibrary(w, r)
	if !ok {
		return
	}
	vm := buildPageData(r, lib, lang)
	vm.Title = lib.Profile.DisplayName()
	vm.Portfolio = handlersPkg.BuildPortfolio(lib, lang, "/", portfolio.CategoryAll)
	vm.Contact = data
	vm.SEO = buildHomeSEO(lib, lang)
	vm.SEO.Robots = "noindex"
	vm.Page = "home"
	render(w, r, status, vm)
}

func decodeContactForm(r *http.Request) (contact.Form, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var f contact.Form
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			return contact.Form{}, fmt.Errorf("decode json: %w", err)
		}
		return f, nil
	}
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return contact.Form{}, errors.New("submission too large")
		}
		return contact.Form{}, fmt.Errorf("parse form: %w", err)
	}
	return contact.Form{
		Name:    r.PostForm.Get(contact.FieldName),
		Email:   r.PostForm.Get(contact.FieldEmail),
		Message: r.PostForm.Get(contact.FieldMessage),
	}, nil
}
