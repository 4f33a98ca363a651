package main

import (
	"net/http"

	handlersPkg "github.com/nailaham15/nailah-s-portfolio/internal/handlers"
	mw "github.com/nailaham15/nailah-s-portfolio/internal/middleware"
	"github.com/nailaham15/nailah-s-portfolio/internal/modal"
)

// RecordFrag renders a record popup into the modal root.
func RecordFrag(w http.ResponseWriter, r *http.Request) {
	section, id, err := recordParams(r)
	if err != nil {
		writeFragmentError(r.Context(), w, err)
		return
	}
	lib, ok := loadLibrary(w, r)
	if !ok {
		return
	}
	rec, err := handlersPkg.BuildRecord(lib, requestLang(r), section, id)
	if err != nil {
		writeFragmentError(r.Context(), w, err)
		return
	}
	mw.Trigger(w, map[string]any{"modal:opened": map[string]any{"record": rec.Entry.Slug()}})
	renderTemplate(w, r, "frag_record", rec)
}

// GalleryFrag re-renders the base gallery after next/prev/jump.
func GalleryFrag(w http.ResponseWriter, r *http.Request) {
	data, ok := buildGalleryFrag(w, r, false)
	if !ok {
		return
	}
	renderTemplate(w, r, "frag_gallery", data)
}

// GalleryFullscreenFrag renders the fullscreen overlay. The response also
// carries the base gallery as an out-of-band swap at the same index.
func GalleryFullscreenFrag(w http.ResponseWriter, r *http.Request) {
	data, ok := buildGalleryFrag(w, r, true)
	if !ok {
		return
	}
	renderTemplate(w, r, "frag_fullscreen", data)
}

func buildGalleryFrag(w http.ResponseWriter, r *http.Request, fullscreen bool) (handlersPkg.GalleryData, bool) {
	section, id, err := recordParams(r)
	if err != nil {
		writeFragmentError(r.Context(), w, err)
		return handlersPkg.GalleryData{}, false
	}
	lib, ok := loadLibrary(w, r)
	if !ok {
		return handlersPkg.GalleryData{}, false
	}
	entry, err := lib.Entry(section, id)
	if err != nil {
		writeFragmentError(r.Context(), w, err)
		return handlersPkg.GalleryData{}, false
	}
	data, err := handlersPkg.BuildGallery(requestLang(r), entry, galleryRequest(r), fullscreen)
	if err != nil {
		writeFragmentError(r.Context(), w, err)
		return handlersPkg.GalleryData{}, false
	}
	return data, true
}

// ModalCloseFrag applies the dismissal policy: an empty 200 body clears the
// modal root, 204 leaves it untouched.
func ModalCloseFrag(w http.ResponseWriter, r *http.Request) {
	reason := modal.ParseReason(r.URL.Query().Get("reason"))
	if !modal.Dismisses(reason) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	mw.Trigger(w, map[string]any{"modal:closed": map[string]any{"reason": string(reason)}})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}
