package gallery

// Thumb is a navigation dot or thumbnail in the rendered strip.
type Thumb struct {
	Index   int
	URL     string
	Kind    Kind
	Caption string
	Active  bool
	// Image reports whether URL points at a picture (an image or a poster).
	Image bool
}

// View is the template model for one rendering of a gallery.
type View struct {
	Item       Item
	Index      int
	Count      int
	Position   int
	PrevIndex  int
	NextIndex  int
	Thumbs     []Thumb
	Fallback   string
	State      string
	Fullscreen bool
	Multiple   bool
}

// View snapshots the gallery for rendering. External items have nothing to
// load in place, so they start out loaded.
func (g *Gallery) View(fullscreen bool) View {
	n := len(g.items)
	cur := g.items[g.index]
	state := StateLoading
	if cur.External {
		state = StateLoaded
	}
	thumbs := make([]Thumb, n)
	for i, it := range g.items {
		url := it.URL
		if it.Poster != "" {
			url = it.Poster
		}
		thumbs[i] = Thumb{
			Index:   i,
			URL:     url,
			Kind:    it.Kind,
			Caption: it.Caption,
			Active:  i == g.index,
			Image:   it.Kind == KindImage || it.Poster != "",
		}
	}
	return View{
		Item:       cur,
		Index:      g.index,
		Count:      n,
		Position:   g.index + 1,
		PrevIndex:  (g.index - 1 + n) % n,
		NextIndex:  (g.index + 1) % n,
		Thumbs:     thumbs,
		Fallback:   cur.FallbackMessage(),
		State:      state,
		Fullscreen: fullscreen,
		Multiple:   n > 1,
	}
}
