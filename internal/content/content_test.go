package content

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nailaham15/nailah-s-portfolio/internal/gallery"
)

func embeddedMapFS(t *testing.T) fstest.MapFS {
	t.Helper()
	out := fstest.MapFS{}
	err := fs.WalkDir(DefaultFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, err := fs.ReadFile(DefaultFS(), path)
		if err != nil {
			return err
		}
		out[path] = &fstest.MapFile{Data: raw}
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestLoadEmbeddedContent(t *testing.T) {
	t.Parallel()

	lib, err := Load(DefaultFS())
	require.NoError(t, err)

	require.Equal(t, 4, lib.Count(SectionUI))
	require.Equal(t, 6, lib.Count(SectionGraphic))
	require.Equal(t, 4, lib.Count(SectionVideo))
	require.Equal(t, 6, lib.Count(SectionSunshine))
	require.Equal(t, 4, lib.Count(SectionArchitectural))

	require.Equal(t, "Naepop", lib.Profile.DisplayName())
	require.Len(t, lib.Profile.Skills, 5)
	require.Len(t, lib.Profile.Experiences, 5)
	require.Len(t, lib.Profile.LinksIn(LinkProfessional), 3)
	require.Len(t, lib.Profile.LinksIn(LinkSocial), 2)
	require.Contains(t, string(lib.Profile.FAQs[3].Answer), "<strong>Figma</strong>")
	require.Contains(t, string(lib.About.Body), "<strong>multidisciplinary designer</strong>")
	require.Equal(t, "About Me", lib.About.Title)
}

func TestProjectGalleryUsesScreensAndCaptions(t *testing.T) {
	t.Parallel()

	lib, err := Load(DefaultFS())
	require.NoError(t, err)
	entry, err := lib.Entry(SectionUI, 1)
	require.NoError(t, err)
	require.Len(t, entry.Media, 7)
	for _, m := range entry.Media {
		require.NotEmpty(t, m.Caption)
		require.Equal(t, gallery.KindImage, m.Kind)
	}
	require.NotEmpty(t, entry.Overview)
	require.Equal(t, "ui-1", entry.Slug())
}

func TestVideoAndProductMediaKinds(t *testing.T) {
	t.Parallel()

	lib, err := Load(DefaultFS())
	require.NoError(t, err)

	video, err := lib.Entry(SectionVideo, 2)
	require.NoError(t, err)
	last := video.Media[len(video.Media)-1]
	require.Equal(t, gallery.KindImage, last.Kind)
	require.Equal(t, gallery.KindVideo, video.Media[0].Kind)
	require.NotEmpty(t, video.Media[0].Poster)

	bookclan, err := lib.Entry(SectionVideo, 4)
	require.NoError(t, err)
	require.Contains(t, string(bookclan.Overview), `href="https://vt.tiktok.com/ZSFQJJ2th/"`)

	catalog, err := lib.Entry(SectionSunshine, 1)
	require.NoError(t, err)
	require.Len(t, catalog.Media, 1)
	require.Equal(t, gallery.KindPDF, catalog.Media[0].Kind)
	require.True(t, catalog.ShowInAll)

	hidden, err := lib.Entry(SectionSunshine, 3)
	require.NoError(t, err)
	require.False(t, hidden.ShowInAll)
}

func TestNeighboursWrapWithinSection(t *testing.T) {
	t.Parallel()

	lib, err := Load(DefaultFS())
	require.NoError(t, err)

	prev, next, err := lib.Neighbours(SectionUI, 1)
	require.NoError(t, err)
	require.Equal(t, 4, prev.ID)
	require.Equal(t, 2, next.ID)

	_, _, err = lib.Neighbours(SectionUI, 99)
	require.True(t, errors.Is(err, ErrNotFound))
	_, err = lib.Entry(SectionGraphic, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestParseSection(t *testing.T) {
	t.Parallel()

	s, err := ParseSection("Brand")
	require.NoError(t, err)
	require.Equal(t, SectionSunshine, s)
	s, err = ParseSection("architectural")
	require.NoError(t, err)
	require.Equal(t, SectionArchitectural, s)
	_, err = ParseSection("all")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	fsys := embeddedMapFS(t)
	fsys["graphic.yaml"] = &fstest.MapFile{Data: []byte(`section: graphic
records:
  - id: 1
    title: Empty
    description: no media
  - id: 1
    title: Duplicate
    image: /images/a.png
    screens: [/images/a.png]
    captions: [one, two]
`)}
	fsys["sunshine.yaml"] = &fstest.MapFile{Data: []byte(`section: sunshine
records:
  - id: 1
    name: Bad kind
    image: /images/b.png
    images:
      - url: /images/b.gif
        type: gif
`)}

	_, err := Load(fsys)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "got %v", err)
	joined := strings.Join(vErr.Problems, "\n")
	require.Contains(t, joined, "no media items")
	require.Contains(t, joined, "2 captions for 1 screens")
	require.Contains(t, joined, "unknown media kind")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	fsys := embeddedMapFS(t)
	fsys["ui.yaml"] = &fstest.MapFile{Data: []byte("records:\n  - id: 1\n    titel: typo\n")}
	_, err := Load(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ui.yaml")
}

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	fm, body := splitFrontMatter("---\ntitle: X\n---\n\nHello")
	require.Equal(t, "title: X", fm)
	require.Equal(t, "Hello", body)

	fm, body = splitFrontMatter("No front matter")
	require.Empty(t, fm)
	require.Equal(t, "No front matter", body)

	require.Equal(t, "Case Study", prettifySlug("case-study"))
}

func TestRenderMarkdownSanitises(t *testing.T) {
	t.Parallel()

	out, err := newRenderer().Markdown("hello <script>alert(1)</script> [x](https://example.com)")
	require.NoError(t, err)
	require.NotContains(t, string(out), "<script>")
	require.Contains(t, string(out), "nofollow")
}

func TestReloadingServiceKeepsLastGoodLibrary(t *testing.T) {
	t.Parallel()

	fsys := embeddedMapFS(t)
	svc, err := NewReloadingService(fsys, time.Minute)
	require.NoError(t, err)

	now := time.Now()
	svc.now = func() time.Time { return now }
	first, err := svc.Library(context.Background())
	require.NoError(t, err)

	fsys["ui.yaml"] = &fstest.MapFile{Data: []byte("records: [")}
	now = now.Add(2 * time.Minute)
	second, err := svc.Library(context.Background())
	require.NoError(t, err)
	require.Same(t, first, second)
}
