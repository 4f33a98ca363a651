package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nailaham15/nailah-s-portfolio/internal/config"
	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	"github.com/nailaham15/nailah-s-portfolio/internal/gallery"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
)

func loadLibrary(t *testing.T) *content.Library {
	t.Helper()
	lib, err := content.Load(content.DefaultFS())
	require.NoError(t, err)
	return lib
}

func TestBuildRecordWrapsPeers(t *testing.T) {
	t.Parallel()

	lib := loadLibrary(t)
	rec, err := BuildRecord(lib, "en", content.SectionGraphic, 6)
	require.NoError(t, err)
	require.Equal(t, 5, rec.Prev.ID)
	require.Equal(t, 1, rec.Next.ID)
	require.Equal(t, "/projects?category=graphic", rec.MoreHref)
	require.Equal(t, 0, rec.Gallery.View.Index)
	require.True(t, rec.HasPeers)

	_, err = BuildRecord(lib, "en", content.SectionGraphic, 42)
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestBuildGalleryOperations(t *testing.T) {
	t.Parallel()

	lib := loadLibrary(t)
	entry, err := lib.Entry(content.SectionUI, 1)
	require.NoError(t, err)
	n := len(entry.Media)

	g, err := BuildGallery("en", entry, GalleryRequest{Index: "0", Op: "prev"}, false)
	require.NoError(t, err)
	require.Equal(t, n-1, g.View.Index)

	g, err = BuildGallery("en", entry, GalleryRequest{Index: "junk", Op: "next"}, true)
	require.NoError(t, err)
	require.Equal(t, 1, g.View.Index)
	require.True(t, g.View.Fullscreen)

	base := g.Base()
	require.True(t, base.OOB)
	require.False(t, base.View.Fullscreen)
	require.Equal(t, g.View.Index, base.View.Index)

	g, err = BuildGallery("en", entry, GalleryRequest{Index: "1", Op: "jump", Target: "3"}, false)
	require.NoError(t, err)
	require.Equal(t, 3, g.View.Index)

	_, err = BuildGallery("en", entry, GalleryRequest{Index: "1", Op: "jump", Target: "99"}, false)
	require.ErrorIs(t, err, gallery.ErrIndexOutOfRange)
}

func TestCategoryURLAndPortfolio(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/projects", CategoryURL("/projects", portfolio.CategoryAll))
	require.Equal(t, "/?category=video", CategoryURL("/", portfolio.Category("video")))

	data := BuildPortfolio(loadLibrary(t), "en", "", portfolio.ParseCategory("brand"))
	require.Equal(t, "/", data.BasePath)
	require.Len(t, data.View.Sections, 1)
}

func TestAnalyticsFromConfig(t *testing.T) {
	t.Parallel()

	require.False(t, AnalyticsFromConfig(config.AnalyticsConfig{}).Enabled())
	require.True(t, AnalyticsFromConfig(config.AnalyticsConfig{GA4MeasurementID: "G-1"}).Enabled())
}
