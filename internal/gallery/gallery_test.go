package gallery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func items(n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{URL: "/images/x.png", Kind: KindImage}
	}
	return out
}

func TestNextWrapsAfterFullCycle(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 7, 23} {
		g, err := New(items(n))
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			g.Next()
		}
		require.Equal(t, 0, g.Index(), "n=%d", n)
	}
}

func TestPrevFromZeroGoesToLast(t *testing.T) {
	t.Parallel()

	g, err := New(items(5))
	require.NoError(t, err)
	require.Equal(t, 4, g.Prev())
	require.Equal(t, 3, g.Prev())
}

func TestJump(t *testing.T) {
	t.Parallel()

	g, err := New(items(4))
	require.NoError(t, err)

	require.NoError(t, g.Jump(2))
	require.Equal(t, 2, g.Index())

	require.NoError(t, g.Jump(2))
	require.Equal(t, 2, g.Index())

	err = g.Jump(4)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.Equal(t, 2, g.Index())

	require.ErrorIs(t, g.Jump(-1), ErrIndexOutOfRange)
	require.Equal(t, 2, g.Index())
}

func TestNewRejectsEmpty(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestApplyAndNormalize(t *testing.T) {
	t.Parallel()

	g, err := New(items(3))
	require.NoError(t, err)
	require.NoError(t, g.Jump(Normalize("2", g.Len())))
	require.NoError(t, g.Apply(ParseOp("NEXT"), 0))
	require.Equal(t, 0, g.Index())
	require.NoError(t, g.Apply(OpPrev, 0))
	require.Equal(t, 2, g.Index())
	require.NoError(t, g.Apply(ParseOp("bogus"), 0))
	require.Equal(t, 2, g.Index())

	require.Equal(t, 0, Normalize("abc", 3))
	require.Equal(t, 0, Normalize("-1", 3))
	require.Equal(t, 0, Normalize("3", 3))
	require.Equal(t, 1, Normalize(" 1 ", 3))

	_, err = ParseTarget("x")
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFallbackMessageByKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, VideoFallback, Item{Kind: KindVideo}.FallbackMessage())
	require.Equal(t, PDFFallback, Item{Kind: KindPDF}.FallbackMessage())
	require.Equal(t, ImageFallback, Item{Kind: KindImage}.FallbackMessage())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := ParseKind("")
	require.NoError(t, err)
	require.Equal(t, KindImage, k)
	k, err = ParseKind("PDF")
	require.NoError(t, err)
	require.Equal(t, KindPDF, k)
	_, err = ParseKind("gif")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestViewWrapsNeighbours(t *testing.T) {
	t.Parallel()

	list := items(3)
	list[1] = Item{URL: "/videos/a.mp4", Kind: KindVideo, Poster: "/images/a.png", Caption: "A"}
	g, err := New(list)
	require.NoError(t, err)

	v := g.View(false)
	require.Equal(t, 2, v.PrevIndex)
	require.Equal(t, 1, v.NextIndex)
	require.Equal(t, 1, v.Position)
	require.True(t, v.Multiple)
	require.Equal(t, StateLoading, v.State)
	require.Equal(t, "/images/a.png", v.Thumbs[1].URL)
	require.True(t, v.Thumbs[1].Image)
	require.True(t, v.Thumbs[0].Active)

	g.Next()
	v = g.View(true)
	require.True(t, v.Fullscreen)
	require.Equal(t, VideoFallback, v.Fallback)
}

func TestViewExternalItemStartsLoaded(t *testing.T) {
	t.Parallel()

	g, err := New([]Item{{URL: "https://www.tiktok.com/@naepop/video/1", Kind: KindVideo, External: true}})
	require.NoError(t, err)

	v := g.View(false)
	require.Equal(t, StateLoaded, v.State)
	require.False(t, v.Multiple)
}
