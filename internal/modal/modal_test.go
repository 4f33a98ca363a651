package modal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDismisses(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"backdrop": true,
		"Escape":   true,
		"esc":      true,
		"button":   true,
		"content":  false,
		"":         false,
		"wheel":    false,
	}
	for raw, want := range cases {
		require.Equal(t, want, Dismisses(ParseReason(raw)), raw)
	}
}
