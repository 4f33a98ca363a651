package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestYear(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2025, Year(time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)))
}

func TestFmtNumber(t *testing.T) {
	t.Parallel()

	require.Equal(t, "15,000", FmtNumber(15000, "en"))
	require.Equal(t, "15.000", FmtNumber(15000, "id"))
	require.Equal(t, "550 souvenirs", FmtCount(550, "souvenirs", "bogus-"))
	require.Equal(t, "1.250 proyek", FmtCount(1250, "proyek", "id"))
}
