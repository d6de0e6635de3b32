package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chromatone/internal/scheme"
)

func TestViewRendersTokens(t *testing.T) {
	t.Parallel()

	b := testBrowser(t, scheme.ModeDark)
	out := b.View()

	require.Contains(t, out, "chromatone")
	require.Contains(t, out, "dark mode")
	require.Contains(t, out, "configuration 1 of 4")
	for _, token := range scheme.TokenOrder {
		require.Contains(t, out, string(token))
	}
	require.Contains(t, out, string(scheme.TokenDestructive))
	require.Contains(t, out, "brick")
}

func TestViewEmptyState(t *testing.T) {
	t.Parallel()

	b := testBrowser(t, scheme.ModeLight)
	out := b.View()

	require.Contains(t, out, "no canonical scheme exists")
	require.NotContains(t, out, "configuration 1")
}
