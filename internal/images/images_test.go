package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownKeys(t *testing.T) {
	for _, key := range []string{"tomato", "honey", "farmer-1", "hero", "salad"} {
		u := URL(key)
		require.True(t, strings.HasPrefix(u, "https://"), "key %s", key)
	}
}

func TestUnknownKeyFallsBackToMarket(t *testing.T) {
	require.Equal(t, URL("market"), URL("does-not-exist"))
	require.Equal(t, URL("market"), URL(""))
}

func TestURLsKeepsOrder(t *testing.T) {
	urls := URLs([]string{"tomato", "nope", "honey"})
	require.Len(t, urls, 3)
	require.Equal(t, URL("tomato"), urls[0])
	require.Equal(t, URL("market"), urls[1])
	require.Equal(t, URL("honey"), urls[2])
}
