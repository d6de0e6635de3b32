package scheme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chromatone/internal/palette"
)

type countingCompute struct {
	mu    sync.Mutex
	calls int
	inner ComputeFunc
}

func newCountingCompute(seed int64) *countingCompute {
	e := seededEnumerator(seed)
	return &countingCompute{inner: e.Enumerate}
}

func (c *countingCompute) fn(colors palette.Palette, mode Mode) ([]Configuration, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.inner(colors, mode)
}

func (c *countingCompute) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestCacheMemoizesSamePaletteAndMode(t *testing.T) {
	t.Parallel()

	compute := newCountingCompute(1)
	cache := NewCache(compute.fn)
	p := darkPalette()

	first, err := cache.Get(p, ModeDark)
	require.NoError(t, err)
	require.Len(t, first, 4)
	require.Equal(t, 1, compute.count())

	second, err := cache.Get(p, ModeDark)
	require.NoError(t, err)
	require.Equal(t, ids(first), ids(second))
	require.Equal(t, 1, compute.count())
}

func TestCacheHoldsSingleSlot(t *testing.T) {
	t.Parallel()

	compute := newCountingCompute(1)
	cache := NewCache(compute.fn)

	_, err := cache.Get(darkPalette(), ModeDark)
	require.NoError(t, err)
	_, err = cache.Get(lightPalette(), ModeLight)
	require.NoError(t, err)
	require.Equal(t, 2, compute.count())

	// The first palette was evicted, so asking for it again recomputes.
	_, err = cache.Get(darkPalette(), ModeDark)
	require.NoError(t, err)
	require.Equal(t, 3, compute.count())
}

func TestCacheDistinguishesModes(t *testing.T) {
	t.Parallel()

	compute := newCountingCompute(1)
	cache := NewCache(compute.fn)
	p := combinedPalette()

	_, err := cache.Get(p, ModeDark)
	require.NoError(t, err)
	_, err = cache.Get(p, ModeLight)
	require.NoError(t, err)
	require.Equal(t, 2, compute.count())
}

func TestCacheClearForcesRecompute(t *testing.T) {
	t.Parallel()

	compute := newCountingCompute(1)
	cache := NewCache(compute.fn)
	p := darkPalette()

	_, err := cache.Get(p, ModeDark)
	require.NoError(t, err)
	require.Equal(t, 1, compute.count())

	cache.Clear()

	_, err = cache.Get(p, ModeDark)
	require.NoError(t, err)
	require.Equal(t, 2, compute.count())
}

func TestCacheDoesNotStoreFailedComputes(t *testing.T) {
	t.Parallel()

	compute := newCountingCompute(1)
	cache := NewCache(compute.fn)

	bad := darkPalette()
	bad = append(bad, bad[0]) // duplicate name violates palette invariants

	_, err := cache.Get(bad, ModeDark)
	require.Error(t, err)

	// The slot must still be unset, so a valid palette computes fresh.
	_, err = cache.Get(darkPalette(), ModeDark)
	require.NoError(t, err)
	require.Equal(t, 2, compute.count())
}
