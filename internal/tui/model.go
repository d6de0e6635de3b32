package tui

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/chromatone/internal/palette"
	"github.com/alexisbeaulieu97/chromatone/internal/scheme"
)

// keyMap defines the keybindings of the configuration browser.
type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Mode key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Mode, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Mode, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Browser is the Bubbletea model for paging through enumerated
// configurations of a palette.
type Browser struct {
	colors palette.Palette
	cache  *scheme.Cache
	rng    *rand.Rand

	mode        scheme.Mode
	configs     []scheme.Configuration
	destructive palette.Color
	index       int
	loadErr     error

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// NewBrowser builds a browser over the palette. The cache is owned by the
// caller and shared across mode toggles; the random source drives the
// destructive pick shown alongside each configuration.
func NewBrowser(colors palette.Palette, mode scheme.Mode, cache *scheme.Cache, rng *rand.Rand) Browser {
	b := Browser{
		colors: colors,
		cache:  cache,
		rng:    rng,
		mode:   mode,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	b.reload()
	return b
}

func (b *Browser) reload() {
	b.index = 0
	b.configs, b.loadErr = b.cache.Get(b.colors, b.mode)

	classified := palette.Classify(b.colors)
	b.destructive = scheme.PickDestructive(classified.DestructiveCandidates, b.rng)
}

// Current returns the configuration under the cursor, if any.
func (b Browser) Current() (scheme.Configuration, bool) {
	if len(b.configs) == 0 || b.index >= len(b.configs) {
		return scheme.Configuration{}, false
	}
	return b.configs[b.index], true
}
