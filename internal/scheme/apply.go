package scheme

import (
	"math/rand"

	"github.com/alexisbeaulieu97/chromatone/internal/palette"
)

// Scheme is a complete ten-entry token map: the nine enumerated tokens plus
// the destructive color.
type Scheme map[Token]palette.Color

// ApplyConfiguration expands a configuration into a full scheme by adding
// the destructive color picked from the palette's candidate bucket.
func ApplyConfiguration(cfg Configuration, colors palette.Palette, rng *rand.Rand) Scheme {
	out := make(Scheme, len(TokenOrder)+1)
	for token, c := range cfg.Tokens {
		out[token] = c
	}

	classified := palette.Classify(colors)
	out[TokenDestructive] = PickDestructive(classified.DestructiveCandidates, rng)
	return out
}
