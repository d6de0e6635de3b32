package palette

// Tone buckets a color by perceptual lightness.
type Tone string

// ChromaLevel buckets a color by chroma intensity.
type ChromaLevel string

const (
	ToneDark  Tone = "dark"
	ToneMid   Tone = "mid"
	ToneLight Tone = "light"

	ChromaNeutral ChromaLevel = "neutral"
	ChromaMuted   ChromaLevel = "muted"
	ChromaVivid   ChromaLevel = "vivid"
)

// Classification thresholds. Tone boundaries are closed on the dark side:
// L = 0.35 is still dark and L = 0.75 is still mid. Chroma boundaries are
// closed on the upper bucket: C = 0.04 is muted and C = 0.08 is vivid.
const (
	darkMaxLightness  = 0.35
	lightMinLightness = 0.75

	neutralMaxChroma = 0.04
	vividMinChroma   = 0.08

	// Below this chroma the hue angle is numerically meaningless, so the
	// color cannot qualify as a destructive candidate.
	destructiveMinChroma = 0.02
	destructiveHueLow    = 350.0
	destructiveHueHigh   = 40.0
)

// Bucket identifies one of the nine tone-by-chroma cells.
type Bucket struct {
	Tone   Tone
	Chroma ChromaLevel
}

// Classified groups a palette's colors by tone and chroma. Every color lands
// in exactly one tone-by-chroma bucket; destructive candidacy is an
// independent overlay.
type Classified struct {
	Buckets               map[Bucket][]Color
	DestructiveCandidates []Color
	All                   []Color
}

// ToneOf buckets a lightness value.
func ToneOf(l float64) Tone {
	switch {
	case l <= darkMaxLightness:
		return ToneDark
	case l > lightMinLightness:
		return ToneLight
	default:
		return ToneMid
	}
}

// ChromaLevelOf buckets a chroma value.
func ChromaLevelOf(c float64) ChromaLevel {
	switch {
	case c < neutralMaxChroma:
		return ChromaNeutral
	case c >= vividMinChroma:
		return ChromaVivid
	default:
		return ChromaMuted
	}
}

// IsDestructiveCandidate reports whether a color sits in the red hue arc
// used for destructive actions: chroma at least 0.02 and hue in the wrapping
// range [350, 360) or [0, 40].
func IsDestructiveCandidate(c Color) bool {
	if c.OKLCH.C < destructiveMinChroma {
		return false
	}
	h := c.OKLCH.H
	return h >= destructiveHueLow || h <= destructiveHueHigh
}

// Classify derives the transient classification for a palette.
func Classify(p Palette) Classified {
	out := Classified{
		Buckets: make(map[Bucket][]Color),
		All:     append([]Color(nil), p...),
	}

	for _, c := range p {
		bucket := Bucket{Tone: ToneOf(c.OKLCH.L), Chroma: ChromaLevelOf(c.OKLCH.C)}
		out.Buckets[bucket] = append(out.Buckets[bucket], c)
		if IsDestructiveCandidate(c) {
			out.DestructiveCandidates = append(out.DestructiveCandidates, c)
		}
	}

	return out
}

// Bucket returns the colors in one tone-by-chroma cell.
func (c Classified) Bucket(tone Tone, chroma ChromaLevel) []Color {
	return c.Buckets[Bucket{Tone: tone, Chroma: chroma}]
}
