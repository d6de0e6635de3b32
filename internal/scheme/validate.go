package scheme

import (
	"github.com/alexisbeaulieu97/chromatone/internal/color"
	"github.com/alexisbeaulieu97/chromatone/internal/palette"
)

// ValidateConfiguration re-checks the contrast requirements of every token in
// a configuration against the mode's constraint table. Lightness, chroma and
// hue rules are enforced during construction and are not re-tested here.
// Every configuration the enumerator emits must pass this check.
func ValidateConfiguration(cfg Configuration, mode Mode) bool {
	if len(cfg.Tokens) != len(TokenOrder) {
		return false
	}

	table := TableFor(mode)
	deps := Assignment(cfg.Tokens)

	for _, token := range TokenOrder {
		c, ok := cfg.Tokens[token]
		if !ok {
			return false
		}

		for _, req := range table[token].Contrast {
			ratio := color.ContrastRatio(c.RGB, cfg.Tokens[req.Against].RGB)
			if ratio < req.Min {
				return false
			}
			if req.Max > 0 && ratio > req.Max {
				return false
			}
		}

		if band := table[token].RelativeContrast; band != nil {
			bg := deps[band.Against].RGB
			reference := color.ContrastRatio(deps[band.Reference].RGB, bg)
			mine := color.ContrastRatio(c.RGB, bg)
			if mine < band.Min*reference || mine > band.Max*reference {
				return false
			}
		}
	}

	return true
}

// PaletteCheck reports whether a palette can produce at least one canonical
// scheme for a mode. A zero count is a signal to fall back to a heuristic
// generator, never an error.
type PaletteCheck struct {
	Valid       bool
	ConfigCount int
}

// ValidatePalette runs the enumeration and summarizes the outcome.
func (e *Enumerator) ValidatePalette(colors palette.Palette, mode Mode) (PaletteCheck, error) {
	configs, err := e.Enumerate(colors, mode)
	if err != nil {
		return PaletteCheck{}, err
	}
	return PaletteCheck{Valid: len(configs) > 0, ConfigCount: len(configs)}, nil
}
