package palette

import (
	"math"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/chromatone/internal/color"
	chromatoneerrors "github.com/alexisbeaulieu97/chromatone/pkg/errors"
)

// Color is a single named palette entry. The name is the identity key and is
// unique within a palette; the OKLCH triple is derived from the RGB value at
// load time and never recomputed afterwards.
type Color struct {
	Name  string
	RGB   color.RGB
	OKLCH color.OKLCH
}

// NewColor builds a Color from a name and an sRGB triple, deriving its OKLCH
// representation.
func NewColor(name string, rgb color.RGB) Color {
	return Color{Name: name, RGB: rgb, OKLCH: color.RGBToOKLCH(rgb)}
}

// Hex renders the color as a "#rrggbb" literal.
func (c Color) Hex() string {
	return color.Hex(c.RGB)
}

// Validate enforces the color invariants: integer RGB channels in [0, 255],
// finite lightness/chroma/hue, lightness in [0, 1], non-negative chroma and a
// hue normalized to [0, 360). Upstream loading is expected to produce only
// valid colors, so a failure here is a hard error, not a prunable condition.
func (c Color) Validate() error {
	for _, ch := range c.RGB {
		if ch < 0 || ch > 255 {
			return chromatoneerrors.NewColorError(c.Name, "rgb channel out of range [0,255]", nil)
		}
	}

	l, cr, h := c.OKLCH.L, c.OKLCH.C, c.OKLCH.H
	if math.IsNaN(l) || math.IsInf(l, 0) || math.IsNaN(cr) || math.IsInf(cr, 0) || math.IsNaN(h) || math.IsInf(h, 0) {
		return chromatoneerrors.NewColorError(c.Name, "oklch component is not finite", nil)
	}
	if l < 0 || l > 1 {
		return chromatoneerrors.NewColorError(c.Name, "oklch lightness out of range [0,1]", nil)
	}
	if cr < 0 {
		return chromatoneerrors.NewColorError(c.Name, "oklch chroma must be non-negative", nil)
	}
	if h < 0 || h >= 360 {
		return chromatoneerrors.NewColorError(c.Name, "oklch hue out of range [0,360)", nil)
	}

	return nil
}

// Palette is an ordered collection of colors. Order carries no meaning for
// scheme derivation.
type Palette []Color

// Validate checks every color's invariants and rejects duplicate names.
func (p Palette) Validate() error {
	seen := make(map[string]struct{}, len(p))
	for _, c := range p {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c.Name]; dup {
			return chromatoneerrors.NewValidationError("colors", "duplicate color name "+c.Name, nil)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// Hash returns the palette identity used as a memoization key: the color
// names sorted and joined with commas.
func (p Palette) Hash() string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.Name
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
