package scheme

import (
	"github.com/alexisbeaulieu97/chromatone/internal/palette"
)

// MaxHueLockDelta is the largest hue difference, in degrees, that still
// counts as "same hue" for hue-locked tokens.
const MaxHueLockDelta = 30.0

// Assignment maps already-resolved tokens to their colors during search.
type Assignment map[Token]palette.Color

// LightnessRange bounds a token's OKLCH lightness. A range with Min > Max is
// not an error: it simply admits no candidates, which prunes the branch.
type LightnessRange struct {
	Min float64
	Max float64
}

// Valid reports whether the range admits any value at all.
func (r LightnessRange) Valid() bool {
	return r.Min <= r.Max
}

// Contains reports whether the lightness value falls inside the range.
func (r LightnessRange) Contains(l float64) bool {
	return l >= r.Min && l <= r.Max
}

// LightnessRule is a tagged variant: either a fixed range or a range derived
// from tokens resolved earlier in TokenOrder.
type LightnessRule struct {
	static    *LightnessRange
	dependent func(deps Assignment) LightnessRange
}

// StaticLightness builds a rule with a fixed range.
func StaticLightness(min, max float64) LightnessRule {
	return LightnessRule{static: &LightnessRange{Min: min, Max: max}}
}

// DependentLightness builds a rule evaluated against resolved dependencies.
func DependentLightness(fn func(deps Assignment) LightnessRange) LightnessRule {
	return LightnessRule{dependent: fn}
}

// Resolve evaluates the rule for the given partial assignment.
func (r LightnessRule) Resolve(deps Assignment) LightnessRange {
	if r.static != nil {
		return *r.static
	}
	if r.dependent != nil {
		return r.dependent(deps)
	}
	return LightnessRange{Min: 0, Max: 1}
}

// ContrastRequirement demands a WCAG contrast ratio against an
// earlier-resolved token. Max of zero means unbounded above.
type ContrastRequirement struct {
	Against Token
	Min     float64
	Max     float64
}

// ChromaBand ties a token's chroma to a fraction of another token's chroma.
type ChromaBand struct {
	Of       Token
	MinRatio float64
	MaxRatio float64
}

// RelativeContrastBand scales a token's required contrast by the contrast a
// reference token achieves against the same background. It keeps muted text
// distinguishable from primary text without becoming illegible.
type RelativeContrastBand struct {
	Reference Token
	Against   Token
	Min       float64
	Max       float64
}

// TokenConstraint is the full rule set one token must satisfy. Zero values
// for MinChroma and MaxChroma mean the bound is unset.
type TokenConstraint struct {
	MinChroma        float64
	MaxChroma        float64
	Lightness        LightnessRule
	Contrast         []ContrastRequirement
	HueSameAs        []Token
	ChromaBand       *ChromaBand
	RelativeContrast *RelativeContrastBand
}

// ConstraintTable maps every enumerated token to its constraint for one mode.
type ConstraintTable map[Token]TokenConstraint

// TableFor returns the constraint table for a mode. The dark and light
// tables are structurally symmetric; lightness deltas flip direction.
func TableFor(mode Mode) ConstraintTable {
	if mode == ModeLight {
		return lightTable
	}
	return darkTable
}

var darkTable = ConstraintTable{
	TokenBgApp: {
		MaxChroma: 0.04,
		Lightness: StaticLightness(0.10, 0.22),
	},
	TokenBgSurface: {
		MaxChroma: 0.05,
		Lightness: DependentLightness(func(deps Assignment) LightnessRange {
			base := deps[TokenBgApp].OKLCH.L
			return LightnessRange{Min: base + 0.04, Max: base + 0.12}
		}),
	},
	TokenBgElevated: {
		MaxChroma: 0.05,
		Lightness: DependentLightness(func(deps Assignment) LightnessRange {
			base := deps[TokenBgSurface].OKLCH.L
			return LightnessRange{Min: base + 0.02, Max: base + 0.10}
		}),
	},
	TokenTextPrimary: {
		MaxChroma: 0.06,
		Lightness: StaticLightness(0.80, 1.0),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 7.0},
			{Against: TokenBgSurface, Min: 4.5},
		},
	},
	TokenTextMuted: {
		MaxChroma: 0.06,
		Lightness: StaticLightness(0.55, 0.85),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 3.0},
		},
		RelativeContrast: &RelativeContrastBand{
			Reference: TokenTextPrimary,
			Against:   TokenBgApp,
			Min:       0.6,
			Max:       0.85,
		},
	},
	TokenBorderSubtle: {
		MaxChroma: 0.06,
		Lightness: DependentLightness(func(deps Assignment) LightnessRange {
			base := deps[TokenBgApp].OKLCH.L
			return LightnessRange{Min: base + 0.06, Max: base + 0.22}
		}),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 1.2, Max: 2.2},
		},
	},
	TokenBorderStrong: {
		MaxChroma: 0.08,
		Lightness: StaticLightness(0.35, 0.65),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 2.0, Max: 4.5},
		},
	},
	TokenAccentSolid: {
		MinChroma: 0.08,
		Lightness: StaticLightness(0.55, 0.80),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 3.0},
		},
	},
	TokenAccentSoft: {
		MinChroma: 0.02,
		Lightness: DependentLightness(func(deps Assignment) LightnessRange {
			base := deps[TokenBgApp].OKLCH.L
			return LightnessRange{Min: base + 0.04, Max: base + 0.22}
		}),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 1.05, Max: 2.5},
		},
		HueSameAs:  []Token{TokenAccentSolid},
		ChromaBand: &ChromaBand{Of: TokenAccentSolid, MinRatio: 0.5, MaxRatio: 0.8},
	},
}

var lightTable = ConstraintTable{
	TokenBgApp: {
		MaxChroma: 0.04,
		Lightness: StaticLightness(0.93, 1.0),
	},
	TokenBgSurface: {
		MaxChroma: 0.05,
		Lightness: DependentLightness(func(deps Assignment) LightnessRange {
			base := deps[TokenBgApp].OKLCH.L
			return LightnessRange{Min: base - 0.12, Max: base - 0.04}
		}),
	},
	TokenBgElevated: {
		MaxChroma: 0.05,
		Lightness: DependentLightness(func(deps Assignment) LightnessRange {
			base := deps[TokenBgSurface].OKLCH.L
			return LightnessRange{Min: base - 0.10, Max: base - 0.02}
		}),
	},
	TokenTextPrimary: {
		MaxChroma: 0.06,
		Lightness: StaticLightness(0.0, 0.35),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 7.0},
			{Against: TokenBgSurface, Min: 4.5},
		},
	},
	TokenTextMuted: {
		MaxChroma: 0.06,
		Lightness: StaticLightness(0.30, 0.55),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 3.0},
		},
		RelativeContrast: &RelativeContrastBand{
			Reference: TokenTextPrimary,
			Against:   TokenBgApp,
			Min:       0.6,
			Max:       0.85,
		},
	},
	TokenBorderSubtle: {
		MaxChroma: 0.06,
		Lightness: DependentLightness(func(deps Assignment) LightnessRange {
			base := deps[TokenBgApp].OKLCH.L
			return LightnessRange{Min: base - 0.22, Max: base - 0.06}
		}),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 1.2, Max: 2.2},
		},
	},
	TokenBorderStrong: {
		MaxChroma: 0.08,
		Lightness: StaticLightness(0.35, 0.65),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 2.0, Max: 4.5},
		},
	},
	TokenAccentSolid: {
		MinChroma: 0.08,
		Lightness: StaticLightness(0.40, 0.65),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 3.0},
		},
	},
	TokenAccentSoft: {
		MinChroma: 0.02,
		Lightness: DependentLightness(func(deps Assignment) LightnessRange {
			base := deps[TokenBgApp].OKLCH.L
			return LightnessRange{Min: base - 0.22, Max: base - 0.04}
		}),
		Contrast: []ContrastRequirement{
			{Against: TokenBgApp, Min: 1.05, Max: 2.5},
		},
		HueSameAs:  []Token{TokenAccentSolid},
		ChromaBand: &ChromaBand{Of: TokenAccentSolid, MinRatio: 0.5, MaxRatio: 0.8},
	},
}
