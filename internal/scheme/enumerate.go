package scheme

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/chromatone/internal/color"
	"github.com/alexisbeaulieu97/chromatone/internal/palette"
	chromatoneerrors "github.com/alexisbeaulieu97/chromatone/pkg/errors"
)

// Default search bounds. Both are tunable through Options; together they cap
// the work done on large palettes.
const (
	DefaultMaxConfigurations     = 12
	DefaultMaxCandidatesPerToken = 6
)

// Options tunes the enumeration search.
type Options struct {
	// MaxConfigurations stops the whole search once this many distinct
	// configurations have been found.
	MaxConfigurations int
	// MaxCandidatesPerToken caps how many (shuffled) candidates are explored
	// per token at each depth, making the search a bounded random sample of
	// the solution space rather than an exhaustive enumeration.
	MaxCandidatesPerToken int
	// Rand drives candidate shuffling. Inject a seeded source for
	// reproducible results; nil falls back to a time-seeded source.
	Rand *rand.Rand
}

// DefaultOptions returns the production search bounds with a time-seeded
// random source.
func DefaultOptions() Options {
	return Options{
		MaxConfigurations:     DefaultMaxConfigurations,
		MaxCandidatesPerToken: DefaultMaxCandidatesPerToken,
	}
}

// Configuration is one complete token-to-color assignment. Tokens always
// holds every entry of TokenOrder; partial configurations are never emitted.
// ID is the canonical dedup key.
type Configuration struct {
	Tokens map[Token]palette.Color
	ID     string
}

// Enumerator runs the backtracking search over the per-mode constraint
// tables. It holds no mutable state between calls and is safe for
// concurrent use as long as the injected random source is not shared.
type Enumerator struct {
	opts Options
}

// NewEnumerator builds an Enumerator, filling unset options with defaults.
func NewEnumerator(opts Options) *Enumerator {
	if opts.MaxConfigurations <= 0 {
		opts.MaxConfigurations = DefaultMaxConfigurations
	}
	if opts.MaxCandidatesPerToken <= 0 {
		opts.MaxCandidatesPerToken = DefaultMaxCandidatesPerToken
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Enumerator{opts: opts}
}

// Enumerate returns up to MaxConfigurations distinct valid configurations
// for the palette and mode. An empty result is a legitimate outcome meaning
// no canonical scheme exists, not an error. The only error conditions are
// malformed inputs: colors violating the model invariants, or an unknown
// mode.
func (e *Enumerator) Enumerate(colors palette.Palette, mode Mode) ([]Configuration, error) {
	if !mode.Valid() {
		return nil, errUnknownMode(mode)
	}
	if err := colors.Validate(); err != nil {
		return nil, err
	}

	st := &searchState{
		colors:     colors,
		table:      TableFor(mode),
		assigned:   make(Assignment, len(TokenOrder)),
		seen:       make(map[string]struct{}),
		maxConfigs: e.opts.MaxConfigurations,
	}
	e.search(st, 0)

	return st.results, nil
}

type searchState struct {
	colors     palette.Palette
	table      ConstraintTable
	assigned   Assignment
	results    []Configuration
	seen       map[string]struct{}
	maxConfigs int
	done       bool
}

func (e *Enumerator) search(st *searchState, depth int) {
	if st.done {
		return
	}

	if depth == len(TokenOrder) {
		st.record()
		return
	}

	token := TokenOrder[depth]
	candidates := filterCandidates(st.colors, st.table[token], st.assigned)

	e.opts.Rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > e.opts.MaxCandidatesPerToken {
		candidates = candidates[:e.opts.MaxCandidatesPerToken]
	}

	for _, c := range candidates {
		st.assigned[token] = c
		e.search(st, depth+1)
		delete(st.assigned, token)
		if st.done {
			return
		}
	}
}

func (st *searchState) record() {
	id := canonicalID(st.assigned)
	if _, dup := st.seen[id]; dup {
		return
	}
	st.seen[id] = struct{}{}

	tokens := make(map[Token]palette.Color, len(TokenOrder))
	for _, token := range TokenOrder {
		tokens[token] = st.assigned[token]
	}
	st.results = append(st.results, Configuration{Tokens: tokens, ID: id})

	if len(st.results) >= st.maxConfigs {
		st.done = true
	}
}

func errUnknownMode(m Mode) error {
	return chromatoneerrors.NewValidationError("mode", fmt.Sprintf("unknown mode %q", m), nil)
}

// canonicalID builds the dedup key: token:colorName pairs joined in
// TokenOrder order.
func canonicalID(a Assignment) string {
	parts := make([]string, len(TokenOrder))
	for i, token := range TokenOrder {
		parts[i] = string(token) + ":" + a[token].Name
	}
	return strings.Join(parts, ",")
}

// filterCandidates applies a token's constraint to the full color set given
// the colors already assigned. Tests run in cheapest-first order; an
// infeasible dependent lightness range yields zero candidates and silently
// prunes the branch.
func filterCandidates(colors palette.Palette, tc TokenConstraint, deps Assignment) []palette.Color {
	lightness := tc.Lightness.Resolve(deps)
	if !lightness.Valid() {
		return nil
	}

	var out []palette.Color
	for _, c := range colors {
		if !matchesConstraint(c, tc, lightness, deps) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesConstraint(c palette.Color, tc TokenConstraint, lightness LightnessRange, deps Assignment) bool {
	if c.OKLCH.C < tc.MinChroma {
		return false
	}
	if tc.MaxChroma > 0 && c.OKLCH.C > tc.MaxChroma {
		return false
	}
	if !lightness.Contains(c.OKLCH.L) {
		return false
	}

	for _, req := range tc.Contrast {
		ratio := color.ContrastRatio(c.RGB, deps[req.Against].RGB)
		if ratio < req.Min {
			return false
		}
		if req.Max > 0 && ratio > req.Max {
			return false
		}
	}

	for _, other := range tc.HueSameAs {
		if color.HueDifference(c.OKLCH.H, deps[other].OKLCH.H) > MaxHueLockDelta {
			return false
		}
	}

	if band := tc.ChromaBand; band != nil {
		base := deps[band.Of].OKLCH.C
		if c.OKLCH.C < base*band.MinRatio || c.OKLCH.C > base*band.MaxRatio {
			return false
		}
	}

	if band := tc.RelativeContrast; band != nil {
		bg := deps[band.Against].RGB
		reference := color.ContrastRatio(deps[band.Reference].RGB, bg)
		mine := color.ContrastRatio(c.RGB, bg)
		if mine < band.Min*reference || mine > band.Max*reference {
			return false
		}
	}

	return true
}
