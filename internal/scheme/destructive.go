package scheme

import (
	"math/rand"
	"sort"
	"time"

	"github.com/alexisbeaulieu97/chromatone/internal/color"
	"github.com/alexisbeaulieu97/chromatone/internal/palette"
)

// DefaultDestructive is the muted brick red used when a palette offers no
// destructive candidates of its own.
func DefaultDestructive() palette.Color {
	return palette.NewColor("destructive-default", color.RGB{140, 82, 72})
}

// PickDestructive selects the destructive color from the classifier's
// candidate bucket. Candidates are sorted by ascending chroma and the pick
// is uniform over the lower half, rounded up. A nil random source falls
// back to a time-seeded one.
func PickDestructive(candidates []palette.Color, rng *rand.Rand) palette.Color {
	if len(candidates) == 0 {
		return DefaultDestructive()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sorted := append([]palette.Color(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OKLCH.C < sorted[j].OKLCH.C
	})

	half := (len(sorted) + 1) / 2
	return sorted[rng.Intn(half)]
}
