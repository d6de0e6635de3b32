package scheme

import (
	"math/rand"

	"github.com/alexisbeaulieu97/chromatone/internal/color"
	"github.com/alexisbeaulieu97/chromatone/internal/palette"
)

// darkPalette satisfies the dark-mode table with exactly four distinct
// configurations, independent of shuffle order: only bgApp/bgSurface/
// textPrimary/textMuted/borderStrong/accentSolid/accentSoft have single
// candidates while bgElevated and borderSubtle each admit two.
func darkPalette() palette.Palette {
	return palette.Palette{
		palette.NewColor("nearblack", color.RGB{20, 22, 30}),
		palette.NewColor("charcoal", color.RGB{34, 37, 48}),
		palette.NewColor("slateshadow", color.RGB{47, 51, 65}),
		palette.NewColor("paper", color.RGB{235, 237, 243}),
		palette.NewColor("mist", color.RGB{185, 190, 204}),
		palette.NewColor("edge", color.RGB{56, 60, 76}),
		palette.NewColor("steel", color.RGB{108, 114, 132}),
		palette.NewColor("azure", color.RGB{96, 156, 255}),
		palette.NewColor("deepsea", color.RGB{38, 62, 110}),
		palette.NewColor("brick", color.RGB{168, 84, 72}),
	}
}

// lightPalette satisfies the light-mode table with exactly six distinct
// configurations.
func lightPalette() palette.Palette {
	return palette.Palette{
		palette.NewColor("chalk", color.RGB{250, 250, 248}),
		palette.NewColor("fog", color.RGB{224, 226, 230}),
		palette.NewColor("pebble", color.RGB{205, 208, 214}),
		palette.NewColor("ink", color.RGB{30, 32, 40}),
		palette.NewColor("graphite", color.RGB{58, 62, 72}),
		palette.NewColor("hairline", color.RGB{196, 198, 204}),
		palette.NewColor("iron", color.RGB{120, 124, 134}),
		palette.NewColor("cobalt", color.RGB{30, 90, 210}),
		palette.NewColor("skywash", color.RGB{150, 190, 255}),
		palette.NewColor("clay", color.RGB{172, 92, 78}),
	}
}

// combinedPalette merges both fixtures; it admits well over the default
// configuration cap in either mode.
func combinedPalette() palette.Palette {
	return append(lightPalette(), darkPalette()...)
}

// pastelPalette has no color satisfying the dark-mode bgApp band, so dark
// enumeration must come up empty.
func pastelPalette() palette.Palette {
	return palette.Palette{
		palette.NewColor("blush", color.RGB{250, 240, 240}),
		palette.NewColor("mint", color.RGB{240, 250, 240}),
		palette.NewColor("lilac", color.RGB{240, 240, 250}),
		palette.NewColor("cream", color.RGB{255, 250, 230}),
	}
}

func seededEnumerator(seed int64) *Enumerator {
	return NewEnumerator(Options{Rand: rand.New(rand.NewSource(seed))})
}
