package color

import "math"

// RGB holds an sRGB triple with each channel in [0, 255].
type RGB [3]int

// OKLCH holds a color in cylindrical Oklab form. L is perceptual lightness in
// [0, 1], C is chroma (non-negative, in practice below ~0.4 for sRGB colors)
// and H is the hue angle in degrees, normalized to [0, 360).
type OKLCH struct {
	L float64
	C float64
	H float64
}

// SRGBToLinear gamma-decodes a single sRGB channel value in [0, 255] to its
// linear-light equivalent in [0, 1].
func SRGBToLinear(v int) float64 {
	n := float64(v) / 255.0
	if n <= 0.04045 {
		return n / 12.92
	}
	return math.Pow((n+0.055)/1.055, 2.4)
}

// LinearToSRGB gamma-encodes a linear-light channel value to an sRGB integer,
// clamped to [0, 255] and rounded to the nearest integer.
func LinearToSRGB(v float64) int {
	var n float64
	if v <= 0.0031308 {
		n = v * 12.92
	} else {
		n = 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	out := int(math.Round(n * 255.0))
	if out < 0 {
		return 0
	}
	if out > 255 {
		return 255
	}
	return out
}

// RelativeLuminance computes the WCAG relative luminance of an sRGB color.
func RelativeLuminance(c RGB) float64 {
	r := SRGBToLinear(c[0])
	g := SRGBToLinear(c[1])
	b := SRGBToLinear(c[2])
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio computes the WCAG contrast ratio between two colors. The
// result is symmetric in its arguments and always lies in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// HueDifference returns the absolute difference between two hue angles in
// degrees, wrapped to the shortest arc. The result lies in [0, 180].
func HueDifference(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	d = math.Mod(d, 360.0)
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

// NormalizeHue maps an arbitrary hue angle into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}
