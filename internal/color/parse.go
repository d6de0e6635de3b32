package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse decodes a color literal in one of the supported syntaxes:
// "#rrggbb" (or shorthand "#rgb"), "rgb(r, g, b)" with integer channels, or
// "oklch(L C H)" with L and C as floats and H in degrees.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4 : len(s)-1])
	case strings.HasPrefix(s, "oklch(") && strings.HasSuffix(s, ")"):
		return parseOKLCHFunc(s[6 : len(s)-1])
	default:
		return RGB{}, fmt.Errorf("unrecognized color literal %q", s)
	}
}

// Hex formats an RGB triple as a lowercase "#rrggbb" literal.
func Hex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

func parseHex(s string) (RGB, error) {
	parsed, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		int(math.Round(parsed.R * 255)),
		int(math.Round(parsed.G * 255)),
		int(math.Round(parsed.B * 255)),
	}, nil
}

func parseRGBFunc(body string) (RGB, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("rgb() expects 3 channels, got %d", len(parts))
	}

	var out RGB
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGB{}, fmt.Errorf("invalid rgb() channel %q: %w", part, err)
		}
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("rgb() channel %d out of range [0,255]", v)
		}
		out[i] = v
	}
	return out, nil
}

func parseOKLCHFunc(body string) (RGB, error) {
	fields := strings.Fields(strings.ReplaceAll(body, ",", " "))
	if len(fields) != 3 {
		return RGB{}, fmt.Errorf("oklch() expects 3 components, got %d", len(fields))
	}

	vals := make([]float64, 3)
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(field, "deg"), 64)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid oklch() component %q: %w", field, err)
		}
		vals[i] = v
	}

	if vals[0] < 0 || vals[0] > 1 {
		return RGB{}, fmt.Errorf("oklch() lightness %g out of range [0,1]", vals[0])
	}
	if vals[1] < 0 {
		return RGB{}, fmt.Errorf("oklch() chroma %g must be non-negative", vals[1])
	}

	return OKLCHToRGB(OKLCH{L: vals[0], C: vals[1], H: NormalizeHue(vals[2])}), nil
}
