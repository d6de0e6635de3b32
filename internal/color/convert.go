package color

import "math"

// oklab is the cartesian intermediate between linear sRGB and OKLCH.
type oklab struct {
	l float64
	a float64
	b float64
}

func rgbToOklab(c RGB) oklab {
	r := SRGBToLinear(c[0])
	g := SRGBToLinear(c[1])
	b := SRGBToLinear(c[2])

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lc := math.Cbrt(l)
	mc := math.Cbrt(m)
	sc := math.Cbrt(s)

	return oklab{
		l: 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc,
		a: 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc,
		b: 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc,
	}
}

func oklabToRGB(c oklab) RGB {
	lc := c.l + 0.3963377774*c.a + 0.2158037573*c.b
	mc := c.l - 0.1055613458*c.a - 0.0638541728*c.b
	sc := c.l - 0.0894841775*c.a - 1.2914855480*c.b

	l := lc * lc * lc
	m := mc * mc * mc
	s := sc * sc * sc

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return RGB{LinearToSRGB(r), LinearToSRGB(g), LinearToSRGB(b)}
}

// RGBToOKLCH converts an sRGB triple to OKLCH. Lightness and chroma are
// rounded to three decimals and hue to the nearest degree; the induced
// round-trip error of up to one unit per RGB channel is part of the contract.
func RGBToOKLCH(c RGB) OKLCH {
	lab := rgbToOklab(c)

	chroma := math.Sqrt(lab.a*lab.a + lab.b*lab.b)
	hue := NormalizeHue(math.Atan2(lab.b, lab.a) * 180.0 / math.Pi)

	return OKLCH{
		L: math.Round(lab.l*1000) / 1000,
		C: math.Round(chroma*1000) / 1000,
		H: NormalizeHue(math.Round(hue)),
	}
}

// OKLCHToRGB converts an OKLCH color back to sRGB, clamping each channel to
// [0, 255].
func OKLCHToRGB(c OKLCH) RGB {
	rad := c.H * math.Pi / 180.0
	return oklabToRGB(oklab{
		l: c.L,
		a: c.C * math.Cos(rad),
		b: c.C * math.Sin(rad),
	})
}
