// Package colorspace provides the pure color math the theme pipeline is
// built on: sRGB storage colors, the sRGB gamma transfer curve, OKLCH
// conversions for perceptually even lightness adjustments, and the WCAG
// luminance/contrast formulas.
package colorspace

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB triple with 8-bit channels. It is the canonical storage
// form; linear RGB and OKLCH values are derived on demand and never stored.
type Color struct {
	R, G, B uint8
}

// OKLCH is a color in the OKLab lightness-chroma-hue polar form.
// L is in [0,1], C is >= 0, H is in degrees [0,360). For achromatic colors
// (C ~ 0) the hue is undefined and carried as 0 by convention.
type OKLCH struct {
	L, C, H float64
}

// FromFloats builds a Color from float channels in [0,1], scaling to 0-255
// and rounding. Out-of-range inputs are clamped.
func FromFloats(r, g, b float64) Color {
	return Color{
		R: uint8(math.Round(clamp01(r) * 255.0)),
		G: uint8(math.Round(clamp01(g) * 255.0)),
		B: uint8(math.Round(clamp01(b) * 255.0)),
	}
}

// ParseHex parses "#RRGGBB" or "RRGGBB" into a Color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimSpace(s)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return FromFloats(c.R, c.G, c.B), nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ToLinear applies the sRGB transfer curve to a single gamma-encoded
// channel in [0,1].
func ToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// FromLinear is the inverse of ToLinear.
func FromLinear(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// RGBToOKLCH converts a storage color to OKLCH via linear RGB and OKLab.
func RGBToOKLCH(c Color) OKLCH {
	r := ToLinear(float64(c.R) / 255.0)
	g := ToLinear(float64(c.G) / 255.0)
	b := ToLinear(float64(c.B) / 255.0)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	labL := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	labA := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	labB := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	chroma := math.Hypot(labA, labB)
	hue := 0.0
	if chroma > 1e-7 {
		hue = math.Atan2(labB, labA) * 180.0 / math.Pi
		if hue < 0 {
			hue += 360.0
		}
	}
	return OKLCH{L: labL, C: chroma, H: hue}
}

// OKLCHToRGB converts back to the sRGB storage form. Colors outside the
// sRGB gamut are clamped per linear channel to [0,1] before rounding; the
// clamp is deterministic and is the documented gamut behavior.
func OKLCHToRGB(o OKLCH) Color {
	hr := o.H * math.Pi / 180.0
	a := o.C * math.Cos(hr)
	b := o.C * math.Sin(hr)

	l := o.L + 0.3963377774*a + 0.2158037573*b
	m := o.L - 0.1055613458*a - 0.0638541728*b
	s := o.L - 0.0894841775*a - 1.2914855480*b

	l, m, s = l*l*l, m*m*m, s*s*s

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return FromFloats(
		FromLinear(clamp01(r)),
		FromLinear(clamp01(g)),
		FromLinear(clamp01(bb)),
	)
}

// RelativeLuminance returns the WCAG relative luminance in [0,1].
func RelativeLuminance(c Color) float64 {
	r := ToLinear(float64(c.R) / 255.0)
	g := ToLinear(float64(c.G) / 255.0)
	b := ToLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors. The
// result is in [1,21] and symmetric under swapping the arguments.
func ContrastRatio(a, b Color) float64 {
	la := RelativeLuminance(a) + 0.05
	lb := RelativeLuminance(b) + 0.05
	if la < lb {
		la, lb = lb, la
	}
	return la / lb
}

// IsDark reports whether a color reads as dark. The 0.18 threshold matches
// the midpoint of perceived lightness rather than of luminance.
func IsDark(c Color) bool {
	return RelativeLuminance(c) < 0.18
}

// Lighten raises OKLCH lightness by amount (clamped to [0,1]).
func Lighten(c Color, amount float64) Color {
	o := RGBToOKLCH(c)
	o.L = clamp01(o.L + amount)
	return OKLCHToRGB(o)
}

// Darken lowers OKLCH lightness by amount.
func Darken(c Color, amount float64) Color {
	return Lighten(c, -amount)
}

// Desaturate scales OKLCH chroma down by frac in [0,1].
func Desaturate(c Color, frac float64) Color {
	o := RGBToOKLCH(c)
	o.C *= 1.0 - clamp01(frac)
	return OKLCHToRGB(o)
}

// Mix blends a toward b by t in sRGB space: t=0 returns a, t=1 returns b.
func Mix(a, b Color, t float64) Color {
	m := a.colorful().BlendRgb(b.colorful(), clamp01(t))
	return FromFloats(m.R, m.G, m.B)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
