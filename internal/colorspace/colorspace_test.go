package colorspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOKLCHRoundTrip(t *testing.T) {
	// Every sRGB color must survive RGB -> OKLCH -> RGB within one
	// channel unit.
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				in := Color{R: uint8(r), G: uint8(g), B: uint8(b)}
				out := OKLCHToRGB(RGBToOKLCH(in))
				assert.InDelta(t, int(in.R), int(out.R), 1, "R channel for %v", in)
				assert.InDelta(t, int(in.G), int(out.G), 1, "G channel for %v", in)
				assert.InDelta(t, int(in.B), int(out.B), 1, "B channel for %v", in)
			}
		}
	}
}

func TestOKLCHRoundTrip_GrayIsExact(t *testing.T) {
	// Grays sit on the neutral axis where every channel is equal; the
	// round trip must reproduce them bit-for-bit, not just within one
	// unit. A skewed conversion matrix shows up here first.
	for _, v := range []uint8{0, 64, 128, 192, 255} {
		in := Color{R: v, G: v, B: v}
		assert.Equal(t, in, OKLCHToRGB(RGBToOKLCH(in)), "gray %d", v)
	}
}

func TestOKLCHRoundTrip_Extremes(t *testing.T) {
	for _, c := range []Color{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{1, 1, 1}, {254, 254, 254},
	} {
		out := OKLCHToRGB(RGBToOKLCH(c))
		assert.InDelta(t, int(c.R), int(out.R), 1)
		assert.InDelta(t, int(c.G), int(out.G), 1)
		assert.InDelta(t, int(c.B), int(out.B), 1)
	}
}

func TestRGBToOKLCH_GrayscaleHasZeroHue(t *testing.T) {
	// Achromatic colors must not produce NaN; hue is 0 by convention.
	for _, v := range []uint8{0, 1, 64, 128, 200, 255} {
		o := RGBToOKLCH(Color{R: v, G: v, B: v})
		assert.False(t, math.IsNaN(o.H), "hue NaN for gray %d", v)
		assert.Equal(t, 0.0, o.H, "gray %d", v)
		assert.InDelta(t, 0.0, o.C, 1e-4, "gray %d should be achromatic", v)
	}
}

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeLuminance(Color{0, 0, 0}), 1e-9)
	assert.InDelta(t, 1.0, RelativeLuminance(Color{255, 255, 255}), 1e-9)
	// Green dominates the luminance weights.
	assert.Greater(t,
		RelativeLuminance(Color{0, 255, 0}),
		RelativeLuminance(Color{255, 0, 0}))
	assert.Greater(t,
		RelativeLuminance(Color{255, 0, 0}),
		RelativeLuminance(Color{0, 0, 255}))
}

func TestContrastRatio(t *testing.T) {
	black := Color{0, 0, 0}
	white := Color{255, 255, 255}

	assert.InDelta(t, 21.0, ContrastRatio(black, white), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(white, white), 1e-9)

	// Symmetric under swap and never below 1.
	a := Color{120, 40, 200}
	b := Color{10, 220, 90}
	assert.Equal(t, ContrastRatio(a, b), ContrastRatio(b, a))
	assert.GreaterOrEqual(t, ContrastRatio(a, b), 1.0)
}

func TestTransferCurveRoundTrip(t *testing.T) {
	for v := 0.0; v <= 1.0; v += 0.05 {
		assert.InDelta(t, v, FromLinear(ToLinear(v)), 1e-9)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#282a36")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 0x28, G: 0x2a, B: 0x36}, c)

	c, err = ParseHex("F8F8F2")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 0xf8, G: 0xf8, B: 0xf2}, c)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestHexRoundTrip(t *testing.T) {
	c := Color{R: 0x44, G: 0x47, B: 0x5a}
	parsed, err := ParseHex(c.Hex())
	assert.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestMix(t *testing.T) {
	a := Color{0, 0, 0}
	b := Color{255, 255, 255}
	assert.Equal(t, a, Mix(a, b, 0))
	assert.Equal(t, b, Mix(a, b, 1))
	mid := Mix(a, b, 0.5)
	assert.InDelta(t, 128, int(mid.R), 1)
}

func TestLightenDarken(t *testing.T) {
	base := Color{R: 60, G: 80, B: 120}
	lighter := Lighten(base, 0.1)
	darker := Darken(base, 0.1)
	assert.Greater(t, RGBToOKLCH(lighter).L, RGBToOKLCH(base).L)
	assert.Less(t, RGBToOKLCH(darker).L, RGBToOKLCH(base).L)

	// Clamped at the lightness bounds instead of wrapping.
	assert.Equal(t, Color{255, 255, 255}, Lighten(Color{255, 255, 255}, 0.2))
}
