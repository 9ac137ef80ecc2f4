package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureContrast_AlreadyCompliant(t *testing.T) {
	white := Color{255, 255, 255}
	black := Color{0, 0, 0}
	// Compliant candidates come back unchanged.
	assert.Equal(t, white, EnsureContrast(white, black, 4.5, 50))
}

func TestEnsureContrast_AdjustsTowardCompliance(t *testing.T) {
	fg := Color{R: 0x55, G: 0x55, B: 0x55}
	bg := Color{R: 0x22, G: 0x22, B: 0x26}

	got := EnsureContrast(fg, bg, 4.5, 50)
	assert.GreaterOrEqual(t, ContrastRatio(got, bg), 4.5)
	// Dark background pushes the candidate lighter.
	assert.Greater(t, RGBToOKLCH(got).L, RGBToOKLCH(fg).L)
}

func TestEnsureContrast_LightBackgroundDarkens(t *testing.T) {
	fg := Color{R: 0xaa, G: 0xaa, B: 0xaa}
	bg := Color{R: 0xf2, G: 0xf2, B: 0xee}

	got := EnsureContrast(fg, bg, 4.5, 50)
	assert.GreaterOrEqual(t, ContrastRatio(got, bg), 4.5)
	assert.Less(t, RGBToOKLCH(got).L, RGBToOKLCH(fg).L)
}

func TestEnsureContrast_BestEffortOnExhaustion(t *testing.T) {
	fg := Color{R: 0x80, G: 0x80, B: 0x80}
	bg := Color{R: 0x80, G: 0x80, B: 0x80}

	// 21:1 against mid gray is impossible; the call must still return
	// the best candidate found, not fail.
	got := EnsureContrast(fg, bg, 21.0, 50)
	assert.GreaterOrEqual(t, ContrastRatio(got, bg), ContrastRatio(fg, bg))

	// A tiny budget degrades gracefully too.
	got = EnsureContrast(fg, bg, 4.5, 1)
	assert.GreaterOrEqual(t, ContrastRatio(got, bg), 1.0)
}

func TestEnsureContrast_PreservesHue(t *testing.T) {
	fg := Color{R: 0x3a, G: 0x66, B: 0xcc}
	bg := Color{R: 0x10, G: 0x10, B: 0x14}

	got := EnsureContrast(fg, bg, 4.5, 50)
	assert.GreaterOrEqual(t, ContrastRatio(got, bg), 4.5)
	assert.InDelta(t, RGBToOKLCH(fg).H, RGBToOKLCH(got).H, 10.0)
}

func TestEnsureContrast_Deterministic(t *testing.T) {
	fg := Color{R: 0x55, G: 0x55, B: 0x55}
	bg := Color{R: 0x22, G: 0x22, B: 0x26}
	assert.Equal(t,
		EnsureContrast(fg, bg, 4.5, 50),
		EnsureContrast(fg, bg, 4.5, 50))
}
