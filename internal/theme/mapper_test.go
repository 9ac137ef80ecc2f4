package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajramos/termtheme/internal/colorspace"
	"github.com/ajramos/termtheme/internal/palette"
)

func darkPalette() palette.Palette {
	var slots [palette.NumSlots]colorspace.Color
	ansi := []string{
		"#000000", "#cc3333", "#33aa44", "#ccaa33", "#3366cc", "#aa44aa", "#33aaaa", "#bfbfbf",
		"#555555", "#ff5555", "#55ff55", "#ffff55", "#5588ff", "#ff55ff", "#55ffff", "#ffffff",
	}
	for i, h := range ansi {
		c, _ := colorspace.ParseHex(h)
		slots[palette.AnsiSlot(i)] = c
	}
	slots[palette.SlotBackground] = colorspace.FromFloats(0.1, 0.1, 0.12)
	slots[palette.SlotForeground] = colorspace.FromFloats(0.9, 0.9, 0.88)
	slots[palette.SlotSelection] = colorspace.Color{R: 0x44, G: 0x47, B: 0x5a}
	slots[palette.SlotCursor] = colorspace.Color{R: 0xf8, G: 0xf8, B: 0xf2}
	return palette.New("dark-test", "iterm", slots)
}

func lightPalette() palette.Palette {
	p := darkPalette()
	p = palette.SetSlot(p, palette.SlotBackground, colorspace.FromFloats(0.95, 0.95, 0.93))
	p = palette.SetSlot(p, palette.SlotForeground, colorspace.FromFloats(0.12, 0.12, 0.14))
	return p
}

func grayscalePalette() palette.Palette {
	var slots [palette.NumSlots]colorspace.Color
	for i := 0; i < 16; i++ {
		v := uint8(i * 16)
		slots[palette.AnsiSlot(i)] = colorspace.Color{R: v, G: v, B: v}
	}
	slots[palette.SlotBackground] = colorspace.Color{R: 20, G: 20, B: 20}
	slots[palette.SlotForeground] = colorspace.Color{R: 220, G: 220, B: 220}
	slots[palette.SlotSelection] = colorspace.Color{R: 70, G: 70, B: 70}
	slots[palette.SlotCursor] = colorspace.Color{R: 255, G: 255, B: 255}
	return palette.New("grayscale", "gogh", slots)
}

func TestMap_Deterministic(t *testing.T) {
	m := NewMapper(DefaultOptions())
	p := darkPalette()
	assert.Equal(t, m.Map(p), m.Map(p))
}

func TestMap_DocumentIsTotal(t *testing.T) {
	m := NewMapper(DefaultOptions())
	for _, p := range []palette.Palette{darkPalette(), lightPalette(), grayscalePalette()} {
		doc := m.Map(p)
		assert.True(t, doc.Complete(), "palette %s", p.Name())
		assert.Len(t, doc, len(Roles()))
	}
}

func TestMap_TextContrastMeetsThreshold(t *testing.T) {
	m := NewMapper(DefaultOptions())
	for _, p := range []palette.Palette{darkPalette(), lightPalette(), grayscalePalette()} {
		doc := m.Map(p)
		ratio := colorspace.ContrastRatio(doc[RoleTextPrimary], doc[RoleWindowBackground])
		assert.GreaterOrEqual(t, ratio, 4.5, "palette %s", p.Name())
	}
}

func TestMap_DarkThemeLightensTiers(t *testing.T) {
	doc := NewMapper(DefaultOptions()).Map(darkPalette())

	windowL := colorspace.RGBToOKLCH(doc[RoleWindowBackground]).L
	panelL := colorspace.RGBToOKLCH(doc[RolePanelBackground]).L
	headerL := colorspace.RGBToOKLCH(doc[RoleHeaderBackground]).L
	popupL := colorspace.RGBToOKLCH(doc[RolePopupBackground]).L

	assert.Greater(t, panelL, windowL)
	assert.Greater(t, headerL, panelL)
	assert.Greater(t, popupL, headerL)
}

func TestMap_LightThemeDarkensTiers(t *testing.T) {
	doc := NewMapper(DefaultOptions()).Map(lightPalette())

	windowL := colorspace.RGBToOKLCH(doc[RoleWindowBackground]).L
	panelL := colorspace.RGBToOKLCH(doc[RolePanelBackground]).L
	headerL := colorspace.RGBToOKLCH(doc[RoleHeaderBackground]).L

	assert.Less(t, panelL, windowL)
	assert.Less(t, headerL, panelL)
}

func TestMap_AccentsFromFixedSlots(t *testing.T) {
	p := darkPalette()
	doc := NewMapper(DefaultOptions()).Map(p)

	// On a dark background the bright source accents already pass the
	// contrast gate, so they flow through unchanged.
	window := doc[RoleWindowBackground]
	for role, slot := range accentSlots {
		want := p.Ansi(slot)
		if colorspace.ContrastRatio(want, window) >= DefaultOptions().AccentContrast {
			assert.Equal(t, want, doc[role], "role %s", role)
		}
		assert.GreaterOrEqual(t,
			colorspace.ContrastRatio(doc[role], window),
			DefaultOptions().AccentContrast, "role %s", role)
	}
}

func TestMap_SelectionAndCursorPassThrough(t *testing.T) {
	p := darkPalette()
	doc := NewMapper(DefaultOptions()).Map(p)

	assert.Equal(t, p.Selection(), doc[RoleSelection])
	assert.Equal(t, p.Cursor(), doc[RoleCursor])
}

func TestMap_SelectionTextLegible(t *testing.T) {
	p := darkPalette()
	doc := NewMapper(DefaultOptions()).Map(p)
	ratio := colorspace.ContrastRatio(doc[RoleSelectionText], doc[RoleSelection])
	assert.GreaterOrEqual(t, ratio, 4.5)
}

func TestMap_BorderSitsBetweenBackgroundAndText(t *testing.T) {
	doc := NewMapper(DefaultOptions()).Map(darkPalette())

	bgL := colorspace.RGBToOKLCH(doc[RoleWindowBackground]).L
	borderL := colorspace.RGBToOKLCH(doc[RoleBorder]).L
	textL := colorspace.RGBToOKLCH(doc[RoleTextPrimary]).L

	assert.Greater(t, borderL, bgL)
	assert.Less(t, borderL, textL)

	// Separators are subtler than borders.
	sepL := colorspace.RGBToOKLCH(doc[RoleSeparator]).L
	assert.Less(t, sepL, borderL)
	assert.Greater(t, sepL, bgL)
}

func TestMap_GrayscaleProducesValidColors(t *testing.T) {
	doc := NewMapper(DefaultOptions()).Map(grayscalePalette())
	for _, role := range Roles() {
		hex := doc[role].Hex()
		assert.Len(t, hex, 7, "role %s", role)
	}
}

func TestMap_ZeroPalettePanics(t *testing.T) {
	m := NewMapper(DefaultOptions())
	require.Panics(t, func() {
		m.Map(palette.Palette{})
	})
}

func TestRoles_FixedSetAndCopy(t *testing.T) {
	r1 := Roles()
	r2 := Roles()
	assert.Equal(t, r1, r2)
	r1[0] = Role("tampered")
	assert.NotEqual(t, r1[0], Roles()[0])
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 4.5, opts.TextContrast)
	assert.Greater(t, opts.PopupOffset, opts.HeaderOffset)
	assert.Greater(t, opts.HeaderOffset, opts.PanelOffset)
	assert.Greater(t, opts.MaxIterations, 0)
}
