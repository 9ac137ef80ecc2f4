package theme

import (
	"github.com/ajramos/termtheme/internal/colorspace"
	"github.com/ajramos/termtheme/internal/palette"
)

// Options are the mapper's tuning parameters. The defaults are the
// shipped look; they are exposed so a caller can tighten contrast or
// flatten the surface ladder without forking the mapper.
type Options struct {
	// Surface ladder offsets in OKLCH lightness, applied away from the
	// background toward the perceptual midpoint: panel, header, popup.
	PanelOffset  float64
	HeaderOffset float64
	PopupOffset  float64

	// TextContrast is the minimum ratio for primary text against every
	// surface tier; SecondaryContrast for muted text; AccentContrast for
	// accent colors used as text or icons on the window surface.
	TextContrast      float64
	SecondaryContrast float64
	AccentContrast    float64

	// BorderBlend is the fraction of the way from background lightness
	// to text lightness at which borders sit. Separators use half of it.
	BorderBlend float64

	// MaxIterations bounds each contrast-adjustment loop.
	MaxIterations int
}

// DefaultOptions returns the shipped tuning values.
func DefaultOptions() Options {
	return Options{
		PanelOffset:       0.02,
		HeaderOffset:      0.05,
		PopupOffset:       0.08,
		TextContrast:      4.5,
		SecondaryContrast: 3.0,
		AccentContrast:    3.0,
		BorderBlend:       0.30,
		MaxIterations:     50,
	}
}

// accentSlots is the fixed role -> ANSI slot assignment for accents.
var accentSlots = map[Role]int{
	RoleAccentPrimary: 4, // blue
	RoleAccentError:   1, // red
	RoleAccentWarning: 3, // yellow
	RoleAccentSuccess: 2, // green
	RoleAccentInfo:    4, // blue
}

var (
	pureBlack = colorspace.Color{R: 0, G: 0, B: 0}
	pureWhite = colorspace.Color{R: 255, G: 255, B: 255}
)

// Mapper derives theme documents from palettes.
type Mapper struct {
	opts Options
}

// NewMapper returns a mapper with the given tuning options.
func NewMapper(opts Options) *Mapper {
	return &Mapper{opts: opts}
}

// Map derives the full semantic theme from p. It is deterministic and
// allocates a fresh Document on every call.
//
// Passing the zero-value Palette is a programming error: parsers are the
// only palette constructors and always produce all 20 slots.
func (m *Mapper) Map(p palette.Palette) Document {
	if p.IsZero() {
		panic("theme: zero-value palette passed to Mapper.Map")
	}

	bg := p.Background()
	bgOK := colorspace.RGBToOKLCH(bg)
	dark := bgOK.L < 0.5

	// Dark themes lighten toward the ceiling, light themes darken toward
	// the floor.
	dir := 1.0
	if !dark {
		dir = -1.0
	}
	tier := func(offset float64) colorspace.Color {
		o := bgOK
		o.L = clamp01(o.L + dir*offset)
		return colorspace.OKLCHToRGB(o)
	}

	window := bg
	panel := tier(m.opts.PanelOffset)
	header := tier(m.opts.HeaderOffset)
	popup := tier(m.opts.PopupOffset)

	textPrimary := m.textFor(p.Foreground(), window, m.opts.TextContrast)
	textSecondary := colorspace.EnsureContrast(
		colorspace.Mix(textPrimary, window, 0.35),
		window, m.opts.SecondaryContrast, m.opts.MaxIterations)
	textDisabled := colorspace.Mix(textPrimary, window, 0.60)

	// Border keeps the background's hue and chroma and moves only in
	// lightness, a fixed fraction of the way toward the text.
	textL := colorspace.RGBToOKLCH(textPrimary).L
	border := lightnessBetween(bgOK, textL, m.opts.BorderBlend)
	separator := lightnessBetween(bgOK, textL, m.opts.BorderBlend/2)

	doc := Document{
		RoleWindowBackground: window,
		RolePanelBackground:  panel,
		RoleHeaderBackground: header,
		RolePopupBackground:  popup,
		RoleTabActive:        window,
		RoleTabInactive:      colorspace.Mix(panel, popup, 0.5),
		RoleBorder:           border,
		RoleSeparator:        separator,
		RoleTextPrimary:      textPrimary,
		RoleTextSecondary:    textSecondary,
		RoleTextDisabled:     textDisabled,
		RoleSelection:        p.Selection(),
		RoleCursor:           p.Cursor(),
	}

	// Accents double as text/icon colors, so each one is checked against
	// the window surface.
	for role, slot := range accentSlots {
		doc[role] = colorspace.EnsureContrast(
			p.Ansi(slot), window, m.opts.AccentContrast, m.opts.MaxIterations)
	}

	doc[RoleSelectionText] = m.textFor(textPrimary, p.Selection(), m.opts.TextContrast)

	return doc
}

// textFor returns candidate adjusted to meet minRatio against the
// surface, falling back to pure black or white (whichever contrasts
// harder) when lightness adjustment can't get there.
func (m *Mapper) textFor(candidate, surface colorspace.Color, minRatio float64) colorspace.Color {
	c := colorspace.EnsureContrast(candidate, surface, minRatio, m.opts.MaxIterations)
	if colorspace.ContrastRatio(c, surface) >= minRatio {
		return c
	}
	if colorspace.ContrastRatio(pureWhite, surface) >= colorspace.ContrastRatio(pureBlack, surface) {
		return pureWhite
	}
	return pureBlack
}

// lightnessBetween shifts base's lightness by frac of the distance to
// targetL, keeping hue and chroma. Achromatic bases carry hue 0 through
// unchanged; only L moves, so no NaN can appear.
func lightnessBetween(base colorspace.OKLCH, targetL, frac float64) colorspace.Color {
	o := base
	o.L = clamp01(base.L + (targetL-base.L)*frac)
	return colorspace.OKLCHToRGB(o)
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
