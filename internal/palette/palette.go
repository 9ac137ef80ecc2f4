// Package palette defines the canonical 20-slot color set shared by the
// format parsers and the theme mapper: the 16 conventional ANSI colors
// plus background, foreground, selection, and cursor.
package palette

import (
	"fmt"

	"github.com/ajramos/termtheme/internal/colorspace"
)

// Slot identifies one of the 20 palette positions. Values 0-15 are the
// ANSI slots; the remaining four are the special roles.
type Slot int

const (
	SlotBackground Slot = 16
	SlotForeground Slot = 17
	SlotSelection  Slot = 18
	SlotCursor     Slot = 19

	// NumSlots is the fixed palette size.
	NumSlots = 20
)

// AnsiSlot returns the Slot for ANSI index i (0-15).
func AnsiSlot(i int) Slot {
	if i < 0 || i > 15 {
		panic(fmt.Sprintf("palette: ansi index %d out of range", i))
	}
	return Slot(i)
}

var ansiNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// Name returns the conventional role name for the slot, e.g. "red",
// "bright-blue", "background".
func (s Slot) Name() string {
	switch {
	case s >= 0 && s <= 15:
		return ansiNames[s]
	case s == SlotBackground:
		return "background"
	case s == SlotForeground:
		return "foreground"
	case s == SlotSelection:
		return "selection"
	case s == SlotCursor:
		return "cursor"
	}
	return fmt.Sprintf("slot-%d", int(s))
}

// SlotByName resolves a conventional slot name ("red", "bright-blue",
// "background", ...) or a numeric ANSI name ("ansi4") to its Slot.
func SlotByName(name string) (Slot, bool) {
	for s := Slot(0); s < NumSlots; s++ {
		if s.Name() == name {
			return s, true
		}
	}
	var i int
	if _, err := fmt.Sscanf(name, "ansi%d", &i); err == nil && i >= 0 && i <= 15 {
		return AnsiSlot(i), true
	}
	return 0, false
}

// Valid reports whether s is one of the 20 defined slots.
func (s Slot) Valid() bool {
	return s >= 0 && s < NumSlots
}

// Palette is a fully populated 20-slot color set with a source name.
// Values are immutable once constructed: parsers are the only producers,
// and every edit operation returns a new Palette.
type Palette struct {
	name   string
	source string
	slots  [NumSlots]colorspace.Color
}

// New constructs a Palette from a complete slot array. The name is the
// scheme's attribution string and the source names the format it was
// parsed from ("iterm", "gogh", "base16").
func New(name, source string, slots [NumSlots]colorspace.Color) Palette {
	return Palette{name: name, source: source, slots: slots}
}

// Name returns the scheme name the palette was parsed under.
func (p Palette) Name() string { return p.name }

// Source returns the originating format key.
func (p Palette) Source() string { return p.source }

// Color returns the color stored in the given slot.
func (p Palette) Color(s Slot) colorspace.Color {
	if !s.Valid() {
		panic(fmt.Sprintf("palette: invalid slot %d", int(s)))
	}
	return p.slots[s]
}

// Ansi returns ANSI color i (0-15).
func (p Palette) Ansi(i int) colorspace.Color { return p.Color(AnsiSlot(i)) }

// Background returns the background slot.
func (p Palette) Background() colorspace.Color { return p.slots[SlotBackground] }

// Foreground returns the foreground slot.
func (p Palette) Foreground() colorspace.Color { return p.slots[SlotForeground] }

// Selection returns the selection slot.
func (p Palette) Selection() colorspace.Color { return p.slots[SlotSelection] }

// Cursor returns the cursor slot.
func (p Palette) Cursor() colorspace.Color { return p.slots[SlotCursor] }

// IsZero reports whether p is the zero value, i.e. was never produced by
// a parser. A zero palette reaching the mapper is a programming error.
func (p Palette) IsZero() bool {
	return p == Palette{}
}
