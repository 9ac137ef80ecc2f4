package palette

import "github.com/ajramos/termtheme/internal/colorspace"

// SetSlot returns a copy of p with slot s replaced by c. The input
// palette is never mutated.
func SetSlot(p Palette, s Slot, c colorspace.Color) Palette {
	p.Color(s) // validate
	out := p
	out.slots[s] = c
	return out
}

// Swap returns a copy of p with slots a and b exchanged. Swapping twice
// with the same arguments restores the original palette.
func Swap(p Palette, a, b Slot) Palette {
	p.Color(a)
	p.Color(b)
	out := p
	out.slots[a], out.slots[b] = out.slots[b], out.slots[a]
	return out
}

// EditSession tracks an in-memory editing pass over a palette: the
// immutable original, the current working copy, and whether the working
// copy has diverged.
type EditSession struct {
	original Palette
	working  Palette
	dirty    bool
}

// NewEditSession starts an editing session over p.
func NewEditSession(p Palette) *EditSession {
	return &EditSession{original: p, working: p}
}

// Original returns the palette the session was opened with, unchanged.
func (s *EditSession) Original() Palette { return s.original }

// Working returns the current working palette.
func (s *EditSession) Working() Palette { return s.working }

// Dirty reports whether the working palette differs from the last
// committed one.
func (s *EditSession) Dirty() bool { return s.dirty }

// SetSlot replaces one slot in the working palette.
func (s *EditSession) SetSlot(slot Slot, c colorspace.Color) Palette {
	s.working = SetSlot(s.working, slot, c)
	s.dirty = true
	return s.working
}

// Swap exchanges two slots in the working palette.
func (s *EditSession) Swap(a, b Slot) Palette {
	s.working = Swap(s.working, a, b)
	s.dirty = true
	return s.working
}

// ResetToOriginal discards all edits and returns exactly the original
// palette.
func (s *EditSession) ResetToOriginal() Palette {
	s.working = s.original
	s.dirty = false
	return s.original
}

// ApplyCustom commits the working palette as the session's new current
// palette and clears the dirty flag.
func (s *EditSession) ApplyCustom() Palette {
	s.original = s.working
	s.dirty = false
	return s.working
}
