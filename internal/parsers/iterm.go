package parsers

import (
	"fmt"
	"strings"

	"howett.net/plist"

	"github.com/ajramos/termtheme/internal/colorspace"
	"github.com/ajramos/termtheme/internal/palette"
)

// Format A: iTerm2 .itermcolors files, an Apple property list with one
// dict per color. Each component is a float in [0,1]; a fourth alpha
// component is ignored. Accepted key aliases per slot (case-insensitive,
// with or without a trailing " Color"):
//
//	ansi N      "Ansi N Color"
//	background  "Background Color", "Bg Color"
//	foreground  "Foreground Color", "Fg Color"
//	selection   "Selection Color", "Selected Color"
//	cursor      "Cursor Color"
//
// Unrecognized keys (Bold Color, Cursor Text Color, ...) are ignored.

// itermSpecialAliases is ordered so multi-slot failures report the same
// slot every run.
var itermSpecialAliases = []struct {
	slot    palette.Slot
	aliases []string
}{
	{palette.SlotBackground, []string{"background", "bg"}},
	{palette.SlotForeground, []string{"foreground", "fg"}},
	{palette.SlotSelection, []string{"selection", "selected"}},
	{palette.SlotCursor, []string{"cursor"}},
}

// ParseITerm parses .itermcolors content into a Palette. name is the
// scheme's attribution string, typically the file stem.
func ParseITerm(data []byte, name string) (palette.Palette, error) {
	var raw map[string]interface{}
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return palette.Palette{}, unsupported(fmt.Sprintf("not a plist dictionary: %v", err))
	}

	entries := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		entries[normalizeITermKey(k)] = v
	}

	var slots [palette.NumSlots]colorspace.Color
	for i := 0; i < 16; i++ {
		slot := palette.AnsiSlot(i)
		v, ok := entries[fmt.Sprintf("ansi %d", i)]
		if !ok {
			return palette.Palette{}, missingField(slot.Name())
		}
		c, err := itermColor(v, slot.Name())
		if err != nil {
			return palette.Palette{}, err
		}
		slots[slot] = c
	}

	for _, special := range itermSpecialAliases {
		v, ok := lookupAlias(entries, special.aliases)
		if !ok {
			return palette.Palette{}, missingField(special.slot.Name())
		}
		c, err := itermColor(v, special.slot.Name())
		if err != nil {
			return palette.Palette{}, err
		}
		slots[special.slot] = c
	}

	return palette.New(name, "iterm", slots), nil
}

// normalizeITermKey lowercases, collapses whitespace, and drops the
// conventional " color" suffix.
func normalizeITermKey(k string) string {
	nk := strings.ToLower(strings.Join(strings.Fields(k), " "))
	nk = strings.TrimSuffix(nk, " color")
	return nk
}

func lookupAlias(entries map[string]interface{}, aliases []string) (interface{}, bool) {
	for _, a := range aliases {
		if v, ok := entries[a]; ok {
			return v, true
		}
	}
	return nil, false
}

// itermColor reads one plist color dict into a Color. Components must be
// numeric and within [0,1]; they are scaled to 0-255 and rounded.
func itermColor(v interface{}, slot string) (colorspace.Color, error) {
	dict, ok := v.(map[string]interface{})
	if !ok {
		return colorspace.Color{}, invalidColor(slot, "entry is not a color dictionary")
	}
	comps := make(map[string]interface{}, len(dict))
	for k, cv := range dict {
		comps[strings.ToLower(strings.Join(strings.Fields(k), " "))] = cv
	}

	var rgb [3]float64
	for i, key := range []string{"red component", "green component", "blue component"} {
		cv, ok := comps[key]
		if !ok {
			return colorspace.Color{}, invalidColor(slot, "missing "+key)
		}
		f, ok := numeric(cv)
		if !ok {
			return colorspace.Color{}, invalidColor(slot, key+" is not numeric")
		}
		if f < 0.0 || f > 1.0 {
			return colorspace.Color{}, invalidColor(slot, fmt.Sprintf("%s %v out of [0,1]", key, f))
		}
		rgb[i] = f
	}
	return colorspace.FromFloats(rgb[0], rgb[1], rgb[2]), nil
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
