package parsers

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajramos/termtheme/internal/colorspace"
	"github.com/ajramos/termtheme/internal/palette"
)

// Format B: Gogh YAML themes, a flat key-value mapping. Color values are
// either a 6-digit hex string (with or without a leading '#') or a nested
// mapping of integer components in 0-255 under r/g/b (or red/green/blue)
// keys. Unquoted hex made only of digits decodes as a YAML integer and
// is recovered from its decimal digits. Accepted key aliases per slot
// (case-insensitive, '-' treated as '_'):
//
//	ansi N      "color_NN" (1-based, zero padded), "color_N", "ansi_N"
//	background  "background", "bg", "background_color"
//	foreground  "foreground", "fg", "foreground_color"
//	selection   "selection", "selection_color", "highlight"
//	cursor      "cursor", "cursor_color"
//
// Unrecognized keys ("name", "variant", ...) are ignored.

// goghSpecialAliases is ordered so multi-slot failures report the same
// slot every run.
var goghSpecialAliases = []struct {
	slot    palette.Slot
	aliases []string
}{
	{palette.SlotBackground, []string{"background", "bg", "background_color"}},
	{palette.SlotForeground, []string{"foreground", "fg", "foreground_color"}},
	{palette.SlotSelection, []string{"selection", "selection_color", "highlight"}},
	{palette.SlotCursor, []string{"cursor", "cursor_color"}},
}

// ParseGogh parses a Gogh YAML theme into a Palette. If the document has
// a "name" key it overrides the supplied name.
func ParseGogh(data []byte, name string) (palette.Palette, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil || raw == nil {
		return palette.Palette{}, unsupported("top-level structure is not a mapping")
	}

	entries := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		entries[normalizeYamlKey(k)] = v
	}

	if n, ok := entries["name"].(string); ok && strings.TrimSpace(n) != "" {
		name = strings.TrimSpace(n)
	}

	var slots [palette.NumSlots]colorspace.Color
	for i := 0; i < 16; i++ {
		slot := palette.AnsiSlot(i)
		aliases := []string{
			fmt.Sprintf("color_%02d", i+1),
			fmt.Sprintf("color_%d", i+1),
			fmt.Sprintf("ansi_%d", i),
		}
		v, ok := lookupAlias(entries, aliases)
		if !ok {
			return palette.Palette{}, missingField(slot.Name())
		}
		c, err := yamlColor(v, slot.Name())
		if err != nil {
			return palette.Palette{}, err
		}
		slots[slot] = c
	}

	for _, special := range goghSpecialAliases {
		v, ok := lookupAlias(entries, special.aliases)
		if !ok {
			return palette.Palette{}, missingField(special.slot.Name())
		}
		c, err := yamlColor(v, special.slot.Name())
		if err != nil {
			return palette.Palette{}, err
		}
		slots[special.slot] = c
	}

	return palette.New(name, "gogh", slots), nil
}

func normalizeYamlKey(k string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(k)), "-", "_")
}

// yamlColor reads a hex string or an r/g/b component mapping.
func yamlColor(v interface{}, slot string) (colorspace.Color, error) {
	switch val := v.(type) {
	case string:
		c, err := colorspace.ParseHex(val)
		if err != nil {
			return colorspace.Color{}, invalidColor(slot, fmt.Sprintf("bad hex %q", val))
		}
		return c, nil
	case map[string]interface{}:
		comps := make(map[string]interface{}, len(val))
		for k, cv := range val {
			comps[normalizeYamlKey(k)] = cv
		}
		var rgb [3]uint8
		for i, aliases := range [][]string{{"r", "red"}, {"g", "green"}, {"b", "blue"}} {
			cv, ok := lookupAlias(comps, aliases)
			if !ok {
				return colorspace.Color{}, invalidColor(slot, "missing "+aliases[1]+" component")
			}
			f, ok := numeric(cv)
			if !ok || f != float64(int(f)) || f < 0 || f > 255 {
				return colorspace.Color{}, invalidColor(slot, fmt.Sprintf("%s component %v not an integer in 0-255", aliases[1], cv))
			}
			rgb[i] = uint8(f)
		}
		return colorspace.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}
	// An unquoted all-digit hex value ("color_01: 282036") reaches us as
	// a YAML integer; recover it from the decimal digits, zero-padded
	// back to six.
	if f, ok := numeric(v); ok && f == float64(int64(f)) && f >= 0 && f <= 999999 {
		if c, err := colorspace.ParseHex(fmt.Sprintf("%06d", int64(f))); err == nil {
			return c, nil
		}
	}
	return colorspace.Color{}, invalidColor(slot, "value is neither hex string nor component mapping")
}
