package parsers

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajramos/termtheme/internal/colorspace"
	"github.com/ajramos/termtheme/internal/palette"
)

// base16 YAML schemes: sixteen hex entries base00-base0F, either at the
// top level or nested under a "palette" mapping. All sixteen bases are
// required; the 20 palette slots are derived from them using the
// conventional base16-to-ANSI assignment. The scheme name comes from a
// "scheme" or "name" key when present.

// base16ToAnsi maps ANSI index -> base index.
var base16ToAnsi = [16]int{
	0x00, // 0  black
	0x08, // 1  red
	0x0B, // 2  green
	0x09, // 3  yellow
	0x0D, // 4  blue
	0x0E, // 5  magenta
	0x0C, // 6  cyan
	0x05, // 7  white
	0x02, // 8  bright black
	0x08, // 9  bright red
	0x0B, // 10 bright green
	0x0A, // 11 bright yellow
	0x0D, // 12 bright blue
	0x0E, // 13 bright magenta
	0x0C, // 14 bright cyan
	0x07, // 15 bright white
}

// ParseBase16 parses a base16 YAML scheme into a Palette.
func ParseBase16(data []byte, name string) (palette.Palette, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil || raw == nil {
		return palette.Palette{}, unsupported("top-level structure is not a mapping")
	}

	entries := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		entries[normalizeYamlKey(k)] = v
	}
	// Modern base16 files nest the colors under "palette".
	if sub, ok := entries["palette"].(map[string]interface{}); ok {
		for k, v := range sub {
			entries[normalizeYamlKey(k)] = v
		}
	}

	if n, ok := lookupAlias(entries, []string{"scheme", "name"}); ok {
		if s, ok := n.(string); ok && strings.TrimSpace(s) != "" {
			name = strings.TrimSpace(s)
		}
	}

	var bases [16]colorspace.Color
	for i := 0; i < 16; i++ {
		key := fmt.Sprintf("base%02x", i)
		v, ok := entries[key]
		if !ok {
			return palette.Palette{}, missingField(fmt.Sprintf("base%02X", i))
		}
		s, ok := v.(string)
		if !ok {
			return palette.Palette{}, invalidColor(fmt.Sprintf("base%02X", i), "value is not a hex string")
		}
		c, err := colorspace.ParseHex(s)
		if err != nil {
			return palette.Palette{}, invalidColor(fmt.Sprintf("base%02X", i), fmt.Sprintf("bad hex %q", s))
		}
		bases[i] = c
	}

	var slots [palette.NumSlots]colorspace.Color
	for i := 0; i < 16; i++ {
		slots[palette.AnsiSlot(i)] = bases[base16ToAnsi[i]]
	}
	slots[palette.SlotBackground] = bases[0x00]
	slots[palette.SlotForeground] = bases[0x05]
	slots[palette.SlotSelection] = bases[0x02]
	slots[palette.SlotCursor] = bases[0x06]

	return palette.New(name, "base16", slots), nil
}
