// Package parsers turns raw color-scheme file content into canonical
// palettes. Each format parser is a pure function from bytes to a
// Palette or a typed ParseError; batch parsing reports failures per file
// and never aborts on a bad input.
package parsers

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ajramos/termtheme/internal/palette"
)

// Format identifies a supported input format.
type Format string

const (
	FormatITerm  Format = "iterm"
	FormatGogh   Format = "gogh"
	FormatBase16 Format = "base16"
)

// SupportedExtensions lists the file extensions the dispatcher accepts.
var SupportedExtensions = map[string]bool{
	".itermcolors": true,
	".yml":         true,
	".yaml":        true,
}

// Detect picks the parser for a file from its extension and, for YAML,
// a sniff of the content: Gogh files carry color_NN keys, base16 files
// carry baseNN keys. Gogh is the fallback for unrecognized YAML.
func Detect(filename string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".itermcolors":
		return FormatITerm, nil
	case ".yml", ".yaml":
		head := data
		if len(head) > 2048 {
			head = head[:2048]
		}
		if bytes.Contains(head, []byte("base00")) {
			return FormatBase16, nil
		}
		return FormatGogh, nil
	}
	return "", unsupported("unrecognized file extension " + filepath.Ext(filename))
}

// Parse dispatches data to the right format parser. name is the scheme
// attribution to use when the file doesn't carry its own.
func Parse(data []byte, filename, name string) (palette.Palette, error) {
	format, err := Detect(filename, data)
	if err != nil {
		return palette.Palette{}, err
	}
	switch format {
	case FormatITerm:
		return ParseITerm(data, name)
	case FormatGogh:
		return ParseGogh(data, name)
	case FormatBase16:
		return ParseBase16(data, name)
	}
	return palette.Palette{}, unsupported(string(format))
}

// ParseFile reads and parses a single theme file. The scheme name
// defaults to the file stem.
func ParseFile(path string) (palette.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return palette.Palette{}, err
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return Parse(data, base, name)
}

// BatchResult holds the outcome of parsing a set of files: the palettes
// that parsed cleanly and a labeled failure per bad file. Partial success
// is the normal case.
type BatchResult struct {
	Palettes []palette.Palette
	Failures []FileError
}

// ParseBatch parses every path independently. A malformed file never
// aborts the batch; it lands in Failures instead. Results are ordered by
// palette name and failures by file name so the outcome is independent
// of input order.
func ParseBatch(paths []string) BatchResult {
	var res BatchResult
	for _, p := range paths {
		pal, err := ParseFile(p)
		if err != nil {
			res.Failures = append(res.Failures, FileError{File: p, Err: err})
			continue
		}
		res.Palettes = append(res.Palettes, pal)
	}
	sort.Slice(res.Palettes, func(i, j int) bool {
		return strings.ToLower(res.Palettes[i].Name()) < strings.ToLower(res.Palettes[j].Name())
	})
	sort.Slice(res.Failures, func(i, j int) bool {
		return res.Failures[i].File < res.Failures[j].File
	})
	return res
}
