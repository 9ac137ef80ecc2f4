package index

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ajramos/termtheme/internal/parsers"
)

// maxScanDepth bounds directory recursion while scanning.
const maxScanDepth = 2

// ScanFolder walks root (up to two levels deep) for supported theme
// files and returns one entry per unique scheme name, sorted by name.
// Duplicate names are deduplicated case-insensitively, first hit wins.
// The entry source is detected from the file extension and a small
// content sniff.
func ScanFolder(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "scan", Path: root, Err: os.ErrInvalid}
	}

	var entries []Entry
	seen := make(map[string]bool)
	scanDir(root, 0, seen, &entries)

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}

func scanDir(dir string, depth int, seen map[string]bool, out *[]Entry) {
	if depth > maxScanDepth {
		return
	}
	items, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name()) < strings.ToLower(items[j].Name())
	})
	for _, item := range items {
		path := filepath.Join(dir, item.Name())
		if item.IsDir() {
			scanDir(path, depth+1, seen, out)
			continue
		}
		ext := strings.ToLower(filepath.Ext(item.Name()))
		if !parsers.SupportedExtensions[ext] {
			continue
		}
		name := strings.TrimSuffix(item.Name(), filepath.Ext(item.Name()))
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		*out = append(*out, Entry{
			Name:   name,
			Path:   path,
			Source: detectSource(path),
		})
	}
}

// detectSource sniffs the file's format key for the index. Unreadable
// files still get indexed; parsing will report the real problem later.
func detectSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		data = nil
	}
	format, err := parsers.Detect(path, data)
	if err != nil {
		return "unknown"
	}
	return string(format)
}
