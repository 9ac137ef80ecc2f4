package index

import (
	"sort"
	"strings"
)

// popularThemes is a curated list of widely recognized scheme names,
// ordered roughly by community recognition. A scheme counts as popular
// when its name contains one of these substrings (case-insensitive).
var popularThemes = []string{
	"dracula",
	"nord",
	"gruvbox",
	"solarized",
	"monokai",
	"catppuccin",
	"one dark",
	"onedark",
	"tokyo night",
	"tokyonight",
	"rose pine",
	"rosé pine",
	"material",
	"zenburn",
	"tomorrow night",
	"base16",
	"ayu",
	"everforest",
	"kanagawa",
	"nightfox",
}

// PopularRank returns the rank of a scheme name in the curated popular
// list: lower is more popular, len(list) means not popular.
func PopularRank(name string) int {
	n := strings.ToLower(name)
	for i, p := range popularThemes {
		if strings.Contains(n, p) {
			return i
		}
	}
	return len(popularThemes)
}

// IsPopular reports whether the scheme name matches the curated list.
func IsPopular(name string) bool {
	return PopularRank(name) < len(popularThemes)
}

// SortPopularFirst reorders entries so popular schemes come first (in
// curated order), with the rest following alphabetically. The sort is
// stable with respect to the incoming order of equally ranked entries.
func SortPopularFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := PopularRank(entries[i].Name), PopularRank(entries[j].Name)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
