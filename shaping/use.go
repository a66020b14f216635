package shaping

import "sort"

// useRange is one entry of the compacted category table: an inclusive
// codepoint range sharing one category tag.
type useRange struct {
	lo, hi   rune
	category string
}

// DefaultUseCategory is the category reported for codepoints outside all
// table ranges. Most of the codespace is unclassified, so hitting the
// default is common and not an error.
const DefaultUseCategory = "O"

// UseCategoryForRune is the top-level client function:
// Get the shaping-use category for a Unicode code-point.
// Codepoints not covered by the table yield DefaultUseCategory.
func UseCategoryForRune(r rune) string {
	return UseCategoryOrDefault(r, DefaultUseCategory)
}

// UseCategoryOrDefault returns the shaping-use category for a codepoint, or
// def for codepoints outside all table ranges.
func UseCategoryOrDefault(r rune, def string) string {
	if cat, ok := LookupUseCategory(r); ok {
		return cat
	}
	return def
}

// LookupUseCategory binary-searches the category table for the range
// containing a codepoint. The second return value is false if no range
// covers the codepoint.
func LookupUseCategory(r rune) (string, bool) {
	// Find the first range starting beyond r; its predecessor is the only
	// candidate.
	i := sort.Search(len(useCategoryRanges), func(i int) bool {
		return useCategoryRanges[i].lo > r
	})
	if i == 0 {
		return "", false
	}
	rg := useCategoryRanges[i-1]
	if r > rg.hi {
		return "", false
	}
	return rg.category, true
}
