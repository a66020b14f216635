package usegen

import "github.com/emirpasic/gods/maps/treemap"

// CategoryRange is one compacted table entry: an inclusive codepoint range
// sharing a single category tag.
type CategoryRange struct {
	From, To rune
	Category string
}

// Compact walks a classified map in ascending codepoint order and emits
// minimal ranges of equal category. A range break occurs only when the
// category changes; codepoints absent from the classified domain do not
// force a break, so two same-category stretches separated by unclassified
// codepoints collapse into one range. Tables shipped by existing USE
// implementations do the same (e.g. 0x0640..0x07EA "B"); downstream consumers
// treat uncovered codepoints as default anyway.
//
// Output is deterministic: ranges are sorted by start, non-overlapping, and
// no two adjacent ranges share a category.
func Compact(classified *treemap.Map) []CategoryRange {
	if classified.Empty() {
		return nil
	}
	var out []CategoryRange
	var current CategoryRange
	first := true
	it := classified.Iterator()
	for it.Next() {
		u := it.Key().(rune)
		tag := it.Value().(string)
		if first {
			current = CategoryRange{From: u, To: u, Category: tag}
			first = false
			continue
		}
		if tag != current.Category {
			out = append(out, current)
			current = CategoryRange{From: u, To: u, Category: tag}
			continue
		}
		current.To = u
	}
	return append(out, current)
}
