package usegen

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// RangeValue is one data item of a raw UCD source table: a codepoint range
// (From == To for single codepoints) mapped to a property value string.
type RangeValue struct {
	From, To rune
	Value    string
}

// Source is a parsed raw UCD source table, in file order.
type Source []RangeValue

// Sources bundles the raw tables the merged property table is built from.
// The Additional tables are the ms-use override files; their entries take
// precedence over the primary Indic tables.
type Sources struct {
	Syllabic             Source // IndicSyllabicCategory.txt
	Positional           Source // IndicPositionalCategory.txt
	General              Source // UnicodeData.txt, field #2
	Joining              Source // ArabicShaping.txt, field #2
	Blocks               Source // Blocks.txt
	SyllabicAdditional   Source // ms-use/IndicSyllabicCategory-Additional.txt
	PositionalAdditional Source // ms-use/IndicPositionalCategory-Additional.txt
}

// Record is the merged property tuple for one codepoint.
type Record struct {
	Syllabic   SyllabicCategory
	Positional PositionalCategory
	General    GeneralCategory
	Joining    JoiningType
	Block      string
}

// Property defaults for codepoints absent from a source file.
const defaultBlock = "No_Block"

var defaultRecord = Record{
	Syllabic:   IscOther,
	Positional: IpcNotApplicable,
	General:    GcCn,
	Joining:    JtX,
	Block:      defaultBlock,
}

// excludedBlocks lists blocks whose scripts are shaped by dedicated logic
// elsewhere and are deliberately not classified here.
var excludedBlocks = map[string]bool{
	"Samaritan": true,
	"Thai":      true,
	"Lao":       true,
}

// missingSyllabicOther lists codepoints that are not in the Unicode Indic
// files but are used by USE shaping; they are injected with
// Indic_Syllabic_Category = Other.
// Pending upstream data additions.
var missingSyllabicOther = []RangeValue{
	{0x0640, 0x0640, ""},
	{0x07CA, 0x07EA, ""},
	{0x07FA, 0x07FA, ""},
	{0x0840, 0x0858, ""},
	{0x1887, 0x18A8, ""},
	{0x18AA, 0x18AA, ""},
	{0x1B61, 0x1B61, ""},
	{0x1B63, 0x1B67, ""},
	{0x1B69, 0x1B6A, ""},
	{0x2060, 0x2060, ""},
	{0xA840, 0xA872, ""},
	{0x10B80, 0x10B91, ""},
	{0x10BA9, 0x10BAE, ""},
	{0x10FB0, 0x10FB0, ""},
	{0x10FB2, 0x10FB6, ""},
	{0x10FB8, 0x10FBF, ""},
	{0x10FC1, 0x10FC4, ""},
	{0x10FC9, 0x10FCB, ""},
}

// missingConsonantPlaceholder lists codepoints injected with
// Indic_Syllabic_Category = Consonant_Placeholder, per known gaps in the
// upstream Indic files (Balinese musical symbols, Bhaiksuki and Sharada
// section marks).
var missingConsonantPlaceholder = []RangeValue{
	{0x1B5B, 0x1B5C, ""},
	{0x1B5F, 0x1B5F, ""},
	{0x1B62, 0x1B62, ""},
	{0x1B68, 0x1B68, ""},
	{0x111C8, 0x111C8, ""},
	{0x11C44, 0x11C45, ""},
}

// BuildMergedTable combines the raw source tables into one sorted mapping of
// codepoint → Record. A codepoint is included only if at least one of the
// Indic tables (primary, Additional or injected) mentions it; General_Category,
// Joining_Type and Block merely annotate existing entries, with defaults
// filling the gaps. Codepoints resolving to an excluded block are dropped.
//
// The returned treemap has rune keys and Record values and iterates in
// ascending codepoint order.
func BuildMergedTable(src Sources) (*treemap.Map, error) {
	syllabic, err := expandSyllabic(src)
	if err != nil {
		return nil, err
	}
	positional, err := expandPositional(src)
	if err != nil {
		return nil, err
	}
	table := treemap.NewWith(utils.RuneComparator)
	for u, isc := range syllabic {
		rec := defaultRecord
		rec.Syllabic = isc
		table.Put(u, rec)
	}
	for u, ipc := range positional {
		rec := defaultRecord
		if r, ok := table.Get(u); ok {
			rec = r.(Record)
		}
		rec.Positional = ipc
		table.Put(u, rec)
	}
	// The remaining sources only annotate codepoints already present.
	for _, rv := range src.General {
		gc, err := ParseGeneralCategory(rv.Value)
		if err != nil {
			return nil, fmt.Errorf("UnicodeData %04X..%04X: %w", rv.From, rv.To, err)
		}
		annotate(table, rv, func(rec *Record) { rec.General = gc })
	}
	for _, rv := range src.Joining {
		jt, err := ParseJoiningType(rv.Value)
		if err != nil {
			return nil, fmt.Errorf("ArabicShaping %04X..%04X: %w", rv.From, rv.To, err)
		}
		annotate(table, rv, func(rec *Record) { rec.Joining = jt })
	}
	for _, rv := range src.Blocks {
		block := rv.Value
		annotate(table, rv, func(rec *Record) { rec.Block = block })
	}
	// Drop codepoints in blocks that are handled by unrelated shaping logic.
	var drop []rune
	it := table.Iterator()
	for it.Next() {
		if excludedBlocks[it.Value().(Record).Block] {
			drop = append(drop, it.Key().(rune))
		}
	}
	for _, u := range drop {
		table.Remove(u)
	}
	return table, nil
}

func annotate(table *treemap.Map, rv RangeValue, set func(*Record)) {
	for u := rv.From; u <= rv.To; u++ {
		r, ok := table.Get(u)
		if !ok {
			continue
		}
		rec := r.(Record)
		set(&rec)
		table.Put(u, rec)
	}
}

// expandSyllabic expands the primary and Additional syllabic-category tables
// into per-codepoint values, Additional entries and the hard-coded injections
// overwriting primaries.
func expandSyllabic(src Sources) (map[rune]SyllabicCategory, error) {
	out := make(map[rune]SyllabicCategory)
	for _, rv := range src.Syllabic {
		isc, err := ParseSyllabicCategory(rv.Value)
		if err != nil {
			return nil, fmt.Errorf("IndicSyllabicCategory %04X..%04X: %w", rv.From, rv.To, err)
		}
		for u := rv.From; u <= rv.To; u++ {
			out[u] = isc
		}
	}
	for _, rv := range src.SyllabicAdditional {
		name := rv.Value
		if name == "Consonant_Final_Modifier" {
			// Deprecated name, pending upstream correction.
			name = "Syllable_Modifier"
		}
		isc, err := ParseSyllabicCategory(name)
		if err != nil {
			return nil, fmt.Errorf("IndicSyllabicCategory-Additional %04X..%04X: %w", rv.From, rv.To, err)
		}
		for u := rv.From; u <= rv.To; u++ {
			out[u] = isc
		}
	}
	for _, rv := range missingSyllabicOther {
		for u := rv.From; u <= rv.To; u++ {
			out[u] = IscOther
		}
	}
	for _, rv := range missingConsonantPlaceholder {
		for u := rv.From; u <= rv.To; u++ {
			out[u] = IscConsonantPlaceholder
		}
	}
	return out, nil
}

// expandPositional expands the primary and Additional positional-category
// tables into per-codepoint values.
func expandPositional(src Sources) (map[rune]PositionalCategory, error) {
	out := make(map[rune]PositionalCategory)
	for _, rv := range src.Positional {
		ipc, err := ParsePositionalCategory(rv.Value)
		if err != nil {
			return nil, fmt.Errorf("IndicPositionalCategory %04X..%04X: %w", rv.From, rv.To, err)
		}
		for u := rv.From; u <= rv.To; u++ {
			out[u] = ipc
		}
	}
	for _, rv := range src.PositionalAdditional {
		name := rv.Value
		if name == "NA" {
			name = "Not_Applicable"
		}
		ipc, err := ParsePositionalCategory(name)
		if err != nil {
			return nil, fmt.Errorf("IndicPositionalCategory-Additional %04X..%04X: %w", rv.From, rv.To, err)
		}
		for u := rv.From; u <= rv.To; u++ {
			out[u] = ipc
		}
	}
	return out, nil
}
