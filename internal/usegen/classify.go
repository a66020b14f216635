package usegen

import (
	"fmt"
	"unicode"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/text/unicode/rangetable"
)

// The classification predicates below were hand-derived from the USE shaping
// specification (and follow HarfBuzz's reading of it). They are boolean
// functions over (codepoint, ISC, GC, JT) and must be mutually exclusive over
// the merged table's domain: exactly one predicate holds for every classified
// codepoint. A codepoint matching zero or more than one predicate indicates
// that the hand-maintained tables are stale relative to the Unicode data
// version, which is a build-time fatal condition, not a runtime one.
//
// Per-codepoint exceptions are kept as rangetable data rather than inline
// branching, so each predicate stays auditable against the spec text.

// useClass is one named primary shaping-use class with its predicate.
type useClass struct {
	name  string
	match func(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool
}

// useClasses is the ordered list of primary classes. Order only affects
// error reporting; correctness relies on mutual exclusivity.
var useClasses = []useClass{
	{"B", isBase},
	{"IND", isBaseIndependent},
	{"N", isBaseNumeral},
	{"GB", isBaseOther},
	{"F", isConsonantFinal},
	{"FM", isConsonantFinalModifier},
	{"M", isConsonantMedial},
	{"CM", isConsonantModifier},
	{"SUB", isConsonantSubjoined},
	{"CS", isConsonantWithStacker},
	{"H", isHalant},
	{"HVM", isHalantOrVowelModifier},
	{"HN", isHalantNumeral},
	{"ZWNJ", isNonJoiner},
	{"ZWJ", isJoiner},
	{"WJ", isWordJoiner},
	{"O", isOther},
	{"Rsv", isReserved},
	{"R", isRepha},
	{"S", isSymbol},
	{"Sk", isSakot},
	{"SM", isSymbolModifier},
	{"V", isVowel},
	{"VM", isVowelModifier},
}

// --- Per-codepoint exception sets ------------------------------------------

// variationSelectors U+FE00..U+FE0F are overridden to IND upstream, but we
// want to ignore them entirely.
var variationSelectors = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0xfe00, 0xfe0f, 1},
	},
}

// Po codepoints excluded from IND because they serve as placeholders or
// section marks (Tibetan heads, Myanmar/Mongolian punctuation, Balinese and
// Bhaiksuki placeholders, the generic bullet).
var independentPoExceptions = rangetable.New(
	0x0F04, 0x0F05, 0x0F06, 0x104B, 0x104E,
	0x1800, 0x1807, 0x180A, 0x1B5B, 0x1B5C,
	0x1B5F, 0x2022, 0x111C8, 0x11A3F, 0x11A45,
	0x11C44, 0x11C45,
)

// Dashes and geometric shapes that act as generic bases.
var genericBaseExtras = rangetable.New(
	0x2015, 0x2022, 0x25FB, 0x25FC, 0x25FD, 0x25FE,
)

// Symbol-category codepoints that are not shaping symbols: the dotted circle
// placeholder and the Nyiakeng Puachue Hmong circled CA.
var symbolNever = rangetable.New(0x25CC, 0x1E14F)

// Symbol-category codepoints used as placeholders instead.
var symbolPlaceholders = rangetable.New(0x0F01, 0x1B62, 0x1B68)

// Balinese musical symbols that modify symbols rather than vowels.
var symbolModifiers = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1b6b, 0x1b73, 1},
	},
}

// --- Primary class predicates ----------------------------------------------

func isBase(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	switch isc {
	case IscNumber, IscConsonant, IscConsonantHeadLetter, IscToneLetter, IscVowelIndependent:
		return true
	}
	if (jt == JtC || jt == JtD || jt == JtL || jt == JtR) && !isJoiner(u, isc, gc, jt) {
		return true
	}
	if gc == GcLo {
		switch isc {
		case IscAvagraha, IscBindu, IscConsonantFinal, IscConsonantMedial,
			IscConsonantSubjoined, IscVowel, IscVowelDependent:
			return true
		}
	}
	return false
}

func isBaseIndependent(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	if isc == IscConsonantDead || isc == IscModifyingLetter {
		return true
	}
	return gc == GcPo && !unicode.Is(independentPoExceptions, u)
}

func isBaseNumeral(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscBrahmiJoiningNumber
}

func isBaseOther(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	if isc == IscConsonantPlaceholder {
		return true
	}
	return unicode.Is(genericBaseExtras, u)
}

func isConsonantFinal(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return (isc == IscConsonantFinal && gc != GcLo) ||
		isc == IscConsonantSucceedingRepha
}

func isConsonantFinalModifier(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscSyllableModifier
}

func isConsonantMedial(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	// Consonant_Initial_Postfixed is new in Unicode 11; not in the spec.
	return (isc == IscConsonantMedial && gc != GcLo) ||
		isc == IscConsonantInitialPostfixed
}

func isConsonantModifier(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	switch isc {
	case IscNukta, IscGeminationMark, IscConsonantKiller:
		return !isSymbolModifier(u, isc, gc, jt)
	}
	return false
}

func isConsonantSubjoined(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscConsonantSubjoined && gc != GcLo
}

func isConsonantWithStacker(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscConsonantWithStacker
}

func isHalant(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return (isc == IscVirama || isc == IscInvisibleStacker) &&
		!isHalantOrVowelModifier(u, isc, gc, jt) &&
		!isSakot(u, isc, gc, jt)
}

func isHalantOrVowelModifier(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	// Brahmi virama and Grantha virama double as vowel modifiers.
	return u == 0x11046 || u == 0x1134D
}

func isHalantNumeral(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscNumberJoiner
}

func isNonJoiner(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscNonJoiner
}

func isJoiner(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscJoiner
}

func isWordJoiner(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return u == 0x2060
}

func isOther(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscOther &&
		!isBase(u, isc, gc, jt) &&
		!isSymbol(u, isc, gc, jt) &&
		!isSymbolModifier(u, isc, gc, jt) &&
		!isWordJoiner(u, isc, gc, jt)
}

func isReserved(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return gc == GcCn
}

func isRepha(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return isc == IscConsonantPrecedingRepha || isc == IscConsonantPrefixed
}

func isSakot(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return u == 0x1A60
}

func isSymbol(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	if unicode.Is(symbolNever, u) {
		return false
	}
	return (gc == GcSo || gc == GcSc) && !unicode.Is(symbolPlaceholders, u)
}

func isSymbolModifier(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	return unicode.Is(symbolModifiers, u)
}

func isVowel(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	if isc == IscPureKiller {
		return true
	}
	return gc != GcLo && (isc == IscVowel || isc == IscVowelDependent) && u != 0xAA29
}

func isVowelModifier(u rune, isc SyllabicCategory, gc GeneralCategory, jt JoiningType) bool {
	switch isc {
	case IscToneMark, IscCantillationMark, IscRegisterShifter, IscVisarga:
		return true
	}
	return gc != GcLo && (isc == IscBindu || u == 0xAA29)
}

// --- Point overrides -------------------------------------------------------

// syllabicOverride re-derives the syllabic category for codepoints where the
// upstream data is known incomplete or inconsistent as of the reference
// Unicode version.
func syllabicOverride(u rune, isc SyllabicCategory) SyllabicCategory {
	switch {
	case 0x1CE2 <= u && u <= 0x1CE8:
		// Vedic signs: carry UIPC but no UISC upstream.
		return IscCantillationMark
	case 0x0F18 <= u && u <= 0x0F19, 0x0F3E <= u && u <= 0x0F3F:
		// Tibetan: carry UIPC but no UISC upstream.
		return IscVowelDependent
	case 0x1BF2 <= u && u <= 0x1BF3:
		return IscNukta
	case u == 0x1CED:
		return IscToneMark
	case u == 0xA982:
		return IscConsonantSucceedingRepha
	}
	return isc
}

// positionalOverride re-derives the positional category for codepoints whose
// upstream UIPC is missing or stale.
func positionalOverride(u rune, ipc PositionalCategory) PositionalCategory {
	switch {
	case 0x1BF2 <= u && u <= 0x1BF3:
		return IpcBottom
	case u == 0x0953 || u == 0x0954:
		return IpcNotApplicable
	case 0xA926 <= u && u <= 0xA92A,
		u == 0x11302 || u == 0x11303 || u == 0x114C1,
		0x1CF8 <= u && u <= 0x1CF9,
		0x1112A <= u && u <= 0x1112B,
		0x11131 <= u && u <= 0x11132:
		return IpcTop
	}
	return ipc
}

// --- Positional suffix resolution ------------------------------------------

// suffixClass maps one positional suffix to the set of positional-category
// values it covers.
type suffixClass struct {
	suffix string
	values []PositionalCategory
}

// usePositions declares, per primary class, the positional sub-categories.
// A nil entry means the class is position-insensitive but still legitimate
// for codepoints carrying a positional category; classes absent from the map
// must not see a positional category at all (beyond Not_Applicable and
// Visual_Order_Left).
var usePositions = map[string][]suffixClass{
	"F": {
		{"Abv", []PositionalCategory{IpcTop}},
		{"Blw", []PositionalCategory{IpcBottom}},
		{"Pst", []PositionalCategory{IpcRight}},
	},
	"M": {
		{"Abv", []PositionalCategory{IpcTop}},
		{"Blw", []PositionalCategory{IpcBottom, IpcBottomAndLeft, IpcBottomAndRight}},
		{"Pst", []PositionalCategory{IpcRight}},
		{"Pre", []PositionalCategory{IpcLeft, IpcTopAndBottomAndLeft}},
	},
	"CM": {
		{"Abv", []PositionalCategory{IpcTop}},
		{"Blw", []PositionalCategory{IpcBottom, IpcOverstruck}},
	},
	"V": {
		{"Abv", []PositionalCategory{IpcTop, IpcTopAndBottom, IpcTopAndBottomAndRight, IpcTopAndRight}},
		{"Blw", []PositionalCategory{IpcBottom, IpcOverstruck, IpcBottomAndRight}},
		{"Pst", []PositionalCategory{IpcRight}},
		{"Pre", []PositionalCategory{IpcLeft, IpcTopAndLeft, IpcTopAndLeftAndRight, IpcLeftAndRight}},
	},
	"VM": {
		{"Abv", []PositionalCategory{IpcTop}},
		{"Blw", []PositionalCategory{IpcBottom, IpcOverstruck}},
		{"Pst", []PositionalCategory{IpcRight}},
		{"Pre", []PositionalCategory{IpcLeft}},
	},
	"SM": {
		{"Abv", []PositionalCategory{IpcTop}},
		{"Blw", []PositionalCategory{IpcBottom}},
	},
	"FM": {
		{"Abv", []PositionalCategory{IpcTop}},
		{"Blw", []PositionalCategory{IpcBottom}},
		{"Pst", []PositionalCategory{IpcNotApplicable}},
	},
	"H":   nil,
	"HVM": nil,
	"B":   nil,
	"R":   nil,
	"SUB": nil,
}

// --- Classification --------------------------------------------------------

// Classify determines the shaping-use category tag for one codepoint of the
// merged table. The second return value is false for codepoints that are
// deliberately not classified (unassigned codepoints and variation selectors).
//
// Classify is pure: it depends only on its arguments and the fixed tables of
// this package.
func Classify(u rune, rec Record) (string, bool, error) {
	if rec.General == GcCn {
		return "", false, nil
	}
	if unicode.Is(variationSelectors, u) {
		return "", false, nil
	}
	isc := syllabicOverride(u, rec.Syllabic)
	ipc := positionalOverride(u, rec.Positional)

	var matched []string
	for _, class := range useClasses {
		if class.match(u, isc, rec.General, rec.Joining) {
			matched = append(matched, class.name)
		}
	}
	if len(matched) != 1 {
		return "", false, fmt.Errorf("codepoint %#U (%s %s %s) matches %d primary classes %v",
			u, isc, rec.General, rec.Joining, len(matched), matched)
	}
	class := matched[0]

	suffixes, positional := usePositions[class]
	if !positional && ipc != IpcNotApplicable && ipc != IpcVisualOrderLeft && u != 0x0F7F {
		return "", false, fmt.Errorf("codepoint %#U: class %s cannot carry positional category %s",
			u, class, ipc)
	}
	if suffixes != nil {
		var resolved []string
		for _, s := range suffixes {
			for _, v := range s.values {
				if v == ipc {
					resolved = append(resolved, s.suffix)
					break
				}
			}
		}
		if len(resolved) != 1 {
			return "", false, fmt.Errorf("codepoint %#U: class %s with positional category %s matches %d suffixes %v",
				u, class, ipc, len(resolved), resolved)
		}
		class += resolved[0]
	}
	return class, true, nil
}

// MapToUse classifies every codepoint of a merged property table. The result
// maps codepoint → category tag, sorted by codepoint; skipped codepoints are
// absent. The first invariant violation aborts the mapping.
func MapToUse(merged *treemap.Map) (*treemap.Map, error) {
	out := treemap.NewWith(utils.RuneComparator)
	it := merged.Iterator()
	for it.Next() {
		u := it.Key().(rune)
		rec := it.Value().(Record)
		tag, ok, err := Classify(u, rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out.Put(u, tag)
	}
	return out, nil
}
