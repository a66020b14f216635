package usegen

import (
	"strings"
	"testing"
)

func TestClassifyHalant(t *testing.T) {
	rec := Record{
		Syllabic:   IscVirama,
		Positional: IpcNotApplicable,
		General:    GcMn,
		Joining:    JtX,
		Block:      "Devanagari",
	}
	tag, ok, err := Classify(0x094D, rec)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("U+094D should be classified")
	}
	if tag != "H" {
		t.Errorf("expected U+094D to classify as 'H', got %q", tag)
	}
}

func TestClassifyVowelWithSuffix(t *testing.T) {
	// DEVANAGARI VOWEL SIGN I: dependent vowel rendered to the left.
	rec := Record{
		Syllabic:   IscVowelDependent,
		Positional: IpcLeft,
		General:    GcMc,
		Joining:    JtX,
		Block:      "Devanagari",
	}
	tag, ok, err := Classify(0x093F, rec)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("U+093F should be classified")
	}
	if tag != "VPre" {
		t.Errorf("expected U+093F to classify as 'VPre', got %q", tag)
	}
}

func TestClassifyVowelAbove(t *testing.T) {
	rec := Record{
		Syllabic:   IscVowelDependent,
		Positional: IpcTop,
		General:    GcMn,
		Joining:    JtX,
		Block:      "Devanagari",
	}
	tag, _, err := Classify(0x0945, rec)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "VAbv" {
		t.Errorf("expected 'VAbv', got %q", tag)
	}
}

func TestClassifySkipsUnassigned(t *testing.T) {
	rec := defaultRecord // GC defaults to Cn
	_, ok, err := Classify(0x0860, rec)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("unassigned codepoints must not be classified")
	}
}

func TestClassifySkipsVariationSelectors(t *testing.T) {
	for u := rune(0xFE00); u <= 0xFE0F; u++ {
		rec := Record{
			Syllabic:   IscOther,
			Positional: IpcNotApplicable,
			General:    GcMn,
			Joining:    JtX,
			Block:      "Variation Selectors",
		}
		_, ok, err := Classify(u, rec)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("variation selector %#U must not be classified", u)
		}
	}
}

func TestClassifyWordJoiner(t *testing.T) {
	rec := Record{
		Syllabic:   IscOther,
		Positional: IpcNotApplicable,
		General:    GcCf,
		Joining:    JtU,
		Block:      "General Punctuation",
	}
	tag, _, err := Classify(0x2060, rec)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "WJ" {
		t.Errorf("expected U+2060 to classify as 'WJ', got %q", tag)
	}
}

func TestClassifySyllabicOverride(t *testing.T) {
	// U+A982 carries Consonant_Final upstream but acts as a succeeding repha.
	rec := Record{
		Syllabic:   IscConsonantFinal,
		Positional: IpcTop,
		General:    GcMn,
		Joining:    JtX,
		Block:      "Javanese",
	}
	tag, _, err := Classify(0xA982, rec)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "FAbv" {
		t.Errorf("expected U+A982 to classify as 'FAbv', got %q", tag)
	}
}

func TestClassifyPositionalOverride(t *testing.T) {
	// U+0953/0954 carry UIPC upstream but should not.
	rec := Record{
		Syllabic:   IscOther,
		Positional: IpcTop,
		General:    GcMn,
		Joining:    JtT,
		Block:      "Devanagari",
	}
	tag, _, err := Classify(0x0953, rec)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "O" {
		t.Errorf("expected U+0953 to classify as 'O', got %q", tag)
	}
}

func TestClassifyFinalModifierSuffix(t *testing.T) {
	// Syllable modifiers with Not_Applicable position resolve to FMPst.
	rec := Record{
		Syllabic:   IscSyllableModifier,
		Positional: IpcNotApplicable,
		General:    GcNo,
		Joining:    JtX,
		Block:      "Latin-1 Supplement",
	}
	tag, _, err := Classify(0x00B2, rec)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "FMPst" {
		t.Errorf("expected U+00B2 to classify as 'FMPst', got %q", tag)
	}
}

func TestClassifyHalantOrVowelModifier(t *testing.T) {
	rec := Record{
		Syllabic:   IscVirama,
		Positional: IpcNotApplicable,
		General:    GcMn,
		Joining:    JtX,
		Block:      "Brahmi",
	}
	tag, _, err := Classify(0x11046, rec)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "HVM" {
		t.Errorf("expected U+11046 to classify as 'HVM', got %q", tag)
	}
}

func TestClassifySakot(t *testing.T) {
	rec := Record{
		Syllabic:   IscInvisibleStacker,
		Positional: IpcNotApplicable,
		General:    GcMn,
		Joining:    JtX,
		Block:      "Tai Tham",
	}
	tag, _, err := Classify(0x1A60, rec)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "Sk" {
		t.Errorf("expected U+1A60 to classify as 'Sk', got %q", tag)
	}
}

// TestPredicateExclusivity checks the exactly-one invariant over a sweep of
// property tuples as they occur in real Unicode data, touching every primary
// class. The invariant holds over the merged table's domain, not over the
// full cross product of property values: synthetic combinations that no
// codepoint carries (say, Brahmi_Joining_Number with a joining type) may
// legitimately match several predicates. Rsv is absent here since unassigned
// codepoints are dropped before the predicates run.
func TestPredicateExclusivity(t *testing.T) {
	inputs := []struct {
		u    rune
		isc  SyllabicCategory
		gc   GeneralCategory
		jt   JoiningType
		want string
	}{
		{0x0939, IscConsonant, GcLo, JtX, "B"},              // DEVANAGARI LETTER HA
		{0x0628, IscOther, GcLo, JtD, "B"},                  // ARABIC LETTER BEH
		{0x09CE, IscConsonantDead, GcLo, JtX, "IND"},        // BENGALI LETTER KHANDA TA
		{0x11052, IscBrahmiJoiningNumber, GcNo, JtX, "N"},   // BRAHMI NUMBER ONE
		{0x00A0, IscConsonantPlaceholder, GcZs, JtX, "GB"},  // NO-BREAK SPACE
		{0x1A58, IscConsonantFinal, GcMn, JtX, "F"},         // TAI THAM SIGN MAI KANG LAI
		{0x1A7B, IscSyllableModifier, GcMn, JtX, "FM"},      // TAI THAM SIGN MAI SAM
		{0x0A75, IscConsonantMedial, GcMn, JtX, "M"},        // GURMUKHI SIGN YAKASH
		{0x093C, IscNukta, GcMn, JtX, "CM"},                 // DEVANAGARI SIGN NUKTA
		{0x1A57, IscConsonantSubjoined, GcMc, JtX, "SUB"},   // TAI THAM LA TANG LAI
		{0x11183, IscConsonantWithStacker, GcLo, JtX, "CS"}, // SHARADA LETTER A
		{0x094D, IscVirama, GcMn, JtX, "H"},                 // DEVANAGARI SIGN VIRAMA
		{0x11046, IscVirama, GcMn, JtX, "HVM"},              // BRAHMI VIRAMA
		{0x1107F, IscNumberJoiner, GcCf, JtU, "HN"},         // BRAHMI NUMBER JOINER
		{0x200C, IscNonJoiner, GcCf, JtU, "ZWNJ"},           // ZERO WIDTH NON-JOINER
		{0x200D, IscJoiner, GcCf, JtC, "ZWJ"},               // ZERO WIDTH JOINER
		{0x2060, IscOther, GcCf, JtU, "WJ"},                 // WORD JOINER
		{0x0971, IscOther, GcLm, JtX, "O"},                  // DEVANAGARI SIGN HIGH SPACING DOT
		{0x0D4E, IscConsonantPrecedingRepha, GcLo, JtX, "R"}, // MALAYALAM LETTER DOT REPH
		{0xAA77, IscOther, GcSo, JtX, "S"},                  // MYANMAR SYMBOL AITON EXCLAMATION
		{0x1A60, IscInvisibleStacker, GcMn, JtX, "Sk"},      // TAI THAM SIGN SAKOT
		{0x1B6B, IscOther, GcMn, JtX, "SM"},                 // BALINESE MUSICAL SYMBOL COMBINING TEGEH
		{0x093F, IscVowelDependent, GcMc, JtX, "V"},         // DEVANAGARI VOWEL SIGN I
		{0x103A, IscPureKiller, GcMn, JtX, "V"},             // MYANMAR SIGN ASAT
		{0x0901, IscBindu, GcMn, JtX, "VM"},                 // DEVANAGARI SIGN CANDRABINDU
	}
	for _, inp := range inputs {
		var matched []string
		for _, class := range useClasses {
			if class.match(inp.u, inp.isc, inp.gc, inp.jt) {
				matched = append(matched, class.name)
			}
		}
		if len(matched) != 1 {
			t.Errorf("%#U (%s, %s, %s) matches %d classes: %v",
				inp.u, inp.isc, inp.gc, inp.jt, len(matched), matched)
			continue
		}
		if matched[0] != inp.want {
			t.Errorf("%#U (%s, %s, %s) resolves to %q, want %q",
				inp.u, inp.isc, inp.gc, inp.jt, matched[0], inp.want)
		}
	}
}

// TestSuffixExclusivity checks that within each per-class positional mapping
// no positional-category value is claimed by two suffixes.
func TestSuffixExclusivity(t *testing.T) {
	for class, suffixes := range usePositions {
		seen := make(map[PositionalCategory]string)
		for _, s := range suffixes {
			for _, v := range s.values {
				if prev, ok := seen[v]; ok {
					t.Errorf("class %s: positional category %s claimed by both %s and %s",
						class, v, prev, s.suffix)
				}
				seen[v] = s.suffix
			}
		}
	}
}

func TestClassifyRejectsStrayPosition(t *testing.T) {
	// A class without a positional mapping must not see a positional category.
	rec := Record{
		Syllabic:   IscNonJoiner,
		Positional: IpcTop,
		General:    GcCf,
		Joining:    JtU,
		Block:      "General Punctuation",
	}
	_, _, err := Classify(0x200C, rec)
	if err == nil {
		t.Fatal("expected an invariant violation for ZWNJ with a positional category")
	}
	if !strings.Contains(err.Error(), "ZWNJ") {
		t.Errorf("error should identify the offending class, got: %v", err)
	}
}

func TestCategoryTagsAreIdentifiers(t *testing.T) {
	check := func(tag string) {
		for _, c := range tag {
			if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
				t.Errorf("category tag %q is not an ASCII identifier", tag)
				return
			}
		}
	}
	for _, class := range useClasses {
		check(class.name)
		for _, s := range usePositions[class.name] {
			check(class.name + s.suffix)
		}
	}
}
