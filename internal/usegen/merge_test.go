package usegen

import (
	"strings"
	"testing"
)

func mergedRecord(t *testing.T, src Sources, u rune) (Record, bool) {
	t.Helper()
	table, err := BuildMergedTable(src)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := table.Get(u)
	if !ok {
		return Record{}, false
	}
	return r.(Record), true
}

func TestMergeAnnotatesIndicEntries(t *testing.T) {
	src := Sources{
		Syllabic:   Source{{0x094D, 0x094D, "Virama"}},
		Positional: Source{{0x094D, 0x094D, "Bottom"}},
		General:    Source{{0x094D, 0x094D, "Mn"}},
		Joining:    Source{{0x094D, 0x094D, "T"}},
		Blocks:     Source{{0x0900, 0x097F, "Devanagari"}},
	}
	rec, ok := mergedRecord(t, src, 0x094D)
	if !ok {
		t.Fatal("U+094D missing from merged table")
	}
	want := Record{
		Syllabic:   IscVirama,
		Positional: IpcBottom,
		General:    GcMn,
		Joining:    JtT,
		Block:      "Devanagari",
	}
	if rec != want {
		t.Errorf("merged record mismatch:\n got  %+v\n want %+v", rec, want)
	}
}

func TestMergeAnnotationsNeverCreateEntries(t *testing.T) {
	// Only the Indic tables decide table membership.
	src := Sources{
		General: Source{{0x0041, 0x0041, "Lu"}},
		Joining: Source{{0x0627, 0x0627, "R"}},
		Blocks:  Source{{0x0000, 0x007F, "Basic Latin"}},
	}
	table, err := BuildMergedTable(src)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := table.Get(rune(0x0041)); ok {
		t.Error("UnicodeData alone must not create a merged entry")
	}
	if _, ok := table.Get(rune(0x0627)); ok {
		t.Error("ArabicShaping alone must not create a merged entry")
	}
}

func TestMergePositionalCreatesEntries(t *testing.T) {
	src := Sources{
		Positional: Source{{0x0F72, 0x0F72, "Top"}},
	}
	rec, ok := mergedRecord(t, src, 0x0F72)
	if !ok {
		t.Fatal("positional table alone should create a merged entry")
	}
	if rec.Syllabic != IscOther || rec.Positional != IpcTop {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestMergeDefaults(t *testing.T) {
	src := Sources{
		Syllabic: Source{{0x1000, 0x1000, "Consonant"}},
	}
	rec, _ := mergedRecord(t, src, 0x1000)
	if rec.Positional != IpcNotApplicable || rec.General != GcCn ||
		rec.Joining != JtX || rec.Block != "No_Block" {
		t.Errorf("defaults not applied: %+v", rec)
	}
}

func TestMergeAdditionalOverridesPrimary(t *testing.T) {
	src := Sources{
		Syllabic:           Source{{0x1A60, 0x1A60, "Invisible_Stacker"}},
		SyllabicAdditional: Source{{0x1A60, 0x1A60, "Virama"}},
	}
	rec, _ := mergedRecord(t, src, 0x1A60)
	if rec.Syllabic != IscVirama {
		t.Errorf("Additional value should win, got %s", rec.Syllabic)
	}
}

func TestMergeAdditionalRenames(t *testing.T) {
	src := Sources{
		SyllabicAdditional:   Source{{0x00B2, 0x00B3, "Consonant_Final_Modifier"}},
		PositionalAdditional: Source{{0x00B2, 0x00B3, "NA"}},
	}
	rec, _ := mergedRecord(t, src, 0x00B2)
	if rec.Syllabic != IscSyllableModifier {
		t.Errorf("Consonant_Final_Modifier should be read as Syllable_Modifier, got %s", rec.Syllabic)
	}
	if rec.Positional != IpcNotApplicable {
		t.Errorf("NA should be read as Not_Applicable, got %s", rec.Positional)
	}
}

func TestMergeInjectsMissingCodepoints(t *testing.T) {
	rec, ok := mergedRecord(t, Sources{}, 0x0640) // ARABIC TATWEEL
	if !ok {
		t.Fatal("U+0640 should be injected even with empty sources")
	}
	if rec.Syllabic != IscOther {
		t.Errorf("U+0640 should carry Other, got %s", rec.Syllabic)
	}
	rec, ok = mergedRecord(t, Sources{}, 0x1B5B)
	if !ok {
		t.Fatal("U+1B5B should be injected even with empty sources")
	}
	if rec.Syllabic != IscConsonantPlaceholder {
		t.Errorf("U+1B5B should carry Consonant_Placeholder, got %s", rec.Syllabic)
	}
}

func TestMergeDropsExcludedBlocks(t *testing.T) {
	src := Sources{
		Syllabic: Source{
			{0x0E31, 0x0E31, "Vowel_Dependent"},
			{0x0995, 0x0995, "Consonant"},
		},
		Blocks: Source{
			{0x0E00, 0x0E7F, "Thai"},
			{0x0980, 0x09FF, "Bengali"},
		},
	}
	table, err := BuildMergedTable(src)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := table.Get(rune(0x0E31)); ok {
		t.Error("Thai codepoints must be dropped from the merged table")
	}
	if _, ok := table.Get(rune(0x0995)); !ok {
		t.Error("Bengali codepoints must be kept")
	}
}

func TestMergeRejectsUnknownValues(t *testing.T) {
	src := Sources{
		Syllabic: Source{{0x1000, 0x1000, "Consonant_Imaginary"}},
	}
	_, err := BuildMergedTable(src)
	if err == nil {
		t.Fatal("expected an error for an unknown syllabic category value")
	}
	if !strings.Contains(err.Error(), "Consonant_Imaginary") {
		t.Errorf("error should carry the offending value, got: %v", err)
	}
}

func TestMergeIteratesInCodepointOrder(t *testing.T) {
	src := Sources{
		Syllabic: Source{
			{0x11000, 0x11002, "Bindu"},
			{0x0901, 0x0903, "Bindu"},
			{0xA980, 0xA983, "Bindu"},
		},
	}
	table, err := BuildMergedTable(src)
	if err != nil {
		t.Fatal(err)
	}
	prev := rune(-1)
	it := table.Iterator()
	for it.Next() {
		u := it.Key().(rune)
		if u <= prev {
			t.Fatalf("iteration out of order: %#U after %#U", u, prev)
		}
		prev = u
	}
}
