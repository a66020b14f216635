package shaping

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestUseCategoryKnownCodepoints(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	inputs := []struct {
		r    rune
		want string
	}{
		{0x002D, "GB"},   // HYPHEN-MINUS
		{0x0640, "B"},    // ARABIC TATWEEL
		{0x093F, "VPre"}, // DEVANAGARI VOWEL SIGN I
		{0x094D, "H"},    // DEVANAGARI SIGN VIRAMA
		{0x25CC, "B"},    // DOTTED CIRCLE
		{0x1E959, "B"},   // ADLAM DIGIT NINE, last table entry
	}
	for _, inp := range inputs {
		if got := UseCategoryForRune(inp.r); got != inp.want {
			t.Errorf("UseCategoryForRune(%#U) = %q, want %q", inp.r, got, inp.want)
		}
	}
}

func TestUseCategoryDefault(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, r := range []rune{0x0000, 0x002C, 0x10FFFF} {
		if _, ok := LookupUseCategory(r); ok {
			t.Errorf("%#U should not be covered by the table", r)
		}
		if got := UseCategoryForRune(r); got != DefaultUseCategory {
			t.Errorf("UseCategoryForRune(%#U) = %q, want default %q", r, got, DefaultUseCategory)
		}
		if got := UseCategoryOrDefault(r, "??"); got != "??" {
			t.Errorf("UseCategoryOrDefault(%#U) = %q, want \"??\"", r, got)
		}
	}
}

func TestUseCategoryRangeEdges(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// 0x0640..0x07EA "B": both edges inside, both neighbours outside or in
	// another range.
	if got := UseCategoryForRune(0x07EA); got != "B" {
		t.Errorf("upper range edge: got %q, want \"B\"", got)
	}
	if cat, ok := LookupUseCategory(0x063F); ok {
		t.Errorf("below range start: unexpectedly covered as %q", cat)
	}
}

func TestUseCategoryTableIsSorted(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for i, rg := range useCategoryRanges {
		if rg.lo > rg.hi {
			t.Errorf("entry %d is inverted: %+v", i, rg)
		}
		if i > 0 && rg.lo <= useCategoryRanges[i-1].hi {
			t.Errorf("entry %d overlaps its predecessor", i)
		}
	}
}
