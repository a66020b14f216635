package ucd

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

// testUCDFiles holds abbreviated versions of the registered UCD files,
// enough to exercise every reader kind without touching the network.
// Line formats are verbatim from the real files.
var testUCDFiles = map[string]string{
	"ArabicShaping.txt": `
# Unicode; Schematic Name; Joining Type; Joining Group
0628; BEH; D; BEH
0640; TATWEEL; C; No_Joining_Group
`,
	"BidiBrackets.txt": `
0028; 0029; o
0029; 0028; c
`,
	"BidiMirroring.txt": `
0028; 0029 # LEFT PARENTHESIS
`,
	"Blocks.txt": `
0000..007F; Basic Latin
0600..06FF; Arabic
0900..097F; Devanagari
`,
	"CaseFolding.txt": `
0041; C; 0061; # LATIN CAPITAL LETTER A
00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S
`,
	"DerivedAge.txt": `
0000..001F ; 1.1
0600..0605 ; 1.1
0900..0963 ; 1.1
`,
	"EastAsianWidth.txt": `
0041..005A;Na
0900..0963;N
`,
	"HangulSyllableType.txt": `
1100..115F ; L
`,
	"IndicPositionalCategory.txt": `
093F ; Left
094D ; Bottom
`,
	"IndicSyllabicCategory.txt": `
0939 ; Consonant
093F ; Vowel_Dependent
094D ; Virama
`,
	"Jamo.txt": `
1100; G # HANGUL CHOSEONG KIYEOK
`,
	"LineBreak.txt": `
0041..005A;AL
093C..094D;CM
`,
	"NameAliases.txt": `
0000;NULL;control
`,
	"Scripts.txt": `
0600..06FF ; Arabic
0900..097F ; Devanagari
`,
	"ScriptExtensions.txt": `
0640 ; Adlm Arab Mand Phlp Rohg Sogd Syrc
`,
	"SpecialCasing.txt": `
00DF; 00DF; 0053 0073; 0053 0053; # LATIN SMALL LETTER SHARP S
`,
	"UnicodeData.txt": `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;0061;
0640;ARABIC TATWEEL;Lm;0;AL;;;;;N;;;;;
0939;DEVANAGARI LETTER HA;Lo;0;L;;;;;N;;;;;
093F;DEVANAGARI VOWEL SIGN I;Mc;0;L;;;;;N;;;;;
094D;DEVANAGARI SIGN VIRAMA;Mn;9;NSM;;;;;N;;;;;
`,
}

// TestMain populates a throwaway cache directory with the abbreviated data
// files and points the package there, so no test hits unicode.org.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ucd-test-*")
	if err != nil {
		panic(err)
	}
	for name, content := range testUCDFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	dirOverride = dir
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestLookupVirama(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	props, err := Lookup(0x094D)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"Name":                      "DEVANAGARI SIGN VIRAMA",
		"General_Category":          "Mn",
		"Canonical_Combining_Class": "9",
		"Block":                     "Devanagari",
		"Script":                    "Devanagari",
		"Indic_Syllabic_Category":   "Virama",
		"Indic_Positional_Category": "Bottom",
		"Line_Break":                "CM",
		"Age":                       "1.1",
		"USE_Category":              "H",
	}
	for p, v := range want {
		if props[p] != v {
			t.Errorf("Lookup(0x094D)[%q] = %q, want %q", p, props[p], v)
		}
	}
}

func TestLookupMergesAllFiles(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	props, err := Lookup(0x0640)
	if err != nil {
		t.Fatal(err)
	}
	if props["Joining_Type"] != "C" {
		t.Errorf("Joining_Type = %q, want \"C\"", props["Joining_Type"])
	}
	if props["Joining_Group"] != "No_Joining_Group" {
		t.Errorf("Joining_Group = %q", props["Joining_Group"])
	}
	if props["Script_Extensions"] != "Adlm Arab Mand Phlp Rohg Sogd Syrc" {
		t.Errorf("Script_Extensions = %q", props["Script_Extensions"])
	}
	if props["USE_Category"] != "B" {
		t.Errorf("USE_Category = %q, want \"B\"", props["USE_Category"])
	}
}

func TestLookupIgnoresSchemaHoles(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// The second ArabicShaping field is the schematic name, which is not a
	// property and must not leak into the result.
	props, err := Lookup(0x0628)
	if err != nil {
		t.Fatal(err)
	}
	for p := range props {
		if p == "IGNORE" {
			t.Error("the IGNORE pseudo-property leaked into a lookup result")
		}
	}
	if props["Joining_Type"] != "D" {
		t.Errorf("Joining_Type = %q, want \"D\"", props["Joining_Type"])
	}
}

func TestLookupUnlistedCodepoint(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	props, err := Lookup(0x10FFFE)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 0 {
		t.Errorf("expected no properties for U+10FFFE, got %v", props)
	}
}

func TestProperty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	v, err := Property(0x0041, "Name")
	if err != nil {
		t.Fatal(err)
	}
	if v != "LATIN CAPITAL LETTER A" {
		t.Errorf("Property(0x0041, Name) = %q", v)
	}
	v, err = Property(0x0041, "No_Such_Property")
	if err != nil {
		t.Fatal(err)
	}
	if v != "" {
		t.Errorf("unknown property should yield \"\", got %q", v)
	}
}

// TestConcurrentLookup hammers Lookup from several goroutines; the per-file
// parse is guarded by a sync.Once and must behave under concurrent first use.
func TestConcurrentLookup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, r := range []rune{0x0041, 0x0640, 0x0939, 0x093F, 0x094D} {
				props, err := Lookup(r)
				if err != nil {
					t.Error(err)
					return
				}
				if props["Name"] == "" {
					t.Errorf("no Name for %#U", r)
					return
				}
			}
		}()
	}
	wg.Wait()
}
