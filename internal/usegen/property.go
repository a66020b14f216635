/*
Package usegen derives the shaping-use category table from raw UCD properties.

The shaping-use category ("USE category") is a synthetic classification of
codepoints consumed by shapers for the Universal Shaping Engine. It is derived
from five raw UCD properties — Indic_Syllabic_Category, Indic_Positional_Category,
General_Category, Joining_Type and Block — by an ordered set of mutually
exclusive predicates plus a positional-suffix resolution step. The derivation
is a one-shot batch computation; its output, a compacted range table, is
emitted as static data into package shaping by the generator CLI.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package usegen

import "fmt"

// The raw UCD properties feeding the classification are closed enumerations,
// one Go type each. Parsing an unrecognized value name is an error; this
// surfaces inconsistencies between the predicate tables and a new Unicode
// data version at table-build time instead of at query time.

// GeneralCategory is the UCD General_Category property (two-letter codes).
type GeneralCategory int8

// General_Category values.
const (
	GcCc GeneralCategory = iota
	GcCf
	GcCn
	GcCo
	GcCs
	GcLl
	GcLm
	GcLo
	GcLt
	GcLu
	GcMc
	GcMe
	GcMn
	GcNd
	GcNl
	GcNo
	GcPc
	GcPd
	GcPe
	GcPf
	GcPi
	GcPo
	GcPs
	GcSc
	GcSk
	GcSm
	GcSo
	GcZl
	GcZp
	GcZs
)

var generalCategoryNames = []string{
	"Cc", "Cf", "Cn", "Co", "Cs", "Ll", "Lm", "Lo", "Lt", "Lu", "Mc",
	"Me", "Mn", "Nd", "Nl", "No", "Pc", "Pd", "Pe", "Pf", "Pi", "Po",
	"Ps", "Sc", "Sk", "Sm", "So", "Zl", "Zp", "Zs",
}

func (gc GeneralCategory) String() string {
	if gc < 0 || int(gc) >= len(generalCategoryNames) {
		return fmt.Sprintf("GeneralCategory(%d)", int(gc))
	}
	return generalCategoryNames[gc]
}

// SyllabicCategory is the UCD Indic_Syllabic_Category property.
type SyllabicCategory int8

// Indic_Syllabic_Category values. The deprecated value Consonant_Final_Modifier
// is remapped to IscSyllableModifier when reading the override file, so it has
// no member here.
const (
	IscOther SyllabicCategory = iota
	IscBindu
	IscVisarga
	IscAvagraha
	IscNukta
	IscVirama
	IscPureKiller
	IscInvisibleStacker
	IscVowelIndependent
	IscVowelDependent
	IscVowel
	IscConsonantPlaceholder
	IscConsonant
	IscConsonantDead
	IscConsonantWithStacker
	IscConsonantPrefixed
	IscConsonantPrecedingRepha
	IscConsonantSucceedingRepha
	IscConsonantSubjoined
	IscConsonantMedial
	IscConsonantFinal
	IscConsonantHeadLetter
	IscConsonantInitialPostfixed
	IscModifyingLetter
	IscToneLetter
	IscToneMark
	IscGeminationMark
	IscCantillationMark
	IscRegisterShifter
	IscSyllableModifier
	IscConsonantKiller
	IscNonJoiner
	IscJoiner
	IscNumberJoiner
	IscNumber
	IscBrahmiJoiningNumber
)

var syllabicCategoryNames = []string{
	"Other",
	"Bindu",
	"Visarga",
	"Avagraha",
	"Nukta",
	"Virama",
	"Pure_Killer",
	"Invisible_Stacker",
	"Vowel_Independent",
	"Vowel_Dependent",
	"Vowel",
	"Consonant_Placeholder",
	"Consonant",
	"Consonant_Dead",
	"Consonant_With_Stacker",
	"Consonant_Prefixed",
	"Consonant_Preceding_Repha",
	"Consonant_Succeeding_Repha",
	"Consonant_Subjoined",
	"Consonant_Medial",
	"Consonant_Final",
	"Consonant_Head_Letter",
	"Consonant_Initial_Postfixed",
	"Modifying_Letter",
	"Tone_Letter",
	"Tone_Mark",
	"Gemination_Mark",
	"Cantillation_Mark",
	"Register_Shifter",
	"Syllable_Modifier",
	"Consonant_Killer",
	"Non_Joiner",
	"Joiner",
	"Number_Joiner",
	"Number",
	"Brahmi_Joining_Number",
}

func (isc SyllabicCategory) String() string {
	if isc < 0 || int(isc) >= len(syllabicCategoryNames) {
		return fmt.Sprintf("SyllabicCategory(%d)", int(isc))
	}
	return syllabicCategoryNames[isc]
}

// PositionalCategory is the UCD Indic_Positional_Category property.
type PositionalCategory int8

// Indic_Positional_Category values. The abbreviation "NA" found in the
// override file is remapped to IpcNotApplicable while reading.
const (
	IpcNotApplicable PositionalCategory = iota
	IpcRight
	IpcLeft
	IpcVisualOrderLeft
	IpcLeftAndRight
	IpcTop
	IpcBottom
	IpcTopAndBottom
	IpcTopAndBottomAndLeft
	IpcTopAndRight
	IpcTopAndLeft
	IpcTopAndLeftAndRight
	IpcBottomAndLeft
	IpcBottomAndRight
	IpcTopAndBottomAndRight
	IpcOverstruck
)

var positionalCategoryNames = []string{
	"Not_Applicable",
	"Right",
	"Left",
	"Visual_Order_Left",
	"Left_And_Right",
	"Top",
	"Bottom",
	"Top_And_Bottom",
	"Top_And_Bottom_And_Left",
	"Top_And_Right",
	"Top_And_Left",
	"Top_And_Left_And_Right",
	"Bottom_And_Left",
	"Bottom_And_Right",
	"Top_And_Bottom_And_Right",
	"Overstruck",
}

func (ipc PositionalCategory) String() string {
	if ipc < 0 || int(ipc) >= len(positionalCategoryNames) {
		return fmt.Sprintf("PositionalCategory(%d)", int(ipc))
	}
	return positionalCategoryNames[ipc]
}

// JoiningType is the UCD Joining_Type property from ArabicShaping.txt.
// Values are namespaced with a Jt prefix, as the single letters would collide
// with General_Category codes.
type JoiningType int8

// Joining_Type values.
const (
	JtC JoiningType = iota
	JtD
	JtL
	JtR
	JtT
	JtU
	JtX
)

var joiningTypeNames = []string{"C", "D", "L", "R", "T", "U", "X"}

func (jt JoiningType) String() string {
	if jt < 0 || int(jt) >= len(joiningTypeNames) {
		return fmt.Sprintf("JoiningType(%d)", int(jt))
	}
	return "jt_" + joiningTypeNames[jt]
}

// --- Value parsing ---------------------------------------------------------

var generalCategoryByName = invert(generalCategoryNames)
var syllabicCategoryByName = invert(syllabicCategoryNames)
var positionalCategoryByName = invert(positionalCategoryNames)
var joiningTypeByName = invert(joiningTypeNames)

func invert(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}

// ParseGeneralCategory maps a two-letter code to a GeneralCategory value.
func ParseGeneralCategory(s string) (GeneralCategory, error) {
	if i, ok := generalCategoryByName[s]; ok {
		return GeneralCategory(i), nil
	}
	return 0, fmt.Errorf("unrecognized General_Category value %q", s)
}

// ParseSyllabicCategory maps a value name to a SyllabicCategory value.
func ParseSyllabicCategory(s string) (SyllabicCategory, error) {
	if i, ok := syllabicCategoryByName[s]; ok {
		return SyllabicCategory(i), nil
	}
	return 0, fmt.Errorf("unrecognized Indic_Syllabic_Category value %q", s)
}

// ParsePositionalCategory maps a value name to a PositionalCategory value.
func ParsePositionalCategory(s string) (PositionalCategory, error) {
	if i, ok := positionalCategoryByName[s]; ok {
		return PositionalCategory(i), nil
	}
	return 0, fmt.Errorf("unrecognized Indic_Positional_Category value %q", s)
}

// ParseJoiningType maps a single-letter Joining_Type code to a JoiningType value.
func ParseJoiningType(s string) (JoiningType, error) {
	if i, ok := joiningTypeByName[s]; ok {
		return JoiningType(i), nil
	}
	return 0, fmt.Errorf("unrecognized Joining_Type value %q", s)
}
