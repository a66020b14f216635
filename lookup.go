package ucd

import (
	"github.com/npillmayer/ucd/shaping"
)

// Properties is a flat map of UCD property names to value strings for one
// codepoint, e.g. Properties{"Name": "DEVANAGARI SIGN VIRAMA", …}.
type Properties map[string]string

// Lookup returns the merged Unicode character data for a given codepoint.
//
// This is the main function of the package. It consults every file of the
// registry plus the derived shaping-use category table; properties missing
// for the codepoint are simply absent from the result, which may be empty
// for unassigned codepoints. The first call (per process) triggers download
// and parsing of the data files; subsequent calls are cheap, read-only and
// safe for concurrent use.
func Lookup(codepoint rune) (Properties, error) {
	out := make(Properties)
	for _, filename := range registryFilenames() {
		spec := ucdFileRegistry[filename]
		pf, err := parsedUnicodeFile(filename)
		if err != nil {
			return nil, err
		}
		for p, v := range pf.properties(spec, codepoint) {
			out[p] = v
		}
	}
	if cat, ok := shaping.LookupUseCategory(codepoint); ok {
		out["USE_Category"] = cat
	}
	return out, nil
}

// Property returns a single named property of a codepoint, or the empty
// string if the codepoint does not carry it.
func Property(codepoint rune, name string) (string, error) {
	props, err := Lookup(codepoint)
	if err != nil {
		return "", err
	}
	return props[name], nil
}
