package ucd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/npillmayer/ucd/internal/ucdparse"
)

// readerKind selects how a UCD file's data is keyed: per single codepoint
// (e.g. UnicodeData.txt) or per codepoint range (e.g. Blocks.txt).
type readerKind int8

const (
	byCodepoint readerKind = iota
	byRange
)

// fileSpec describes the schema of one UCD file: the property name of each
// field following the codepoint field, and the reader kind. The pseudo-name
// "IGNORE" skips a field.
type fileSpec struct {
	properties []string
	kind       readerKind
}

const ignoreField = "IGNORE"

// ucdFileRegistry lists the UCD files this package knows how to read,
// keyed by the filename inside UCD.zip.
var ucdFileRegistry = map[string]fileSpec{
	"ArabicShaping.txt": {
		properties: []string{ignoreField, "Joining_Type", "Joining_Group"},
		kind:       byCodepoint,
	},
	"BidiBrackets.txt": {
		properties: []string{"Bidi_Paired_Bracket", "Bidi_Paired_Bracket_Type"},
		kind:       byCodepoint,
	},
	"BidiMirroring.txt": {
		properties: []string{"Bidi_Mirroring_Glyph"},
		kind:       byCodepoint,
	},
	"Blocks.txt": {
		properties: []string{"Block"},
		kind:       byRange,
	},
	"CaseFolding.txt": {
		properties: []string{"Case_Folding_Status", "Case_Folding_Mapping"},
		kind:       byCodepoint,
	},
	"DerivedAge.txt": {
		properties: []string{"Age"},
		kind:       byRange,
	},
	"EastAsianWidth.txt": {
		properties: []string{"East_Asian_Width"},
		kind:       byRange,
	},
	"HangulSyllableType.txt": {
		properties: []string{"Hangul_Syllable_Type"},
		kind:       byRange,
	},
	"IndicPositionalCategory.txt": {
		properties: []string{"Indic_Positional_Category"},
		kind:       byRange,
	},
	"IndicSyllabicCategory.txt": {
		properties: []string{"Indic_Syllabic_Category"},
		kind:       byRange,
	},
	"Jamo.txt": {
		properties: []string{"Jamo_Short_Name"},
		kind:       byCodepoint,
	},
	"LineBreak.txt": {
		properties: []string{"Line_Break"},
		kind:       byRange,
	},
	"NameAliases.txt": {
		properties: []string{"Name_Alias"},
		kind:       byCodepoint,
	},
	"Scripts.txt": {
		properties: []string{"Script"},
		kind:       byRange,
	},
	"ScriptExtensions.txt": {
		properties: []string{"Script_Extensions"},
		kind:       byRange,
	},
	"SpecialCasing.txt": {
		properties: []string{"Uppercase_Mapping", "Lowercase_Mapping", "Titlecase_Mapping"},
		kind:       byCodepoint,
	},
	"UnicodeData.txt": {
		properties: []string{"Name", "General_Category", "Canonical_Combining_Class"},
		kind:       byCodepoint,
	},
}

// registryFilenames returns the registered filenames in stable order.
func registryFilenames() []string {
	names := make([]string, 0, len(ucdFileRegistry))
	for name := range ucdFileRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Per-file parse cache --------------------------------------------------

// rangeEntry is one parsed line of a range-keyed UCD file.
type rangeEntry struct {
	from, to rune
	fields   []string
}

// parsedFile holds the lazily parsed data of one UCD file. Each file is
// parsed exactly once per process; afterwards the data is read-only and safe
// for unsynchronized concurrent reads.
type parsedFile struct {
	once   sync.Once
	err    error
	byCp   map[rune][]string // for byCodepoint files
	ranges []rangeEntry      // for byRange files, sorted by from
}

var fileCache = struct {
	sync.Mutex
	files map[string]*parsedFile
}{files: make(map[string]*parsedFile)}

// parsedUnicodeFile returns the parsed data for a given UCD file, parsing it
// on first use. The filename is the name inside the archive, e.g.
// "ArabicShaping.txt".
func parsedUnicodeFile(filename string) (*parsedFile, error) {
	spec, ok := ucdFileRegistry[filename]
	if !ok {
		return nil, fmt.Errorf("unknown UCD file %q", filename)
	}
	fileCache.Lock()
	pf := fileCache.files[filename]
	if pf == nil {
		pf = &parsedFile{}
		fileCache.files[filename] = pf
	}
	fileCache.Unlock()
	pf.once.Do(func() {
		pf.err = pf.parse(filename, spec)
	})
	return pf, pf.err
}

func (pf *parsedFile) parse(filename string, spec fileSpec) error {
	if err := EnsureFiles(); err != nil {
		return err
	}
	dir, err := UCDDir()
	if err != nil {
		return err
	}
	f, err := os.Open(filepath.Join(dir, filename))
	if err != nil {
		return fmt.Errorf("failed to open %v: %w", filename, err)
	}
	defer func() { _ = f.Close() }()
	tracer().Debugf("parsing UCD file %s", filename)

	if spec.kind == byCodepoint {
		pf.byCp = make(map[rune][]string)
	}
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		from, to := token.Range()
		switch spec.kind {
		case byCodepoint:
			pf.byCp[from] = token.Fields
		case byRange:
			pf.ranges = append(pf.ranges, rangeEntry{from: from, to: to, fields: token.Fields})
		}
	})
	if err != nil {
		return fmt.Errorf("failed to parse %v: %w", filename, err)
	}
	// Range entries must be sorted for binary search; UCD files usually are,
	// but this is not guaranteed (ArabicShaping is sorted by joining group).
	sort.SliceStable(pf.ranges, func(i, j int) bool {
		return pf.ranges[i].from < pf.ranges[j].from
	})
	return nil
}

// properties extracts the schema-named properties for one codepoint from a
// parsed file, or nil if the file has no entry for it.
func (pf *parsedFile) properties(spec fileSpec, r rune) map[string]string {
	var fields []string
	if pf.byCp != nil {
		fields = pf.byCp[r]
	} else {
		i := sort.Search(len(pf.ranges), func(i int) bool {
			return pf.ranges[i].from > r
		})
		if i > 0 && r <= pf.ranges[i-1].to {
			fields = pf.ranges[i-1].fields
		}
	}
	if fields == nil {
		return nil
	}
	out := make(map[string]string, len(spec.properties))
	for i, p := range spec.properties {
		if p == ignoreField || i >= len(fields) {
			continue
		}
		out[p] = fields[i]
	}
	return out
}
