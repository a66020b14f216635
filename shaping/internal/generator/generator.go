/*
Package generator is a generator for shaping-use categories.

This is a generator for the shaping-use category table consumed by package
shaping. Categories are re-derived from five UCD companion files plus the
two ms-use override files published with the USE specification:

   IndicSyllabicCategory.txt
   IndicPositionalCategory.txt
   UnicodeData.txt
   ArabicShaping.txt
   Blocks.txt
   IndicSyllabicCategory-Additional.txt    (ms-use)
   IndicPositionalCategory-Additional.txt  (ms-use)

Usage

The generator looks for the input files in a directory given with "-d"
(default "$GOPATH/etc"; the Additional files may live in an "ms-use"
subdirectory there). A "verbose" flag should usually be turned on.

   generator [-v] [-d <dir>] [-o usetables.go]

This creates a file "usetables.go" in the current directory. It is designed
to be called from the "shaping" directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"text/template"
	"time"

	"github.com/npillmayer/ucd/internal/ucdparse"
	"github.com/npillmayer/ucd/internal/usegen"
)

var logger = log.New(os.Stderr, "USE generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// loadSourceFile reads one UCD input file into a raw source table, taking the
// property value from field #valueField.
func loadSourceFile(dir, name string, valueField int) (usegen.Source, error) {
	if verbose {
		logger.Printf("reading %s", name)
	}
	defer timeTrack(time.Now(), "loading "+name)
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// The ms-use override files are often kept in a subdirectory.
		path = filepath.Join(dir, "ms-use", name)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", name, err)
	}
	defer f.Close()
	var src usegen.Source
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		from, to := token.Range()
		value := token.Field(valueField)
		if value == "" {
			return
		}
		src = append(src, usegen.RangeValue{From: from, To: to, Value: value})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", name, err)
	}
	return src, nil
}

// loadSources reads all seven input files.
func loadSources(dir string) (usegen.Sources, error) {
	var src usegen.Sources
	var err error
	load := func(dst *usegen.Source, name string, valueField int) {
		if err != nil {
			return
		}
		*dst, err = loadSourceFile(dir, name, valueField)
	}
	load(&src.Syllabic, "IndicSyllabicCategory.txt", 1)
	load(&src.Positional, "IndicPositionalCategory.txt", 1)
	load(&src.General, "UnicodeData.txt", 2)
	load(&src.Joining, "ArabicShaping.txt", 2)
	load(&src.Blocks, "Blocks.txt", 1)
	load(&src.SyllabicAdditional, "IndicSyllabicCategory-Additional.txt", 1)
	load(&src.PositionalAdditional, "IndicPositionalCategory-Additional.txt", 1)
	return src, err
}

// --- Templates --------------------------------------------------------

var header = `package shaping

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
// Shaping-use categories derived from Unicode 13.0.0 data files:
// IndicSyllabicCategory.txt, IndicPositionalCategory.txt, UnicodeData.txt,
// ArabicShaping.txt, Blocks.txt and the ms-use Additional override files.
`

var templateRangeTable = `
// useCategoryRanges is the compacted shaping-use category table: inclusive
// codepoint ranges sorted by start, non-overlapping, adjacent ranges never
// sharing a category.
var useCategoryRanges = []useRange{
{{range .}}	{{printf "{0x%04x, 0x%04x, %q}," .From .To .Category}}
{{end}}}
`

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	return template.Must(template.New(name).Parse(templString))
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	dir := flag.String("d", os.Getenv("GOPATH")+"/etc", "directory containing the UCD input files")
	out := flag.String("o", "usetables.go", "output file")
	flag.Parse()
	verbose = *doVerbose

	sources, err := loadSources(*dir)
	checkFatal(err)
	merged, err := usegen.BuildMergedTable(sources)
	checkFatal(err)
	if verbose {
		logger.Printf("merged property table holds %d codepoints\n", merged.Size())
	}
	classified, err := usegen.MapToUse(merged)
	checkFatal(err)
	if verbose {
		logger.Printf("classified %d codepoints\n", classified.Size())
	}
	ranges := usegen.Compact(classified)
	if verbose {
		logger.Printf("compacted into %d ranges\n", len(ranges))
	}

	f, ioerr := os.Create(*out)
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString(header)
	t := makeTemplate("USE category ranges", templateRangeTable)
	checkFatal(t.Execute(w, ranges))
	checkFatal(w.Flush())
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
