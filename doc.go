/*
Package ucd is an interface to the Unicode® Character Database.

Description

The Unicode Character Database (UCD) is a set of documentation and data
files describing, per codepoint, the character properties defined by the
Unicode Standard: the character name, its general category, its script and
block, line-breaking and shaping behavior, case mappings, and so on. The
UCD is distributed by the Unicode Consortium as a set of semicolon-separated
text files, bundled into a single archive, UCD.zip.

Package ucd downloads this archive once into a per-user cache directory,
keeps it reasonably up to date, and answers property queries for single
codepoints:

  props, err := ucd.Lookup(0x0939)
  if err != nil { … }
  fmt.Println(props["Name"])              // DEVANAGARI LETTER HA
  fmt.Println(props["General_Category"])  // Lo
  fmt.Println(props["USE_Category"])      // B

Lookup merges the properties of all known UCD files for one codepoint into
a flat map. Data files are parsed lazily, each exactly once per process;
after that, queries are read-only and safe for concurrent use. First-time
population of the on-disk cache is serialized with a file lock, so
concurrent processes observe a fully-populated cache rather than partial
writes.

Beyond the raw UCD properties, Lookup reports the shaping-use category, a
derived classification for complex-script shaping computed by this module
(see package shaping).

A small CLI front end for interactive queries lives in cmd/ucdinfo.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ucd

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
