/*
Package shaping provides tables corresponding to Unicode® Character Data tables
relevant for text shaping.

Currently this is the shaping-use category ("USE category"), a classification
of codepoints consumed by shaping engines implementing the Universal Shaping
Engine spec. It is a synthetic property derived from Indic_Syllabic_Category,
Indic_Positional_Category, General_Category, Joining_Type and Block, with a
positional sub-category appended for position-sensitive classes, e.g. "VAbv",
"CMBlw", "B".

The category table in usetables.go has been created by a generator CLI
(source located in github.com/npillmayer/ucd/shaping/internal/generator),
which re-derives the classification from a set of UCD input files:

	generator -v -d $GOPATH/etc -o usetables.go

The generated table is static data, loaded with the package and never mutated;
lookups are safe for unsynchronized concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shaping
