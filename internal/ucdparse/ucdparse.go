/*
Package ucdparse provides a parser for Unicode Character Database files.

The format of UCD files is defined in http://www.unicode.org/reports/tr44/;
see http://www.unicode.org/Public/UCD/latest/ucd/ for example files. Data
lines look like this:

   0900..0902    ; Bindu        # Mn   [3] DEVANAGARI SIGN INVERTED CANDRABINDU..
   093A          ; Vowel_Dependent

i.e., a codepoint or codepoint range, followed by semicolon-separated
property fields, optionally trailed by a '#'-comment. Some files, most
prominently UnicodeData.txt, carry a single codepoint and a longer tuple
of fields per line; both layouts are handled by this parser.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and clients.
// The scanner reads lines of a UCD file and wraps their content into tokens for
// clients to operate on.
type Token struct {
	LineNo    int       // line number of this token within the input source
	TokenType TokenType // type of token
	runeFrom  rune      // first/single rune
	runeTo    rune      // final rune of range (may be identical to runeFrom)
	Fields    []string  // property fields of the line, excluding the codepoint field
	Comment   string    // rest-of-line comment of data item lines
	Error     error     // error condition, if any
}

// TokenType classifies scanner tokens.
type TokenType int8

// Token types for UCD file lines.
const (
	Undefined TokenType = iota
	EOF
	SingleDataItem
	RangeDataItem
)

// newToken creates a token initialized with a line number.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at(%d) %#U..%#U type=%d %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) from the current data item. Field #1 is the first
// property field after the codepoint or codepoint range. Fields are trimmed of
// surrounding white space. An out-of-bounds i results in an empty string.
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the codepoint range from the current data item. Single-codepoint
// items will have from == to.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}
