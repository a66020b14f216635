package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Parser is a line-level scanner for UCD files. Comment-only and empty lines
// are skipped; every remaining line is wrapped into a Token.
type Parser struct {
	scanner   *bufio.Scanner
	lineNo    int
	LastError error  // last error, if any
	Token     *Token // last token produced by the scanner
}

// New creates a parser for an input reader.
func New(inputReader io.Reader) (*Parser, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	p := &Parser{scanner: bufio.NewScanner(inputReader)}
	return p, nil
}

// Parse iterates over each data line of a UCD file and calls callback f on it.
// Tokens flagging a scan error stop the iteration and surface the error.
func Parse(r io.Reader, f func(token *Token)) error {
	p, err := New(r)
	if err != nil {
		return err
	}
	for p.Next() {
		if p.Token.Error != nil {
			break
		}
		f(p.Token)
	}
	return p.LastError
}

// Next is called to receive the next line-level token. A token subsumes the
// properties of one data line of UCD input. Returns false at end of input.
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		p.lineNo++
		line := p.scanner.Text()
		if j := strings.IndexByte(line, '#'); j >= 0 {
			p.Token = newToken(p.lineNo)
			p.Token.Comment = strings.TrimSpace(line[j+1:])
			line = line[:j]
		} else {
			p.Token = newToken(p.lineNo)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue // comment-only or blank line
		}
		p.scanLine(line)
		if p.Token.Error != nil {
			p.LastError = p.Token.Error
		}
		return true
	}
	p.Token = newToken(p.lineNo)
	p.Token.TokenType = EOF
	if err := p.scanner.Err(); err != nil {
		p.LastError = err
		p.Token.Error = err
	}
	return false
}

// scanLine dissects one non-empty data line into a codepoint range and
// property fields.
func (p *Parser) scanLine(line string) {
	token := p.Token
	fields := strings.Split(line, ";")
	cps := strings.TrimSpace(fields[0])
	from, to, err := parseRuneRange(cps)
	if err != nil {
		token.Error = fmt.Errorf("line %d: %w", token.LineNo, err)
		return
	}
	token.runeFrom, token.runeTo = from, to
	if from == to && !strings.Contains(cps, "..") {
		token.TokenType = SingleDataItem
	} else {
		token.TokenType = RangeDataItem
	}
	token.Fields = fields[1:]
	for i, f := range token.Fields {
		token.Fields[i] = strings.TrimSpace(f)
	}
}

// parseRuneRange parses "XXXX" or "XXXX..YYYY" hex codepoint notation.
func parseRuneRange(s string) (from, to rune, err error) {
	parts := strings.SplitN(s, "..", 2)
	n, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("hex decoding error: %w", err)
	}
	from, to = rune(n), rune(n)
	if len(parts) == 2 {
		n, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("hex decoding error: %w", err)
		}
		to = rune(n)
	}
	return from, to, nil
}
