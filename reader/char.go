package reader

import (
	"github.com/hortensius/cljreader/internal/value"
)

// namedChars implements spec §4.7's named-character table.
var namedChars = map[string]rune{
	"newline":   '\n',
	"space":     ' ',
	"tab":       '\t',
	"backspace": '\b',
	"formfeed":  '\f',
	"return":    '\r',
}

// readChar implements spec §4.7: \x is a literal char, \newline and
// friends are named chars, \uNNNN / \oNNN are codepoint escapes,
// anything else with more than one token character is an error.
func readChar(_ *readerContext, s CharStream, _ rune) value.Form {
	startLine, startCol := s.LineCol()
	ch, eof := s.Next()
	if eof {
		failAt(startLine, startCol, "EOF while reading character")
	}

	// The char is a literal char when what follows it is EOF,
	// whitespace, or a terminating macro; otherwise it starts a token.
	next, nextEOF := s.Next()
	if !nextEOF {
		s.Back()
	}
	if nextEOF || isWhitespace(next) || isTerminatingMacro(next) {
		return value.Char(ch)
	}

	tok := readToken(s, ch)
	switch {
	case ch == 'u' && len(tok) > 1:
		r := parseHexToken(s, tok[1:], startLine, startCol)
		if isSurrogate(r) {
			failAt(startLine, startCol, "Invalid character constant: \\u%s", tok[1:])
		}
		return value.Char(r)
	case ch == 'o' && len(tok) > 1:
		return value.Char(parseOctalToken(s, tok[1:], startLine, startCol))
	default:
		if r, ok := namedChars[tok]; ok {
			return value.Char(r)
		}
		failAt(startLine, startCol, "Unsupported character: \\%s", tok)
		return nil
	}
}

func parseHexToken(s CharStream, digits string, line, col int) rune {
	if len(digits) != 4 {
		failAt(line, col, "Invalid character length: %d, should be: 4", len(digits))
	}
	for _, d := range digits {
		if !isHexDigit(d) {
			failAt(line, col, "Invalid digit: %c", d)
		}
	}
	n := 0
	for _, d := range digits {
		n = n*16 + hexVal(d)
	}
	return rune(n)
}

func hexVal(d rune) int {
	switch {
	case d >= '0' && d <= '9':
		return int(d - '0')
	case d >= 'a' && d <= 'f':
		return int(d-'a') + 10
	default:
		return int(d-'A') + 10
	}
}

func parseOctalToken(s CharStream, digits string, line, col int) rune {
	if len(digits) > 3 {
		failAt(line, col, "Invalid octal escape sequence length: %d", len(digits))
	}
	n := 0
	for _, d := range digits {
		if !isOctalDigit(d) {
			failAt(line, col, "Invalid digit: %c", d)
		}
		n = n*8 + int(d-'0')
	}
	if n > 0377 {
		failAt(line, col, "Octal escape sequence must be in range [0, 377]")
	}
	return rune(n)
}
