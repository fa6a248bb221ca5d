package reader

import (
	"strings"

	"github.com/hortensius/cljreader/internal/value"
)

// readString_ implements spec §4.6: a double-quoted string literal
// with backslash escapes. Named with a trailing underscore since
// "string" collides with the builtin type name.
func readString_(_ *readerContext, s CharStream, _ rune) value.Form {
	startLine, startCol := s.LineCol()
	var sb strings.Builder
	for {
		ch, eof := s.Next()
		if eof {
			failAt(startLine, startCol, "EOF while reading string")
		}
		switch ch {
		case '"':
			return value.Str(sb.String())
		case '\\':
			sb.WriteRune(readStringEscape(s))
		default:
			sb.WriteRune(ch)
		}
	}
}

// readStringEscape implements the backslash-escape table of spec
// §4.6: \t \r \n \\ \" \b \f plus \NNN (1-3 octal digits, <= 0o377),
// \uNNNN (exactly 4 hex digits), and \UNNNNNNNN (exactly 8 hex digits).
func readStringEscape(s CharStream) rune {
	ch, eof := s.Next()
	if eof {
		fail(s, "EOF while reading string")
	}
	switch ch {
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'n':
		return '\n'
	case '\\':
		return '\\'
	case '"':
		return '"'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'u':
		ch2, eof2 := s.Next()
		if eof2 {
			fail(s, "EOF while reading character escape")
		}
		return readUnicodeChar(s, ch2, 16, 4, true)
	case 'U':
		ch2, eof2 := s.Next()
		if eof2 {
			fail(s, "EOF while reading character escape")
		}
		return readUnicodeChar(s, ch2, 16, 8, true)
	default:
		if isOctalDigit(ch) {
			r := readOctalEscape(s, ch)
			return r
		}
		fail(s, "Unsupported escape character: \\%c", ch)
		return 0
	}
}

// readOctalEscape reads up to 3 octal digits (initch already consumed)
// and rejects values above \377, per spec §4.6.
func readOctalEscape(s CharStream, initch rune) rune {
	digits := []rune{initch}
	for i := 1; i < 3; i++ {
		ch, eof := s.Next()
		if eof || !isOctalDigit(ch) {
			if !eof {
				s.Back()
			}
			break
		}
		digits = append(digits, ch)
	}
	n := 0
	for _, d := range digits {
		n = n*8 + int(d-'0')
	}
	if n > 0377 {
		fail(s, "Octal escape sequence must be in range [0, 377]")
	}
	return rune(n)
}
