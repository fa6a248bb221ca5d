package reader

import "strconv"

// isHexDigit and isOctalDigit classify escape-sequence digits (spec
// §4.6, §4.7).
func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch rune) bool { return ch >= '0' && ch <= '7' }

// isSurrogate reports whether r falls in the UTF-16 surrogate range,
// which spec §4.6/§4.7 reject as an unpaired codepoint.
func isSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDFFF }

// readUnicodeChar implements spec §4.6/§4.7's shared codepoint reader:
// read up to `length` base-`base` digits (exactly `length` if `exact`,
// otherwise stopping early at whitespace/macro/EOF), and return the
// resulting rune. initch is the first digit, already consumed.
//
// Grounded on original_source/clojure/lang/lispreader.py's
// readUnicodeChar, generalized over base and length. It serves the
// \uXXXX and \UXXXXXXXX string escapes; character literals use
// parseHexToken/parseOctalToken (char.go) and string octal escapes use
// readOctalEscape (string.go).
func readUnicodeChar(s CharStream, initch rune, base, length int, exact bool) rune {
	digitVal := func(ch rune) (int, bool) {
		switch base {
		case 8:
			if isOctalDigit(ch) {
				return int(ch - '0'), true
			}
		case 16:
			if isHexDigit(ch) {
				n, _ := strconv.ParseInt(string(ch), 16, 32)
				return int(n), true
			}
		}
		return 0, false
	}

	digits := make([]rune, 0, length)
	if _, ok := digitVal(initch); !ok {
		fail(s, "Invalid digit: %c", initch)
	}
	digits = append(digits, initch)

	for i := 1; i < length; i++ {
		ch, eof := s.Next()
		if eof || isWhitespace(ch) || isMacro(ch) {
			if !eof {
				s.Back()
			}
			break
		}
		if _, ok := digitVal(ch); !ok {
			if exact {
				fail(s, "Invalid digit: %c", ch)
			}
			s.Back()
			break
		}
		digits = append(digits, ch)
	}

	if exact && len(digits) != length {
		fail(s, "Invalid character length: %d, should be: %d", len(digits), length)
	}

	n, err := strconv.ParseInt(string(digits), base, 32)
	if err != nil {
		fail(s, "Invalid unicode character: %s", string(digits))
	}
	r := rune(n)
	if isSurrogate(r) {
		fail(s, "Invalid character constant: surrogate codepoint U+%04X", n)
	}
	return r
}
