package reader

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/hortensius/cljreader/internal/value"
)

// Patterns below mirror original_source/clojure/lang/lispreader.py's
// intPat/floatPat/ratioPat, translated to Go regexp (named groups,
// anchored both ends since Go's regexp has no $-is-end-of-string-only
// subtlety to worry about here). The radix group's base is validated
// numerically in code rather than in the regex, since "2..36" is
// awkward to express as a character class.
var (
	radixRe   = regexp.MustCompile(`^([-+]?)([0-9]|[12][0-9]|3[0-6])[rR]([0-9a-zA-Z]+)(N)?$`)
	decimalRe = regexp.MustCompile(`^([-+]?)(0|[1-9][0-9]*)(N)?$`)
	octalRe   = regexp.MustCompile(`^([-+]?)0([0-7]+)(N)?$`)
	hexRe     = regexp.MustCompile(`^([-+]?)0[xX]([0-9a-fA-F]+)(N)?$`)
	floatRe   = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]*([eE][+-]?[0-9]+)?|[eE][+-]?[0-9]+)(M)?$`)
	// ratioRe intentionally matches original_source's pattern exactly,
	// including its numerator/denominator digit-class quirk (no '0'
	// digit may appear alongside other digits: "[1-9]+", not
	// "[1-9][0-9]*"); this is carried over from
	// clojure/lang/lispreader.py's ratioPat rather than "corrected",
	// per spec §4.5 which transcribes the same pattern.
	ratioRe = regexp.MustCompile(`^([-+]?)(0|[1-9]+)/(0|[1-9]+)$`)
)

// matchNumber implements spec §4.5: try integer, float, ratio in that
// order; the first full match wins. Returns nil with no error if s
// matches no pattern at all (the caller turns that into "Invalid
// number: s").
func matchNumber(s string) (value.Form, error) {
	if m := radixRe.FindStringSubmatch(s); m != nil {
		sign, baseStr, digits := m[1], m[2], m[3]
		base := 0
		for _, c := range baseStr {
			base = base*10 + int(c-'0')
		}
		if base < 2 || base > 36 {
			return nil, nil
		}
		n, ok := new(big.Int).SetString(digits, base)
		if !ok {
			return nil, nil
		}
		if sign == "-" {
			n.Neg(n)
		}
		return value.NewInteger(n), nil
	}
	if m := decimalRe.FindStringSubmatch(s); m != nil {
		n, ok := new(big.Int).SetString(m[1]+m[2], 10)
		if !ok {
			return nil, nil
		}
		return value.NewInteger(n), nil
	}
	if m := octalRe.FindStringSubmatch(s); m != nil {
		n, ok := new(big.Int).SetString(m[2], 8)
		if !ok {
			return nil, nil
		}
		if m[1] == "-" {
			n.Neg(n)
		}
		return value.NewInteger(n), nil
	}
	if m := hexRe.FindStringSubmatch(s); m != nil {
		n, ok := new(big.Int).SetString(m[2], 16)
		if !ok {
			return nil, nil
		}
		if m[1] == "-" {
			n.Neg(n)
		}
		return value.NewInteger(n), nil
	}
	if floatRe.MatchString(s) {
		trimmed := strings.TrimSuffix(s, "M")
		fv, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, nil
		}
		return value.Float(fv), nil
	}
	if m := ratioRe.FindStringSubmatch(s); m != nil {
		sign, num, den := m[1], m[2], m[3]
		numerator, ok := new(big.Int).SetString(num, 10)
		if !ok {
			return nil, nil
		}
		denominator, ok := new(big.Int).SetString(den, 10)
		if !ok {
			return nil, nil
		}
		if denominator.Sign() == 0 {
			return nil, errDivByZero
		}
		if sign == "-" {
			numerator.Neg(numerator)
		}
		r := new(big.Rat).SetFrac(numerator, denominator)
		return value.NewRatio(r), nil
	}
	return nil, nil
}

var errDivByZero = &ReaderError{Msg: "Divide by zero"}

// readNumber implements spec §4.5/§4.2 step 3/5: accumulate a number
// token (terminated by whitespace or ANY macro character, even a
// non-terminating one) and parse it.
func readNumber(ctx *readerContext, s CharStream, initch rune) value.Form {
	startLine, startCol := s.LineCol()
	var sb strings.Builder
	sb.WriteRune(initch)
	for {
		ch, eof := s.Next()
		if eof || isWhitespace(ch) || isMacro(ch) {
			if !eof {
				s.Back()
			}
			break
		}
		sb.WriteRune(ch)
	}
	tok := sb.String()
	n, err := matchNumber(tok)
	if err != nil {
		failAt(startLine, startCol, "%s", err.Error())
	}
	if n == nil {
		failAt(startLine, startCol, "Invalid number: %s", tok)
	}
	return n
}
