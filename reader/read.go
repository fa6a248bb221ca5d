// Package reader implements the S-expression reader: a recursive-
// descent parser driven by a character-dispatch table ("reader
// macros"), per spec.md. It consumes a CharStream and produces
// value.Form trees.
package reader

import (
	"github.com/hortensius/cljreader/internal/compiler"
	"github.com/hortensius/cljreader/internal/value"
)

// whitespace is spec §4.2's set: comma counts as whitespace.
const whitespace = " \t\n\r,"

func isWhitespace(ch rune) bool {
	for _, w := range whitespace {
		if ch == w {
			return true
		}
	}
	return false
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// macroFn is a reader macro: given the context, stream, and the
// character that triggered it (already consumed), produce a form.
// Returning the sentinel value again (not a real form) means "produced
// nothing, keep reading" (spec §4.2 step 4: comments and #_ discard).
type macroFn func(ctx *readerContext, s CharStream, ch rune) value.Form

// againSentinel is "the stream itself" in spec.md's terms: the
// private marker a macro returns to mean "nothing to append, loop".
type againSentinel struct{}

func (againSentinel) String() string { return "" }

var again value.Form = againSentinel{}

func isAgain(f value.Form) bool {
	_, ok := f.(againSentinel)
	return ok
}

// eofSentinel is a form distinct from value.NilValue, so that callers
// looping over top-level reads can tell an exhausted stream apart from
// a literal `nil` form.
type eofSentinel struct{}

func (eofSentinel) String() string { return "" }

// EOF is the recommended eofValue for callers that loop over
// top-level forms until the stream is exhausted (spec §6's
// "readString convenience" pattern, generalized to repeated reads).
var EOF value.Form = eofSentinel{}

// macros is the top-level reader-macro dispatch table (spec §4.2,
// §6's "registered macro character"). Built once; every entry is a
// function, not a stateful object, since all reader state lives in
// *readerContext. The readers in macroTable refer back to macros, so
// macros is assigned in init rather than by an initializer, which Go
// would reject as an initialization cycle.
var macros map[rune]macroFn

func init() { macros = macroTable }

var macroTable = map[rune]macroFn{
	'"':  readString_,
	';':  readComment,
	'\'': wrapReader(symQuote),
	'@':  wrapReader(symDeref),
	'^':  readMeta,
	'`':  readSyntaxQuote,
	'~':  readUnquote,
	'(':  readList,
	')':  readUnmatchedDelimiter,
	'[':  readVector,
	']':  readUnmatchedDelimiter,
	'{':  readMap,
	'}':  readUnmatchedDelimiter,
	'\\': readChar,
	'%':  readArg,
	'#':  readDispatch,
}

func isMacro(ch rune) bool {
	_, ok := macros[ch]
	return ok
}

// isTerminatingMacro implements spec §4.3: every macro character
// terminates a token except '#' and '\'', which may appear inside
// symbols (e.g. `foo#bar`, `foo'bar`).
func isTerminatingMacro(ch rune) bool {
	return ch != '#' && ch != '\'' && isMacro(ch)
}

// Read implements spec §4.2: skip whitespace, dispatch on the current
// character, and return exactly one form. eofValue is returned (with a
// nil error) if the stream is exhausted and eofIsError is false;
// otherwise EOF raises a *ReaderError.
func Read(s CharStream, eofIsError bool, eofValue value.Form) (form value.Form, err error) {
	return ReadWith(s, eofIsError, eofValue, compiler.NewDefaultState("user"))
}

// ReadWith is Read with an explicit compiler collaborator (spec §6),
// letting callers control the namespace syntax-quote resolves bare
// symbols against.
func ReadWith(s CharStream, eofIsError bool, eofValue value.Form, comp compiler.State) (form value.Form, err error) {
	defer recoverReaderError(&err)
	ctx := newContext(comp)
	return read(ctx, s, eofIsError, eofValue), nil
}

// ReadString is the convenience entry point of spec §6: wrap text in a
// string-backed stream and read a single form, returning eofValue=nil
// at end of input rather than erroring.
func ReadString(text string) (value.Form, error) {
	return Read(NewStringStream(text), false, value.NilValue)
}

// read is the internal, panic-on-error implementation of Read; every
// recursive reader macro calls this directly instead of going back
// through the public, recovering entry point.
func read(ctx *readerContext, s CharStream, eofIsError bool, eofValue value.Form) value.Form {
	for {
		ch, eof := s.Next()
		for !eof && isWhitespace(ch) {
			ch, eof = s.Next()
		}
		if eof {
			if eofIsError {
				fail(s, "EOF while reading")
			}
			return eofValue
		}

		if isDigit(ch) {
			return readNumber(ctx, s, ch)
		}

		if fn, ok := macros[ch]; ok {
			ret := fn(ctx, s, ch)
			if isAgain(ret) {
				continue
			}
			return ret
		}

		if ch == '+' || ch == '-' {
			ch2, eof2 := s.Next()
			if !eof2 {
				s.Back()
				if isDigit(ch2) {
					return readNumber(ctx, s, ch)
				}
			}
		}

		tok := readToken(s, ch)
		return interpretToken(ctx, s, tok)
	}
}

// readRecursive reads one form and treats EOF as an error; it is what
// every reader macro uses internally to read its own sub-forms (spec
// §4.2's "recursive" reads).
func readRecursive(ctx *readerContext, s CharStream) value.Form {
	return read(ctx, s, true, nil)
}

// wrapReader builds the macro for a single-character quoting form like
// `'` or `@`: read one form and wrap it as (sym form).
func wrapReader(sym *value.Symbol) macroFn {
	return func(ctx *readerContext, s CharStream, _ rune) value.Form {
		form := readRecursive(ctx, s)
		return value.NewList(sym, form)
	}
}

var (
	symQuote = value.Intern("", "quote")
	symDeref = value.Intern("", "deref")
)

func readUnmatchedDelimiter(_ *readerContext, s CharStream, ch rune) value.Form {
	fail(s, "Unmatched delimiter: %c", ch)
	return nil
}

func readComment(_ *readerContext, s CharStream, _ rune) value.Form {
	for {
		ch, eof := s.Next()
		if eof || ch == '\n' || ch == '\r' {
			return again
		}
	}
}
