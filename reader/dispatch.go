package reader

import (
	"sync"

	"github.com/hortensius/cljreader/internal/value"
)

var disabledMu sync.RWMutex
var disabledDispatch = map[rune]bool{}

// DisableDispatch makes every subsequent read on this process reject
// the given dispatch-macro characters with a "Dispatch macro disabled"
// error instead of dispatching them, letting a caller lock
// down untrusted input (e.g. config-driven rejection of `#=`/`#<`
// beyond their already-rejecting default behavior).
func DisableDispatch(chars string) {
	disabledMu.Lock()
	defer disabledMu.Unlock()
	for _, ch := range chars {
		disabledDispatch[ch] = true
	}
}

// readDispatch implements spec §4.11's '#' dispatch-macro table: the
// character after '#' selects a second-level reader macro.
func readDispatch(ctx *readerContext, s CharStream, _ rune) value.Form {
	ch, eof := s.Next()
	if eof {
		fail(s, "EOF while reading character")
	}
	disabledMu.RLock()
	disabled := disabledDispatch[ch]
	disabledMu.RUnlock()
	if disabled {
		fail(s, "Dispatch macro disabled: #%c", ch)
	}
	if fn, ok := dispatchMacros[ch]; ok {
		return fn(ctx, s, ch)
	}
	fail(s, "No dispatch macro for: %c", ch)
	return nil
}

type dispatchFn func(ctx *readerContext, s CharStream, ch rune) value.Form

var dispatchMacros = map[rune]dispatchFn{
	'{':  readSet,
	'"':  readRegex,
	'_':  readDiscard,
	'!':  readShebangComment,
	'(':  readFn,
	'\'': readVarQuote,
	'^':  readMeta,
	'=':  readEvalNotSupported,
	'<':  readUnreadable,
}

var symVar = value.Intern("", "var")

func readVarQuote(ctx *readerContext, s CharStream, _ rune) value.Form {
	startLine, _ := s.LineCol()
	form := readRecursive(ctx, s)
	list := value.NewList(symVar, form)
	return list.WithMeta(value.NewMeta(keyLine, value.NewIntegerFromInt64(int64(startLine))))
}

// readDiscard implements '#_': read and discard exactly one form,
// producing nothing (spec §4.11's "again" sentinel).
func readDiscard(ctx *readerContext, s CharStream, _ rune) value.Form {
	readRecursive(ctx, s)
	return again
}

// readShebangComment implements '#!': a line comment, identical to
// ';' (spec §4.11), used for shebang lines in script files.
func readShebangComment(ctx *readerContext, s CharStream, ch rune) value.Form {
	return readComment(ctx, s, ch)
}

// readRegex implements '#"..."': a Perl-style regex literal (spec
// §4.11). Escape handling is simpler than a string literal's: a
// backslash and the character after it are kept as they are (so \"
// does not end the literal), and the pattern text is passed through to
// regexp.Compile unchanged.
func readRegex(_ *readerContext, s CharStream, _ rune) value.Form {
	startLine, startCol := s.LineCol()
	var raw []rune
	for {
		ch, eof := s.Next()
		if eof {
			failAt(startLine, startCol, "EOF while reading regex")
		}
		if ch == '"' {
			break
		}
		if ch == '\\' {
			next, eof2 := s.Next()
			if eof2 {
				failAt(startLine, startCol, "EOF while reading regex")
			}
			raw = append(raw, ch, next)
			continue
		}
		raw = append(raw, ch)
	}
	src := string(raw)
	pat, err := compileRegex(src)
	if err != nil {
		failAt(startLine, startCol, "Invalid regex: %s", err.Error())
	}
	return &value.Regexp{Source: src, Pattern: pat}
}

// readEvalNotSupported implements '#=': spec.md's pure reader has no
// evaluator collaborator, so the read-time-eval dispatch macro is a
// deliberate rejection rather than a silent no-op.
func readEvalNotSupported(_ *readerContext, s CharStream, _ rune) value.Form {
	fail(s, "Read-eval not supported: #=")
	return nil
}

// readUnreadable implements '#<': Clojure prints non-readable objects
// with this prefix, and the reader must reject reading one back,
// mirroring cespare-goclj/parse's handling of the same dispatch char.
func readUnreadable(_ *readerContext, s CharStream, _ rune) value.Form {
	fail(s, "Unreadable form")
	return nil
}
