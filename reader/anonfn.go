package reader

import (
	"fmt"

	"github.com/hortensius/cljreader/internal/value"
)

var (
	symFn  = value.Intern("", "fn")
	symAmp = value.Intern("", "&")
)

// readFn implements spec §4.13: '#(...)' reads its body with a fresh
// ARG_ENV pushed, then wraps it as (fn [args...] body) with
// positional args %1.. and an optional rest arg %&.
func readFn(ctx *readerContext, s CharStream, _ rune) value.Form {
	if ctx.arg != nil {
		fail(s, "Nested #()s are not allowed")
	}
	pop := ctx.pushArgEnv()
	defer pop()

	// Push the '(' back so the ordinary list reader consumes the body.
	s.Back()
	body := readRecursive(ctx, s)

	params := buildFnParams(ctx)
	return value.NewList(symFn, params, body)
}

// buildFnParams turns the ARG_ENV populated by %, %N, %& references
// during the body read into the positional parameter vector.
func buildFnParams(ctx *readerContext) *value.Vector {
	env := ctx.arg
	maxArg := 0
	for k := range env.syms {
		if k > maxArg {
			maxArg = k
		}
	}
	items := make([]value.Form, 0, maxArg+2)
	for i := 1; i <= maxArg; i++ {
		sym, ok := env.syms[i]
		if !ok {
			sym = garg(i)
		}
		items = append(items, sym)
	}
	if rest, ok := env.syms[restArgKey]; ok {
		items = append(items, symAmp, rest)
	}
	return value.NewVector(items...)
}

// readArg implements spec §4.13's '%' reader: %, %N, and %& each
// register (if not already present) and return a gensym'd parameter
// symbol in the current ARG_ENV.
func readArg(ctx *readerContext, s CharStream, _ rune) value.Form {
	if ctx.arg == nil {
		return interpretToken(ctx, s, readToken(s, '%'))
	}

	ch, eof := s.Next()
	if eof || isWhitespace(ch) || isTerminatingMacro(ch) {
		if !eof {
			s.Back()
		}
		return registerArg(ctx, 1)
	}
	if ch == '&' {
		return registerArg(ctx, restArgKey)
	}
	if isDigit(ch) {
		tok := readToken(s, ch)
		n := 0
		for _, c := range tok {
			if !isDigit(c) {
				fail(s, "arg literal must be %%, %%& or %%integer")
			}
			n = n*10 + int(c-'0')
		}
		return registerArg(ctx, n)
	}
	fail(s, "arg literal must be %%, %%& or %%integer")
	return nil
}

// registerArg implements spec §4.13's garg/registerArg: return the
// gensym for argument position n, generating and caching it on first
// reference within the current ARG_ENV.
func registerArg(ctx *readerContext, n int) *value.Symbol {
	if sym, ok := ctx.arg.syms[n]; ok {
		return sym
	}
	sym := garg(n)
	ctx.arg.syms[n] = sym
	return sym
}

// garg names a generated argument symbol, per spec §4.13:
// "p<n>__<id>#" for a positional arg, "rest__<id>#" for the rest arg.
func garg(n int) *value.Symbol {
	if n == restArgKey {
		return value.NewSymbol("", fmt.Sprintf("rest__%d#", value.NextID()))
	}
	return value.NewSymbol("", fmt.Sprintf("p%d__%d#", n, value.NextID()))
}
