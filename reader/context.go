package reader

import (
	"github.com/hortensius/cljreader/internal/compiler"
	"github.com/hortensius/cljreader/internal/value"
)

// restArgKey is the sentinel ARG_ENV key for the rest-argument (`%&`),
// spec §3's "-1".
const restArgKey = -1

// argEnv is the dynamically-scoped binding #(...) establishes (spec
// §3, §4.13): absent (nil) outside a #(...), or a map from argument
// position to the generated symbol registered for it.
type argEnv struct {
	syms map[int]*value.Symbol
}

// gensymEnv is the dynamically-scoped binding `` ` `` establishes
// (spec §3, §4.14): absent (nil) outside a syntax-quote, or a map from
// auto-gensym'd symbol to the generated symbol resolved for it within
// one syntax-quoted form.
type gensymEnv struct {
	syms map[string]*value.Symbol
}

// readerContext threads the reader's dynamically-scoped state
// explicitly, per spec §9's recommended option (a): "pass an explicit
// ReaderContext by reference through every call... Option (a) is
// recommended — it avoids hidden state and makes the reader reentrant
// across threads." Both bindings are scoped-acquisition: pushed by the
// macro that opens the extent and unconditionally restored — on every
// exit path, success or panic — via Go's defer.
type readerContext struct {
	arg    *argEnv
	gensym *gensymEnv
	comp   compiler.State
}

// newContext builds a fresh context with no dynamic bindings active.
func newContext(comp compiler.State) *readerContext {
	return &readerContext{comp: comp}
}

// pushArgEnv establishes a fresh, empty ARG_ENV and returns a function
// that restores the prior value; call it with defer so restoration
// happens on every exit path including panics.
func (c *readerContext) pushArgEnv() func() {
	prev := c.arg
	c.arg = &argEnv{syms: map[int]*value.Symbol{}}
	return func() { c.arg = prev }
}

// pushGensymEnv establishes a fresh, empty GENSYM_ENV, mirroring
// pushArgEnv.
func (c *readerContext) pushGensymEnv() func() {
	prev := c.gensym
	c.gensym = &gensymEnv{syms: map[string]*value.Symbol{}}
	return func() { c.gensym = prev }
}
