// Package compiler stubs the "compiler state" collaborator spec §6
// describes: a lookup for the current namespace and the set of
// compiler-builtin (special-form) symbols, used only during
// syntax-quote symbol resolution (spec §4.14). A real compiler would
// replace this with its own namespace table and macro/special-form
// registry; the reader only ever sees it through the State interface.
package compiler

import "github.com/hortensius/cljreader/internal/value"

// Namespace is the minimal namespace object the reader needs: just its
// name, for qualifying bare syntax-quoted symbols.
type Namespace struct {
	name string
}

// Name returns the namespace's name, e.g. "user".
func (n *Namespace) Name() string { return n.name }

// State is the collaborator the reader consumes during syntax-quote.
type State interface {
	// CurrentNamespace returns the namespace symbols should be
	// qualified against, or nil if none is bound.
	CurrentNamespace() *Namespace
	// IsSpecial reports whether sym names a compiler-builtin special
	// form, which syntax-quote leaves unqualified (spec §4.14 step 1).
	IsSpecial(sym *value.Symbol) bool
}

// specialForms lists Clojure's special forms: the symbols syntax-quote
// must not namespace-qualify because the compiler, not a var lookup,
// handles them directly.
var specialForms = map[string]bool{
	"def": true, "if": true, "do": true, "let*": true, "quote": true,
	"var": true, "fn*": true, "loop*": true, "recur": true, "throw": true,
	"try": true, "catch": true, "finally": true, "monitor-enter": true,
	"monitor-exit": true, "new": true, "set!": true, ".": true,
	"case*": true, "import*": true, "deftype*": true, "reify*": true,
	"&": true,
}

// defaultState is the reader's default State: a single mutable current
// namespace (initially the one named in NewDefaultState) plus the fixed
// special-form set.
type defaultState struct {
	ns *Namespace
}

// NewDefaultState returns a State whose current namespace is named ns.
func NewDefaultState(ns string) State {
	return &defaultState{ns: &Namespace{name: ns}}
}

func (s *defaultState) CurrentNamespace() *Namespace { return s.ns }

func (s *defaultState) IsSpecial(sym *value.Symbol) bool {
	return sym.Ns == "" && specialForms[sym.Name]
}

// SetCurrentNamespace rebinds s's current namespace, used by callers
// that want successive top-level reads to resolve against a different
// namespace (e.g. after reading an `(ns ...)` form, which this reader
// does not itself interpret).
func SetCurrentNamespace(s State, name string) {
	if ds, ok := s.(*defaultState); ok {
		ds.ns = &Namespace{name: name}
	}
}
