// Package value implements the reader's output data model: the tagged
// sum of form types described in spec §3, plus the minimal persistent
// collections, symbol/keyword interning, and gensym source that the
// reader needs as collaborators. It is deliberately small: no
// structural sharing, no protocol dispatch, nothing a compiler or
// evaluator would need beyond hosting reader output.
package value

import (
	"fmt"
	"math/big"
	"regexp"
)

// Form is any value the reader can produce.
type Form interface {
	String() string
}

// Meta carries metadata attached to a form. A nil *Meta is the
// "no metadata" case; NewMeta with no arguments returns an empty,
// non-nil Meta.
type Meta struct {
	entries []metaEntry
}

type metaEntry struct {
	key Form
	val Form
}

// NewMeta builds a Meta from alternating key/value forms.
func NewMeta(kvs ...Form) *Meta {
	if len(kvs)%2 != 0 {
		panic("value.NewMeta: odd number of arguments")
	}
	m := &Meta{}
	for i := 0; i < len(kvs); i += 2 {
		m = m.assoc(kvs[i], kvs[i+1])
	}
	return m
}

func (m *Meta) assoc(key, val Form) *Meta {
	entries := make([]metaEntry, 0, len(m.entries)+1)
	found := false
	for _, e := range m.entries {
		if Equal(e.key, key) {
			entries = append(entries, metaEntry{key, val})
			found = true
			continue
		}
		entries = append(entries, e)
	}
	if !found {
		entries = append(entries, metaEntry{key, val})
	}
	return &Meta{entries: entries}
}

// Assoc returns a new Meta with key bound to val.
func (m *Meta) Assoc(key, val Form) *Meta {
	if m == nil {
		return NewMeta(key, val)
	}
	return m.assoc(key, val)
}

// Without returns a new Meta with key removed.
func (m *Meta) Without(key Form) *Meta {
	if m == nil {
		return nil
	}
	entries := make([]metaEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if Equal(e.key, key) {
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil
	}
	return &Meta{entries: entries}
}

// Len reports the number of entries in m.
func (m *Meta) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns the value bound to key, and whether it was present.
func (m *Meta) Get(key Form) (Form, bool) {
	if m == nil {
		return nil, false
	}
	for _, e := range m.entries {
		if Equal(e.key, key) {
			return e.val, true
		}
	}
	return nil, false
}

// Each calls f for every key/value pair in m.
func (m *Meta) Each(f func(key, val Form)) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		f(e.key, e.val)
	}
}

// AsForm converts Meta into an ordinary Map, used when syntax-quote
// needs to quote a form's own metadata (spec §4.14 step 5).
func (m *Meta) AsForm() *Map {
	if m == nil {
		return EmptyMap()
	}
	kvs := make([]Form, 0, 2*len(m.entries))
	for _, e := range m.entries {
		kvs = append(kvs, e.key, e.val)
	}
	mm, err := NewMap(kvs...)
	if err != nil {
		panic(err)
	}
	return mm
}

// Metadatable is implemented by every form that can carry metadata.
type Metadatable interface {
	Form
	Meta() *Meta
	WithMeta(*Meta) Form
}

// nilType is the reader's representation of the absent value.
type nilType struct{}

// NilValue is the sole instance of nilType.
var NilValue Form = nilType{}

func (nilType) String() string { return "nil" }

// Bool wraps a boolean literal.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Integer is an arbitrary-precision integer literal (spec §3).
type Integer struct {
	Val *big.Int
}

// NewInteger wraps v.
func NewInteger(v *big.Int) *Integer { return &Integer{Val: v} }

// NewIntegerFromInt64 is a convenience constructor for small literals.
func NewIntegerFromInt64(v int64) *Integer { return &Integer{Val: big.NewInt(v)} }

func (n *Integer) String() string { return n.Val.String() }

// Ratio is a ratio literal, kept reduced via big.Rat.
type Ratio struct {
	Val *big.Rat
}

func NewRatio(r *big.Rat) *Ratio { return &Ratio{Val: r} }

func (r *Ratio) String() string { return r.Val.RatString() }

// Float is an IEEE-754 double literal.
type Float float64

func (f Float) String() string { return fmt.Sprintf("%v", float64(f)) }

// Str is a Unicode string literal.
type Str string

func (s Str) String() string { return fmt.Sprintf("%q", string(s)) }

// Char is a single Unicode scalar character literal.
type Char rune

func (c Char) String() string { return fmt.Sprintf("\\%c", rune(c)) }

// Regexp wraps a compiled pattern together with its source text.
type Regexp struct {
	Source  string
	Pattern *regexp.Regexp
}

func (r *Regexp) String() string { return "#\"" + r.Source + "\"" }
