package value

import "strings"

// List is an ordered, slice-backed sequence that may carry metadata
// (spec §3). It is the form produced by `(...)`.
type List struct {
	items []Form
	meta  *Meta
}

// NewList builds a List from items, copying the slice so later
// mutation of the caller's backing array cannot leak in.
func NewList(items ...Form) *List {
	cp := make([]Form, len(items))
	copy(cp, items)
	return &List{items: cp}
}

// EmptyList returns a fresh, metadata-free empty list.
func EmptyList() *List { return &List{} }

// Items returns the list's elements in order. Callers must not mutate
// the returned slice.
func (l *List) Items() []Form { return l.items }

// IsEmpty reports whether l has no elements.
func (l *List) IsEmpty() bool { return len(l.items) == 0 }

// First returns the first element, or NilValue if l is empty.
func (l *List) First() Form {
	if l.IsEmpty() {
		return NilValue
	}
	return l.items[0]
}

// Next returns the list of all elements after the first.
func (l *List) Next() *List {
	if len(l.items) <= 1 {
		return EmptyList()
	}
	return &List{items: l.items[1:]}
}

// Cons returns a new list with item prepended.
func (l *List) Cons(item Form) *List {
	items := make([]Form, 0, len(l.items)+1)
	items = append(items, item)
	items = append(items, l.items...)
	return &List{items: items}
}

func (l *List) Meta() *Meta { return l.meta }

func (l *List) WithMeta(m *Meta) Form {
	cp := *l
	cp.meta = m
	return &cp
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range l.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte(')')
	return b.String()
}
