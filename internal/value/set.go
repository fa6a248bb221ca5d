package value

import (
	"fmt"
	"strings"
)

// Set is the unique-elements form produced by `#{...}`.
type Set struct {
	items []Form
	meta  *Meta
}

// NewSet builds a Set from items. It returns an error if items contains
// a duplicate (spec §4.11: "duplicate elements are a read error").
func NewSet(items ...Form) (*Set, error) {
	s := &Set{}
	for _, item := range items {
		for _, existing := range s.items {
			if Equal(existing, item) {
				return nil, fmt.Errorf("duplicate set element: %s", item)
			}
		}
		s.items = append(s.items, item)
	}
	return s, nil
}

// Items returns the set's elements in insertion order.
func (s *Set) Items() []Form { return s.items }

// Len reports the number of elements.
func (s *Set) Len() int { return len(s.items) }

func (s *Set) Meta() *Meta { return s.meta }

func (s *Set) WithMeta(m *Meta) Form {
	cp := *s
	cp.meta = m
	return &cp
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("#{")
	for i, item := range s.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte('}')
	return b.String()
}
