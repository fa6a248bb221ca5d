package value

import (
	"fmt"
	"strings"
)

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key Form
	Val Form
}

// Map is the associative form produced by `{...}`. Insertion order is
// preserved, which keeps output deterministic for tests; Clojure maps
// make no ordering guarantee, so this is a strengthening, not a
// violation, of spec semantics.
type Map struct {
	entries []MapEntry
	meta    *Meta
}

// NewMap builds a Map from alternating key/value forms (spec §4.10: "Map
// reader must consume an even number of forms"). Duplicate keys
// overwrite earlier ones, matching normal map construction semantics.
func NewMap(kvs ...Form) (*Map, error) {
	if len(kvs)%2 != 0 {
		return nil, fmt.Errorf("value.NewMap: odd number of arguments (%d)", len(kvs))
	}
	m := &Map{}
	for i := 0; i < len(kvs); i += 2 {
		m = m.Assoc(kvs[i], kvs[i+1])
	}
	return m, nil
}

// EmptyMap returns a fresh, empty Map.
func EmptyMap() *Map { return &Map{} }

// Assoc returns a new Map with key bound to val.
func (m *Map) Assoc(key, val Form) *Map {
	entries := make([]MapEntry, 0, len(m.entries)+1)
	found := false
	for _, e := range m.entries {
		if Equal(e.Key, key) {
			entries = append(entries, MapEntry{key, val})
			found = true
			continue
		}
		entries = append(entries, e)
	}
	if !found {
		entries = append(entries, MapEntry{key, val})
	}
	return &Map{entries: entries}
}

// Without returns a new Map with key removed.
func (m *Map) Without(key Form) *Map {
	entries := make([]MapEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if Equal(e.Key, key) {
			continue
		}
		entries = append(entries, e)
	}
	return &Map{entries: entries}
}

// Get returns the value bound to key, and whether it was present.
func (m *Map) Get(key Form) (Form, bool) {
	for _, e := range m.entries {
		if Equal(e.Key, key) {
			return e.Val, true
		}
	}
	return nil, false
}

// Entries returns all key/value pairs in insertion order.
func (m *Map) Entries() []MapEntry { return m.entries }

// Len reports the number of entries.
func (m *Map) Len() int { return len(m.entries) }

func (m *Map) Meta() *Meta { return m.meta }

func (m *Map) WithMeta(meta *Meta) Form {
	cp := *m
	cp.meta = meta
	return &cp
}

func (m *Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Key.String())
		b.WriteByte(' ')
		b.WriteString(e.Val.String())
	}
	b.WriteByte('}')
	return b.String()
}
