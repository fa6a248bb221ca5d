package reader

import "github.com/hortensius/cljreader/internal/value"

// readMeta implements spec §4.12: `^meta form` attaches meta to form.
// meta may be a Map (used as-is), a Keyword (shorthand for {kw true}),
// a Symbol or String (shorthand for {:tag meta}). Only Metadatable
// forms can carry metadata.
func readMeta(ctx *readerContext, s CharStream, _ rune) value.Form {
	startLine, startCol := s.LineCol()
	metaForm := readRecursive(ctx, s)

	var m *value.Meta
	switch mf := metaForm.(type) {
	case *value.Map:
		m = value.NewMeta()
		for _, e := range mf.Entries() {
			m = m.Assoc(e.Key, e.Val)
		}
	case *value.Keyword:
		m = value.NewMeta().Assoc(mf, value.Bool(true))
	case *value.Symbol:
		m = value.NewMeta().Assoc(value.InternKeyword("", "tag"), mf)
	case value.Str:
		m = value.NewMeta().Assoc(value.InternKeyword("", "tag"), mf)
	default:
		failAt(startLine, startCol, "Metadata must be Symbol, Keyword, String, or Map")
	}

	form := readRecursive(ctx, s)
	target, ok := form.(value.Metadatable)
	if !ok {
		failAt(startLine, startCol, "Metadata can only be applied to objects that support it")
	}
	return target.WithMeta(m)
}
