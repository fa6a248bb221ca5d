package reader

import "github.com/hortensius/cljreader/internal/value"

var (
	symUnquote         = value.Intern("", "~")
	symUnquoteSplicing = value.Intern("", "~@")
)

// readUnquote implements spec §4.15: '~' reads (~ form), '~@' reads
// (~@ form). These markers are only meaningful inside a syntax-quote;
// outside one they read as ordinary (if unusual) forms.
func readUnquote(ctx *readerContext, s CharStream, _ rune) value.Form {
	ch, eof := s.Next()
	if !eof && ch == '@' {
		form := readRecursive(ctx, s)
		return value.NewList(symUnquoteSplicing, form)
	}
	if !eof {
		s.Back()
	}
	form := readRecursive(ctx, s)
	return value.NewList(symUnquote, form)
}

func isUnquote(form value.Form) bool {
	lst, ok := form.(*value.List)
	return ok && !lst.IsEmpty() && symEqual(lst.First(), symUnquote)
}

func isUnquoteSplicing(form value.Form) bool {
	lst, ok := form.(*value.List)
	return ok && !lst.IsEmpty() && symEqual(lst.First(), symUnquoteSplicing)
}

func symEqual(form value.Form, sym *value.Symbol) bool {
	s, ok := form.(*value.Symbol)
	return ok && s.Ns == sym.Ns && s.Name == sym.Name
}
