package reader

import (
	"strconv"
	"strings"

	"github.com/hortensius/cljreader/internal/value"
)

var (
	symApply     = value.Intern("", "apply")
	symHashMap   = value.Intern("clojure.core", "hashmap")
	symConcat    = value.Intern("clojure.core", "concat")
	symCljList   = value.Intern("clojure.core", "list")
	symCljSeq    = value.Intern("clojure.core", "seq")
	symCljVector = value.Intern("clojure.core", "vector")
	symWithMeta  = value.Intern("", "with-meta")
)


// readSyntaxQuote implements spec §4.14: '`' pushes a fresh GENSYM_ENV,
// reads one form, and expands it via syntaxQuoteForm.
func readSyntaxQuote(ctx *readerContext, s CharStream, _ rune) value.Form {
	pop := ctx.pushGensymEnv()
	defer pop()
	form := readRecursive(ctx, s)
	return syntaxQuoteForm(ctx, s, form)
}

// syntaxQuoteForm implements spec §4.14's syntaxQuote(form) steps 1-7,
// in order.
func syntaxQuoteForm(ctx *readerContext, s CharStream, form value.Form) value.Form {
	var ret value.Form

	switch {
	case isCompilerBuiltin(ctx, form): // step 1
		ret = value.NewList(symQuote, form)
	case isSymbol(form): // step 2
		ret = value.NewList(symQuote, resolveSyntaxQuoteSymbol(ctx, s, form.(*value.Symbol)))
	case isUnquote(form): // step 3
		return form.(*value.List).Next().First()
	case isUnquoteSplicing(form): // step 4
		fail(s, "splice not in list")
		return nil
	default: // steps 5-7
		ret = syntaxQuoteOther(ctx, s, form)
	}

	if mf, ok := form.(value.Metadatable); ok {
		meta := mf.Meta().Without(value.InternKeyword("", "line"))
		if meta.Len() > 0 {
			return value.NewList(symWithMeta, ret, syntaxQuoteForm(ctx, s, meta.AsForm()))
		}
	}
	return ret
}

func isSymbol(form value.Form) bool {
	_, ok := form.(*value.Symbol)
	return ok
}

func isCompilerBuiltin(ctx *readerContext, form value.Form) bool {
	sym, ok := form.(*value.Symbol)
	return ok && ctx.comp.IsSpecial(sym)
}

// syntaxQuoteOther implements step 5 (collections), step 6
// (self-quoting number/string/keyword), and step 7 (quote everything
// else) of spec §4.14.
func syntaxQuoteOther(ctx *readerContext, s CharStream, form value.Form) value.Form {
	switch f := form.(type) {
	case *value.Map:
		kvs := flattenMap(f)
		return value.NewList(symApply, symHashMap,
			value.NewList(symCljSeq, prependList(symConcat, sqExpandList(ctx, s, kvs))))
	case *value.Vector:
		return value.NewList(symApply, symCljVector,
			value.NewList(symCljSeq, prependList(symConcat, sqExpandList(ctx, s, f.Items()))))
	case *value.Set:
		return value.NewList(symApply, symCljVector,
			value.NewList(symCljSeq, prependList(symConcat, sqExpandList(ctx, s, f.Items()))))
	case *value.List:
		if f.IsEmpty() {
			return value.NewList(symCljList)
		}
		return value.NewList(symCljSeq, prependList(symConcat, sqExpandList(ctx, s, f.Items())))
	case *value.Integer, *value.Ratio, value.Float, value.Str, *value.Keyword:
		return form
	default:
		return value.NewList(symQuote, form)
	}
}

// resolveSyntaxQuoteSymbol implements spec §4.14 step 2: a "name#"
// symbol resolves to a gensym stable for the life of one syntax-quoted
// form; a dotted, member-sugar, or already-namespaced symbol passes
// through unresolved; any other bare symbol is qualified against the
// current compiler namespace.
func resolveSyntaxQuoteSymbol(ctx *readerContext, s CharStream, sym *value.Symbol) *value.Symbol {
	switch {
	case sym.Ns == "" && strings.HasSuffix(sym.Name, "#"):
		if ctx.gensym == nil {
			fail(s, "Gensym literal not in syntax-quote")
		}
		if gs, ok := ctx.gensym.syms[sym.Name]; ok {
			return gs
		}
		stripped := strings.TrimSuffix(sym.Name, "#")
		gs := value.NewSymbol("", stripped+"__"+strconv.FormatInt(value.NextID(), 10)+"__auto__")
		ctx.gensym.syms[sym.Name] = gs
		return gs
	case sym.Ns == "" && (strings.HasSuffix(sym.Name, ".") || strings.HasPrefix(sym.Name, ".")):
		return sym
	case sym.Ns != "":
		return sym
	default:
		if ctx.comp == nil || ctx.comp.CurrentNamespace() == nil {
			fail(s, "No namespace available in syntax quote")
		}
		return value.Intern(ctx.comp.CurrentNamespace().Name(), sym.Name)
	}
}

// sqExpandList implements spec §4.14's sq-expand: each element becomes
// (list elem) unless it is an unquote (becomes (list x)) or an
// unquote-splicing (spliced in unwrapped), ready to be the argument
// list of a concat call.
func sqExpandList(ctx *readerContext, s CharStream, items []value.Form) []value.Form {
	out := make([]value.Form, 0, len(items))
	for _, item := range items {
		switch {
		case isUnquote(item):
			out = append(out, value.NewList(symCljList, item.(*value.List).Next().First()))
		case isUnquoteSplicing(item):
			out = append(out, item.(*value.List).Next().First())
		default:
			out = append(out, value.NewList(symCljList, syntaxQuoteForm(ctx, s, item)))
		}
	}
	return out
}

// flattenMap implements spec §4.14's map flattening, fixing
// original_source/clojure/lang/lispreader.py's flattenMap, whose body
// reads the undefined name `form` instead of its own parameter `m`.
func flattenMap(m *value.Map) []value.Form {
	out := make([]value.Form, 0, 2*m.Len())
	for _, e := range m.Entries() {
		out = append(out, e.Key, e.Val)
	}
	return out
}

func prependList(sym *value.Symbol, rest []value.Form) *value.List {
	items := make([]value.Form, 0, len(rest)+1)
	items = append(items, sym)
	items = append(items, rest...)
	return value.NewList(items...)
}
