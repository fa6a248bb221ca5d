package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Grounded on spec §4.14's worked example: `(a ~b c) expands to a
// structural (seq (concat ...)) call over (list 'a) and (list b) and
// (list 'c), not a literal (quote (a b c)).
func TestSyntaxQuoteListWithUnquote(t *testing.T) {
	got := readOne(t, "`(a ~b c)").String()
	assert.True(t, strings.HasPrefix(got, "(clojure.core/seq (clojure.core/concat"), "got %s", got)
	assert.Contains(t, got, "(clojure.core/list (quote user/a))")
	assert.Contains(t, got, "(clojure.core/list b)")
	assert.Contains(t, got, "(clojure.core/list (quote user/c))")
}

func TestSyntaxQuoteUnquoteSplicing(t *testing.T) {
	got := readOne(t, "`(a ~@b c)").String()
	assert.Contains(t, got, "(clojure.core/list (quote user/a))")
	// An unquote-splice's inner form is spliced unwrapped into the
	// concat arglist, not re-wrapped in (list ...).
	assert.NotContains(t, got, "(clojure.core/list b)")
}

func TestSyntaxQuoteSpliceOutsideListErrors(t *testing.T) {
	err := readErr(t, "`~@a")
	assert.ErrorContains(t, err, "splice not in list")
}

func TestSyntaxQuoteSelfQuotingLiterals(t *testing.T) {
	for _, s := range []string{"`1", "`1.5", "`" + `"str"`, "`:kw"} {
		got := readOne(t, s)
		want := readOne(t, strings.TrimPrefix(s, "`"))
		assert.Equal(t, want.String(), got.String(), "self-quoting literal %q should pass through unchanged", s)
	}
}

func TestSyntaxQuoteBareSymbolQualifiesToCurrentNamespace(t *testing.T) {
	got := readOne(t, "`foo").String()
	assert.Equal(t, "(quote user/foo)", got)
}

func TestSyntaxQuoteSpecialFormStaysUnqualified(t *testing.T) {
	got := readOne(t, "`if").String()
	assert.Equal(t, "(quote if)", got)
}

func TestSyntaxQuoteNamespacedSymbolPassesThrough(t *testing.T) {
	got := readOne(t, "`clojure.core/map").String()
	assert.Equal(t, "(quote clojure.core/map)", got)
}

func TestSyntaxQuoteDottedSymbolPassesThrough(t *testing.T) {
	for _, s := range []string{"`.foo", "`foo."} {
		got := readOne(t, s).String()
		assert.Equal(t, "(quote "+strings.TrimPrefix(s, "`")+")", got)
	}
}

// Grounded on spec §4.14's auto-gensym example: foo# resolves to the
// same generated symbol everywhere within one syntax-quoted form.
func TestSyntaxQuoteAutoGensymStableWithinForm(t *testing.T) {
	got := readOne(t, "`(foo# foo#)").String()
	assert.Contains(t, got, "__auto__")
	firstIdx := strings.Index(got, "foo__")
	secondIdx := strings.LastIndex(got, "foo__")
	assert.NotEqual(t, firstIdx, secondIdx, "expected two occurrences")
	first := got[firstIdx:strings.Index(got[firstIdx:], ")")+firstIdx]
	second := got[secondIdx : strings.Index(got[secondIdx:], ")")+secondIdx]
	assert.Equal(t, first, second, "foo# must resolve to the same gensym both times")
}

func TestSyntaxQuoteAutoGensymOutsideSyntaxQuoteIsOrdinarySymbol(t *testing.T) {
	_, err := Read(NewStringStream("foo#"), true, nil)
	// foo# alone, outside `, is just an ordinary symbol: no error.
	assert.NoError(t, err)
}

func TestSyntaxQuoteVectorExpansion(t *testing.T) {
	got := readOne(t, "`[~a]").String()
	assert.Contains(t, got, "clojure.core/vector")
	assert.Contains(t, got, "(clojure.core/list a)")
}

func TestSyntaxQuoteMapExpansionIncludesSeq(t *testing.T) {
	got := readOne(t, "`{:a ~b}").String()
	assert.Contains(t, got, "(apply clojure.core/hashmap (clojure.core/seq (clojure.core/concat")
}

func TestSyntaxQuoteEmptyListShortcut(t *testing.T) {
	got := readOne(t, "`()").String()
	assert.Equal(t, "(clojure.core/list)", got)
}
