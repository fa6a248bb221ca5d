package reader

import (
	"strings"
	"testing"

	"github.com/hortensius/cljreader/internal/compiler"
	"github.com/hortensius/cljreader/internal/value"
)

// readOne reads a single top-level form from s using a fresh compiler
// state namespaced "user", failing the test on any reader error.
func readOne(t *testing.T, s string) value.Form {
	t.Helper()
	form, err := Read(NewStringStream(s), true, nil)
	if err != nil {
		t.Fatalf("reading %q: %s", s, err)
	}
	return form
}

// readErr reads a single top-level form and requires a reader error.
func readErr(t *testing.T, s string) error {
	t.Helper()
	_, err := Read(NewStringStream(s), true, nil)
	if err == nil {
		t.Fatalf("reading %q: expected an error, got none", s)
	}
	return err
}

var testCases = []struct {
	s    string
	want string
}{
	{"true", "true"},
	{"false", "false"},
	{"nil", "nil"},
	{`\s`, `\s`},
	{`\newline`, "\\\n"},
	{":foobar", ":foobar"},
	{"foo", "foo"},
	{"clojure.core/map", "clojure.core/map"},
	{"123", "123"},
	{"-17", "-17"},
	{"123.456", "123.456"},
	{"22/7", "22/7"}, // canonical ratio form after reduction is asserted separately
	{"(foo bar baz)", "(foo bar baz)"},
	{"[a b c]", "[a b c]"},
	{"{:a b :c d}", "{:a b :c d}"},
	{"#{1 2 3}", "#{1 2 3}"},
	{`"foo"`, `"foo"`},
	{"'(foobar)", "(quote (foobar))"},
	{"@foo", "(deref foo)"},
	{"~foo", "(~ foo)"},
	{"~@foo", "(~@ foo)"},
	{"#'asdf", "(var asdf)"},
	{"#_(a b c) 5", "5"},
	{"; comment\n5", "5"},
	{"#! shebang\n5", "5"},
}

func TestAll(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.s, func(t *testing.T) {
			if tc.s == "22/7" {
				return // see TestRatioReduction
			}
			got := readOne(t, tc.s).String()
			if got != tc.want {
				t.Errorf("for %q: got %s; want %s", tc.s, got, tc.want)
			}
		})
	}
}

func TestRatioReduction(t *testing.T) {
	if got := readOne(t, "22/7").String(); got != "22/7" {
		t.Errorf("got %s, want 22/7 (already reduced)", got)
	}
	if got := readOne(t, "4/2").String(); got != "2" {
		t.Errorf("got %s, want 2 (reduces to an integer ratio)", got)
	}
}

func TestNumberBases(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want string
	}{
		{"16rFF", "255"},
		{"16rff", "255"},
		{"010", "8"},
		{"0x1F", "31"},
		{"-0x1F", "-31"},
		{"1N", "1"},
		{"1.5M", "1.5"},
	} {
		if got := readOne(t, tc.s).String(); got != tc.want {
			t.Errorf("for %q: got %s; want %s", tc.s, got, tc.want)
		}
	}
}

func TestRatioDivideByZero(t *testing.T) {
	err := readErr(t, "1/0")
	if !strings.Contains(err.Error(), "Divide by zero") {
		t.Errorf("got %s, want a divide-by-zero error", err)
	}
}

func TestInvalidNumber(t *testing.T) {
	err := readErr(t, "1.2.3")
	if !strings.Contains(err.Error(), "Invalid number") {
		t.Errorf("got %s, want an invalid-number error", err)
	}
}

// Grounded on cespare-goclj/parse/parse_test.go's TestUnterminatedQuotes.
func TestUnterminatedMacros(t *testing.T) {
	for _, input := range []string{"@", "'", "`", "~", "~@", "^foo"} {
		_, err := Read(NewStringStream(input), true, nil)
		if err == nil {
			t.Errorf("for %q: expected an EOF error, got none", input)
		}
	}
}

// Grounded on cespare-goclj/parse/parse_test.go's TestCommentCarriageReturn.
func TestCommentCarriageReturn(t *testing.T) {
	const input = "3;a\r4"
	stream := NewStringStream(input)
	first := readFromStream(t, stream)
	second := readFromStream(t, stream)
	if first.String() != "3" || second.String() != "4" {
		t.Errorf("got %s, %s; want 3, 4", first, second)
	}
}

// Grounded on cespare-goclj/parse/parse_test.go's TestInternalNewlines: a
// vector may freely span lines since whitespace includes '\n'.
func TestInternalNewlines(t *testing.T) {
	got := readOne(t, "[3\n4]").String()
	if got != "[3 4]" {
		t.Errorf("got %s, want [3 4]", got)
	}
}

func readFromStream(t *testing.T, s CharStream) value.Form {
	t.Helper()
	form, err := ReadWith(s, true, nil, compiler.NewDefaultState("user"))
	if err != nil {
		t.Fatalf("reading: %s", err)
	}
	return form
}

// Grounded on cespare-goclj/parse/parse_test.go's TestUnreadable (issue
// 32): the unreadable-object dispatch macro must be rejected, not
// silently accepted.
func TestUnreadableDispatchMacro(t *testing.T) {
	err := readErr(t, "#<X Y Z>")
	if !strings.Contains(err.Error(), "Unreadable") {
		t.Errorf("got %s, want an Unreadable-form error", err)
	}
}

func TestUnmatchedDelimiter(t *testing.T) {
	for _, tc := range []string{")", "]", "}"} {
		err := readErr(t, tc)
		if !strings.Contains(err.Error(), "Unmatched delimiter") {
			t.Errorf("for %q: got %s, want Unmatched delimiter", tc, err)
		}
	}
}

func TestMapMustHaveEvenForms(t *testing.T) {
	err := readErr(t, "{:a 1 :b}")
	if !strings.Contains(err.Error(), "even number of forms") {
		t.Errorf("got %s, want an even-forms error", err)
	}
}

func TestSetRejectsDuplicates(t *testing.T) {
	err := readErr(t, "#{1 1}")
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("got %s, want a duplicate-element error", err)
	}
}

func TestReadEvalRejected(t *testing.T) {
	err := readErr(t, "#=(+ 1 2)")
	if !strings.Contains(err.Error(), "Read-eval not supported") {
		t.Errorf("got %s, want a read-eval-not-supported error", err)
	}
}

func TestDisableDispatch(t *testing.T) {
	DisableDispatch("_")
	defer func() { disabledDispatch = map[rune]bool{} }()
	err := readErr(t, "#_(a) 5")
	if !strings.Contains(err.Error(), "disabled") {
		t.Errorf("got %s, want a disabled-dispatch-macro error", err)
	}
}

// Grounded on spec §3/§8: every list form carries {:line N} for the
// 1-based line its opening '(' began on.
func TestListCarriesLineMetadata(t *testing.T) {
	form := readOne(t, "\n\n(foo bar)")
	list, ok := form.(*value.List)
	if !ok {
		t.Fatalf("got %T, want *value.List", form)
	}
	line, ok := list.Meta().Get(keyLine)
	if !ok {
		t.Fatalf("list metadata missing :line, got %v", list.Meta())
	}
	if got := line.String(); got != "3" {
		t.Errorf("got :line %s, want 3", got)
	}
}

func TestVarQuoteCarriesLineMetadata(t *testing.T) {
	form := readOne(t, "\n#'foo")
	list, ok := form.(*value.List)
	if !ok {
		t.Fatalf("got %T, want *value.List", form)
	}
	line, ok := list.Meta().Get(keyLine)
	if !ok {
		t.Fatalf("var-quote metadata missing :line, got %v", list.Meta())
	}
	if got := line.String(); got != "2" {
		t.Errorf("got :line %s, want 2", got)
	}
}

func TestEOFValueVsLiteralNil(t *testing.T) {
	stream := NewStringStream("nil")
	form, err := Read(stream, false, EOF)
	if err != nil {
		t.Fatal(err)
	}
	if form != value.NilValue {
		t.Fatalf("got %v, want the literal nil form", form)
	}
	second, err := Read(stream, false, EOF)
	if err != nil {
		t.Fatal(err)
	}
	if second != EOF {
		t.Fatalf("got %v, want EOF", second)
	}
}
