package reader

import (
	"strings"
	"testing"
)

// Grounded on cespare-goclj/parse/parse_test.go's lambda test case
// ("#(+ % 3)" -> "lambda(length=3)"): this reader expands the same
// syntax into (fn [params] body) instead of a dedicated node type, so
// the assertions here check that expansion's shape rather than a
// literal string match, since generated symbol ids are process-global
// and not reproducible across test runs.
func TestAnonymousFunctionSingleArg(t *testing.T) {
	got := readOne(t, "#(+ % 3)").String()
	if !strings.HasPrefix(got, "(fn [p1__") || !strings.Contains(got, "(+ p1__") {
		t.Errorf("got %s, want a (fn [p1__N#] (+ p1__N# 3)) shape", got)
	}
}

func TestAnonymousFunctionPositionalArgs(t *testing.T) {
	got := readOne(t, "#(+ %1 %2)").String()
	if !strings.Contains(got, "p1__") || !strings.Contains(got, "p2__") {
		t.Errorf("got %s, want both p1__ and p2__ params", got)
	}
}

func TestAnonymousFunctionRestArg(t *testing.T) {
	got := readOne(t, "#(apply + %&)").String()
	if !strings.Contains(got, "& rest__") {
		t.Errorf("got %s, want a trailing & rest__N# param", got)
	}
}

func TestAnonymousFunctionSharedArgSymbol(t *testing.T) {
	// %1 used twice must resolve to the SAME generated symbol both
	// times, not two distinct gensyms.
	got := readOne(t, "#(vector %1 %1)").String()
	start := strings.Index(got, "(vector ")
	if start < 0 {
		t.Fatalf("got %s, missing (vector ...) body", got)
	}
	body := got[start+len("(vector "):]
	fields := strings.Fields(body)
	if len(fields) != 2 {
		t.Fatalf("got body args %v, want exactly two", fields)
	}
	fields[1] = strings.TrimRight(fields[1], ")")
	if fields[0] != fields[1] {
		t.Errorf("got body args %v, want two identical symbols", fields)
	}
}

func TestNestedAnonymousFunctionRejected(t *testing.T) {
	err := readErr(t, "#(#(%1))")
	if !strings.Contains(err.Error(), "Nested #()s are not allowed") {
		t.Errorf("got %s, want the nested-#() error", err)
	}
}

func TestPercentOutsideAnonymousFunctionIsOrdinaryToken(t *testing.T) {
	got := readOne(t, "%").String()
	if got != "%" {
		t.Errorf("got %s, want the literal symbol %%", got)
	}
}

func TestArgLiteralMustBeValid(t *testing.T) {
	err := readErr(t, "#(%x)")
	if !strings.Contains(err.Error(), "arg literal must be") {
		t.Errorf("got %s, want an arg-literal error", err)
	}
}
