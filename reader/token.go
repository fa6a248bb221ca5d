package reader

import (
	"strings"

	"github.com/hortensius/cljreader/internal/value"
)

// readToken implements spec §4.3: accumulate characters until EOF,
// whitespace, or a terminating macro character, pushing the stopping
// character back.
func readToken(s CharStream, initch rune) string {
	var sb strings.Builder
	sb.WriteRune(initch)
	for {
		ch, eof := s.Next()
		if eof || isWhitespace(ch) || isTerminatingMacro(ch) {
			if !eof {
				s.Back()
			}
			return sb.String()
		}
		sb.WriteRune(ch)
	}
}

// interpretToken implements spec §4.4.
func interpretToken(ctx *readerContext, s CharStream, tok string) value.Form {
	switch tok {
	case "nil":
		return value.NilValue
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}
	return matchSymbol(ctx, s, tok)
}

// matchSymbol implements the symbol/keyword grammar of spec §4.4,
// including the "Known ambiguities" resolution of spec §9: a leading
// "::" is the reserved namespace-qualified keyword form, resolved
// against the current compiler namespace rather than rejected; any
// other interior "::" is an error, matching
// original_source/clojure/lang/lispreader.py's matchSymbol.
func matchSymbol(ctx *readerContext, s CharStream, tok string) value.Form {
	isKeyword := strings.HasPrefix(tok, ":")
	body := tok
	if isKeyword {
		body = tok[1:]
	}
	if body == "" {
		fail(s, "Invalid token: %s", tok)
	}

	if isKeyword && strings.HasPrefix(body, ":") {
		return resolveAutoNamespacedKeyword(ctx, s, tok, body[1:])
	}

	if strings.Contains(body, "::") {
		fail(s, "Invalid token: %s", tok)
	}

	ns, name, ok := splitNsName(body)
	if !ok {
		fail(s, "Invalid token: %s", tok)
	}
	if ns != "" && strings.HasSuffix(ns, ":") {
		fail(s, "Invalid token: %s", tok)
	}
	if strings.HasSuffix(name, ":") {
		fail(s, "Invalid token: %s", tok)
	}

	if isKeyword {
		return value.InternKeyword(ns, name)
	}
	return value.Intern(ns, name)
}

// resolveAutoNamespacedKeyword implements spec §9's "::keyword
// auto-namespacing" resolution: ::name resolves against the current
// namespace; ::alias/name resolves against whatever namespace alias is
// given, since the pure reader carries no alias table of its own.
func resolveAutoNamespacedKeyword(ctx *readerContext, s CharStream, tok, inner string) value.Form {
	if inner == "" || strings.Contains(inner, "::") {
		fail(s, "Invalid token: %s", tok)
	}
	ns, name, ok := splitNsName(inner)
	if !ok {
		fail(s, "Invalid token: %s", tok)
	}
	if ns != "" {
		return value.InternKeyword(ns, name)
	}
	return value.InternKeyword(ctx.comp.CurrentNamespace().Name(), name)
}

// splitNsName splits a symbol body on its last '/' into (ns, name),
// per spec §4.4's "optional namespace part ... then a name". "/" alone
// names the symbol `/` with no namespace. Matches
// original_source/clojure/lang/lispreader.py's symbolPat
// ("[:]?([\D^/].*/)?([\D^/][^/]*)"): both the namespace part and the
// name part must start with a non-digit.
func splitNsName(body string) (ns, name string, ok bool) {
	if body == "/" {
		return "", "/", true
	}
	idx := strings.LastIndex(body, "/")
	if idx < 0 {
		name = body
	} else {
		ns = body[:idx]
		name = body[idx+1:]
		if name == "" {
			return "", "", false
		}
		if len(ns) > 0 && ns[0] >= '0' && ns[0] <= '9' {
			return "", "", false
		}
	}
	if name != "/" && len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		return "", "", false
	}
	return ns, name, true
}
