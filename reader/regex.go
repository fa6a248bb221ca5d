package reader

import "regexp"

// compileRegex compiles a #"..." literal's source text. Go's RE2
// engine rejects a few Java/Perl constructs (backreferences,
// lookaround) that Clojure's host regex accepts; those patterns fail
// to compile here rather than being silently misinterpreted.
func compileRegex(src string) (*regexp.Regexp, error) {
	return regexp.Compile(src)
}
