package reader

import "fmt"

// ReaderError is the single error kind the reader raises (spec §6,
// §7): a human-readable message plus the (line, col) of the offending
// character, when known.
type ReaderError struct {
	Msg  string
	Line int
	Col  int
}

func (e *ReaderError) Error() string {
	if e.Line == 0 && e.Col == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s (line %d, col %d)", e.Msg, e.Line, e.Col)
}

// fail raises a *ReaderError positioned at the stream's current
// location. Grounded on cespare-goclj/parse/parse.go's t.errorf: every
// internal reader helper panics instead of threading an error return
// through a dozen mutually-recursive functions, and only ReadWith, which
// Read and ReadString call, recovers (read.go).
func fail(s CharStream, format string, args ...interface{}) {
	line, col := s.LineCol()
	panic(&ReaderError{Msg: fmt.Sprintf(format, args...), Line: line, Col: col})
}

// failAt raises a *ReaderError at an explicit, already-captured
// position (used when the error refers back to where a form started,
// e.g. "EOF while reading starting at line N", spec §4.10).
func failAt(line, col int, format string, args ...interface{}) {
	panic(&ReaderError{Msg: fmt.Sprintf(format, args...), Line: line, Col: col})
}

// recoverReaderError turns a panicking *ReaderError into a normal
// error return. It is deferred exactly once, at the top of ReadWith.
func recoverReaderError(err *error) {
	if e := recover(); e != nil {
		if re, ok := e.(*ReaderError); ok {
			*err = re
			return
		}
		panic(e)
	}
}
