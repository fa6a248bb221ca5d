package reader

import (
	"bufio"
	"io"
	"strings"
)

// CharStream is the reader's input contract (spec §3, §4.1): peek the
// current character, advance past it, push one character back, and
// report the line/column of the most recently consumed character.
type CharStream interface {
	Peek() (r rune, eof bool)
	Next() (r rune, eof bool)
	Back()
	LineCol() (line, col int)
}

// StringStream is a CharStream backed by an in-memory string, the
// concrete stream ReadString wraps its input in. Grounded on
// cespare-goclj/parse/lex.go's lexer: a bufio.Reader for rune decoding,
// a tracked (line, col), and support for exactly one level of
// pushback.
type StringStream struct {
	r       *bufio.Reader
	line    int
	col     int
	lastLn  int
	lastCol int
	unread  bool
	last    rune
	lastSz  int
}

// NewStringStream wraps s as a CharStream.
func NewStringStream(s string) *StringStream {
	return &StringStream{
		r:    bufio.NewReader(strings.NewReader(s)),
		line: 1,
		col:  0,
	}
}

// Next returns the next rune, advancing the stream, or (0, true) at
// end of stream.
func (s *StringStream) Next() (rune, bool) {
	if s.unread {
		s.unread = false
		s.line, s.col = s.lastLn, s.lastCol
		if s.last == '\n' {
			s.line++
			s.col = 0
		} else {
			s.col++
		}
		return s.last, false
	}
	r, sz, err := s.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, true
		}
		panic(err)
	}
	s.lastLn, s.lastCol = s.line, s.col
	if r == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	s.last, s.lastSz = r, sz
	return r, false
}

// Peek returns the next rune without advancing the stream, per spec
// §3/§4.1's first().
func (s *StringStream) Peek() (rune, bool) {
	r, eof := s.Next()
	if !eof {
		s.Back()
	}
	return r, eof
}

// Back pushes the most recently returned rune back onto the stream.
// Only one level of pushback is supported, matching spec §4.1.
func (s *StringStream) Back() {
	if s.unread {
		panic("reader: Back() called twice without an intervening Next()")
	}
	s.unread = true
	s.line, s.col = s.lastLn, s.lastCol
}

// LineCol returns the 1-based line and column of the most recently
// consumed character.
func (s *StringStream) LineCol() (int, int) {
	return s.line, s.col
}
