package reader

import "github.com/hortensius/cljreader/internal/value"

// readDelimitedList implements spec §4.10's shared collection body
// reader: read forms until delim is seen, skipping again-sentinels
// (comments, #_) and failing on EOF.
func readDelimitedList(ctx *readerContext, s CharStream, delim rune) []value.Form {
	startLine, startCol := s.LineCol()
	var items []value.Form
	for {
		ch, eof := s.Next()
		for !eof && isWhitespace(ch) {
			ch, eof = s.Next()
		}
		if eof {
			failAt(startLine, startCol, "EOF while reading, starting at line %d", startLine)
		}
		if ch == delim {
			return items
		}
		s.Back()
		form := readRecursive(ctx, s)
		if !isAgain(form) {
			items = append(items, form)
		}
	}
}

var keyLine = value.InternKeyword("", "line")

func readList(ctx *readerContext, s CharStream, _ rune) value.Form {
	startLine, _ := s.LineCol()
	items := readDelimitedList(ctx, s, ')')
	list := value.NewList(items...)
	return list.WithMeta(value.NewMeta(keyLine, value.NewIntegerFromInt64(int64(startLine))))
}

func readVector(ctx *readerContext, s CharStream, _ rune) value.Form {
	items := readDelimitedList(ctx, s, ']')
	return value.NewVector(items...)
}

func readMap(ctx *readerContext, s CharStream, _ rune) value.Form {
	startLine, startCol := s.LineCol()
	items := readDelimitedList(ctx, s, '}')
	if len(items)%2 != 0 {
		failAt(startLine, startCol, "Map literal must contain an even number of forms")
	}
	m, err := value.NewMap(items...)
	if err != nil {
		failAt(startLine, startCol, "%s", err.Error())
	}
	return m
}

func readSet(ctx *readerContext, s CharStream, _ rune) value.Form {
	startLine, startCol := s.LineCol()
	items := readDelimitedList(ctx, s, '}')
	set, err := value.NewSet(items...)
	if err != nil {
		failAt(startLine, startCol, "%s", err.Error())
	}
	return set
}
