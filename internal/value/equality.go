package value

// Equal reports whether a and b are equal forms. It is used for
// map-key lookup and set-duplicate detection. Symbols, keywords,
// numbers, strings, characters, booleans, nil, lists and vectors are
// compared structurally; any other form (a map, a set, a regexp) is
// equal only to itself.
func Equal(a, b Form) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av.Ns == bv.Ns && av.Name == bv.Name
	case *Keyword:
		bv, ok := b.(*Keyword)
		return ok && av.Ns == bv.Ns && av.Name == bv.Name
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && av.Val.Cmp(bv.Val) == 0
	case *Ratio:
		bv, ok := b.(*Ratio)
		return ok && av.Val.Cmp(bv.Val) == 0
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Char:
		bv, ok := b.(Char)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case nilType:
		_, ok := b.(nilType)
		return ok
	case *Vector:
		bv, ok := b.(*Vector)
		if !ok || len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
