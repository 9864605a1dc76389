package list

// Cursor is the forward-iterator contract the algorithms below rely on. I is
// the iterator type itself, so Next stays allocation free. Every iterator in
// this package satisfies it.
type Cursor[T any, I any] interface {
	comparable
	Value() T
	Next() I
}

// MutableCursor is a Cursor that can write through to its element.
type MutableCursor[T any, I any] interface {
	Cursor[T, I]
	Ref() *T
}

// Find returns the first iterator in [first, last) whose value satisfies
// pred, or last if there is none.
func Find[T any, I Cursor[T, I]](first, last I, pred func(T) bool) I {
	for it := first; it != last; it = it.Next() {
		if pred(it.Value()) {
			return it
		}
	}
	return last
}

// Count returns the number of values in [first, last) that satisfy pred.
func Count[T any, I Cursor[T, I]](first, last I, pred func(T) bool) int {
	n := 0
	for it := first; it != last; it = it.Next() {
		if pred(it.Value()) {
			n++
		}
	}
	return n
}

// Distance returns the number of steps from first to last.
func Distance[T any, I Cursor[T, I]](first, last I) int {
	n := 0
	for it := first; it != last; it = it.Next() {
		n++
	}
	return n
}

// CopyTo appends the values in [first, last) to dst and returns the result.
func CopyTo[T any, I Cursor[T, I]](first, last I, dst []T) []T {
	for it := first; it != last; it = it.Next() {
		dst = append(dst, it.Value())
	}
	return dst
}

// Transform replaces every value in [first, last) with fn applied to it.
func Transform[T any, I MutableCursor[T, I]](first, last I, fn func(T) T) {
	for it := first; it != last; it = it.Next() {
		p := it.Ref()
		*p = fn(*p)
	}
}

// Equal reports whether [a, aEnd) and [b, bEnd) have the same length and eq
// holds for every pair of values. The two ranges may come from different
// backends.
func Equal[T any, A Cursor[T, A], B Cursor[T, B]](a, aEnd A, b, bEnd B, eq func(x, y T) bool) bool {
	for a != aEnd && b != bEnd {
		if !eq(a.Value(), b.Value()) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return a == aEnd && b == bEnd
}
