package list

import (
	"iter"

	"golang.org/x/exp/slices"
)

// minArraySlots is the size of the first buffer allocated by an Array.
const minArraySlots = 16

// Array is a forward list stored in a growable buffer. The front of the list
// is the last occupied slot, so PushFront and PopFront work on the tail of the
// buffer and run in amortized constant time. The zero value is an empty list
// ready to use.
type Array[T any] struct {
	buf []T
}

// NewArray returns an empty Array.
func NewArray[T any]() *Array[T] {
	return &Array[T]{}
}

// NewArrayN returns an Array of n zero values.
func NewArrayN[T any](n int) *Array[T] {
	var zero T
	return NewArrayFilled(n, zero)
}

// NewArrayFilled returns an Array of n copies of v.
func NewArrayFilled[T any](n int, v T) *Array[T] {
	a := NewArray[T]()
	a.Assign(n, v)
	return a
}

// NewArrayFromValues pushes each value to the front in order, so the front of
// the resulting list is the last value given.
func NewArrayFromValues[T any](values ...T) *Array[T] {
	a := NewArray[T]()
	a.AssignValues(values...)
	return a
}

// NewArrayOrdered returns an Array whose front-to-back order matches values.
func NewArrayOrdered[T any](values ...T) *Array[T] {
	a := NewArray[T]()
	a.AssignOrdered(values...)
	return a
}

// NewArrayMoved returns an Array that has taken over the buffer of other,
// leaving other empty.
func NewArrayMoved[T any](other *Array[T]) *Array[T] {
	a := NewArray[T]()
	a.MoveFrom(other)
	return a
}

// reallocate grows the buffer to the smallest power of two (at least
// minArraySlots) that fits size elements. It never shrinks the buffer.
func (a *Array[T]) reallocate(size int) {
	if size <= cap(a.buf) {
		return
	}

	newSize := minArraySlots
	for newSize < size {
		newSize = newSize << 1
	}

	newBuf := make([]T, len(a.buf), newSize)
	copy(newBuf, a.buf)
	a.buf = newBuf
}

// Reserve makes room for at least n elements without further allocation.
func (a *Array[T]) Reserve(n int) {
	a.reallocate(n)
}

// Cap returns the number of slots currently allocated.
func (a *Array[T]) Cap() int {
	return cap(a.buf)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.buf)
}

// Empty reports whether the list has no elements.
func (a *Array[T]) Empty() bool {
	return len(a.buf) == 0
}

// Front returns a pointer to the first element, or nil if the list is empty.
// The pointer is only valid until the next push, since growing the buffer
// moves the elements.
func (a *Array[T]) Front() *T {
	if len(a.buf) == 0 {
		return nil
	}
	return &a.buf[len(a.buf)-1]
}

// PushFront inserts v at the front of the list.
func (a *Array[T]) PushFront(v T) {
	if len(a.buf) == cap(a.buf) {
		a.reallocate(len(a.buf) + 1)
	}
	a.buf = append(a.buf, v)
}

// PopFront removes the first element. Popping an empty list does nothing.
func (a *Array[T]) PopFront() {
	last := len(a.buf) - 1
	if last < 0 {
		return
	}
	var zero T
	a.buf[last] = zero
	a.buf = a.buf[:last]
}

// Clear removes every element, keeping the allocated buffer.
func (a *Array[T]) Clear() {
	clear(a.buf)
	a.buf = a.buf[:0]
}

// Assign replaces the contents of the list with n copies of v.
func (a *Array[T]) Assign(n int, v T) {
	a.Clear()
	a.reallocate(n)
	for ; n > 0; n-- {
		a.PushFront(v)
	}
}

// AssignValues replaces the contents of the list by pushing each value to the
// front in order, so the list ends up in the reverse order of values.
func (a *Array[T]) AssignValues(values ...T) {
	a.Clear()
	a.reallocate(len(values))
	for _, v := range values {
		a.PushFront(v)
	}
}

// AssignOrdered replaces the contents of the list so that its front-to-back
// order matches values.
func (a *Array[T]) AssignOrdered(values ...T) {
	a.Clear()
	a.reallocate(len(values))
	for i := len(values) - 1; i >= 0; i-- {
		a.PushFront(values[i])
	}
}

// Clone returns a copy of a in the same order.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{buf: slices.Clone(a.buf)}
}

// CopyFrom replaces the contents of a with a copy of src. The copy is built
// before a is touched.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	tmp := src.Clone()
	a.Swap(tmp)
}

// MoveFrom drops the contents of a and takes over the buffer of other, leaving
// other empty.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == other {
		return
	}
	a.buf = other.buf
	other.buf = nil
}

// Swap exchanges the contents of a and other in constant time.
func (a *Array[T]) Swap(other *Array[T]) {
	a.buf, other.buf = other.buf, a.buf
}

// All returns an iterator over the elements from front to back.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(a.buf) - 1; i >= 0; i-- {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

// Slice returns the elements from front to back in a new slice.
func (a *Array[T]) Slice() []T {
	return reversedCopy(a.buf)
}

// Begin returns a mutable iterator at the front of the list.
func (a *Array[T]) Begin() IndexIterator[T] {
	return IndexIterator[T]{buf: &a.buf, i: len(a.buf) - 1}
}

// End returns the mutable end sentinel.
func (a *Array[T]) End() IndexIterator[T] {
	return IndexIterator[T]{buf: &a.buf, i: endIndex}
}

// CBegin returns a read-only iterator at the front of the list.
func (a *Array[T]) CBegin() ConstIndexIterator[T] {
	return a.Begin().Const()
}

// CEnd returns the read-only end sentinel.
func (a *Array[T]) CEnd() ConstIndexIterator[T] {
	return a.End().Const()
}

func reversedCopy[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
