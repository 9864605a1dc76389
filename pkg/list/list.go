// Package list implements a forward list with three interchangeable storage
// backends: linked nodes (List), a growable array (Array), and a
// fixed-capacity array (Fixed).
//
// Every backend keeps its front at the cheap end of its storage, so PushFront
// and PopFront are constant time. Iterators walk from the front towards the
// back. Iterators are plain values and are never checked for invalidation:
// an iterator must not be used after the list it came from has been mutated.
//
// None of the types in this package are thread-safe.
package list

import (
	"iter"
)

// Forward is the contract shared by all backends.
type Forward[T any] interface {
	// PushFront inserts v at the front.
	PushFront(v T)
	// PopFront removes the front element. It is a no-op on an empty list.
	PopFront()
	// Front returns a pointer to the front element, or nil if the list is
	// empty.
	Front() *T
	Empty() bool
	Len() int
	Clear()
	// Assign replaces the contents with n copies of v.
	Assign(n int, v T)
	// AssignValues replaces the contents by pushing each value to the front in
	// order. The resulting front-to-back order is the reverse of values.
	AssignValues(values ...T)
	// All iterates the elements from front to back.
	All() iter.Seq[T]
}

var _ Forward[int] = &List[int]{}
var _ Forward[int] = &Array[int]{}
var _ Forward[int] = &Fixed[int]{}

type node[T any] struct {
	next  *node[T]
	value T
}

// List is a singly linked forward list. The zero value is an empty list ready
// to use. Head and size are tracked internally, so all operations are constant
// time unless noted otherwise.
//
// Copying a List value aliases its nodes. Use Clone or CopyFrom for a deep
// copy, and MoveFrom to transfer ownership.
type List[T any] struct {
	head *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewN returns a list of n zero values.
func NewN[T any](n int) *List[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a list of n copies of v.
func NewFilled[T any](n int, v T) *List[T] {
	l := New[T]()
	l.Assign(n, v)
	return l
}

// NewFromValues pushes each value to the front in order. The front of the
// resulting list is the last value given. Use NewOrdered to keep the order of
// values.
func NewFromValues[T any](values ...T) *List[T] {
	l := New[T]()
	l.AssignValues(values...)
	return l
}

// NewOrdered returns a list whose front-to-back order matches values.
func NewOrdered[T any](values ...T) *List[T] {
	l := New[T]()
	l.AssignOrdered(values...)
	return l
}

// Collect pushes every element of seq to the front, in the order seq yields
// them. Like NewFromValues, the last element yielded becomes the front.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushFront(v)
	}
	return l
}

// NewMoved returns a list that has taken ownership of the nodes of other.
// other is left empty. No elements are copied.
func NewMoved[T any](other *List[T]) *List[T] {
	l := New[T]()
	l.MoveFrom(other)
	return l
}

// Len returns the number of elements. This function is constant time.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Front returns a pointer to the first element, which may be used to modify it
// in place. If the list is empty, it returns nil.
func (l *List[T]) Front() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{
		next:  l.head,
		value: v,
	}
	l.size++
}

// PopFront removes the first element. Popping an empty list does nothing.
func (l *List[T]) PopFront() {
	if l.head == nil {
		return
	}
	first := l.head
	l.head = first.next
	first.next = nil
	l.size--
}

// Clear removes every element. The chain is unlinked one node at a time. This
// function is O(n).
func (l *List[T]) Clear() {
	for l.head != nil {
		l.PopFront()
	}
}

// Assign replaces the contents of the list with n copies of v.
func (l *List[T]) Assign(n int, v T) {
	l.Clear()
	for ; n > 0; n-- {
		l.PushFront(v)
	}
}

// AssignValues replaces the contents of the list by pushing each value to the
// front in order, so the list ends up in the reverse order of values.
func (l *List[T]) AssignValues(values ...T) {
	l.Clear()
	for _, v := range values {
		l.PushFront(v)
	}
}

// AssignOrdered replaces the contents of the list so that its front-to-back
// order matches values.
func (l *List[T]) AssignOrdered(values ...T) {
	l.Clear()
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
}

// Clone returns a deep copy of l in the same order. This function is O(n).
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	var tail *node[T]
	for n := l.head; n != nil; n = n.next {
		copied := &node[T]{value: n.value}
		if tail == nil {
			c.head = copied
		} else {
			tail.next = copied
		}
		tail = copied
		c.size++
	}
	return c
}

// CopyFrom replaces the contents of l with a deep copy of src. The copy is
// built before l is touched, then swapped in, and the old chain is released.
func (l *List[T]) CopyFrom(src *List[T]) {
	if l == src {
		return
	}
	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// MoveFrom releases the contents of l and takes ownership of the nodes of
// other, leaving other empty. This function is constant time apart from
// releasing the old contents.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	l.Swap(other)
}

// Swap exchanges the contents of l and other in constant time.
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.size, other.size = other.size, l.size
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the elements from front to back in a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Begin returns a mutable iterator at the front of the list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head}
}

// End returns the mutable end sentinel.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// CBegin returns a read-only iterator at the front of the list.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head}
}

// CEnd returns the read-only end sentinel.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}
