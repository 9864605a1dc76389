package list

import (
	"hop.computer/slist/pkg"
)

// endIndex marks the end sentinel of an IndexIterator.
const endIndex = -1

// ConstIndexIterator is a read-only cursor over an array backend. The front of
// the list is the highest occupied index, so advancing decrements the index
// until it reaches -1, the end sentinel.
//
// Iterators compare equal (==) when they refer to the same buffer and index.
// The zero value refers to no buffer and is only useful as a placeholder.
type ConstIndexIterator[T any] struct {
	buf *[]T
	i   int
}

// Value returns the element under the cursor. It panics at the end sentinel.
func (it ConstIndexIterator[T]) Value() T {
	if it.i <= endIndex || it.buf == nil {
		pkg.Panicf("list: Value called on end iterator")
	}
	return (*it.buf)[it.i]
}

// Next returns an iterator at the following element. It panics at the end
// sentinel.
func (it ConstIndexIterator[T]) Next() ConstIndexIterator[T] {
	if it.i <= endIndex {
		pkg.Panicf("list: Next called on end iterator")
	}
	return ConstIndexIterator[T]{buf: it.buf, i: it.i - 1}
}

// IndexIterator is a cursor over an array backend that can also write through
// to the element.
type IndexIterator[T any] struct {
	buf *[]T
	i   int
}

// Value returns the element under the cursor. It panics at the end sentinel.
func (it IndexIterator[T]) Value() T {
	return it.Const().Value()
}

// Ref returns a pointer to the element under the cursor. It panics at the end
// sentinel.
func (it IndexIterator[T]) Ref() *T {
	if it.i <= endIndex || it.buf == nil {
		pkg.Panicf("list: Ref called on end iterator")
	}
	return &(*it.buf)[it.i]
}

// Next returns an iterator at the following element. It panics at the end
// sentinel.
func (it IndexIterator[T]) Next() IndexIterator[T] {
	return IndexIterator[T](it.Const().Next())
}

// Const drops the write capability.
func (it IndexIterator[T]) Const() ConstIndexIterator[T] {
	return ConstIndexIterator[T](it)
}
