package list

import (
	"hop.computer/slist/pkg"
)

// ConstIterator is a read-only cursor over the nodes of a List. The zero value
// is the end sentinel. Two iterators are equal (==) when they point at the same
// node.
type ConstIterator[T any] struct {
	n *node[T]
}

// Value returns the element under the cursor. It panics at the end sentinel.
func (it ConstIterator[T]) Value() T {
	if it.n == nil {
		pkg.Panicf("list: Value called on end iterator")
	}
	return it.n.value
}

// Next returns an iterator at the following node. It panics at the end
// sentinel.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	if it.n == nil {
		pkg.Panicf("list: Next called on end iterator")
	}
	return ConstIterator[T]{n: it.n.next}
}

// Iterator is a cursor over the nodes of a List that can also write through to
// the element. The zero value is the end sentinel.
type Iterator[T any] struct {
	n *node[T]
}

// Value returns the element under the cursor. It panics at the end sentinel.
func (it Iterator[T]) Value() T {
	return it.Const().Value()
}

// Ref returns a pointer to the element under the cursor. It panics at the end
// sentinel.
func (it Iterator[T]) Ref() *T {
	if it.n == nil {
		pkg.Panicf("list: Ref called on end iterator")
	}
	return &it.n.value
}

// Next returns an iterator at the following node. It panics at the end
// sentinel.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.Const().Next().n}
}

// Const drops the write capability.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T](it)
}
