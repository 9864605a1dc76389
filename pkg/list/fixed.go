package list

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/slist/pkg"
)

// DefaultCapacity is the capacity of a Fixed list when none is given.
const DefaultCapacity = 1000

// Overflow selects what a Fixed list does with a push that does not fit.
type Overflow int

// Overflow policies.
const (
	// OverflowDrop silently discards the value. Nothing is reported to the
	// caller; the drop is logged at debug level.
	OverflowDrop Overflow = iota
	// OverflowPanic panics with an error wrapping ErrCapacityExceeded.
	OverflowPanic
)

func (o Overflow) String() string {
	switch o {
	case OverflowDrop:
		return "drop"
	case OverflowPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ParseOverflow converts a policy name ("drop" or "panic") to an Overflow.
// The empty string selects OverflowDrop.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "", "drop":
		return OverflowDrop, nil
	case "panic":
		return OverflowPanic, nil
	default:
		return OverflowDrop, errors.Wrapf(ErrUnknownOverflow, "%q", s)
	}
}

// FixedOptions configures a Fixed list.
type FixedOptions struct {
	// Capacity is the maximum number of elements. Zero selects
	// DefaultCapacity.
	Capacity int
	Overflow Overflow
	// Log receives overflow reports. Defaults to the standard logger.
	Log *logrus.Entry
}

// Fixed is a forward list stored in a buffer allocated once at construction.
// Like Array, the front is the highest occupied slot. Pushes beyond the
// capacity are handled by the configured Overflow policy.
//
// Popping an element only moves the front index; the value stays in its slot
// until it is overwritten.
type Fixed[T any] struct {
	buf      []T
	n        int
	overflow Overflow
	log      *logrus.Entry
}

// NewFixed returns an empty Fixed list. It panics if opts.Capacity is
// negative.
func NewFixed[T any](opts FixedOptions) *Fixed[T] {
	if opts.Capacity < 0 {
		pkg.Panicf("list: negative capacity %d", opts.Capacity)
	}
	if opts.Capacity == 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Log == nil {
		opts.Log = logrus.WithField("list", "fixed")
	}
	return &Fixed[T]{
		buf:      make([]T, opts.Capacity),
		overflow: opts.Overflow,
		log:      opts.Log,
	}
}

// NewFixedN returns a Fixed list holding n zero values.
func NewFixedN[T any](opts FixedOptions, n int) *Fixed[T] {
	var zero T
	return NewFixedFilled(opts, n, zero)
}

// NewFixedFilled returns a Fixed list holding n copies of v.
func NewFixedFilled[T any](opts FixedOptions, n int, v T) *Fixed[T] {
	f := NewFixed[T](opts)
	f.Assign(n, v)
	return f
}

// NewFixedFromValues pushes each value to the front in order, so the front of
// the resulting list is the last value that fit.
func NewFixedFromValues[T any](opts FixedOptions, values ...T) *Fixed[T] {
	f := NewFixed[T](opts)
	f.AssignValues(values...)
	return f
}

// NewFixedOrdered returns a Fixed list whose front-to-back order matches
// values.
func NewFixedOrdered[T any](opts FixedOptions, values ...T) *Fixed[T] {
	f := NewFixed[T](opts)
	f.AssignOrdered(values...)
	return f
}

// Cap returns the maximum number of elements.
func (f *Fixed[T]) Cap() int {
	return len(f.buf)
}

// Len returns the number of elements.
func (f *Fixed[T]) Len() int {
	return f.n
}

// Empty reports whether the list has no elements.
func (f *Fixed[T]) Empty() bool {
	return f.n == 0
}

// Full reports whether another push would overflow.
func (f *Fixed[T]) Full() bool {
	return f.n == len(f.buf)
}

// Overflow returns the overflow policy of f.
func (f *Fixed[T]) Overflow() Overflow {
	return f.overflow
}

// Front returns a pointer to the first element, or nil if the list is empty.
func (f *Fixed[T]) Front() *T {
	if f.n == 0 {
		return nil
	}
	return &f.buf[f.n-1]
}

// TryPushFront inserts v at the front if there is room. Otherwise it leaves
// the list unchanged and returns an error wrapping ErrCapacityExceeded,
// regardless of the overflow policy.
func (f *Fixed[T]) TryPushFront(v T) error {
	if f.Full() {
		return errors.Wrapf(ErrCapacityExceeded, "capacity %d", len(f.buf))
	}
	f.buf[f.n] = v
	f.n++
	return nil
}

// PushFront inserts v at the front if there is room. Otherwise the overflow
// policy decides.
func (f *Fixed[T]) PushFront(v T) {
	if err := f.TryPushFront(v); err != nil {
		f.overflowed(1, err)
	}
}

func (f *Fixed[T]) overflowed(dropped int, err error) {
	if f.overflow == OverflowPanic {
		panic(err)
	}
	log := f.log
	if log == nil {
		log = logrus.WithField("list", "fixed")
	}
	log.WithFields(logrus.Fields{
		"capacity": len(f.buf),
		"len":      f.n,
		"dropped":  dropped,
	}).Debug("dropping push beyond capacity")
}

// PopFront removes the first element. Popping an empty list does nothing.
func (f *Fixed[T]) PopFront() {
	if f.n > 0 {
		f.n--
	}
}

// Clear removes every element.
func (f *Fixed[T]) Clear() {
	f.n = 0
}

// Assign replaces the contents of the list with n copies of v, up to the
// capacity.
func (f *Fixed[T]) Assign(n int, v T) {
	f.Clear()
	for ; n > 0; n-- {
		f.PushFront(v)
	}
}

// AssignValues replaces the contents of the list by pushing each value to the
// front in order. Values past the capacity are handled by the overflow policy.
func (f *Fixed[T]) AssignValues(values ...T) {
	f.Clear()
	for _, v := range values {
		f.PushFront(v)
	}
}

// AssignOrdered replaces the contents of the list so that its front-to-back
// order matches values. When values does not fit, the leading values are kept
// and the rest are handled by the overflow policy.
func (f *Fixed[T]) AssignOrdered(values ...T) {
	f.Clear()
	if extra := len(values) - len(f.buf); extra > 0 {
		values = values[:len(f.buf)]
		f.overflowed(extra, errors.Wrapf(ErrCapacityExceeded, "capacity %d", len(f.buf)))
	}
	for i := len(values) - 1; i >= 0; i-- {
		f.buf[f.n] = values[i]
		f.n++
	}
}

// Clone returns a copy of f with the same capacity, policy, and contents.
func (f *Fixed[T]) Clone() *Fixed[T] {
	c := &Fixed[T]{
		buf:      make([]T, len(f.buf)),
		n:        f.n,
		overflow: f.overflow,
		log:      f.log,
	}
	copy(c.buf, f.buf[:f.n])
	return c
}

// CopyFrom replaces f with a copy of src, including its capacity and policy.
// The copy is built before f is touched.
func (f *Fixed[T]) CopyFrom(src *Fixed[T]) {
	if f == src {
		return
	}
	tmp := src.Clone()
	f.Swap(tmp)
}

// MoveFrom takes over the buffer of other and leaves other empty. other keeps
// the previous buffer of f, so it stays usable.
func (f *Fixed[T]) MoveFrom(other *Fixed[T]) {
	if f == other {
		return
	}
	f.Swap(other)
	other.Clear()
}

// Swap exchanges f and other in constant time. The capacity and policy travel
// with the contents.
func (f *Fixed[T]) Swap(other *Fixed[T]) {
	*f, *other = *other, *f
}

// All returns an iterator over the elements from front to back.
func (f *Fixed[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := f.n - 1; i >= 0; i-- {
			if !yield(f.buf[i]) {
				return
			}
		}
	}
}

// Slice returns the elements from front to back in a new slice.
func (f *Fixed[T]) Slice() []T {
	return reversedCopy(f.buf[:f.n])
}

// Begin returns a mutable iterator at the front of the list.
func (f *Fixed[T]) Begin() IndexIterator[T] {
	return IndexIterator[T]{buf: &f.buf, i: f.n - 1}
}

// End returns the mutable end sentinel.
func (f *Fixed[T]) End() IndexIterator[T] {
	return IndexIterator[T]{buf: &f.buf, i: endIndex}
}

// CBegin returns a read-only iterator at the front of the list.
func (f *Fixed[T]) CBegin() ConstIndexIterator[T] {
	return f.Begin().Const()
}

// CEnd returns the read-only end sentinel.
func (f *Fixed[T]) CEnd() ConstIndexIterator[T] {
	return f.End().Const()
}
