package list

import (
	"fmt"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

type backend struct {
	name    string
	newList func() Forward[int]
}

var backends = []backend{
	{"node", func() Forward[int] { return New[int]() }},
	{"array", func() Forward[int] { return NewArray[int]() }},
	{"fixed", func() Forward[int] { return NewFixed[int](FixedOptions{Capacity: 64}) }},
}

func forEachBackend(t *testing.T, f func(t *testing.T, l Forward[int])) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			f(t, b.newList())
		})
	}
}

func TestContractPushPopDuality(t *testing.T) {
	values := []int{4, 8, 15, 16, 23, 42}
	forEachBackend(t, func(t *testing.T, l Forward[int]) {
		for i, v := range values {
			l.PushFront(v)
			assert.Equal(t, *l.Front(), v)
			assert.Equal(t, l.Len(), i+1)
		}
		for range values {
			l.PopFront()
		}
		assert.Check(t, l.Empty())
		assert.Check(t, is.Nil(l.Front()))
	})
}

func TestContractReversedAssign(t *testing.T) {
	forEachBackend(t, func(t *testing.T, l Forward[int]) {
		l.AssignValues(42, 23, 16, 15, 8, 4)
		assert.DeepEqual(t, slices.Collect(l.All()), []int{4, 8, 15, 16, 23, 42})

		l.Assign(3, 9)
		assert.DeepEqual(t, slices.Collect(l.All()), []int{9, 9, 9})
	})
}

func TestContractIterationCount(t *testing.T) {
	forEachBackend(t, func(t *testing.T, l Forward[int]) {
		pushes, pops := 0, 0
		for i := 0; i < 50; i++ {
			l.PushFront(i)
			pushes++
			if i%3 == 0 {
				l.PopFront()
				pops++
			}
		}
		n := 0
		for range l.All() {
			n++
		}
		assert.Equal(t, n, l.Len())
		assert.Equal(t, n, pushes-pops)

		l.Clear()
		assert.Check(t, l.Empty())
		assert.Equal(t, l.Len(), 0)
	})
}

func TestBackendsAgree(t *testing.T) {
	values := []int{1, 8, 8, 9, 3}
	n := NewFromValues(values...)
	a := NewArrayFromValues(values...)
	f := NewFixedFromValues(FixedOptions{Capacity: 5}, values...)

	assert.DeepEqual(t, n.Slice(), a.Slice())
	assert.DeepEqual(t, n.Slice(), f.Slice())
	assert.Equal(t, Distance[int](n.CBegin(), n.CEnd()), n.Len())
	assert.Equal(t, Distance[int](a.CBegin(), a.CEnd()), a.Len())
	assert.Equal(t, Distance[int](f.CBegin(), f.CEnd()), f.Len())
}

func TestMake(t *testing.T) {
	for _, tc := range []struct {
		opts     Options
		expected string
	}{
		{Options{}, "*list.List[int]"},
		{Options{Backend: BackendNode}, "*list.List[int]"},
		{Options{Backend: BackendArray, Capacity: 10}, "*list.Array[int]"},
		{Options{Backend: BackendFixed, Capacity: 2}, "*list.Fixed[int]"},
	} {
		l, err := Make[int](tc.opts)
		assert.NilError(t, err)
		assert.Check(t, l.Empty())
		assert.Equal(t, fmt.Sprintf("%T", l), tc.expected)
	}

	f, err := Make[int](Options{Backend: BackendFixed, Capacity: 2})
	assert.NilError(t, err)
	f.AssignValues(1, 2, 3)
	assert.Equal(t, f.Len(), 2)
}

func TestMakeErrors(t *testing.T) {
	_, err := Make[int](Options{Backend: "skiplist"})
	assert.ErrorContains(t, err, `"skiplist"`)
	assert.Check(t, errors.Is(err, ErrUnknownBackend))

	_, err = Make[int](Options{Capacity: -3})
	assert.Check(t, errors.Is(err, ErrInvalidCapacity))
}
