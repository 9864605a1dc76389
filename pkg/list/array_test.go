package list

import (
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestArray(t *testing.T) {
	t.Run("reallocations", ArrayReallocations)
	t.Run("pop releases slot", ArrayPopReleasesSlot)
	t.Run("copy keeps order", ArrayCopyKeepsOrder)
	t.Run("move", ArrayMove)
	t.Run("clear keeps buffer", ArrayClearKeepsBuffer)
}

func ArrayReallocations(t *testing.T) {
	a := Array[int]{}
	assert.DeepEqual(t, a.Cap(), 0)

	// Push 1 element
	a.PushFront(1)
	assert.DeepEqual(t, a.Cap(), 16)

	// Push 15 more, filling the buffer
	for i := 0; i < 15; i++ {
		a.PushFront(i)
	}
	assert.DeepEqual(t, a.Len(), 16)
	assert.DeepEqual(t, a.Cap(), 16)

	// One more triggers a reallocation
	a.PushFront(99)
	assert.DeepEqual(t, a.Len(), 17)
	assert.DeepEqual(t, a.Cap(), 32)
	assert.DeepEqual(t, *a.Front(), 99)

	// Reserving less than the current capacity does nothing
	a.Reserve(10)
	assert.DeepEqual(t, a.Cap(), 32)

	a.Reserve(100)
	assert.DeepEqual(t, a.Cap(), 128)
	assert.DeepEqual(t, a.Len(), 17)
	assert.DeepEqual(t, *a.Front(), 99)
}

func ArrayPopReleasesSlot(t *testing.T) {
	a := NewArray[*int]()
	one, two := new(int), new(int)
	a.PushFront(one)
	a.PushFront(two)

	a.PopFront()
	assert.Equal(t, *a.Front(), one)
	assert.Check(t, is.Nil(a.buf[:2][1]))

	a.PopFront()
	a.PopFront()
	assert.Check(t, a.Empty())
	assert.Check(t, is.Nil(a.Front()))
}

func ArrayCopyKeepsOrder(t *testing.T) {
	a := NewArrayFromValues(1, 8, 8, 9, 3)
	assert.DeepEqual(t, a.Slice(), []int{3, 9, 8, 8, 1})

	b := a.Clone()
	assert.DeepEqual(t, b.Slice(), a.Slice())

	c := NewArrayFilled(3, 4)
	c.CopyFrom(a)
	assert.DeepEqual(t, c.Slice(), []int{3, 9, 8, 8, 1})

	a.PopFront()
	*a.Front() = 0
	assert.DeepEqual(t, b.Slice(), []int{3, 9, 8, 8, 1})
	assert.DeepEqual(t, c.Slice(), []int{3, 9, 8, 8, 1})
}

func ArrayMove(t *testing.T) {
	a := NewArrayOrdered(5, 6, 7)
	b := NewArrayMoved(a)
	assert.Check(t, a.Empty())
	assert.DeepEqual(t, b.Slice(), []int{5, 6, 7})

	// The source stays usable
	a.PushFront(1)
	assert.DeepEqual(t, a.Slice(), []int{1})
	assert.DeepEqual(t, b.Slice(), []int{5, 6, 7})
}

func ArrayClearKeepsBuffer(t *testing.T) {
	a := NewArrayFilled(20, "x")
	assert.Equal(t, a.Cap(), 32)
	a.Clear()
	assert.Check(t, a.Empty())
	assert.Equal(t, a.Cap(), 32)
	assert.Equal(t, a.buf[:1][0], "")
}
