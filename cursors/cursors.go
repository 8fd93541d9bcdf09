// Package cursors contains cursor implementations for common in-memory sequences.
// They satisfy the cursorkit capability set natively,
// and double as reference implementations of the protocol.
package cursors

import (
	"go.llib.dev/cursorkit"
)

// SliceCursor is a cursor over the elements of a slice.
// Two SliceCursors are equal when they stand at the same index.
type SliceCursor[T any] struct {
	slice []T
	index int
}

// At returns a cursor standing at the given index of the slice.
// Index len(s) is the end position.
func At[T any](s []T, index int) *SliceCursor[T] {
	return &SliceCursor[T]{slice: s, index: index}
}

// Slice returns the whole slice as a range.
func Slice[T any](s []T) cursorkit.Range[T, *T, *SliceCursor[T]] {
	return cursorkit.Over[T, *T](At(s, 0), At(s, len(s)))
}

func (c *SliceCursor[T]) Deref() T {
	return c.slice[c.index]
}

// Member returns the address of the current element,
// so structured reads reach the element in place.
func (c *SliceCursor[T]) Member() *T {
	return &c.slice[c.index]
}

func (c *SliceCursor[T]) Next() *SliceCursor[T] {
	c.index++
	return c
}

func (c *SliceCursor[T]) Step() *SliceCursor[T] {
	prev := c.Clone()
	c.index++
	return prev
}

func (c *SliceCursor[T]) Equal(oth *SliceCursor[T]) bool {
	return c.index == oth.index
}

func (c *SliceCursor[T]) Unequal(oth *SliceCursor[T]) bool {
	return c.index != oth.index
}

func (c *SliceCursor[T]) Clone() *SliceCursor[T] {
	return &SliceCursor[T]{slice: c.slice, index: c.index}
}

// CursorCategory declares that slice cursors support random positioning.
func (c *SliceCursor[T]) CursorCategory() cursorkit.Category {
	return cursorkit.CategoryRandomAccess
}

var _ cursorkit.Cursor[int, *int, *SliceCursor[int]] = At([]int(nil), 0)
var _ cursorkit.Categorized = At([]int(nil), 0)

// IntCursor is a cursor over the number line.
// It declares no metadata at all,
// every inferred field of its descriptor comes from the fallback rules.
type IntCursor struct {
	n int
}

// Int returns a cursor standing on the given number.
func Int(n int) *IntCursor {
	return &IntCursor{n: n}
}

// Ints returns the [from, until) interval of the number line as a range.
func Ints(from, until int) cursorkit.Range[int, *int, *IntCursor] {
	return cursorkit.Over[int, *int](Int(from), Int(until))
}

func (c *IntCursor) Deref() int {
	return c.n
}

func (c *IntCursor) Member() *int {
	return &c.n
}

func (c *IntCursor) Next() *IntCursor {
	c.n++
	return c
}

func (c *IntCursor) Step() *IntCursor {
	prev := c.Clone()
	c.n++
	return prev
}

func (c *IntCursor) Equal(oth *IntCursor) bool {
	return c.n == oth.n
}

func (c *IntCursor) Unequal(oth *IntCursor) bool {
	return c.n != oth.n
}

func (c *IntCursor) Clone() *IntCursor {
	return &IntCursor{n: c.n}
}

var _ cursorkit.Cursor[int, *int, *IntCursor] = Int(0)
