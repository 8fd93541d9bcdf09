package cursorkit_test

import (
	"reflect"

	"go.llib.dev/cursorkit"
)

// bareCursor walks the number line and declares nothing about itself,
// so every inferred field of its descriptor must come from the fallback rules.
type bareCursor struct {
	n int
}

func (c *bareCursor) Deref() int { return c.n }
func (c *bareCursor) Member() *int { return &c.n }
func (c *bareCursor) Next() *bareCursor { c.n++; return c }
func (c *bareCursor) Step() *bareCursor { prev := *c; c.n++; return &prev }
func (c *bareCursor) Equal(oth *bareCursor) bool { return c.n == oth.n }
func (c *bareCursor) Unequal(oth *bareCursor) bool { return c.n != oth.n }
func (c *bareCursor) Clone() *bareCursor { copied := *c; return &copied }

var _ cursorkit.Cursor[int, *int, *bareCursor] = (*bareCursor)(nil)

// liarCursor declares metadata that disagrees with what its operations actually do:
// it reads int values while claiming an int8 element type,
// and advertises both a distance type and a traversal category.
type liarCursor struct {
	n int
}

func (c *liarCursor) Deref() int { return c.n }
func (c *liarCursor) Member() *int { return &c.n }
func (c *liarCursor) Next() *liarCursor { c.n++; return c }
func (c *liarCursor) Step() *liarCursor { prev := *c; c.n++; return &prev }
func (c *liarCursor) Equal(oth *liarCursor) bool { return c.n == oth.n }
func (c *liarCursor) Unequal(oth *liarCursor) bool { return c.n != oth.n }
func (c *liarCursor) Clone() *liarCursor { copied := *c; return &copied }

func (c *liarCursor) ValueType() reflect.Type { return reflect.TypeOf(int8(0)) }
func (c *liarCursor) DistanceType() reflect.Type { return reflect.TypeOf(int64(0)) }
func (c *liarCursor) CursorCategory() cursorkit.Category {
	return cursorkit.CategoryBidirectional
}

var _ cursorkit.Cursor[int, *int, *liarCursor] = (*liarCursor)(nil)
var _ cursorkit.ValueTyped = (*liarCursor)(nil)
var _ cursorkit.DistanceTyped = (*liarCursor)(nil)
var _ cursorkit.Categorized = (*liarCursor)(nil)

// refCursor reads references to its elements and declares no value type,
// so the value type must be inferred by stripping the indirection.
type refCursor struct {
	strings []string
	index   int
}

func (c *refCursor) Deref() *string { return &c.strings[c.index] }
func (c *refCursor) Member() *string { return &c.strings[c.index] }
func (c *refCursor) Next() *refCursor { c.index++; return c }
func (c *refCursor) Step() *refCursor { prev := *c; c.index++; return &prev }
func (c *refCursor) Equal(oth *refCursor) bool { return c.index == oth.index }
func (c *refCursor) Unequal(oth *refCursor) bool { return c.index != oth.index }
func (c *refCursor) Clone() *refCursor { copied := *c; return &copied }

var _ cursorkit.Cursor[*string, *string, *refCursor] = (*refCursor)(nil)

// pointerValueCursor walks a sequence whose elements are themselves pointers.
// Member access on it yields a pointer to pointer,
// while the declared value type is the single pointer,
// which is correct here and must win over the stripping inference.
type pointerValueCursor struct {
	pointers []*int
	index    int
}

func (c *pointerValueCursor) Deref() *int { return c.pointers[c.index] }
func (c *pointerValueCursor) Member() **int { return &c.pointers[c.index] }
func (c *pointerValueCursor) Next() *pointerValueCursor {
	c.index++
	return c
}
func (c *pointerValueCursor) Step() *pointerValueCursor {
	prev := *c
	c.index++
	return &prev
}
func (c *pointerValueCursor) Equal(oth *pointerValueCursor) bool { return c.index == oth.index }
func (c *pointerValueCursor) Unequal(oth *pointerValueCursor) bool { return c.index != oth.index }
func (c *pointerValueCursor) Clone() *pointerValueCursor {
	copied := *c
	return &copied
}

func (c *pointerValueCursor) ValueType() reflect.Type { return reflect.TypeOf((*int)(nil)) }

var _ cursorkit.Cursor[*int, **int, *pointerValueCursor] = (*pointerValueCursor)(nil)
var _ cursorkit.ValueTyped = (*pointerValueCursor)(nil)
