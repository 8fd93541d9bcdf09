package cursorkit

// Wrapped is a normalized cursor: it owns an independent copy of a cursor value,
// forwards every cursor operation to it unchanged,
// and exposes the Metadata descriptor computed for the cursor type.
//
// Wrapped introduces no state of its own beyond the embedded cursor value,
// no buffering and no caching, so the runtime behaviour of a Wrapped cursor
// is exactly the behaviour of the cursor it wraps.
// Thread safety is inherited as well: if the underlying cursor type is not safe
// for concurrent use, neither is its Wrapped form.
//
// The zero value of Wrapped is not meaningful.
// A Wrapped cursor can only come from an existing cursor value through Wrap or Adopt,
// never from nothing, as an arbitrary cursor type has no well defined default position.
type Wrapped[R, M any, C Cursor[R, M, C]] struct {
	cur  C
	meta Metadata
}

// Wrap normalizes a cursor value by copy.
// The given cursor stays unchanged and usable,
// and advancing the returned Wrapped cursor will not move it.
//
// A type that lacks part of the Cursor capability set is rejected here by the compiler.
func Wrap[R, M any, C Cursor[R, M, C]](cur C) *Wrapped[R, M, C] {
	return &Wrapped[R, M, C]{cur: cur.Clone(), meta: Infer[R, M, C](cur)}
}

// Adopt normalizes a cursor value by taking ownership of it.
// The caller is expected to stop using the given value afterwards.
// For cursor types whose state is held directly in the value,
// adoption coincides with a plain copy; this permissive degradation is intended,
// it is not an error.
func Adopt[R, M any, C Cursor[R, M, C]](cur C) *Wrapped[R, M, C] {
	return &Wrapped[R, M, C]{cur: cur, meta: Infer[R, M, C](cur)}
}

// Metadata returns the descriptor computed for the wrapped cursor type.
func (w *Wrapped[R, M, C]) Metadata() Metadata {
	return w.meta
}

// Deref reads the element at the current position of the wrapped cursor.
func (w *Wrapped[R, M, C]) Deref() R {
	return w.cur.Deref()
}

// Member reads the element of the wrapped cursor for member access.
func (w *Wrapped[R, M, C]) Member() M {
	return w.cur.Member()
}

// Next advances the wrapped cursor forward, and returns the advanced cursor.
func (w *Wrapped[R, M, C]) Next() *Wrapped[R, M, C] {
	w.cur = w.cur.Next()
	return w
}

// Step advances the wrapped cursor forward,
// and returns the snapshot that was taken just before advancing.
func (w *Wrapped[R, M, C]) Step() *Wrapped[R, M, C] {
	return &Wrapped[R, M, C]{cur: w.cur.Step(), meta: w.meta}
}

// Equal tells whether the two wrapped cursors stand at the same position.
func (w *Wrapped[R, M, C]) Equal(oth *Wrapped[R, M, C]) bool {
	return w.cur.Equal(oth.cur)
}

// Unequal is the negated form of Equal.
func (w *Wrapped[R, M, C]) Unequal(oth *Wrapped[R, M, C]) bool {
	return w.cur.Unequal(oth.cur)
}

// Clone returns an independent copy of the wrapped cursor.
func (w *Wrapped[R, M, C]) Clone() *Wrapped[R, M, C] {
	return &Wrapped[R, M, C]{cur: w.cur.Clone(), meta: w.meta}
}
