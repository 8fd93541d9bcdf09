// Package cursorkit normalizes user defined cursor types into a complete,
// self consistent iteration protocol.
//
// # Summary
//
// A cursor represents a position in a sequence that can be read, advanced forward
// and compared against another position for equality.
// Writing a fully conformant cursor is surprisingly difficult:
// besides the operations themselves, sequence processing libraries expect
// a cursor to describe its element value type, the integer type it measures
// distance with, and the traversal strength it supports.
// In practice most hand written cursors either omit parts of this metadata,
// or declare values that drifted away from what the cursor's operations actually do.
//
// cursorkit takes any cursor type that provides the minimal capability set,
// and wraps it into a value that is guaranteed to expose a complete Metadata descriptor,
// while forwarding every operation to the wrapped cursor unchanged.
// The result can be consumed uniformly by generic sequence processing code
// without each consumer re-deriving or guessing the cursor's capabilities.
//
// The read and structured read result types of the descriptor are authoritative:
// they always come from the actual operation signatures, never from self declaration.
// The remaining fields honour the cursor's own declaration when present,
// and fall back to a documented inference rule when not.
//
// Every failure mode of the package is static:
// a type that lacks part of the capability set does not compile against Wrap or Adopt.
// There is no runtime error path.
package cursorkit

import "reflect"

// Cursor is the minimal capability set a position type has to provide
// in order to be normalized.
//
// R is the result type of the read operation (Deref),
// M is the result type of the structured read operation (Member),
// and C is the implementing cursor type itself.
// The cursor type parameter comes last on purpose:
// call sites of Wrap, Adopt and Over only need to spell out the result types,
// the cursor type is then inferred from the argument.
//
// Cursor operations are expected on the pointer receiver of the implementing type,
// and C is that pointer type, so advancing moves the cursor value the pointer refers to.
type Cursor[R, M, C any] interface {
	// Deref reads the element at the current position.
	// Deref is expected to be repeatable without side effects.
	Deref() R
	// Member reads the element for member access.
	// It is the structured counterpart of Deref,
	// used when the elements themselves have an inner structure worth reaching into.
	Member() M
	// Next advances the cursor forward, and returns the advanced cursor.
	Next() C
	// Step advances the cursor forward,
	// and returns the snapshot that was taken just before advancing.
	Step() C
	// Equal tells whether two cursors stand at the same position.
	Equal(C) bool
	// Unequal is the negated form of Equal.
	Unequal(C) bool
	// Clone returns an independent copy of the cursor value.
	// Advancing the copy must not move the original.
	Clone() C
}

// ValueTyped is an optional capability.
// A cursor that knows the element value type of its sequence can declare it explicitly,
// and the declaration wins over inference,
// since an explicit declaration may carry intent the inference rule cannot see.
type ValueTyped interface {
	ValueType() reflect.Type
}

// DistanceTyped is an optional capability.
// A cursor can declare the signed integer type it measures positional distance with.
type DistanceTyped interface {
	DistanceType() reflect.Type
}

// Categorized is an optional capability.
// A cursor can advertise a traversal strength stronger than the single pass default.
type Categorized interface {
	CursorCategory() Category
}
