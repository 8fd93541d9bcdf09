package cursorkit

import "reflect"

// Metadata is the descriptor a normalized cursor exposes about itself.
//
// ReadResult and MemberResult are authoritative:
// they always equal the actual result types of the cursor's Deref and Member operations,
// regardless of anything the cursor declares about itself.
// Self declared metadata is the single most commonly wrong piece of a hand written cursor,
// while the real operation signatures are cheap to look up precisely.
//
// Value, Distance and Category honour the cursor's own declaration when present,
// and fall back to a documented inference rule when not.
type Metadata struct {
	// ReadResult is the result type of the Deref operation.
	ReadResult reflect.Type
	// MemberResult is the result type of the Member operation.
	MemberResult reflect.Type
	// Value is the element value type of the sequence.
	Value reflect.Type
	// Distance is the signed integer type positional distance is measured with.
	Distance reflect.Type
	// Category is the traversal strength of the cursor.
	Category Category
}

// Infer computes the Metadata descriptor of a cursor type.
//
// The read and member result types are taken from the R and M bindings,
// which the compiler unifies with the cursor's actual operation signatures,
// so they can never disagree with what Deref and Member really return.
// The remaining fields are resolved through the optional capability interfaces:
//   - Value: the cursor's ValueType declaration,
//     else the read result type with one level of indirection stripped.
//   - Distance: the cursor's DistanceType declaration,
//     else int, the platform's pointer difference width.
//   - Category: the cursor's CursorCategory declaration,
//     else CategorySinglePass.
func Infer[R, M any, C Cursor[R, M, C]](cur C) Metadata {
	var (
		readResult   = reflect.TypeOf((*R)(nil)).Elem()
		memberResult = reflect.TypeOf((*M)(nil)).Elem()
	)
	return Metadata{
		ReadResult:   readResult,
		MemberResult: memberResult,
		Value:        inferValue(cur, readResult),
		Distance:     inferDistance(cur),
		Category:     inferCategory(cur),
	}
}

func inferValue(cur any, readResult reflect.Type) reflect.Type {
	if vt, ok := cur.(ValueTyped); ok {
		if T := vt.ValueType(); T != nil {
			return T
		}
	}
	return stripIndirection(readResult)
}

// stripIndirection removes a single level of indirection,
// so a cursor whose reads yield references to X has the inferred value type X.
// Deeper levels are kept: a sequence may legitimately hold pointer values.
func stripIndirection(T reflect.Type) reflect.Type {
	if T.Kind() == reflect.Pointer {
		return T.Elem()
	}
	return T
}

var intType = reflect.TypeOf(int(0))

func inferDistance(cur any) reflect.Type {
	if dt, ok := cur.(DistanceTyped); ok {
		if T := dt.DistanceType(); T != nil {
			return T
		}
	}
	return intType
}

func inferCategory(cur any) Category {
	if ct, ok := cur.(Categorized); ok {
		return ct.CursorCategory()
	}
	return CategorySinglePass
}
