package cursorkit

// Category describes the traversal strength of a cursor.
// Sequence processing algorithms use it to decide
// whether multi pass traversal, equality based distance computation
// or random positioning is allowed with a given cursor.
type Category int

const (
	// CategorySinglePass is the weakest category:
	// forward only, single pass, without any multi pass safety guarantee.
	// It is the conservative default for cursors that do not advertise anything stronger.
	CategorySinglePass Category = iota
	// CategoryForward allows repeated passes over the same sequence.
	CategoryForward
	// CategoryBidirectional additionally allows walking the sequence backwards.
	CategoryBidirectional
	// CategoryRandomAccess additionally allows jumping to arbitrary positions.
	CategoryRandomAccess
)

// AtLeast tells whether the category is at least as strong as the given one.
func (c Category) AtLeast(oth Category) bool {
	return oth <= c
}

func (c Category) String() string {
	switch c {
	case CategorySinglePass:
		return "single-pass"
	case CategoryForward:
		return "forward"
	case CategoryBidirectional:
		return "bidirectional"
	case CategoryRandomAccess:
		return "random-access"
	default:
		return "invalid"
	}
}
