// Package rangekit contains generic sequence processing helpers
// that consume paired bounds ranges of cursors.
//
// The helpers only rely on the cursorkit.Cursor capability set,
// so they work the same with native cursors and with normalized (Wrapped) ones.
package rangekit

import (
	"iter"
	"slices"

	"go.llib.dev/cursorkit"
)

// Pipe applies a pipeline stage to a range.
// It is the application operator of `range | adaptor` style pipelines:
// the stage value describes the transformation,
// Pipe applies it and hands back the transformed range for the next stage.
//
// cursorkit.NormalizeRange is a valid stage,
// so normalization can be requested as a step in a chain of transformations.
func Pipe[R, M any, In cursorkit.Cursor[R, M, In], Out cursorkit.Cursor[R, M, Out]](
	r cursorkit.Range[R, M, In],
	stage func(cursorkit.Range[R, M, In]) cursorkit.Range[R, M, Out],
) cursorkit.Range[R, M, Out] {
	return stage(r)
}

// Filter returns the sub sequence of r with the elements pred selects.
// The returned range is lazy, it traverses r's cursors on demand,
// and its bounds are independent clones, so r's own cursors are never moved.
func Filter[R, M any, C cursorkit.Cursor[R, M, C]](
	r cursorkit.Range[R, M, C],
	pred func(R) bool,
) cursorkit.Range[R, M, *FilterCursor[R, M, C]] {
	begin := &FilterCursor[R, M, C]{cur: r.Begin.Clone(), end: r.End.Clone(), pred: pred}
	begin.settle()
	end := &FilterCursor[R, M, C]{cur: r.End.Clone(), end: r.End.Clone(), pred: pred}
	return cursorkit.Over[R, M](begin, end)
}

// FilterCursor is the cursor type Filter ranges traverse with.
// It forwards reads and comparisons to the underlying cursor,
// and skips ahead over rejected elements on advancement.
type FilterCursor[R, M any, C cursorkit.Cursor[R, M, C]] struct {
	cur  C
	end  C
	pred func(R) bool
}

func (fc *FilterCursor[R, M, C]) Deref() R {
	return fc.cur.Deref()
}

func (fc *FilterCursor[R, M, C]) Member() M {
	return fc.cur.Member()
}

func (fc *FilterCursor[R, M, C]) Next() *FilterCursor[R, M, C] {
	fc.cur = fc.cur.Next()
	fc.settle()
	return fc
}

func (fc *FilterCursor[R, M, C]) Step() *FilterCursor[R, M, C] {
	prev := fc.Clone()
	fc.cur = fc.cur.Next()
	fc.settle()
	return prev
}

func (fc *FilterCursor[R, M, C]) Equal(oth *FilterCursor[R, M, C]) bool {
	return fc.cur.Equal(oth.cur)
}

func (fc *FilterCursor[R, M, C]) Unequal(oth *FilterCursor[R, M, C]) bool {
	return fc.cur.Unequal(oth.cur)
}

func (fc *FilterCursor[R, M, C]) Clone() *FilterCursor[R, M, C] {
	return &FilterCursor[R, M, C]{cur: fc.cur.Clone(), end: fc.end.Clone(), pred: fc.pred}
}

// settle forwards the cursor to the next position pred selects, or to the end.
func (fc *FilterCursor[R, M, C]) settle() {
	for fc.cur.Unequal(fc.end) && !fc.pred(fc.cur.Deref()) {
		fc.cur = fc.cur.Next()
	}
}

// Values returns the elements of the range as a standard iterator sequence.
// Traversal happens on an independent clone of the begin bound,
// so ranging over the result does not move the range's own cursors,
// and a multi pass safe cursor can be ranged over repeatedly.
func Values[R, M any, C cursorkit.Cursor[R, M, C]](r cursorkit.Range[R, M, C]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for cur := r.Begin.Clone(); cur.Unequal(r.End); cur = cur.Next() {
			if !yield(cur.Deref()) {
				return
			}
		}
	}
}

// Collect walks the range and returns its elements as a slice.
func Collect[R, M any, C cursorkit.Cursor[R, M, C]](r cursorkit.Range[R, M, C]) []R {
	return slices.Collect(Values(r))
}

// Count walks the range and returns the number of its elements.
func Count[R, M any, C cursorkit.Cursor[R, M, C]](r cursorkit.Range[R, M, C]) int {
	var n int
	for range Values(r) {
		n++
	}
	return n
}
