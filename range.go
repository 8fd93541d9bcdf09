package cursorkit

// Range is the paired bounds shape sequence processing helpers consume:
// the half open interval [Begin, End) of a sequence.
type Range[R, M any, C Cursor[R, M, C]] struct {
	Begin C
	End   C
}

// Over packages a begin and an end cursor into a Range.
func Over[R, M any, C Cursor[R, M, C]](begin, end C) Range[R, M, C] {
	return Range[R, M, C]{Begin: begin, End: end}
}

// WrapRange normalizes both bounds of a sequence,
// so the resulting range can be consumed by generic sequence processing code.
func WrapRange[R, M any, C Cursor[R, M, C]](begin, end C) Range[R, M, *Wrapped[R, M, C]] {
	return Over[R, M](Wrap[R, M, C](begin), Wrap[R, M, C](end))
}

// NormalizeRange is WrapRange in pipeline stage form:
// applying it to a range yields exactly WrapRange of that range's bounds.
// It is meant to be passed to the pipeline application of a sequence library,
// such as rangekit.Pipe.
func NormalizeRange[R, M any, C Cursor[R, M, C]](r Range[R, M, C]) Range[R, M, *Wrapped[R, M, C]] {
	return WrapRange[R, M, C](r.Begin, r.End)
}
