package compare

// Ordering is the outcome of comparing two values that may not share a type.
//
// Less, Equal and Greater carry the usual meaning. Incomparable is a sentinel
// result, not an error: it is returned when the right-hand side is not
// something the left-hand side knows how to order against.
type Ordering int8

const (
	Less         Ordering = -1
	Equal        Ordering = 0
	Greater      Ordering = 1
	Incomparable Ordering = 2
)

// FromInt maps the sign of a three-way comparison result (as returned by
// cmp.Compare or slices.Compare) onto an Ordering.
func FromInt(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Comparable reports whether the ordering is anything but Incomparable.
func (o Ordering) Comparable() bool {
	return o == Less || o == Equal || o == Greater
}

// IsLess reports o == Less. Incomparable is never less.
func (o Ordering) IsLess() bool {
	return o == Less
}

// IsLessOrEqual reports o == Less || o == Equal.
func (o Ordering) IsLessOrEqual() bool {
	return o == Less || o == Equal
}

// IsGreater reports o == Greater.
func (o Ordering) IsGreater() bool {
	return o == Greater
}

// IsGreaterOrEqual reports o == Greater || o == Equal.
func (o Ordering) IsGreaterOrEqual() bool {
	return o == Greater || o == Equal
}

// String returns a human-readable representation of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Incomparable:
		return "incomparable"
	default:
		return "not recognized"
	}
}
