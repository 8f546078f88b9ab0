// Package ordering defines an explicit three-way comparison result, used by
// the pullseq comparators instead of raw signed integers.
//
// A total comparator has the shape func(a, b T) ordering.Ordering.
// A partial comparator additionally reports whether the two values are
// comparable at all: func(a, b T) (ordering.Ordering, bool). The bool is
// false when no ordering exists between the values (for example a float
// comparison involving NaN).
package ordering

import "cmp"

// Ordering is the result of comparing two values.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return "Equal"
	}
}

// Reverse flips the ordering, so that Less becomes Greater and vice versa.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Compare totally orders two values of an ordered type.
// NaN values sort before all other float values, following cmp.Compare.
func Compare[T cmp.Ordered](a, b T) Ordering {
	return Ordering(cmp.Compare(a, b))
}

// PartialCompare orders two values of an ordered type, reporting false when
// the values are incomparable (either side is NaN).
func PartialCompare[T cmp.Ordered](a, b T) (Ordering, bool) {
	switch {
	case a < b:
		return Less, true
	case a > b:
		return Greater, true
	case a == b:
		return Equal, true
	default:
		// NaN on either side compares false against everything.
		return Equal, false
	}
}
