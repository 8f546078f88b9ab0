package pullseq

import (
	"cmp"

	"lazyseq/ordering"
)

// IsSortedAscending reports whether no item is less than the one before it.
// It stops at the first out-of-order pair, so the sequence may not be fully
// consumed. Sequences of fewer than two items are trivially sorted.
func IsSortedAscending[T cmp.Ordered](src Sequence[T]) bool {
	return IsSortedBy(src, ordering.Compare[T])
}

// IsSortedDescending reports whether no item is greater than the one before
// it, with the same short-circuit behavior as IsSortedAscending.
func IsSortedDescending[T cmp.Ordered](src Sequence[T]) bool {
	return IsSortedBy(src, func(a, b T) ordering.Ordering {
		return ordering.Compare(a, b).Reverse()
	})
}

// IsSortedBy reports whether the sequence is sorted according to compare,
// meaning no adjacent pair compares Greater-then-lesser.
func IsSortedBy[T any](src Sequence[T], compare func(a, b T) ordering.Ordering) bool {
	prev, ok := src.Next()
	if !ok {
		return true
	}
	for {
		v, ok := src.Next()
		if !ok {
			return true
		}
		if compare(prev, v) == ordering.Greater {
			return false
		}
		prev = v
	}
}

// Cmp lexicographically compares two sequences of an ordered type,
// advancing both in lockstep. A sequence that exhausts first is Less; two
// sequences exhausting together are Equal; otherwise the first unequal pair
// decides.
func Cmp[T cmp.Ordered](first, second Sequence[T]) ordering.Ordering {
	return CmpBy(first, second, ordering.Compare[T])
}

// CmpBy is Cmp with an explicit comparator, allowing the two sequences to
// carry different item types.
func CmpBy[T, U any](first Sequence[T], second Sequence[U], compare func(T, U) ordering.Ordering) ordering.Ordering {
	result, _ := PartialCmpBy(first, second, func(a T, b U) (ordering.Ordering, bool) {
		return compare(a, b), true
	})
	return result
}

// PartialCmp is Cmp under a partial order: it additionally reports false
// when a pair of items is incomparable (float NaN), in which case the walk
// stops at that pair.
func PartialCmp[T cmp.Ordered](first, second Sequence[T]) (ordering.Ordering, bool) {
	return PartialCmpBy(first, second, ordering.PartialCompare[T])
}

// PartialCmpBy is PartialCmp with an explicit partial comparator.
func PartialCmpBy[T, U any](first Sequence[T], second Sequence[U], compare func(T, U) (ordering.Ordering, bool)) (ordering.Ordering, bool) {
	for {
		a, okA := first.Next()
		b, okB := second.Next()
		switch {
		case !okA && !okB:
			return ordering.Equal, true
		case !okA:
			return ordering.Less, true
		case !okB:
			return ordering.Greater, true
		}
		result, ok := compare(a, b)
		if !ok {
			return ordering.Equal, false
		}
		if result != ordering.Equal {
			return result, true
		}
	}
}

// Eq reports whether two sequences have the same length and pairwise equal
// items.
func Eq[T comparable](first, second Sequence[T]) bool {
	return EqBy(first, second, func(a, b T) bool { return a == b })
}

// EqBy is Eq with an explicit equality function.
func EqBy[T, U any](first Sequence[T], second Sequence[U], equal func(T, U) bool) bool {
	for {
		a, okA := first.Next()
		b, okB := second.Next()
		switch {
		case !okA:
			return !okB
		case !okB:
			return false
		case !equal(a, b):
			return false
		}
	}
}

// Ne reports whether the sequences differ in length or in any item.
func Ne[T comparable](first, second Sequence[T]) bool {
	return !Eq(first, second)
}

// Lt reports whether first is lexicographically less than second. It is
// false when the comparison is undefined (an incomparable pair), never
// treating incomparable as equal.
func Lt[T cmp.Ordered](first, second Sequence[T]) bool {
	result, ok := PartialCmp(first, second)
	return ok && result == ordering.Less
}

// Le reports whether first is lexicographically less than or equal to
// second, false when the comparison is undefined.
func Le[T cmp.Ordered](first, second Sequence[T]) bool {
	result, ok := PartialCmp(first, second)
	return ok && result != ordering.Greater
}

// Gt reports whether first is lexicographically greater than second, false
// when the comparison is undefined.
func Gt[T cmp.Ordered](first, second Sequence[T]) bool {
	result, ok := PartialCmp(first, second)
	return ok && result == ordering.Greater
}

// Ge reports whether first is lexicographically greater than or equal to
// second, false when the comparison is undefined.
func Ge[T cmp.Ordered](first, second Sequence[T]) bool {
	result, ok := PartialCmp(first, second)
	return ok && result != ordering.Less
}
