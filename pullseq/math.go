package pullseq

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"lazyseq/ordering"
)

// Number covers the types the numeric producers and folds operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds all items together. An empty sequence sums to 0.
func Sum[T Number](src Sequence[T]) T {
	var total T
	for {
		v, ok := src.Next()
		if !ok {
			return total
		}
		total += v
	}
}

// Product multiplies all items together. An empty sequence has product 1.
func Product[T Number](src Sequence[T]) T {
	total := T(1)
	for {
		v, ok := src.Next()
		if !ok {
			return total
		}
		total *= v
	}
}

// Min drains the sequence and returns its smallest item, or false on empty
// input. When several items tie, the first one encountered wins.
func Min[T cmp.Ordered](src Sequence[T]) (T, bool) {
	return MinBy(src, ordering.Compare[T])
}

// Max drains the sequence and returns its largest item, or false on empty
// input. When several items tie, the first one encountered wins.
func Max[T cmp.Ordered](src Sequence[T]) (T, bool) {
	return MaxBy(src, ordering.Compare[T])
}

// MinBy is Min with an explicit comparator.
func MinBy[T any](src Sequence[T], compare func(a, b T) ordering.Ordering) (T, bool) {
	min, ok := src.Next()
	if !ok {
		return min, false
	}
	for {
		v, ok := src.Next()
		if !ok {
			return min, true
		}
		// Strict comparison keeps the first of equal items.
		if compare(v, min) == ordering.Less {
			min = v
		}
	}
}

// MaxBy is Max with an explicit comparator.
func MaxBy[T any](src Sequence[T], compare func(a, b T) ordering.Ordering) (T, bool) {
	max, ok := src.Next()
	if !ok {
		return max, false
	}
	for {
		v, ok := src.Next()
		if !ok {
			return max, true
		}
		if compare(v, max) == ordering.Greater {
			max = v
		}
	}
}
