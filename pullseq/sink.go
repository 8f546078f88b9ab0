package pullseq

// ForEach drains the sequence, calling visit on every item.
func ForEach[T any](src Sequence[T], visit func(T)) {
	for {
		v, ok := src.Next()
		if !ok {
			return
		}
		visit(v)
	}
}

// Collect drains the sequence into a new slice, preserving order.
// An empty sequence collects to a nil slice.
func Collect[T any](src Sequence[T]) []T {
	return AppendTo(src, nil)
}

// CollectWithSizeHint is Collect with pre-allocated capacity, for callers
// that know (or can bound) the length of the sequence.
func CollectWithSizeHint[T any](src Sequence[T], sizeHint int) []T {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return AppendTo(src, make([]T, 0, sizeHint))
}

// AppendTo drains the sequence onto the end of dst and returns the extended
// slice.
func AppendTo[T any](src Sequence[T], dst []T) []T {
	for {
		v, ok := src.Next()
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}

// Partition splits the sequence into two slices: items the predicate
// rejected, then items it accepted. Relative order is preserved in both.
func Partition[T any](src Sequence[T], predicate func(T) bool) (rejected, accepted []T) {
	for {
		v, ok := src.Next()
		if !ok {
			return rejected, accepted
		}
		if predicate(v) {
			accepted = append(accepted, v)
		} else {
			rejected = append(rejected, v)
		}
	}
}

// Count drains the sequence and returns the number of items it yielded.
func Count[T any](src Sequence[T]) int {
	n := 0
	for {
		if _, ok := src.Next(); !ok {
			return n
		}
		n++
	}
}

// Last drains the sequence and returns its final item, or false if the
// sequence was empty.
func Last[T any](src Sequence[T]) (T, bool) {
	var last T
	found := false
	for {
		v, ok := src.Next()
		if !ok {
			return last, found
		}
		last = v
		found = true
	}
}

// Nth returns the item at the given zero-based index, advancing the
// sequence index+1 times. It returns false if the sequence is shorter than
// that, or if the index is negative.
func Nth[T any](src Sequence[T], index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	for {
		v, ok := src.Next()
		if !ok {
			return zero, false
		}
		if index == 0 {
			return v, true
		}
		index--
	}
}

// Fold reduces the sequence to a single value, starting from initial and
// combining the accumulator with each item in turn. An empty sequence folds
// to initial.
func Fold[T, R any](src Sequence[T], initial R, combine func(R, T) R) R {
	acc := initial
	for {
		v, ok := src.Next()
		if !ok {
			return acc
		}
		acc = combine(acc, v)
	}
}

// Reduce is Fold seeded with the first item of the sequence. It reports
// false for an empty sequence; in every other case a value is returned.
func Reduce[T any](src Sequence[T], combine func(T, T) T) (T, bool) {
	acc, ok := src.Next()
	if !ok {
		return acc, false
	}
	for {
		v, ok := src.Next()
		if !ok {
			return acc, true
		}
		acc = combine(acc, v)
	}
}

// All reports whether predicate holds for every item, stopping at the first
// failure (so the sequence may not be fully consumed). True on empty input.
func All[T any](src Sequence[T], predicate func(T) bool) bool {
	for {
		v, ok := src.Next()
		if !ok {
			return true
		}
		if !predicate(v) {
			return false
		}
	}
}

// Any reports whether predicate holds for at least one item, stopping at
// the first hit. False on empty input.
func Any[T any](src Sequence[T], predicate func(T) bool) bool {
	for {
		v, ok := src.Next()
		if !ok {
			return false
		}
		if predicate(v) {
			return true
		}
	}
}

// Find returns the first item satisfying predicate, advancing the sequence
// just past it.
func Find[T any](src Sequence[T], predicate func(T) bool) (T, bool) {
	for {
		v, ok := src.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if predicate(v) {
			return v, true
		}
	}
}

// Position returns the zero-based index of the first item satisfying
// predicate, or false if no item does.
func Position[T any](src Sequence[T], predicate func(T) bool) (int, bool) {
	idx := 0
	for {
		v, ok := src.Next()
		if !ok {
			return 0, false
		}
		if predicate(v) {
			return idx, true
		}
		idx++
	}
}
