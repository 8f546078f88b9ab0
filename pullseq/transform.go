package pullseq

// Map applies transform to each upstream item, yielding the results.
func Map[T, R any](src Sequence[T], transform func(T) R) Sequence[R] {
	if transform == nil {
		panic("pullseq: Map requires a non-nil callback")
	}
	return &mapSeq[T, R]{src: src, transform: transform}
}

type mapSeq[T, R any] struct {
	src       Sequence[T]
	transform func(T) R
}

func (m *mapSeq[T, R]) Next() (R, bool) {
	v, ok := m.src.Next()
	if !ok {
		var zero R
		return zero, false
	}
	return m.transform(v), true
}

func (m *mapSeq[T, R]) Clone() (Sequence[R], bool) {
	src, ok := CloneSequence(m.src)
	if !ok {
		return nil, false
	}
	return &mapSeq[T, R]{src: src, transform: m.transform}, true
}

// Filter yields only the upstream items for which predicate is true.
// Skipped items are drained from the upstream internally, so a predicate
// that never holds over an infinite upstream will never return.
func Filter[T any](src Sequence[T], predicate func(T) bool) Sequence[T] {
	if predicate == nil {
		panic("pullseq: Filter requires a non-nil callback")
	}
	return &filterSeq[T]{src: src, predicate: predicate}
}

type filterSeq[T any] struct {
	src       Sequence[T]
	predicate func(T) bool
}

func (f *filterSeq[T]) Next() (T, bool) {
	for {
		v, ok := f.src.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if f.predicate(v) {
			return v, true
		}
	}
}

func (f *filterSeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(f.src)
	if !ok {
		return nil, false
	}
	return &filterSeq[T]{src: src, predicate: f.predicate}, true
}

// FilterMap filters and maps in a single pass: items for which transform
// reports false are skipped, the rest are replaced by the reported value.
func FilterMap[T, R any](src Sequence[T], transform func(T) (R, bool)) Sequence[R] {
	if transform == nil {
		panic("pullseq: FilterMap requires a non-nil callback")
	}
	return &filterMapSeq[T, R]{src: src, transform: transform}
}

type filterMapSeq[T, R any] struct {
	src       Sequence[T]
	transform func(T) (R, bool)
}

func (f *filterMapSeq[T, R]) Next() (R, bool) {
	for {
		v, ok := f.src.Next()
		if !ok {
			var zero R
			return zero, false
		}
		if r, keep := f.transform(v); keep {
			return r, true
		}
	}
}

func (f *filterMapSeq[T, R]) Clone() (Sequence[R], bool) {
	src, ok := CloneSequence(f.src)
	if !ok {
		return nil, false
	}
	return &filterMapSeq[T, R]{src: src, transform: f.transform}, true
}

// Chain yields all items of first, then all items of second. The switch
// happens exactly once, when first reports exhaustion; first is never
// advanced again afterwards.
func Chain[T any](first, second Sequence[T]) Sequence[T] {
	return &chainSeq[T]{first: first, second: second}
}

type chainSeq[T any] struct {
	first, second Sequence[T]
	onSecond      bool
}

func (c *chainSeq[T]) Next() (T, bool) {
	if !c.onSecond {
		if v, ok := c.first.Next(); ok {
			return v, true
		}
		c.onSecond = true
	}
	return c.second.Next()
}

func (c *chainSeq[T]) Clone() (Sequence[T], bool) {
	first, ok := CloneSequence(c.first)
	if !ok {
		return nil, false
	}
	second, ok := CloneSequence(c.second)
	if !ok {
		return nil, false
	}
	return &chainSeq[T]{first: first, second: second, onSecond: c.onSecond}, true
}

// Pair holds one item from each side of a Zip.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip advances both sequences in lockstep and yields the items as pairs.
// It is exhausted as soon as either side is exhausted; the item already
// pulled from the longer side for that step is discarded.
func Zip[T1, T2 any](first Sequence[T1], second Sequence[T2]) Sequence[Pair[T1, T2]] {
	return &zipSeq[T1, T2]{first: first, second: second}
}

type zipSeq[T1, T2 any] struct {
	first  Sequence[T1]
	second Sequence[T2]
	done   bool
}

func (z *zipSeq[T1, T2]) Next() (Pair[T1, T2], bool) {
	if z.done {
		return Pair[T1, T2]{}, false
	}
	v1, ok := z.first.Next()
	if !ok {
		z.done = true
		return Pair[T1, T2]{}, false
	}
	v2, ok := z.second.Next()
	if !ok {
		z.done = true
		return Pair[T1, T2]{}, false
	}
	return Pair[T1, T2]{V1: v1, V2: v2}, true
}

func (z *zipSeq[T1, T2]) Clone() (Sequence[Pair[T1, T2]], bool) {
	first, ok := CloneSequence(z.first)
	if !ok {
		return nil, false
	}
	second, ok := CloneSequence(z.second)
	if !ok {
		return nil, false
	}
	return &zipSeq[T1, T2]{first: first, second: second, done: z.done}, true
}

// Enumerate pairs each item with its zero-based index. It is a Zip against
// an infinite counter, so the index occupies V1 and the item V2.
func Enumerate[T any](src Sequence[T]) Sequence[Pair[int, T]] {
	return Zip(InfiniteRange(0, 1), src)
}

// Flatten removes one level of nesting from a sequence of sequences,
// yielding every item of each inner sequence before moving to the next.
func Flatten[T any](src Sequence[Sequence[T]]) Sequence[T] {
	return &flattenSeq[T]{src: src}
}

type flattenSeq[T any] struct {
	src   Sequence[Sequence[T]]
	inner Sequence[T]
	done  bool
}

func (f *flattenSeq[T]) Next() (T, bool) {
	var zero T
	if f.done {
		return zero, false
	}
	for {
		if f.inner != nil {
			if v, ok := f.inner.Next(); ok {
				return v, true
			}
			f.inner = nil
		}
		inner, ok := f.src.Next()
		if !ok {
			f.done = true
			return zero, false
		}
		f.inner = inner
	}
}

func (f *flattenSeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(f.src)
	if !ok {
		return nil, false
	}
	c := &flattenSeq[T]{src: src, done: f.done}
	if f.inner != nil {
		inner, ok := CloneSequence(f.inner)
		if !ok {
			return nil, false
		}
		c.inner = inner
	}
	return c, true
}

// Inspect calls observe on each item before yielding it, without changing
// the item or the shape of the sequence. Useful for debugging a pipeline.
func Inspect[T any](src Sequence[T], observe func(T)) Sequence[T] {
	if observe == nil {
		panic("pullseq: Inspect requires a non-nil callback")
	}
	return &inspectSeq[T]{src: src, observe: observe}
}

type inspectSeq[T any] struct {
	src     Sequence[T]
	observe func(T)
}

func (i *inspectSeq[T]) Next() (T, bool) {
	v, ok := i.src.Next()
	if !ok {
		var zero T
		return zero, false
	}
	i.observe(v)
	return v, true
}

func (i *inspectSeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(i.src)
	if !ok {
		return nil, false
	}
	return &inspectSeq[T]{src: src, observe: i.observe}, true
}

// Intersperse inserts separator between consecutive items, never before the
// first or after the last. Empty and single-item upstreams are unchanged.
func Intersperse[T any](src Sequence[T], separator T) Sequence[T] {
	return IntersperseWith(src, func() T { return separator })
}

// IntersperseWith is Intersperse with a computed separator. The separator
// function is called just before the following real item is yielded, once
// per gap between items.
func IntersperseWith[T any](src Sequence[T], separator func() T) Sequence[T] {
	if separator == nil {
		panic("pullseq: IntersperseWith requires a non-nil callback")
	}
	return &intersperseSeq[T]{src: src, separator: separator}
}

type intersperseSeq[T any] struct {
	src       Sequence[T]
	separator func() T

	// One item of lookahead: the next real item is pulled before the
	// current one is yielded, so that the final item is never followed by
	// a separator.
	lookahead  T
	primed     bool
	sepPending bool
	done       bool
}

func (i *intersperseSeq[T]) Next() (T, bool) {
	var zero T
	if i.done {
		return zero, false
	}
	if !i.primed {
		v, ok := i.src.Next()
		if !ok {
			i.done = true
			return zero, false
		}
		i.lookahead = v
		i.primed = true
	}
	if i.sepPending {
		i.sepPending = false
		return i.separator(), true
	}
	out := i.lookahead
	if v, ok := i.src.Next(); ok {
		i.lookahead = v
		i.sepPending = true
	} else {
		i.lookahead = zero
		i.done = true
	}
	return out, true
}

func (i *intersperseSeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(i.src)
	if !ok {
		return nil, false
	}
	c := *i
	c.src = src
	return &c, true
}
