package pullseq

// FromSlice returns a sequence over the elements of a slice, in order.
// The slice is borrowed, not copied; it must not be resized while the
// sequence is in use.
func FromSlice[T any](values []T) Sequence[T] {
	return &sliceSeq[T]{data: values, end: len(values)}
}

// sliceSeq advances a begin index toward an end index.
type sliceSeq[T any] struct {
	data       []T
	begin, end int
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if s.begin == s.end {
		var zero T
		return zero, false
	}
	v := s.data[s.begin]
	s.begin++
	return v, true
}

func (s *sliceSeq[T]) Clone() (Sequence[T], bool) {
	c := *s
	return &c, true
}

// Cursor describes a position inside an in-memory collection. Next returns
// the position of the following element without modifying the receiver;
// Equal reports whether two positions address the same element. The type
// parameter C is the concrete cursor type itself.
type Cursor[T, C any] interface {
	Value() T
	Next() C
	Equal(C) bool
}

// FromCursors returns a sequence over the values between two positions of
// the same collection, begin inclusive, end exclusive.
func FromCursors[T any, C Cursor[T, C]](begin, end C) Sequence[T] {
	return &cursorSeq[T, C]{cur: begin, end: end}
}

type cursorSeq[T any, C Cursor[T, C]] struct {
	cur, end C
}

func (s *cursorSeq[T, C]) Next() (T, bool) {
	if s.cur.Equal(s.end) {
		var zero T
		return zero, false
	}
	v := s.cur.Value()
	s.cur = s.cur.Next()
	return v, true
}

func (s *cursorSeq[T, C]) Clone() (Sequence[T], bool) {
	c := *s
	return &c, true
}

// Range returns a sequence counting from start (inclusive) to end
// (exclusive) in increments of step.
//
// A zero or negative step is accepted: depending on the direction it
// produces an empty or a never-ending sequence, and the caller is expected
// to bound the latter with Take or TakeWhile.
func Range[T Number](start, end, step T) Sequence[T] {
	return &rangeSeq[T]{current: start, bound: end, step: step}
}

// RangeInclusive is Range with an inclusive upper bound.
func RangeInclusive[T Number](start, end, step T) Sequence[T] {
	return &rangeSeq[T]{current: start, bound: end, step: step, inclusive: true}
}

type rangeSeq[T Number] struct {
	current, bound, step T
	inclusive            bool
}

func (r *rangeSeq[T]) Next() (T, bool) {
	// The bound is checked before yielding, so an exhausted range never
	// moves its cursor again.
	if r.inclusive && r.current > r.bound || !r.inclusive && r.current >= r.bound {
		var zero T
		return zero, false
	}
	v := r.current
	r.current += r.step
	return v, true
}

func (r *rangeSeq[T]) Clone() (Sequence[T], bool) {
	c := *r
	return &c, true
}

// InfiniteRange counts from start in increments of step, forever.
func InfiniteRange[T Number](start, step T) Sequence[T] {
	return &counterSeq[T]{value: start, step: step}
}

type counterSeq[T Number] struct {
	value, step T
}

func (c *counterSeq[T]) Next() (T, bool) {
	v := c.value
	c.value += c.step
	return v, true
}

func (c *counterSeq[T]) Clone() (Sequence[T], bool) {
	d := *c
	return &d, true
}

// Empty returns a sequence with no elements.
func Empty[T any]() Sequence[T] {
	return emptySeq[T]{}
}

type emptySeq[T any] struct{}

func (emptySeq[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

func (e emptySeq[T]) Clone() (Sequence[T], bool) {
	return e, true
}

// Once returns a sequence that yields value exactly once.
func Once[T any](value T) Sequence[T] {
	return &onceSeq[T]{value: value}
}

type onceSeq[T any] struct {
	value T
	done  bool
}

func (o *onceSeq[T]) Next() (T, bool) {
	if o.done {
		var zero T
		return zero, false
	}
	o.done = true
	return o.value, true
}

func (o *onceSeq[T]) Clone() (Sequence[T], bool) {
	c := *o
	return &c, true
}

// OnceWith returns a sequence that yields the result of produce exactly
// once. produce is not called until the sequence is first advanced.
func OnceWith[T any](produce func() T) Sequence[T] {
	if produce == nil {
		panic("pullseq: OnceWith requires a non-nil callback")
	}
	return &onceWithSeq[T]{produce: produce}
}

type onceWithSeq[T any] struct {
	produce func() T
	done    bool
}

func (o *onceWithSeq[T]) Next() (T, bool) {
	if o.done {
		var zero T
		return zero, false
	}
	o.done = true
	return o.produce(), true
}

func (o *onceWithSeq[T]) Clone() (Sequence[T], bool) {
	c := *o
	return &c, true
}

// Repeat returns a sequence that yields the same value forever.
func Repeat[T any](value T) Sequence[T] {
	return repeatSeq[T]{value: value}
}

type repeatSeq[T any] struct {
	value T
}

func (r repeatSeq[T]) Next() (T, bool) {
	return r.value, true
}

func (r repeatSeq[T]) Clone() (Sequence[T], bool) {
	return r, true
}

// InfiniteGenerator yields the result of calling generate, forever.
//
// The generator function may close over mutable state, so the returned
// sequence cannot be cloned or cycled.
func InfiniteGenerator[T any](generate func() T) Sequence[T] {
	if generate == nil {
		panic("pullseq: InfiniteGenerator requires a non-nil callback")
	}
	return &generatorSeq[T]{generate: generate}
}

type generatorSeq[T any] struct {
	generate func() T
}

func (g *generatorSeq[T]) Next() (T, bool) {
	return g.generate(), true
}

// FiniteGenerator yields the results of calling generate until it reports
// false. Exhaustion is decided once: after the first false the sequence
// stays exhausted and generate is never called again, even if it would
// report a value on a later call.
func FiniteGenerator[T any](generate func() (T, bool)) Sequence[T] {
	if generate == nil {
		panic("pullseq: FiniteGenerator requires a non-nil callback")
	}
	return &finiteGeneratorSeq[T]{generate: generate}
}

type finiteGeneratorSeq[T any] struct {
	generate func() (T, bool)
	done     bool
}

func (g *finiteGeneratorSeq[T]) Next() (T, bool) {
	if g.done {
		var zero T
		return zero, false
	}
	v, ok := g.generate()
	if !ok {
		g.done = true
		var zero T
		return zero, false
	}
	return v, true
}

// Successors yields seed, then each value computed from the previous one by
// next, stopping (permanently) when next reports false. A sequence with no
// seed at all is spelled Empty.
func Successors[T any](seed T, next func(T) (T, bool)) Sequence[T] {
	if next == nil {
		panic("pullseq: Successors requires a non-nil callback")
	}
	return &successorsSeq[T]{value: seed, ok: true, next: next}
}

type successorsSeq[T any] struct {
	value T
	ok    bool
	next  func(T) (T, bool)
}

func (s *successorsSeq[T]) Next() (T, bool) {
	if !s.ok {
		var zero T
		return zero, false
	}
	v := s.value
	s.value, s.ok = s.next(v)
	return v, true
}

func (s *successorsSeq[T]) Clone() (Sequence[T], bool) {
	c := *s
	return &c, true
}
