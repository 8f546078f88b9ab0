package pullseq

import "fmt"

// StepBy yields the first upstream item, then every step-th item after it.
// A step of 1 reproduces the upstream. A step of zero or less is invalid and
// yields an empty sequence without the upstream ever being pulled.
func StepBy[T any](src Sequence[T], step int) Sequence[T] {
	if step <= 0 {
		return Empty[T]()
	}
	return &stepBySeq[T]{src: src, step: step, first: true}
}

type stepBySeq[T any] struct {
	src   Sequence[T]
	step  int
	first bool
	done  bool
}

func (s *stepBySeq[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	if s.first {
		s.first = false
	} else {
		// Discard the step-1 items between the previous yield and this one.
		for i := 1; i < s.step; i++ {
			if _, ok := s.src.Next(); !ok {
				s.done = true
				return zero, false
			}
		}
	}
	v, ok := s.src.Next()
	if !ok {
		s.done = true
		return zero, false
	}
	return v, true
}

func (s *stepBySeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(s.src)
	if !ok {
		return nil, false
	}
	c := *s
	c.src = src
	return &c, true
}

// SkipWhile drops leading items while predicate holds, then yields the rest
// unfiltered, starting with the first item the predicate rejected. The
// predicate is never called again after its first false result.
func SkipWhile[T any](src Sequence[T], predicate func(T) bool) Sequence[T] {
	if predicate == nil {
		panic("pullseq: SkipWhile requires a non-nil callback")
	}
	return &skipWhileSeq[T]{src: src, predicate: predicate, skipping: true}
}

type skipWhileSeq[T any] struct {
	src       Sequence[T]
	predicate func(T) bool
	skipping  bool
}

func (s *skipWhileSeq[T]) Next() (T, bool) {
	if !s.skipping {
		return s.src.Next()
	}
	for {
		v, ok := s.src.Next()
		if !ok {
			s.skipping = false
			var zero T
			return zero, false
		}
		if !s.predicate(v) {
			s.skipping = false
			return v, true
		}
	}
}

func (s *skipWhileSeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(s.src)
	if !ok {
		return nil, false
	}
	return &skipWhileSeq[T]{src: src, predicate: s.predicate, skipping: s.skipping}, true
}

// TakeWhile yields items while predicate holds. The first rejected item is
// discarded and the sequence is exhausted from then on, regardless of what
// the upstream would still produce.
func TakeWhile[T any](src Sequence[T], predicate func(T) bool) Sequence[T] {
	if predicate == nil {
		panic("pullseq: TakeWhile requires a non-nil callback")
	}
	return &takeWhileSeq[T]{src: src, predicate: predicate}
}

type takeWhileSeq[T any] struct {
	src       Sequence[T]
	predicate func(T) bool
	done      bool
}

func (t *takeWhileSeq[T]) Next() (T, bool) {
	var zero T
	if t.done {
		return zero, false
	}
	v, ok := t.src.Next()
	if !ok || !t.predicate(v) {
		t.done = true
		return zero, false
	}
	return v, true
}

func (t *takeWhileSeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(t.src)
	if !ok {
		return nil, false
	}
	return &takeWhileSeq[T]{src: src, predicate: t.predicate, done: t.done}, true
}

// Skip discards the first n upstream items. n <= 0 leaves the upstream
// unchanged. The discarding is lazy: nothing is pulled until the first call.
func Skip[T any](src Sequence[T], n int) Sequence[T] {
	return &skipSeq[T]{src: src, remaining: n}
}

type skipSeq[T any] struct {
	src       Sequence[T]
	remaining int
}

func (s *skipSeq[T]) Next() (T, bool) {
	for s.remaining > 0 {
		s.remaining--
		if _, ok := s.src.Next(); !ok {
			var zero T
			return zero, false
		}
	}
	return s.src.Next()
}

func (s *skipSeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(s.src)
	if !ok {
		return nil, false
	}
	return &skipSeq[T]{src: src, remaining: s.remaining}, true
}

// Take yields at most the first n upstream items. n <= 0 is empty without
// the upstream ever being pulled.
func Take[T any](src Sequence[T], n int) Sequence[T] {
	return &takeSeq[T]{src: src, remaining: n}
}

type takeSeq[T any] struct {
	src       Sequence[T]
	remaining int
}

func (t *takeSeq[T]) Next() (T, bool) {
	if t.remaining <= 0 {
		var zero T
		return zero, false
	}
	t.remaining--
	v, ok := t.src.Next()
	if !ok {
		t.remaining = 0
		var zero T
		return zero, false
	}
	return v, true
}

func (t *takeSeq[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(t.src)
	if !ok {
		return nil, false
	}
	return &takeSeq[T]{src: src, remaining: t.remaining}, true
}

// Cycle repeats src endlessly by restarting from a snapshot of the sequence
// as it was when Cycle was called. It panics at construction if src cannot
// be cloned (one-shot sources like FiniteGenerator or FromSeq), rather than
// failing at the first restart.
//
// A src whose first pass yields nothing stays empty forever; Cycle never
// spins on an empty source.
func Cycle[T any](src Sequence[T]) Sequence[T] {
	original, ok := CloneSequence(src)
	if !ok {
		panic(fmt.Sprintf("pullseq: Cycle requires a cloneable sequence, %T is one-shot", src))
	}
	return &cycleSeq[T]{original: original, current: src}
}

type cycleSeq[T any] struct {
	original Sequence[T] // snapshot from construction time, never advanced
	current  Sequence[T]

	passYielded bool
	done        bool
}

func (c *cycleSeq[T]) Next() (T, bool) {
	var zero T
	if c.done {
		return zero, false
	}
	for {
		if v, ok := c.current.Next(); ok {
			c.passYielded = true
			return v, true
		}
		if !c.passYielded {
			c.done = true
			return zero, false
		}
		fresh, ok := CloneSequence(c.original)
		if !ok {
			c.done = true
			return zero, false
		}
		c.current = fresh
		c.passYielded = false
	}
}

func (c *cycleSeq[T]) Clone() (Sequence[T], bool) {
	original, ok := CloneSequence(c.original)
	if !ok {
		return nil, false
	}
	current, ok := CloneSequence(c.current)
	if !ok {
		return nil, false
	}
	return &cycleSeq[T]{
		original:    original,
		current:     current,
		passYielded: c.passYielded,
		done:        c.done,
	}, true
}

// Peekable wraps a sequence with a one-slot lookahead so that the next item
// can be inspected without being consumed.
type Peekable[T any] struct {
	src   Sequence[T]
	state lookaheadState
	item  T
}

// The lookahead slot distinguishes "not yet computed" from "computed,
// upstream exhausted", so repeated peeks never re-touch the upstream.
type lookaheadState uint8

const (
	lookaheadUnresolved lookaheadState = iota
	lookaheadItem
	lookaheadEnd
)

// NewPeekable wraps src. The upstream must not be advanced directly once it
// is wrapped, or the buffered lookahead goes stale.
func NewPeekable[T any](src Sequence[T]) *Peekable[T] {
	return &Peekable[T]{src: src}
}

// Peek returns the next item without consuming it. Peeking advances the
// upstream at most once; calling Peek again before Next returns the
// identical result without touching the upstream.
func (p *Peekable[T]) Peek() (T, bool) {
	if p.state == lookaheadUnresolved {
		if v, ok := p.src.Next(); ok {
			p.item = v
			p.state = lookaheadItem
		} else {
			p.state = lookaheadEnd
		}
	}
	if p.state == lookaheadItem {
		return p.item, true
	}
	var zero T
	return zero, false
}

func (p *Peekable[T]) Next() (T, bool) {
	switch p.state {
	case lookaheadItem:
		v := p.item
		var zero T
		p.item = zero
		p.state = lookaheadUnresolved
		return v, true
	case lookaheadEnd:
		var zero T
		return zero, false
	default:
		v, ok := p.src.Next()
		if !ok {
			p.state = lookaheadEnd
		}
		return v, ok
	}
}

func (p *Peekable[T]) Clone() (Sequence[T], bool) {
	src, ok := CloneSequence(p.src)
	if !ok {
		return nil, false
	}
	return &Peekable[T]{src: src, state: p.state, item: p.item}, true
}
