package pullseq

import "iter"

// Values exposes the sequence to Go's range-over-func construct:
//
//	for v := range pullseq.Values(seq) { ... }
//
// Breaking out of the loop simply stops pulling; the sequence keeps its
// position and can be consumed further afterwards.
func Values[T any](src Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := src.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq adapts a push-style iter.Seq into a pull sequence, built on the
// standard library's iter.Pull.
//
// The result is one-shot: it cannot be cloned, so Cycle rejects it. Callers
// that abandon it before exhaustion should call Stop to release the
// underlying coroutine; draining it fully releases it as well.
func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

// SeqSource is the pull side of a bridged iter.Seq.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (s *SeqSource[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
	}
	return v, ok
}

// Stop releases the bridged iterator early. The sequence is exhausted from
// then on. Stop is idempotent and safe after exhaustion.
func (s *SeqSource[T]) Stop() {
	if !s.done {
		s.done = true
		s.stop()
	}
}
