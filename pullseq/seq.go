package pullseq

// Sequence is a stateful, single-pass cursor over a stream of items.
//
// Next returns the next item and true, or the zero value and false once the
// sequence is exhausted. Exhaustion is sticky: after Next has reported
// false, every later call must report false as well. Calling Next on an
// exhausted sequence is always well defined and never panics.
type Sequence[T any] interface {
	Next() (T, bool)
}

// Cloneable is implemented by sequences whose cursor state can be
// duplicated. Clone returns an independent sequence positioned at the same
// element as the receiver, or false if the receiver wraps a source that
// cannot be duplicated (for example a one-shot generator function).
//
// Adaptors propagate the capability: a Map over a cloneable upstream is
// itself cloneable, a Map over a one-shot source is not.
type Cloneable[T any] interface {
	Sequence[T]
	Clone() (Sequence[T], bool)
}

// CloneSequence duplicates s if its whole chain supports duplication.
func CloneSequence[T any](s Sequence[T]) (Sequence[T], bool) {
	if c, ok := s.(Cloneable[T]); ok {
		return c.Clone()
	}
	return nil, false
}
