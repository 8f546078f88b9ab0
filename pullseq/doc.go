/*
Package pullseq is a pull-based lazy sequence engine: pipelines of
transformations over sources of unknown or infinite length, evaluated one
item at a time, with no intermediate collections.

Everything is built on a single primitive, [Sequence]: a cursor whose Next
method returns the next item or reports exhaustion. Producers create leaf
sequences ([FromSlice], [Range], [Repeat], [Successors], ...), adaptors wrap
one or two upstream sequences into a new one ([Map], [Filter], [Zip],
[Chain], [StepBy], ...), and consumers drain a sequence to a final value
([Collect], [Fold], [Count], [Cmp], ...). Nothing runs until pulled: an
adaptor only advances its upstream when it is itself advanced, and never
further than it needs for its current output (the one exception is the
single buffered slot of [Peekable] and [IntersperseWith]).

	evens := pullseq.Filter(pullseq.Range(0, 100, 1), func(v int) bool {
		return v%2 == 0
	})
	squares := pullseq.Map(evens, func(v int) int { return v * v })
	out := pullseq.Collect(pullseq.Take(squares, 5))

# Exhaustion

Exhaustion is sticky. Once Next reports false, every later call reports
false too; advancing an exhausted sequence is always well defined. Consumers
rely on this, and adaptors preserve it.

# Ownership

An adaptor exclusively owns its upstream sequence(s). Do not advance a
sequence directly after handing it to an adaptor, and do not hand the same
sequence to two adaptors; composition is a linear chain, not a graph.

# Cloning and Cycle

Sequences whose cursor state can be duplicated implement [Cloneable].
[Cycle] depends on this to restart from a snapshot of its upstream, and
panics at construction when handed a one-shot source ([FromSeq],
[InfiniteGenerator], [FiniteGenerator]). All other producers, and every
adaptor over cloneable upstreams, clone fine.

# Infinite sequences

Infinite producers combined with an unbounded consumer will not return.
Bounding the pipeline ([Take], [TakeWhile], or a [Zip] against a finite
sequence) is the caller's job, as is not asking [Filter] for an item its
predicate will never accept.

# Host iteration

[Values] bridges a sequence into Go's range-over-func construct, and
[FromSeq] adapts an existing iter.Seq into a pull sequence.
*/
package pullseq
