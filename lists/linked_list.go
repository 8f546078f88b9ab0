// Package lists provides a doubly linked list whose positions satisfy the
// pullseq cursor contract, so a list (or any part of one) can feed a pull
// pipeline via pullseq.FromCursors.
package lists

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrIndexOutOfBounds = errors.New("lists: index out of bounds")

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list with head and tail sentinels.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any](values ...T) *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.Add(values...)
	return ll
}

// insertAfter links newNode in directly after indexNode.
func (ll *LinkedList[T]) insertAfter(indexNode, newNode *node[T]) {
	newNode.prev = indexNode
	newNode.next = indexNode.next
	indexNode.next.prev = newNode
	indexNode.next = newNode
	ll.size++
}

// findNodeAt returns the node at index, walking from whichever end is
// closer. Bounds checking is the caller's job; index == size addresses the
// tail sentinel.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

// AddFirst prepends a value to the list.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertAfter(ll.headSentinel, &node[T]{val: value})
}

// Get retrieves the element at the specified index.
func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.findNodeAt(index).val, nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

// Position is an immutable location inside a LinkedList. Positions form
// half-open ranges: [list.Begin(), list.End()) covers the whole list.
// Advancing the end position is invalid.
//
// Position satisfies the pullseq cursor contract (Value, Next, Equal).
type Position[T any] struct {
	node *node[T]
}

// Begin returns the position of the first element. For an empty list it
// equals End.
func (ll *LinkedList[T]) Begin() Position[T] {
	return Position[T]{node: ll.headSentinel.next}
}

// End returns the position one past the last element.
func (ll *LinkedList[T]) End() Position[T] {
	return Position[T]{node: ll.tailSentinel}
}

// PositionAt returns the position of the element at index. Index size is
// allowed and addresses End.
func (ll *LinkedList[T]) PositionAt(index int) (Position[T], error) {
	if index < 0 || index > ll.size {
		return Position[T]{}, ErrIndexOutOfBounds
	}
	return Position[T]{node: ll.findNodeAt(index)}, nil
}

// Value returns the element at the position.
func (p Position[T]) Value() T {
	return p.node.val
}

// Next returns the position of the following element without modifying the
// receiver.
func (p Position[T]) Next() Position[T] {
	return Position[T]{node: p.node.next}
}

// Equal reports whether two positions address the same element of the same
// list.
func (p Position[T]) Equal(other Position[T]) bool {
	return p.node == other.node
}

// Values iterates the list front to back.
func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		fmt.Fprintf(&sb, "%v", current.val)
		if current.next != ll.tailSentinel {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
