package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/constlist/maybe"
)

// node is a single link of a list: one element and the list it has been
// pushed onto. Nodes are never written after construction.
type node[T any] struct {
	first T
	rest  List[T]
}

// List is an immutable singly-linked list. The zero value is the empty list
// and may be used as a package-level initializer without further ado.
//
// Copying a List copies a single pointer. Two lists are == if and only if
// they share the same head node, which is identity, not equality of elements.
type List[T any] struct {
	head *node[T]
}

// New returns the empty list. It is identical to the zero value of List.
func New[T any]() List[T] {
	return List[T]{}
}

// Of creates a list holding values, with values[0] at the head.
func Of[T any](values ...T) List[T] {
	tracer().Debugf("creating list from %d values", len(values))
	var l List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Push(values[i])
	}
	return l
}

// Push returns a new list with value in front of l. l is left unchanged and
// becomes the tail of the new list.
func (l List[T]) Push(value T) List[T] {
	return List[T]{head: &node[T]{first: value, rest: l}}
}

// Pop decomposes l into its first element and the rest of the list.
// Popping the empty list returns (Nothing, l); this may be repeated any
// number of times.
func (l List[T]) Pop() (maybe.Maybe[T], List[T]) {
	if l.head == nil {
		return maybe.Nothing[T](), l
	}
	return maybe.Just(l.head.first), l.head.rest
}

// First returns the head element of l, if any.
func (l List[T]) First() maybe.Maybe[T] {
	first, _ := l.Pop()
	return first
}

// Rest returns l without its head element. The rest of the empty list is
// the empty list.
func (l List[T]) Rest() List[T] {
	_, rest := l.Pop()
	return rest
}

// Get returns the element at zero-based position index, counted from the head.
// For index < 0 or index ≥ l.Len(), Nothing is returned.
func (l List[T]) Get(index int) maybe.Maybe[T] {
	if l.head == nil || index < 0 {
		return maybe.Nothing[T]()
	}
	if index == 0 {
		return maybe.Just(l.head.first)
	}
	return l.head.rest.Get(index - 1)
}

// Len counts the elements of l. The count is not cached, thus Len is O(n).
func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.rest.Len() + 1
}

// IsEmpty is true for the empty list. It is O(1), contrary to Len() == 0.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Iter returns a cursor positioned at the head of l.
func (l List[T]) Iter() *Cursor[T] {
	return &Cursor[T]{remaining: l}
}

// ForEach calls f for every element of l, head first.
func (l List[T]) ForEach(f func(T)) {
	c := l.Iter()
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		f(v)
	}
}

// Slice returns the elements of l as a newly allocated slice, head first.
// The empty list returns a nil slice.
func (l List[T]) Slice() []T {
	var s []T
	l.ForEach(func(v T) {
		s = append(s, v)
	})
	return s
}

// Fold combines the elements of l head to tail, starting with zero:
//
//     Fold(Of(1, 2, 3), z, f) = f(f(f(z, 1), 2), 3)
//
func Fold[T, R any](l List[T], zero R, f func(R, T) R) R {
	if l.head == nil {
		return zero
	}
	return Fold(l.head.rest, f(zero, l.head.first), f)
}

// SharesTailWith is true if l and other have at least one node in common.
// As nodes are immutable, a common node implies a common suffix from there on.
func (l List[T]) SharesTailWith(other List[T]) bool {
	a, b := l, other
	la, lb := a.Len(), b.Len()
	for ; la > lb; la-- {
		a = a.Rest()
	}
	for ; lb > la; lb-- {
		b = b.Rest()
	}
	for a.head != nil {
		if a.head == b.head {
			tracer().Debugf("lists share a tail of length %d", la)
			return true
		}
		a, b = a.Rest(), b.Rest()
		la--
	}
	return false
}

// String prints l in Lisp-notation, e.g. "(8 4 2)".
func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	i := 0
	l.ForEach(func(v T) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", v))
		i++
	})
	b.WriteByte(')')
	return b.String()
}
