package list

import "github.com/npillmayer/constlist/maybe"

// Cursor is a forward iterator over the elements of a list. Its only state is
// the part of the list not yet visited. Advancing a cursor consumes its
// position; to start over, get a fresh cursor from the list.
//
//     c := l.Iter()
//     for v, ok := c.Next(); ok; v, ok = c.Next() {
//         …
//     }
//
// A cursor captures the list it has been created from. As lists are
// immutable, pushing onto any list later on does not affect a cursor.
type Cursor[T any] struct {
	remaining List[T]
}

// Advance pops the next element off the remaining list. At the end, Nothing
// is returned, for any number of calls.
func (c *Cursor[T]) Advance() maybe.Maybe[T] {
	assertThat(c != nil, "attempt to advance a nil cursor")
	first, rest := c.remaining.Pop()
	c.remaining = rest
	return first
}

// Next is Advance in comma-ok style.
func (c *Cursor[T]) Next() (T, bool) {
	return c.Advance().Get()
}

// Remaining returns the list of elements not yet visited.
func (c *Cursor[T]) Remaining() List[T] {
	return c.remaining
}
