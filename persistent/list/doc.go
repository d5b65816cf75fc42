/*
Package list implements an immutable, singly-linked list with structural sharing.

Pushing an element onto a list produces a new list head which references,
but does not copy, the list it has been pushed onto. The original list is left
unchanged and stays usable, so any number of lists may share a common tail:

	var empty list.List[int]     // the zero value is the empty list
	a := empty.Push(1).Push(2)   // (2 1)
	b := a.Push(3)               // (3 2 1), shares a
	c := a.Push(4)               // (4 2 1), shares a as well

Nodes are never written after construction. Every operation is a pure
function of its receiver, and lists are safe for concurrent reads without
locking, as long as the element values themselves are.

Queries never fail. Asking for an element which does not exist yields
maybe.Nothing, popping the empty list yields the empty list again.

Recursion

Get, Len and Fold descend the chain recursively, with a recursion depth
equal to the length of the list. Goroutine stacks grow on demand, but for
these operations lists are supported up to MaxRecursionDepth elements only.
Iteration with a Cursor, ForEach, Slice and String is not affected by this
limit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// MaxRecursionDepth is the maximum list length supported by the recursive
// operations Get, Len and Fold.
const MaxRecursionDepth = 1 << 20

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
