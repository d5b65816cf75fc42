/*
Package persistent is the home of the immutable persistent data structures of
this module.

Immutable persistent data structures are data structures which can be copied and "modified"
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them, the cons-list being the oldest and simplest of them all.

*Persistent* immutable data structures offer structural sharing: if two data structures are
mostly copies of each other, most of the memory they take up will be shared between them.
Sharing is invisible to clients except through identity. As nothing is ever written after
construction, structures may be read from any number of goroutines without locking.

Sub-package list implements a singly-linked list whose zero value is the empty list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
