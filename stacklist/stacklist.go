// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stacklist

// Node - one link of the list carrying an owner supplied value
//
// Value must remain the first field: allocators recover the node
// from a pointer to its value.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next - the node below this one, nil at the bottom of the list
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List - the head of a chain of nodes
type List[T any] struct {
	noCopy noCopy
	head   *Node[T]
}

// Push - put a node on top of the list
func (l *List[T]) Push(node *Node[T]) {
	node.next = l.head
	l.head = node
}

// Pop - remove the top node, nil if the list is empty
func (l *List[T]) Pop() *Node[T] {
	top := l.head
	if nil != top {
		l.head = top.next
		top.next = nil
	}
	return top
}

// Top - the top node without removing it, nil if the list is empty
func (l *List[T]) Top() *Node[T] {
	return l.head
}

// IsEmpty - true if no nodes are linked
func (l *List[T]) IsEmpty() bool {
	return nil == l.head
}

// Move - transfer the whole chain to a new list leaving this one empty
func (l *List[T]) Move() List[T] {
	head := l.head
	l.head = nil
	return List[T]{head: head}
}

// noCopy may be embedded into structs which must not be copied
// after the first use; detected by "go vet" copylocks checker
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
