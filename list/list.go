// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list

import (
	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/memory"
)

type ownership int

const (
	borrowed ownership = iota
	owned
)

// Node - one element, also the unit of allocation
type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	value T
}

type body[T comparable] struct {
	head      *Node[T]
	tail      *Node[T]
	size      int
	allocator memory.Allocator[Node[T]]
	ownership ownership
}

// List - sequence with constant time insertion and removal anywhere
type List[T comparable] struct {
	b *body[T]
}

// Iterator - position of one element; the zero End() iterator is
// past the last element
type Iterator[T comparable] struct {
	b    *body[T]
	node *Node[T]
}

// New - an empty list owning a heap allocator
func New[T comparable]() *List[T] {
	return &List[T]{
		b: &body[T]{
			allocator: &memory.DefaultAllocator[Node[T]]{},
			ownership: owned,
		},
	}
}

// NewWithAllocator - an empty list borrowing the caller's allocator
func NewWithAllocator[T comparable](allocator memory.Allocator[Node[T]]) *List[T] {
	return &List[T]{
		b: &body[T]{
			allocator: allocator,
			ownership: borrowed,
		},
	}
}

// NewPool - a pool sized for the nodes of a List[T]
func NewPool[T any](numChunks int) *memory.PoolAllocator[Node[T]] {
	return memory.NewPoolAllocator[Node[T]](numChunks)
}

func (l *List[T]) live() *body[T] {
	if nil == l.b {
		fault.Panic(fault.ErrMovedFrom)
	}
	return l.b
}

func (b *body[T]) newNode(value T) *Node[T] {
	node := b.allocator.Allocate()
	node.value = value
	node.prev = nil
	node.next = nil
	return node
}

// link node in front of before, or at the tail if before is nil
func (b *body[T]) link(node *Node[T], before *Node[T]) {
	if nil == before {
		node.prev = b.tail
		if nil != b.tail {
			b.tail.next = node
		} else {
			b.head = node
		}
		b.tail = node
	} else {
		node.next = before
		node.prev = before.prev
		if nil != before.prev {
			before.prev.next = node
		} else {
			b.head = node
		}
		before.prev = node
	}
	b.size += 1
}

// unlink and free a node, returns the node that followed it
func (b *body[T]) unlink(node *Node[T]) *Node[T] {
	next := node.next
	if nil != node.prev {
		node.prev.next = node.next
	} else {
		b.head = node.next
	}
	if nil != node.next {
		node.next.prev = node.prev
	} else {
		b.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	b.allocator.Free(node)
	b.size -= 1
	return next
}

// PushFront - add a value before the first
func (l *List[T]) PushFront(value T) {
	b := l.live()
	b.link(b.newNode(value), b.head)
}

// PushBack - add a value after the last
func (l *List[T]) PushBack(value T) {
	b := l.live()
	b.link(b.newNode(value), nil)
}

// PopFront - remove the first value, nothing happens if empty
func (l *List[T]) PopFront() {
	b := l.live()
	if nil != b.head {
		b.unlink(b.head)
	}
}

// PopBack - remove the last value, nothing happens if empty
func (l *List[T]) PopBack() {
	b := l.live()
	if nil != b.tail {
		b.unlink(b.tail)
	}
}

// Front - the first value
func (l *List[T]) Front() T {
	b := l.live()
	if nil == b.head {
		fault.Panic(fault.ErrEmptyContainer)
	}
	return b.head.value
}

// Back - the last value
func (l *List[T]) Back() T {
	b := l.live()
	if nil == b.tail {
		fault.Panic(fault.ErrEmptyContainer)
	}
	return b.tail.value
}

// Len - number of values
func (l *List[T]) Len() int {
	return l.live().size
}

// Empty - true if there are no values
func (l *List[T]) Empty() bool {
	return 0 == l.live().size
}

// Begin - iterator to the first value
func (l *List[T]) Begin() Iterator[T] {
	b := l.live()
	return Iterator[T]{b: b, node: b.head}
}

// End - iterator past the last value
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{b: l.live()}
}

// Insert - add a value before pos, at the back if pos is End()
//
// returns the iterator to the new value
func (l *List[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	b := l.live()
	if b != pos.b {
		fault.Panic(fault.ErrForeignIterator)
	}
	node := b.newNode(value)
	b.link(node, pos.node)
	return Iterator[T]{b: b, node: node}
}

// Erase - remove the value at pos, returns the iterator to the next one
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	b := l.live()
	if b != pos.b {
		fault.Panic(fault.ErrForeignIterator)
	}
	if nil == pos.node {
		fault.Panic(fault.ErrEraseEnd)
	}
	return Iterator[T]{b: b, node: b.unlink(pos.node)}
}

// Remove - erase every value equal to value, returns the number removed
func (l *List[T]) Remove(value T) int {
	return l.RemoveIf(func(v T) bool {
		return v == value
	})
}

// RemoveIf - erase every value matching predicate, returns the number removed
func (l *List[T]) RemoveIf(predicate func(T) bool) int {
	b := l.live()
	n := 0
	for node := b.head; nil != node; {
		if predicate(node.value) {
			node = b.unlink(node)
			n += 1
		} else {
			node = node.next
		}
	}
	return n
}

// Find - iterator to the first value equal to value, End() if none
func (l *List[T]) Find(value T) Iterator[T] {
	b := l.live()
	for node := b.head; nil != node; node = node.next {
		if node.value == value {
			return Iterator[T]{b: b, node: node}
		}
	}
	return Iterator[T]{b: b}
}

// Clear - remove all values
func (l *List[T]) Clear() {
	l.live().clear()
}

func (b *body[T]) clear() {
	for node := b.head; nil != node; {
		next := node.next
		node.prev = nil
		node.next = nil
		b.allocator.Free(node)
		node = next
	}
	b.head = nil
	b.tail = nil
	b.size = 0
}

func (b *body[T]) copyTo(allocator memory.Allocator[Node[T]], o ownership) *body[T] {
	c := &body[T]{
		allocator: allocator,
		ownership: o,
	}
	for node := b.head; nil != node; node = node.next {
		c.link(c.newNode(node.value), nil)
	}
	return c
}

func (b *body[T]) clone() *body[T] {
	if owned == b.ownership {
		return b.copyTo(memory.New(b.allocator), owned)
	}
	return b.copyTo(b.allocator, borrowed)
}

// Clone - a copy of all values in order
func (l *List[T]) Clone() *List[T] {
	return &List[T]{b: l.live().clone()}
}

// CloneWith - a copy using a borrowed allocator
func (l *List[T]) CloneWith(allocator memory.Allocator[Node[T]]) *List[T] {
	return &List[T]{b: l.live().copyTo(allocator, borrowed)}
}

// Assign - replace the contents with a copy of other
func (l *List[T]) Assign(other *List[T]) {
	source := other.live()
	if l.b == source {
		return
	}
	l.Destroy()
	l.b = source.clone()
}

// Move - transfer the values to a new list
func (l *List[T]) Move() *List[T] {
	moved := &List[T]{b: l.live()}
	l.b = nil
	return moved
}

// MoveFrom - destroy the current contents and take over other's
func (l *List[T]) MoveFrom(other *List[T]) {
	source := other.live()
	if l.b == source {
		return
	}
	l.Destroy()
	l.b = source
	other.b = nil
}

// Swap - exchange contents with other
func (l *List[T]) Swap(other *List[T]) {
	l.b, other.b = other.b, l.b
}

// Destroy - free every node and release an owned allocator
func (l *List[T]) Destroy() {
	b := l.b
	if nil == b {
		return
	}
	b.clear()
	if owned == b.ownership {
		memory.Release(b.allocator)
	}
	l.b = nil
}

// IsEnd - true if past the last value
func (it Iterator[T]) IsEnd() bool {
	return nil == it.node
}

// Next - the following value
func (it Iterator[T]) Next() Iterator[T] {
	if nil == it.node {
		return it
	}
	return Iterator[T]{b: it.b, node: it.node.next}
}

// Prev - the preceding value; Prev of End() is the last value
func (it Iterator[T]) Prev() Iterator[T] {
	if nil == it.node {
		if nil == it.b {
			return it
		}
		return Iterator[T]{b: it.b, node: it.b.tail}
	}
	return Iterator[T]{b: it.b, node: it.node.prev}
}

// Value - pointer to the value at the iterator
func (it Iterator[T]) Value() *T {
	if nil == it.node {
		fault.Panic(fault.ErrDereferenceEnd)
	}
	return &it.node.value
}
