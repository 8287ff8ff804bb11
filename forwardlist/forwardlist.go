// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package forwardlist

import (
	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/memory"
	"github.com/bitmark-inc/containers/stacklist"
)

type ownership int

const (
	borrowed ownership = iota
	owned
)

type body[T any] struct {
	items     stacklist.List[T]
	size      int
	allocator memory.Allocator[stacklist.Node[T]]
	ownership ownership
}

// ForwardList - sequence with constant time access at the front
type ForwardList[T any] struct {
	b *body[T]
}

// New - an empty list owning a heap allocator
func New[T any]() *ForwardList[T] {
	return &ForwardList[T]{
		b: &body[T]{
			allocator: &memory.DefaultAllocator[stacklist.Node[T]]{},
			ownership: owned,
		},
	}
}

// NewWithAllocator - an empty list borrowing the caller's allocator
func NewWithAllocator[T any](allocator memory.Allocator[stacklist.Node[T]]) *ForwardList[T] {
	return &ForwardList[T]{
		b: &body[T]{
			allocator: allocator,
			ownership: borrowed,
		},
	}
}

// NewPool - a pool sized for the nodes of a ForwardList[T]
func NewPool[T any](numChunks int) *memory.PoolAllocator[stacklist.Node[T]] {
	return memory.NewPoolAllocator[stacklist.Node[T]](numChunks)
}

func (l *ForwardList[T]) live() *body[T] {
	if nil == l.b {
		fault.Panic(fault.ErrMovedFrom)
	}
	return l.b
}

func (b *body[T]) push(value T) {
	node := b.allocator.Allocate()
	node.Value = value
	b.items.Push(node)
	b.size += 1
}

func (b *body[T]) pop() {
	node := b.items.Pop()
	if nil != node {
		b.allocator.Free(node)
		b.size -= 1
	}
}

// PushFront - add a value before the first
func (l *ForwardList[T]) PushFront(value T) {
	l.live().push(value)
}

// PopFront - remove the first value, nothing happens if empty
func (l *ForwardList[T]) PopFront() {
	l.live().pop()
}

// Front - pointer to the first value
func (l *ForwardList[T]) Front() *T {
	top := l.live().items.Top()
	if nil == top {
		fault.Panic(fault.ErrEmptyContainer)
	}
	return &top.Value
}

// Len - number of values
func (l *ForwardList[T]) Len() int {
	return l.live().size
}

// Empty - true if there are no values
func (l *ForwardList[T]) Empty() bool {
	return 0 == l.live().size
}

// Each - call f for each value from the front until it returns false
func (l *ForwardList[T]) Each(f func(value *T) bool) {
	for node := l.live().items.Top(); nil != node; node = node.Next() {
		if !f(&node.Value) {
			return
		}
	}
}

// Clear - remove all values
func (l *ForwardList[T]) Clear() {
	l.live().clear()
}

func (b *body[T]) clear() {
	for 0 != b.size {
		b.pop()
	}
}

// copy preserving the order from the front
func (b *body[T]) copyTo(allocator memory.Allocator[stacklist.Node[T]], o ownership) *body[T] {
	c := &body[T]{
		allocator: allocator,
		ownership: o,
	}
	values := make([]*T, 0, b.size)
	for node := b.items.Top(); nil != node; node = node.Next() {
		values = append(values, &node.Value)
	}
	for i := len(values) - 1; i >= 0; i -= 1 {
		c.push(*values[i])
	}
	return c
}

func (b *body[T]) clone() *body[T] {
	if owned == b.ownership {
		return b.copyTo(memory.New(b.allocator), owned)
	}
	return b.copyTo(b.allocator, borrowed)
}

// Clone - a copy in the same order
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	return &ForwardList[T]{b: l.live().clone()}
}

// CloneWith - a copy using a borrowed allocator
func (l *ForwardList[T]) CloneWith(allocator memory.Allocator[stacklist.Node[T]]) *ForwardList[T] {
	return &ForwardList[T]{b: l.live().copyTo(allocator, borrowed)}
}

// Assign - replace the contents with a copy of other
func (l *ForwardList[T]) Assign(other *ForwardList[T]) {
	source := other.live()
	if l.b == source {
		return
	}
	l.Destroy()
	l.b = source.clone()
}

// Move - transfer the values to a new list
func (l *ForwardList[T]) Move() *ForwardList[T] {
	moved := &ForwardList[T]{b: l.live()}
	l.b = nil
	return moved
}

// MoveFrom - destroy the current contents and take over other's
func (l *ForwardList[T]) MoveFrom(other *ForwardList[T]) {
	source := other.live()
	if l.b == source {
		return
	}
	l.Destroy()
	l.b = source
	other.b = nil
}

// Swap - exchange contents with other
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	l.b, other.b = other.b, l.b
}

// Destroy - free every node and release an owned allocator
func (l *ForwardList[T]) Destroy() {
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
