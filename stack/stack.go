// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - a LIFO container over a forward list
package stack

import (
	"github.com/bitmark-inc/containers/forwardlist"
	"github.com/bitmark-inc/containers/memory"
	"github.com/bitmark-inc/containers/stacklist"
)

// Stack - last in first out container
type Stack[T any] struct {
	l forwardlist.ForwardList[T]
}

// New - an empty stack owning a heap allocator
func New[T any]() *Stack[T] {
	return &Stack[T]{l: *forwardlist.New[T]()}
}

// NewWithAllocator - an empty stack borrowing the caller's allocator
func NewWithAllocator[T any](allocator memory.Allocator[stacklist.Node[T]]) *Stack[T] {
	return &Stack[T]{l: *forwardlist.NewWithAllocator[T](allocator)}
}

// Push - put a value on top
func (s *Stack[T]) Push(value T) {
	s.l.PushFront(value)
}

// Pop - remove the top value, nothing happens if empty
func (s *Stack[T]) Pop() {
	s.l.PopFront()
}

// Top - pointer to the top value, panics if empty
func (s *Stack[T]) Top() *T {
	return s.l.Front()
}

// Len - number of values
func (s *Stack[T]) Len() int {
	return s.l.Len()
}

// Empty - true if there are no values
func (s *Stack[T]) Empty() bool {
	return s.l.Empty()
}

// Clear - remove all values
func (s *Stack[T]) Clear() {
	s.l.Clear()
}

// Clone - a copy with the same top
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{l: *s.l.Clone()}
}

// Assign - replace the contents with a copy of other
func (s *Stack[T]) Assign(other *Stack[T]) {
	s.l.Assign(&other.l)
}

// Move - transfer the values to a new stack
func (s *Stack[T]) Move() *Stack[T] {
	return &Stack[T]{l: *s.l.Move()}
}

// MoveFrom - destroy the current contents and take over other's
func (s *Stack[T]) MoveFrom(other *Stack[T]) {
	s.l.MoveFrom(&other.l)
}

// Swap - exchange contents with other
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.l.Swap(&other.l)
}

// Destroy - free every node and release an owned allocator
func (s *Stack[T]) Destroy() {
	s.l.Destroy()
}
