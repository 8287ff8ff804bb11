// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
	"io"

	"github.com/bitmark-inc/containers/memory"
)

// Set - ordered collection of unique values
//
// the nodes of a Set[T] are Node[T, struct{}]
type Set[T any] struct {
	m Map[T, struct{}]
}

// SetIterator - position of one value in a Set
type SetIterator[T any] struct {
	it Iterator[T, struct{}]
}

// NewSet - an empty set that owns a heap allocator
func NewSet[T cmp.Ordered]() *Set[T] {
	return &Set[T]{m: *NewMap[T, struct{}]()}
}

// NewSetFunc - an empty set ordered by compare
func NewSetFunc[T any](compare func(a T, b T) int) *Set[T] {
	return &Set[T]{m: *NewMapFunc[T, struct{}](compare)}
}

// NewSetWithAllocator - an empty set borrowing the caller's allocator
func NewSetWithAllocator[T cmp.Ordered](allocator memory.Allocator[Node[T, struct{}]]) *Set[T] {
	return &Set[T]{m: *NewMapWithAllocator[T, struct{}](allocator)}
}

// NewSetWithPool - an empty set owning a pool allocator
func NewSetWithPool[T cmp.Ordered](numChunks int) *Set[T] {
	return &Set[T]{m: *NewMapWithPool[T, struct{}](numChunks)}
}

// NewSetPool - a pool sized for the nodes of a Set[T]
func NewSetPool[T any](numChunks int) *memory.PoolAllocator[Node[T, struct{}]] {
	return NewPool[T, struct{}](numChunks)
}

// Insert - add the value if not already present
func (s *Set[T]) Insert(value T) (SetIterator[T], bool) {
	it, added := s.m.Insert(value, struct{}{})
	return SetIterator[T]{it: it}, added
}

// TrustedInsert - add a value known to be absent
func (s *Set[T]) TrustedInsert(value T) SetIterator[T] {
	return SetIterator[T]{it: s.m.TrustedInsert(value, struct{}{})}
}

// Find - iterator to value or End() if not present
func (s *Set[T]) Find(value T) SetIterator[T] {
	return SetIterator[T]{it: s.m.Find(value)}
}

// Contains - true if value is present
func (s *Set[T]) Contains(value T) bool {
	return s.m.Contains(value)
}

// Erase - remove the value at the iterator
func (s *Set[T]) Erase(it SetIterator[T]) {
	s.m.Erase(it.it)
}

// EraseKey - remove value, returns the number removed (0 or 1)
func (s *Set[T]) EraseKey(value T) int {
	return s.m.EraseKey(value)
}

// Clear - remove all values
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// Begin - iterator to the lowest value
func (s *Set[T]) Begin() SetIterator[T] {
	return SetIterator[T]{it: s.m.Begin()}
}

// End - iterator past the highest value
func (s *Set[T]) End() SetIterator[T] {
	return SetIterator[T]{it: s.m.End()}
}

// Last - iterator to the highest value
func (s *Set[T]) Last() SetIterator[T] {
	return SetIterator[T]{it: s.m.Last()}
}

// Len - number of values
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// Empty - true if there are no values
func (s *Set[T]) Empty() bool {
	return s.m.Empty()
}

// Allocator - the allocator providing the nodes
func (s *Set[T]) Allocator() memory.Allocator[Node[T, struct{}]] {
	return s.m.Allocator()
}

// OwnsAllocator - true if Destroy will release the allocator
func (s *Set[T]) OwnsAllocator() bool {
	return s.m.OwnsAllocator()
}

// Clone - a copy following the ownership of this set
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{m: *s.m.Clone()}
}

// CloneWith - a copy using a borrowed allocator
func (s *Set[T]) CloneWith(allocator memory.Allocator[Node[T, struct{}]]) *Set[T] {
	return &Set[T]{m: *s.m.CloneWith(allocator)}
}

// Assign - replace the contents with a copy of other
func (s *Set[T]) Assign(other *Set[T]) {
	s.m.Assign(&other.m)
}

// Move - transfer all values to a new set
func (s *Set[T]) Move() *Set[T] {
	return &Set[T]{m: *s.m.Move()}
}

// MoveFrom - destroy the current contents and take over other's
func (s *Set[T]) MoveFrom(other *Set[T]) {
	s.m.MoveFrom(&other.m)
}

// Swap - exchange contents with other
func (s *Set[T]) Swap(other *Set[T]) {
	s.m.Swap(&other.m)
}

// Destroy - free every node and release an owned allocator
func (s *Set[T]) Destroy() {
	s.m.Destroy()
}

// Check - verify the tree structure
func (s *Set[T]) Check() error {
	return s.m.Check()
}

// Print - write an ASCII graphic of the tree, returns its depth
func (s *Set[T]) Print(w io.Writer) int {
	return s.m.Print(w, false)
}

// IsEnd - true if past the last value
func (it SetIterator[T]) IsEnd() bool {
	return it.it.IsEnd()
}

// Next - the next highest value
func (it SetIterator[T]) Next() SetIterator[T] {
	return SetIterator[T]{it: it.it.Next()}
}

// Prev - the next lowest value
func (it SetIterator[T]) Prev() SetIterator[T] {
	return SetIterator[T]{it: it.it.Prev()}
}

// Value - the value at the iterator
func (it SetIterator[T]) Value() T {
	return it.it.Key()
}
