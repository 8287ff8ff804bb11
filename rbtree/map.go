// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
	"io"

	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/memory"
)

// Map - ordered key to value container
type Map[K, V any] struct {
	tree *tree[K, V]
}

// NewMap - an empty map that owns a heap allocator
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return NewMapFunc[K, V](cmp.Compare[K])
}

// NewMapFunc - an empty map ordered by compare, which returns a
// negative, zero or positive value like cmp.Compare
func NewMapFunc[K, V any](compare func(a K, b K) int) *Map[K, V] {
	return &Map[K, V]{
		tree: newTree[K, V](compare, &memory.DefaultAllocator[Node[K, V]]{}, owned),
	}
}

// NewMapWithAllocator - an empty map borrowing the caller's allocator
//
// the allocator must outlive the map and is not released by Destroy
func NewMapWithAllocator[K cmp.Ordered, V any](allocator memory.Allocator[Node[K, V]]) *Map[K, V] {
	return NewMapFuncWithAllocator[K, V](cmp.Compare[K], allocator)
}

// NewMapFuncWithAllocator - custom order and a borrowed allocator
func NewMapFuncWithAllocator[K, V any](compare func(a K, b K) int, allocator memory.Allocator[Node[K, V]]) *Map[K, V] {
	return &Map[K, V]{
		tree: newTree[K, V](compare, allocator, borrowed),
	}
}

// NewMapWithPool - an empty map owning a pool allocator
func NewMapWithPool[K cmp.Ordered, V any](numChunks int) *Map[K, V] {
	return &Map[K, V]{
		tree: newTree[K, V](cmp.Compare[K], NewPool[K, V](numChunks), owned),
	}
}

// NewPool - a pool sized for the nodes of a Map[K, V], to be shared
// through NewMapWithAllocator
func NewPool[K, V any](numChunks int) *memory.PoolAllocator[Node[K, V]] {
	return memory.NewPoolAllocator[Node[K, V]](numChunks)
}

// access the tree, a moved from or destroyed map has none
func (m *Map[K, V]) live() *tree[K, V] {
	if nil == m.tree {
		fault.Panic(fault.ErrMovedFrom)
	}
	return m.tree
}

func (m *Map[K, V]) iterator(node *Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{tree: m.tree, node: node}
}

// Index - pointer to the value for key, inserting a zero value if the
// key is not present
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	node, _ := m.live().insertUnique(key, zero)
	return &node.value
}

// Insert - add the key and value if the key is not already present
//
// returns the iterator to the item with the key and true if it was
// added; an existing value is not changed and nothing is allocated
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	node, added := m.live().insertUnique(key, value)
	return m.iterator(node), added
}

// TrustedInsert - add the key and value without looking for it first
//
// only for keys known to be absent, e.g. after Find returned End();
// inserting a duplicate key breaks the ordering
func (m *Map[K, V]) TrustedInsert(key K, value V) Iterator[K, V] {
	t := m.live()
	return m.iterator(t.insert(t.newNode(key, value)))
}

// Find - iterator to the item with key or End() if not present
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return m.iterator(m.live().search(key))
}

// Get - copy of the value for key
func (m *Map[K, V]) Get(key K) (V, bool) {
	t := m.live()
	node := t.search(key)
	if t.sentinel == node {
		var zero V
		return zero, false
	}
	return node.value, true
}

// Contains - true if key is present
func (m *Map[K, V]) Contains(key K) bool {
	t := m.live()
	return t.sentinel != t.search(key)
}

// Erase - remove the item at the iterator
//
// the iterator must belong to this map and must not be End()
func (m *Map[K, V]) Erase(it Iterator[K, V]) {
	t := m.live()
	if t != it.tree {
		fault.Panic(fault.ErrForeignIterator)
	}
	if t.sentinel == it.node {
		fault.Panic(fault.ErrEraseEnd)
	}
	t.delete(it.node)
}

// EraseKey - remove the item with key, returns the number removed (0 or 1)
func (m *Map[K, V]) EraseKey(key K) int {
	t := m.live()
	node := t.search(key)
	if t.sentinel == node {
		return 0
	}
	t.delete(node)
	return 1
}

// Clear - remove all items, the allocator is kept
func (m *Map[K, V]) Clear() {
	m.live().clear()
}

// Begin - iterator to the lowest key, End() if empty
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.iterator(m.live().first())
}

// End - iterator past the highest key
func (m *Map[K, V]) End() Iterator[K, V] {
	return m.iterator(m.live().sentinel)
}

// Last - iterator to the highest key, End() if empty
func (m *Map[K, V]) Last() Iterator[K, V] {
	return m.iterator(m.live().last())
}

// Len - number of items
func (m *Map[K, V]) Len() int {
	return m.live().size
}

// Empty - true if there are no items
func (m *Map[K, V]) Empty() bool {
	return 0 == m.live().size
}

// Allocator - the allocator providing the nodes
func (m *Map[K, V]) Allocator() memory.Allocator[Node[K, V]] {
	return m.live().allocator
}

// OwnsAllocator - true if Destroy will release the allocator
func (m *Map[K, V]) OwnsAllocator() bool {
	return owned == m.live().ownership
}

// Clone - a copy of all items
//
// a map owning its allocator gives a copy owning a new allocator of
// the same kind; a map borrowing an allocator gives a copy sharing it
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.live().clone()}
}

// CloneWith - a copy of all items using a borrowed allocator
func (m *Map[K, V]) CloneWith(allocator memory.Allocator[Node[K, V]]) *Map[K, V] {
	return &Map[K, V]{tree: m.live().copyTo(allocator, borrowed)}
}

// Assign - replace the contents with a copy of other
//
// allowed on a moved from or destroyed map
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	source := other.live()
	if m.tree == source {
		return
	}
	m.Destroy()
	m.tree = source.clone()
}

// Move - transfer all items and the allocator to a new map, leaving
// this one unusable until Assign or MoveFrom
func (m *Map[K, V]) Move() *Map[K, V] {
	moved := &Map[K, V]{tree: m.live()}
	m.tree = nil
	return moved
}

// MoveFrom - destroy the current contents and take over other's
func (m *Map[K, V]) MoveFrom(other *Map[K, V]) {
	source := other.live()
	if m.tree == source {
		return
	}
	m.Destroy()
	m.tree = source
	other.tree = nil
}

// Swap - exchange contents and allocators with other
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree, other.tree = other.tree, m.tree
}

// Destroy - free every node and release an owned allocator
//
// the map is unusable afterwards until Assign or MoveFrom; destroying
// twice is harmless
func (m *Map[K, V]) Destroy() {
	if nil == m.tree {
		return
	}
	m.tree.destroy()
	m.tree = nil
}

// Check - verify the tree structure, returns nil if consistent
func (m *Map[K, V]) Check() error {
	return m.live().check()
}

// Print - write an ASCII graphic of the tree, returns its depth
func (m *Map[K, V]) Print(w io.Writer, printData bool) int {
	return m.live().print(w, printData)
}
