// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/containers/memory"
)

// how a tree relates to its allocator
type ownership int

const (
	borrowed ownership = iota // caller keeps the allocator
	owned                     // released when the tree is destroyed
)

// the shared implementation behind Map and Set
type tree[K, V any] struct {
	compare   func(a K, b K) int
	sentinel  *Node[K, V] // the nil node
	root      *Node[K, V] // root.left is the actual root
	allocator memory.Allocator[Node[K, V]]
	ownership ownership
	size      int
}

// create an empty tree, the two sentinels are the only allocations
func newTree[K, V any](compare func(a K, b K) int, allocator memory.Allocator[Node[K, V]], o ownership) *tree[K, V] {
	t := &tree[K, V]{
		compare:   compare,
		allocator: allocator,
		ownership: o,
	}
	t.sentinel = t.newSentinel(nil)
	t.root = t.newSentinel(t.sentinel)
	return t
}

// free all data nodes leaving an empty tree
func (t *tree[K, V]) clear() {
	t.destroyHelper(t.root.left)
	t.root.left = t.sentinel
	t.size = 0
}

// post-order release of a sub-tree
func (t *tree[K, V]) destroyHelper(x *Node[K, V]) {
	if t.sentinel == x {
		return
	}
	t.destroyHelper(x.left)
	t.destroyHelper(x.right)
	t.freeNode(x)
}

// free every node including the sentinels and release an owned allocator
func (t *tree[K, V]) destroy() {
	t.clear()
	t.freeNode(t.root)
	t.freeNode(t.sentinel)
	t.root = nil
	t.sentinel = nil
	if owned == t.ownership {
		memory.Release(t.allocator)
	}
	t.allocator = nil
}

// copy all items in order into a new tree using the given allocator
func (t *tree[K, V]) copyTo(allocator memory.Allocator[Node[K, V]], o ownership) *tree[K, V] {
	c := newTree(t.compare, allocator, o)
	for x := t.first(); t.sentinel != x; x = t.successor(x) {
		c.insert(c.newNode(x.key, x.value))
	}
	return c
}

// a copy that follows the ownership of the source
//
// an owned allocator is replaced by a fresh one of the same kind, a
// borrowed one is shared
func (t *tree[K, V]) clone() *tree[K, V] {
	if owned == t.ownership {
		return t.copyTo(memory.New(t.allocator), owned)
	}
	return t.copyTo(t.allocator, borrowed)
}
