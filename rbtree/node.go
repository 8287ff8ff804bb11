// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Node - a single tree node, also the unit of allocation
//
// Allocators for a Map[K, V] must provide Node[K, V] values; the
// fields are private to the tree.
type Node[K, V any] struct {
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	red    bool // false for black
	key    K
	value  V
}

// allocate a node and fill in its data, links are set by the caller
func (t *tree[K, V]) newNode(key K, value V) *Node[K, V] {
	node := t.allocator.Allocate()
	node.key = key
	node.value = value
	node.red = false
	return node
}

// return a node to the allocator
func (t *tree[K, V]) freeNode(node *Node[K, V]) {
	node.parent = nil
	node.left = nil
	node.right = nil
	t.allocator.Free(node)
}

// a sentinel is black and all of its links point to the nil sentinel
func (t *tree[K, V]) newSentinel(link *Node[K, V]) *Node[K, V] {
	node := t.allocator.Allocate()
	if nil == link {
		link = node
	}
	node.parent = link
	node.left = link
	node.right = link
	node.red = false
	return node
}
