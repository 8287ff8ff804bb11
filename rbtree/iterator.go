// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/containers/fault"
)

// Iterator - position of one item in a Map
//
// Iterators are values and can be compared with ==; the end position
// of a map compares equal to its End().
type Iterator[K, V any] struct {
	tree *tree[K, V]
	node *Node[K, V]
}

// IsEnd - true if the iterator is past the last item
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.tree || it.tree.sentinel == it.node
}

// Next - the item with the next highest key, or End() after the last
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.IsEnd() {
		return it
	}
	return Iterator[K, V]{tree: it.tree, node: it.tree.successor(it.node)}
}

// Prev - the item with the next lowest key, or End() before the first
//
// Prev of End() is the last item
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if nil == it.tree {
		return it
	}
	if it.tree.sentinel == it.node {
		return Iterator[K, V]{tree: it.tree, node: it.tree.last()}
	}
	return Iterator[K, V]{tree: it.tree, node: it.tree.predecessor(it.node)}
}

// Key - read the key of the item
func (it Iterator[K, V]) Key() K {
	if it.IsEnd() {
		fault.Panic(fault.ErrDereferenceEnd)
	}
	return it.node.key
}

// Value - pointer to the value of the item, valid until the item is erased
func (it Iterator[K, V]) Value() *V {
	if it.IsEnd() {
		fault.Panic(fault.ErrDereferenceEnd)
	}
	return &it.node.value
}
