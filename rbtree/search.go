// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// binary descent, returns the nil sentinel if key is not present
func (t *tree[K, V]) search(key K) *Node[K, V] {
	x := t.root.left
	for t.sentinel != x {
		switch c := t.compare(key, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return t.sentinel
}

// lowest node or the nil sentinel if empty
func (t *tree[K, V]) first() *Node[K, V] {
	return t.minimum(t.root.left)
}

// highest node or the nil sentinel if empty
func (t *tree[K, V]) last() *Node[K, V] {
	return t.maximum(t.root.left)
}

// internal: lowest node in a sub-tree
func (t *tree[K, V]) minimum(x *Node[K, V]) *Node[K, V] {
	if t.sentinel == x {
		return x
	}
	for t.sentinel != x.left {
		x = x.left
	}
	return x
}

// internal: highest node in a sub-tree
func (t *tree[K, V]) maximum(x *Node[K, V]) *Node[K, V] {
	if t.sentinel == x {
		return x
	}
	for t.sentinel != x.right {
		x = x.right
	}
	return x
}

// the in-order next node or the nil sentinel after the last one
func (t *tree[K, V]) successor(x *Node[K, V]) *Node[K, V] {
	if t.sentinel != x.right {
		return t.minimum(x.right)
	}
	y := x.parent
	for t.sentinel != y && x == y.right {
		x = y
		y = y.parent
	}
	if t.root == y {
		return t.sentinel
	}
	return y
}

// the in-order previous node or the nil sentinel before the first one
func (t *tree[K, V]) predecessor(x *Node[K, V]) *Node[K, V] {
	if t.sentinel != x.left {
		return t.maximum(x.left)
	}
	y := x.parent
	for t.root != y && x == y.left {
		x = y
		y = y.parent
	}
	if t.root == y {
		return t.sentinel
	}
	return y
}
