// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// internal: plain binary tree insert, equal keys go to the right
func (t *tree[K, V]) insertHelp(z *Node[K, V]) {
	z.left = t.sentinel
	z.right = t.sentinel

	y := t.root
	x := t.root.left
	for t.sentinel != x {
		y = x
		if t.compare(z.key, x.key) < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}

	z.parent = y
	if t.root == y || t.compare(z.key, y.key) < 0 {
		y.left = z
	} else {
		y.right = z
	}
}

// link an allocated node into the tree and restore the colouring
//
// the caller must already have checked the key is not present
func (t *tree[K, V]) insert(x *Node[K, V]) *Node[K, V] {
	t.insertHelp(x)
	newNode := x
	x.red = true

	// the root sentinel is black so this stops at the top
	for x.parent.red {
		if x.parent == x.parent.parent.left {
			y := x.parent.parent.right
			if y.red {
				x.parent.red = false
				y.red = false
				x.parent.parent.red = true
				x = x.parent.parent
			} else {
				if x == x.parent.right {
					x = x.parent
					t.leftRotate(x)
				}
				x.parent.red = false
				x.parent.parent.red = true
				t.rightRotate(x.parent.parent)
			}
		} else {
			y := x.parent.parent.left
			if y.red {
				x.parent.red = false
				y.red = false
				x.parent.parent.red = true
				x = x.parent.parent
			} else {
				if x == x.parent.left {
					x = x.parent
					t.rightRotate(x)
				}
				x.parent.red = false
				x.parent.parent.red = true
				t.leftRotate(x.parent.parent)
			}
		}
	}
	t.root.left.red = false
	t.size += 1
	return newNode
}

// find the key or insert it with the given value
func (t *tree[K, V]) insertUnique(key K, value V) (*Node[K, V], bool) {
	existing := t.search(key)
	if t.sentinel != existing {
		return existing, false
	}
	return t.insert(t.newNode(key, value)), true
}
