// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// rotations rely on the root sentinel so the actual root needs no
// special case: it is always the left child of t.root

func (t *tree[K, V]) leftRotate(x *Node[K, V]) {
	y := x.right
	x.right = y.left
	if t.sentinel != y.left {
		y.left.parent = x
	}

	y.parent = x.parent
	if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *tree[K, V]) rightRotate(y *Node[K, V]) {
	x := y.left
	y.left = x.right
	if t.sentinel != x.right {
		x.right.parent = y
	}

	x.parent = y.parent
	if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}
