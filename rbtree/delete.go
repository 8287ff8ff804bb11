// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// remove a node from the tree and return it to the allocator
//
// other nodes keep their data, only links change, so iterators to
// them remain valid
func (t *tree[K, V]) delete(z *Node[K, V]) {

	// y is the node to splice out and x is its only child
	y := z
	if t.sentinel != z.left && t.sentinel != z.right {
		y = t.successor(z)
	}
	x := y.left
	if t.sentinel == x {
		x = y.right
	}

	// x may be the nil sentinel; its parent link is still needed by
	// the fix up
	x.parent = y.parent
	if t.root == x.parent {
		t.root.left = x
	} else if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}

	if y != z {
		if !y.red {
			t.deleteFixUp(x)
		}

		// y takes the place of z
		y.left = z.left
		y.right = z.right
		y.parent = z.parent
		y.red = z.red
		z.left.parent = y
		z.right.parent = y
		if z == z.parent.left {
			z.parent.left = y
		} else {
			z.parent.right = y
		}
	} else if !y.red {
		t.deleteFixUp(x)
	}

	t.freeNode(z)
	t.size -= 1
}

// restore the red-black properties after removing a black node
func (t *tree[K, V]) deleteFixUp(x *Node[K, V]) {
	for !x.red && t.root.left != x {
		if x == x.parent.left {
			w := x.parent.right
			if w.red {
				w.red = false
				x.parent.red = true
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if !w.right.red && !w.left.red {
				w.red = true
				x = x.parent
			} else {
				if !w.right.red {
					w.left.red = false
					w.red = true
					t.rightRotate(w)
					w = x.parent.right
				}
				w.red = x.parent.red
				x.parent.red = false
				w.right.red = false
				t.leftRotate(x.parent)
				x = t.root.left // done
			}
		} else {
			w := x.parent.left
			if w.red {
				w.red = false
				x.parent.red = true
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if !w.right.red && !w.left.red {
				w.red = true
				x = x.parent
			} else {
				if !w.left.red {
					w.right.red = false
					w.red = true
					t.leftRotate(w)
					w = x.parent.left
				}
				w.red = x.parent.red
				x.parent.red = false
				w.left.red = false
				t.rightRotate(x.parent)
				x = t.root.left // done
			}
		}
	}
	x.red = false
}
