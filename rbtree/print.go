// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	top   branch = iota
	left  branch = iota
	right branch = iota
)

// display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (t *tree[K, V]) print(w io.Writer, printData bool) int {
	return t.printTree(w, t.root.left, "", top, printData)
}

// internal print
func (t *tree[K, V]) printTree(w io.Writer, p *Node[K, V], prefix string, br branch, printData bool) int {
	if t.sentinel == p {
		return 0
	}
	rd := 0
	ld := 0
	if t.sentinel != p.right {
		s := "       "
		if left == br {
			s = "|      "
		}
		rd = t.printTree(w, p.right, prefix+s, right, printData)
	}
	switch br {
	case top:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	colour := "B"
	if p.red {
		colour = "R"
	}
	up := interface{}(nil)
	if t.root != p.parent {
		up = p.parent.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %s\n", p.key, p.value, up, colour)
	} else {
		fmt.Fprintf(w, "%v ^%v %s\n", p.key, up, colour)
	}
	if t.sentinel != p.left {
		s := "       "
		if right == br {
			s = "|      "
		}
		ld = t.printTree(w, p.left, prefix+s, left, printData)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
