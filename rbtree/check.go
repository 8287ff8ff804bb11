// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"

	"github.com/bitmark-inc/containers/fault"
)

// state for a single consistency walk
type checker[K, V any] struct {
	t        *tree[K, V]
	count    int
	previous *Node[K, V]
}

// verify links, key order, colouring and size
func (t *tree[K, V]) check() error {
	if t.sentinel.red {
		return fault.ErrNilSentinelNotBlack
	}
	if t.root.red {
		return fault.ErrRootNotBlack
	}

	top := t.root.left
	if t.sentinel != top {
		if top.red {
			return fault.ErrRootNotBlack
		}
		if t.root != top.parent {
			return fmt.Errorf("%w: at root key: %v", fault.ErrParentLinkBroken, top.key)
		}
	}

	c := checker[K, V]{t: t}
	if _, err := c.walk(top); nil != err {
		return err
	}
	if c.count != t.size {
		return fmt.Errorf("%w: nodes: %d  size: %d", fault.ErrSizeMismatch, c.count, t.size)
	}
	return nil
}

// internal: in-order walk returning the black height of a sub-tree
func (c *checker[K, V]) walk(p *Node[K, V]) (int, error) {
	t := c.t
	if t.sentinel == p {
		return 1, nil
	}

	for _, child := range []*Node[K, V]{p.left, p.right} {
		if t.sentinel == child {
			continue
		}
		if p != child.parent {
			return 0, fmt.Errorf("%w: at key: %v", fault.ErrParentLinkBroken, child.key)
		}
		if p.red && child.red {
			return 0, fmt.Errorf("%w: at key: %v", fault.ErrRedNodeHasRedChild, p.key)
		}
	}

	leftHeight, err := c.walk(p.left)
	if nil != err {
		return 0, err
	}

	if nil != c.previous && t.compare(c.previous.key, p.key) >= 0 {
		return 0, fmt.Errorf("%w: %v before %v", fault.ErrOrderViolation, c.previous.key, p.key)
	}
	c.previous = p
	c.count += 1

	rightHeight, err := c.walk(p.right)
	if nil != err {
		return 0, err
	}

	if leftHeight != rightHeight {
		return 0, fmt.Errorf("%w: at key: %v  left: %d  right: %d", fault.ErrBlackHeightMismatch, p.key, leftHeight, rightHeight)
	}
	if !p.red {
		leftHeight += 1
	}
	return leftHeight, nil
}
