// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - ordered Map and Set containers implemented as a
// red-black tree whose nodes come from a pluggable allocator
//
// Note: an individual container is not thread safe, so either access
//       only in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each tree has two sentinel nodes taken from its allocator: a black
// nil node that stands for every missing child, and a root node whose
// left link holds the actual root.  The sentinels remove the special
// cases for empty sub-trees and for rotations at the top of the tree.
//
// A container either owns its allocator (created by NewMap, NewSet or
// the WithPool constructors) and releases it in Destroy, or borrows
// one supplied by the caller, which may then be shared by several
// containers.  Sharing a PoolAllocator between maps keeps all their
// nodes in the same slabs.
//
// Erase does not move data between nodes so iterators to other nodes
// remain valid; this allows deletion during iteration provided the
// next iterator is obtained before the erase.
package rbtree
