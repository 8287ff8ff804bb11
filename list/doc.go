// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package list - a doubly linked list whose nodes come from a
// pluggable allocator
//
// Erasing a node only invalidates iterators to that node.
package list
