// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stacklist - an intrusive singly linked LIFO of nodes
//
// The list never allocates: it only links nodes whose storage is
// owned by someone else (normally the slabs of a pool allocator).
// A node is either on exactly one list or in use by its owner,
// never both.
//
// Note: a list is not thread safe.
package stacklist
