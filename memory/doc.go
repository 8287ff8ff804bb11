// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memory - allocators for container nodes
//
// Every container in this module obtains node storage through the
// Allocator contract.  Three implementations are provided:
//
//   DefaultAllocator - forwards to the Go heap
//   PoolAllocator    - fixed size chunks carved out of growable slabs,
//                      O(1) allocate and free through a free list
//   TestAllocator    - heap allocation that counts outstanding blocks
//
// The chunk size of a PoolAllocator is the size of its type parameter,
// so a pool can never be asked for two different sizes.
//
// Note: allocators are not thread safe; a pool may be shared by
//       several containers that are used from the same go routine.
package memory
