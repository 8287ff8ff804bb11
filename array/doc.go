// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package array - a growable contiguous sequence whose buffer comes
// from a slice allocator
//
// Growth reserves a quarter more than the requested size.  Pointers
// returned by Index are invalidated by any operation that grows the
// buffer.
package array
