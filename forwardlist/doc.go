// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package forwardlist - a singly linked list built on stacklist with
// nodes from a pluggable allocator
package forwardlist
