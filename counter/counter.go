// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - totals shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - 64 bit unsigned total safe for concurrent update
type Counter uint64

// Add - add n, returns the new total
func (c *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(c), n)
}

// Increment - add 1, returns the new total
func (c *Counter) Increment() uint64 {
	return c.Add(1)
}

// Uint64 - current total
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true before the first Add
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
