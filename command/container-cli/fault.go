// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/containers/fault"
)

// command line errors - keep in alphabetic order
var (
	ErrFreesExceedAllocs = fault.InvalidError("frees exceed allocations")
	ErrInvalidKey        = fault.InvalidError("key is not an integer")
	ErrNegativeCount     = fault.InvalidError("count must not be negative")
	ErrRequiredAllocs    = fault.InvalidError("allocs is required")
	ErrRequiredEraseKeys = fault.InvalidError("keys to erase are required")
	ErrRequiredKeys      = fault.InvalidError("at least one key is required")
)
