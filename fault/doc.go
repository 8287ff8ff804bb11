// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Container contract violations (erasing the end iterator, using a
// moved-from container, reading the front of an empty list) are not
// recoverable; they are raised with Panic so the panic value is one
// of the classified errors below.
package fault
