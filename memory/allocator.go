// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memory

// Allocator - storage for single values of one type
//
// Allocate returns zeroed storage; Free takes back storage obtained
// from the same allocator.  Freeing a foreign pointer or freeing twice
// is a contract violation that is not detected.
type Allocator[T any] interface {
	Allocate() *T
	Free(*T)
}

// SliceAllocator - storage for contiguous runs of values
type SliceAllocator[T any] interface {
	AllocateSlice(n int) []T
	FreeSlice([]T)
}

// Releaser - an allocator that holds storage beyond its individual
// allocations, released in one step by its owner
type Releaser interface {
	Release()
}

// Freshener - an allocator able to create an empty instance of the
// same kind, used when an owning container is copied
type Freshener[T any] interface {
	Fresh() Allocator[T]
}

// New - a new empty allocator of the same kind as a, falling back to
// the heap for allocators that cannot replicate themselves
func New[T any](a Allocator[T]) Allocator[T] {
	if f, ok := a.(Freshener[T]); ok {
		return f.Fresh()
	}
	return &DefaultAllocator[T]{}
}

// NewSlices - a new empty slice allocator of the same kind as a
func NewSlices[T any](a SliceAllocator[T]) SliceAllocator[T] {
	if f, ok := a.(Freshener[T]); ok {
		if s, ok := f.Fresh().(SliceAllocator[T]); ok {
			return s
		}
	}
	return &DefaultAllocator[T]{}
}

// Release - release a's storage if it holds any
func Release(a interface{}) {
	if r, ok := a.(Releaser); ok {
		r.Release()
	}
}
