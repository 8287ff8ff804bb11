// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memory

// DefaultAllocator - each allocation is an individual heap object
type DefaultAllocator[T any] struct{}

// Allocate - a new zero value on the heap
func (*DefaultAllocator[T]) Allocate() *T {
	return new(T)
}

// Free - clear the value so anything it references can be collected
func (*DefaultAllocator[T]) Free(p *T) {
	var zero T
	*p = zero
}

// AllocateSlice - a new zeroed slice of n values
func (*DefaultAllocator[T]) AllocateSlice(n int) []T {
	return make([]T, n)
}

// FreeSlice - clear a slice obtained from AllocateSlice
func (*DefaultAllocator[T]) FreeSlice(s []T) {
	clear(s)
}

// Fresh - heap allocators carry no state
func (*DefaultAllocator[T]) Fresh() Allocator[T] {
	return &DefaultAllocator[T]{}
}

// TestAllocator - heap allocation that keeps a count of the blocks
// currently outstanding, to check allocation balance in tests
type TestAllocator[T any] struct {
	heap      DefaultAllocator[T]
	allocated int
}

// NewTestAllocator - create a counting allocator
func NewTestAllocator[T any]() *TestAllocator[T] {
	return &TestAllocator[T]{}
}

// Allocate - count and allocate one value
func (a *TestAllocator[T]) Allocate() *T {
	a.allocated += 1
	return a.heap.Allocate()
}

// Free - count and free one value
func (a *TestAllocator[T]) Free(p *T) {
	a.allocated -= 1
	a.heap.Free(p)
}

// AllocateSlice - a slice counts as one block
func (a *TestAllocator[T]) AllocateSlice(n int) []T {
	a.allocated += 1
	return a.heap.AllocateSlice(n)
}

// FreeSlice - a slice counts as one block
func (a *TestAllocator[T]) FreeSlice(s []T) {
	a.allocated -= 1
	a.heap.FreeSlice(s)
}

// Fresh - a new counter starting from zero
func (a *TestAllocator[T]) Fresh() Allocator[T] {
	return NewTestAllocator[T]()
}

// Allocated - number of blocks not yet freed
func (a *TestAllocator[T]) Allocated() int {
	return a.allocated
}
