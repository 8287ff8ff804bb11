// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package array

import (
	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/memory"
)

type ownership int

const (
	borrowed ownership = iota
	owned
)

// storage shared by an Array and anything moved out of it
type body[T any] struct {
	buffer    []T // len(buffer) is the capacity
	size      int
	allocator memory.SliceAllocator[T]
	ownership ownership
}

// Array - contiguous sequence of values
type Array[T any] struct {
	b *body[T]
}

// New - an empty array owning a heap allocator
func New[T any]() *Array[T] {
	return &Array[T]{
		b: &body[T]{
			allocator: &memory.DefaultAllocator[T]{},
			ownership: owned,
		},
	}
}

// NewWithAllocator - an empty array borrowing the caller's allocator
func NewWithAllocator[T any](allocator memory.SliceAllocator[T]) *Array[T] {
	return &Array[T]{
		b: &body[T]{
			allocator: allocator,
			ownership: borrowed,
		},
	}
}

func (a *Array[T]) live() *body[T] {
	if nil == a.b {
		fault.Panic(fault.ErrMovedFrom)
	}
	return a.b
}

// bounds check for indexed access
func (b *body[T]) checkIndex(index int) {
	if index < 0 || index >= b.size {
		fault.Panicf(fault.ErrIndexOutOfRange, "index: %d  size: %d", index, b.size)
	}
}

// At - the value at index
func (a *Array[T]) At(index int) T {
	b := a.live()
	b.checkIndex(index)
	return b.buffer[index]
}

// Index - pointer to the value at index
func (a *Array[T]) Index(index int) *T {
	b := a.live()
	b.checkIndex(index)
	return &b.buffer[index]
}

// Set - store a value at index
func (a *Array[T]) Set(index int, value T) {
	*a.Index(index) = value
}

// Len - number of values
func (a *Array[T]) Len() int {
	return a.live().size
}

// Cap - number of values that fit without growing
func (a *Array[T]) Cap() int {
	return len(a.live().buffer)
}

// Empty - true if there are no values
func (a *Array[T]) Empty() bool {
	return 0 == a.live().size
}

// Data - the values as a slice sharing the array's buffer
func (a *Array[T]) Data() []T {
	b := a.live()
	return b.buffer[:b.size:b.size]
}

// Front - the first value
func (a *Array[T]) Front() T {
	b := a.live()
	if 0 == b.size {
		fault.Panic(fault.ErrEmptyContainer)
	}
	return b.buffer[0]
}

// Back - the last value
func (a *Array[T]) Back() T {
	b := a.live()
	if 0 == b.size {
		fault.Panic(fault.ErrEmptyContainer)
	}
	return b.buffer[b.size-1]
}

// Reserve - make room for at least n values
func (a *Array[T]) Reserve(n int) {
	a.live().reserve(n)
}

func (b *body[T]) reserve(n int) {
	if n <= len(b.buffer) {
		return
	}
	buffer := b.allocator.AllocateSlice(n)
	if nil != b.buffer {
		copy(buffer, b.buffer[:b.size])
		b.allocator.FreeSlice(b.buffer)
	}
	b.buffer = buffer
}

// Resize - change the number of values, new ones are zero
func (a *Array[T]) Resize(n int) {
	a.live().resize(n)
}

func (b *body[T]) resize(n int) {
	if n < 0 {
		fault.Panicf(fault.ErrIndexOutOfRange, "size: %d", n)
	}
	if n <= b.size {
		clear(b.buffer[n:b.size])
		b.size = n
		return
	}
	if n > len(b.buffer) {
		b.reserve(n + n>>2)
	}
	b.size = n
}

// PushBack - append a value
func (a *Array[T]) PushBack(value T) {
	b := a.live()
	b.resize(b.size + 1)
	b.buffer[b.size-1] = value
}

// PopBack - remove the last value, nothing happens if empty
func (a *Array[T]) PopBack() {
	b := a.live()
	if 0 != b.size {
		b.resize(b.size - 1)
	}
}

// Clear - remove all values keeping the buffer
func (a *Array[T]) Clear() {
	a.live().resize(0)
}

// Each - call f for each value in order until it returns false
func (a *Array[T]) Each(f func(index int, value *T) bool) {
	b := a.live()
	for i := 0; i < b.size; i += 1 {
		if !f(i, &b.buffer[i]) {
			return
		}
	}
}

// copy the values into a new body
func (b *body[T]) copyTo(allocator memory.SliceAllocator[T], o ownership) *body[T] {
	c := &body[T]{
		allocator: allocator,
		ownership: o,
	}
	if b.size > 0 {
		c.reserve(b.size)
		copy(c.buffer, b.buffer[:b.size])
		c.size = b.size
	}
	return c
}

func (b *body[T]) clone() *body[T] {
	if owned == b.ownership {
		return b.copyTo(memory.NewSlices(b.allocator), owned)
	}
	return b.copyTo(b.allocator, borrowed)
}

// Clone - a copy of all values; an owned allocator is replaced by a
// fresh one of the same kind, a borrowed one is shared
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{b: a.live().clone()}
}

// CloneWith - a copy of all values using a borrowed allocator
func (a *Array[T]) CloneWith(allocator memory.SliceAllocator[T]) *Array[T] {
	return &Array[T]{b: a.live().copyTo(allocator, borrowed)}
}

// Assign - replace the contents with a copy of other
func (a *Array[T]) Assign(other *Array[T]) {
	source := other.live()
	if a.b == source {
		return
	}
	a.Destroy()
	a.b = source.clone()
}

// Move - transfer the values to a new array
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{b: a.live()}
	a.b = nil
	return moved
}

// MoveFrom - destroy the current contents and take over other's
func (a *Array[T]) MoveFrom(other *Array[T]) {
	source := other.live()
	if a.b == source {
		return
	}
	a.Destroy()
	a.b = source
	other.b = nil
}

// Swap - exchange contents with other
func (a *Array[T]) Swap(other *Array[T]) {
	a.b, other.b = other.b, a.b
}

// Destroy - free the buffer and release an owned allocator
func (a *Array[T]) Destroy() {
	b := a.b
	if nil == b {
		return
	}
	if nil != b.buffer {
		b.allocator.FreeSlice(b.buffer)
	}
	if owned == b.ownership {
		memory.Release(b.allocator)
	}
	a.b = nil
}
