// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memory

import (
	"unsafe"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/stacklist"
)

// PoolAllocator - fixed size chunks carved out of slabs
//
// No slab exists until the first Allocate.  When the free list runs
// dry a new slab of numChunks chunks is created and all of its chunks
// are linked onto the free list.  Chunks are never returned to the
// runtime individually; Release drops every slab at once.
type PoolAllocator[T any] struct {
	numChunks int
	slabs     [][]stacklist.Node[T]
	free      stacklist.List[T]
	total     int // chunks in all slabs
	used      int // chunks handed out and not yet freed
	log       *logger.L
}

// NewPoolAllocator - create an empty pool that grows numChunks chunks
// at a time
func NewPoolAllocator[T any](numChunks int) *PoolAllocator[T] {
	if numChunks < 1 {
		fault.Panicf(fault.ErrInvalidChunkCount, "chunks: %d", numChunks)
	}
	return &PoolAllocator[T]{
		numChunks: numChunks,
	}
}

// SetLog - attach a logger channel to report slab growth
func (p *PoolAllocator[T]) SetLog(log *logger.L) {
	p.log = log
}

// Allocate - pop a chunk from the free list, adding a slab if needed
func (p *PoolAllocator[T]) Allocate() *T {
	node := p.free.Pop()
	if nil == node {
		p.grow()
		node = p.free.Pop()
	}
	p.used += 1
	return &node.Value
}

// Free - return a chunk to the free list
//
// ptr must have been obtained from this pool's Allocate
func (p *PoolAllocator[T]) Free(ptr *T) {
	// Value is the first field of a node so the addresses coincide
	node := (*stacklist.Node[T])(unsafe.Pointer(ptr))
	var zero T
	node.Value = zero
	p.free.Push(node)
	p.used -= 1
}

// add one slab and link all of its chunks
func (p *PoolAllocator[T]) grow() {
	slab := make([]stacklist.Node[T], p.numChunks)
	p.slabs = append(p.slabs, slab)
	p.total += p.numChunks

	// reverse order so chunks are handed out in address order
	for i := len(slab) - 1; i >= 0; i -= 1 {
		p.free.Push(&slab[i])
	}

	if nil != p.log {
		p.log.Debugf("slab: %d  chunks: %d  chunk size: %d", len(p.slabs), p.numChunks, p.ChunkSize())
	}
}

// Release - drop every slab; all outstanding chunks become invalid
func (p *PoolAllocator[T]) Release() {
	if nil != p.log && len(p.slabs) > 0 {
		p.log.Debugf("release slabs: %d  used chunks: %d", len(p.slabs), p.used)
	}
	p.slabs = nil
	p.free = stacklist.List[T]{}
	p.total = 0
	p.used = 0
}

// Move - transfer all slabs to a new pool leaving this one empty
func (p *PoolAllocator[T]) Move() *PoolAllocator[T] {
	moved := &PoolAllocator[T]{
		numChunks: p.numChunks,
		slabs:     p.slabs,
		free:      p.free.Move(),
		total:     p.total,
		used:      p.used,
		log:       p.log,
	}
	p.slabs = nil
	p.total = 0
	p.used = 0
	return moved
}

// Fresh - an empty pool with the same slab granularity
func (p *PoolAllocator[T]) Fresh() Allocator[T] {
	fresh := NewPoolAllocator[T](p.numChunks)
	fresh.log = p.log
	return fresh
}

// Contains - true if ptr is the start of a chunk inside one of the slabs
func (p *PoolAllocator[T]) Contains(ptr *T) bool {
	address := uintptr(unsafe.Pointer(ptr))
	size := p.ChunkSize()
	for _, slab := range p.slabs {
		base := uintptr(unsafe.Pointer(&slab[0]))
		if address >= base && address < base+uintptr(len(slab))*size {
			return 0 == (address-base)%size
		}
	}
	return false
}

// NumChunks - chunks added by each slab
func (p *PoolAllocator[T]) NumChunks() int {
	return p.numChunks
}

// ChunkSize - bytes occupied by one chunk including its link
func (p *PoolAllocator[T]) ChunkSize() uintptr {
	var node stacklist.Node[T]
	return unsafe.Sizeof(node)
}

// Slabs - number of slabs allocated so far
func (p *PoolAllocator[T]) Slabs() int {
	return len(p.slabs)
}

// Capacity - total chunks in all slabs
func (p *PoolAllocator[T]) Capacity() int {
	return p.total
}

// Used - chunks currently allocated
func (p *PoolAllocator[T]) Used() int {
	return p.used
}

// Available - chunks on the free list
func (p *PoolAllocator[T]) Available() int {
	return p.total - p.used
}
