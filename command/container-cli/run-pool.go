// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/memory"
	"github.com/bitmark-inc/containers/stack"
)

type poolResult struct {
	Chunks    int     `json:"chunks"`
	ChunkSize uintptr `json:"chunk_size"`
	Allocs    int     `json:"allocs"`
	Frees     int     `json:"frees"`
	Slabs     int     `json:"slabs"`
	Capacity  int     `json:"capacity"`
	Used      int     `json:"used"`
	Available int     `json:"available"`
}

func runPool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	chunks := c.Int("chunks")
	allocs := c.Int("allocs")
	frees := c.Int("frees")

	if chunks < 1 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidChunkCount, chunks)
	}
	if allocs < 1 {
		return ErrRequiredAllocs
	}
	if frees < 0 {
		return fmt.Errorf("%w: frees: %d", ErrNegativeCount, frees)
	}
	if frees > allocs {
		return fmt.Errorf("%w: %d > %d", ErrFreesExceedAllocs, frees, allocs)
	}

	pool := memory.NewPoolAllocator[uint64](chunks)
	defer pool.Release()

	// remember the allocations so the most recent can be freed first
	held := stack.New[*uint64]()
	defer held.Destroy()

	for i := 0; i < allocs; i += 1 {
		p := pool.Allocate()
		*p = uint64(i)
		held.Push(p)
		if m.verbose {
			fmt.Fprintf(m.e, "allocate: %d  slabs: %d  used: %d\n", i, pool.Slabs(), pool.Used())
		}
	}

	for i := 0; i < frees; i += 1 {
		p := *held.Top()
		held.Pop()
		pool.Free(p)
		if m.verbose {
			fmt.Fprintf(m.e, "free: %d  used: %d\n", allocs-1-i, pool.Used())
		}
	}

	result := poolResult{
		Chunks:    pool.NumChunks(),
		ChunkSize: pool.ChunkSize(),
		Allocs:    allocs,
		Frees:     frees,
		Slabs:     pool.Slabs(),
		Capacity:  pool.Capacity(),
		Used:      pool.Used(),
		Available: pool.Available(),
	}
	return printJson(m.w, result)
}
