// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/containers/counter"
	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/memory"
	"github.com/bitmark-inc/containers/rbtree"
)

// how often a running workload looks for cancellation
const cancelPollInterval = 256

type soakNode = rbtree.Node[int, int]

// outstanding allocations of the allocator under test
type nodeCounter interface {
	memory.Allocator[soakNode]
	outstanding() int
}

type poolCounter struct {
	*memory.PoolAllocator[soakNode]
}

func (p poolCounter) outstanding() int { return p.Used() }

type heapCounter struct {
	*memory.TestAllocator[soakNode]
}

func (h heapCounter) outstanding() int { return h.Allocated() }

// statistics - the result of one completed workload
type statistics struct {
	Name       string `json:"name"`
	Operations int    `json:"operations"`
	Inserts    int    `json:"inserts"`
	Updates    int    `json:"updates"`
	Erases     int    `json:"erases"`
	Finds      int    `json:"finds"`
	Checks     int    `json:"checks"`
	MaxSize    int    `json:"max_size"`
	FinalSize  int    `json:"final_size"`
	Slabs      int    `json:"slabs"`
	Capacity   int    `json:"capacity"`
}

// runAll - run every workload on its own goroutine
//
// the first failure cancels the others
func runAll(ctx context.Context, log *logger.L, workloads []WorkloadConfiguration) ([]statistics, error) {
	results := make([]statistics, len(workloads))
	var total counter.Counter

	g, ctx := errgroup.WithContext(ctx)
	for i := range workloads {
		i := i
		g.Go(func() error {
			s, err := runWorkload(ctx, log, workloads[i])
			if nil != err {
				return fmt.Errorf("workload: %s: %w", workloads[i].Name, err)
			}
			results[i] = *s
			total.Add(uint64(s.Operations))
			return nil
		})
	}

	if err := g.Wait(); nil != err {
		return nil, err
	}
	log.Infof("workloads: %d  total operations: %d", len(workloads), total.Uint64())
	return results, nil
}

// runWorkload - apply a random mix of operations to a map and a
// reference Go map, comparing the two as it goes
func runWorkload(ctx context.Context, log *logger.L, w WorkloadConfiguration) (*statistics, error) {

	var allocator nodeCounter
	s := &statistics{
		Name: w.Name,
	}

	var pool *memory.PoolAllocator[soakNode]
	if w.Heap {
		allocator = heapCounter{memory.NewTestAllocator[soakNode]()}
	} else {
		pool = rbtree.NewPool[int, int](w.Chunks)
		pool.SetLog(logger.New("pool"))
		defer pool.Release()
		allocator = poolCounter{pool}
	}

	m := rbtree.NewMapWithAllocator[int, int](allocator)
	oracle := make(map[int]int, w.Keys)

	r := rand.New(rand.NewSource(w.Seed))

	log.Infof("%s: start  seed: %d  keys: %d  operations: %d", w.Name, w.Seed, w.Keys, w.Operations)

	for n := 1; n <= w.Operations; n += 1 {

		if 0 == n%cancelPollInterval {
			select {
			case <-ctx.Done():
				m.Destroy()
				return nil, ctx.Err()
			default:
			}
		}

		key := r.Intn(w.Keys)
		if err := step(r, m, oracle, key, s); nil != err {
			m.Destroy()
			return nil, fmt.Errorf("operation: %d: %w", n, err)
		}
		s.Operations += 1

		if m.Len() > s.MaxSize {
			s.MaxSize = m.Len()
		}

		if w.CheckEvery > 0 && 0 == n%w.CheckEvery {
			if err := verify(m, oracle); nil != err {
				m.Destroy()
				return nil, fmt.Errorf("operation: %d: %w", n, err)
			}
			s.Checks += 1
			log.Debugf("%s: %d operations  size: %d", w.Name, n, m.Len())
		}
	}

	if err := verify(m, oracle); nil != err {
		m.Destroy()
		return nil, err
	}
	s.Checks += 1
	s.FinalSize = m.Len()

	// a copy sharing the same allocator must read back identically
	c := m.Clone()
	err := verify(c, oracle)
	c.Destroy()
	if nil != err {
		m.Destroy()
		return nil, fmt.Errorf("clone: %w", err)
	}

	if nil != pool {
		s.Slabs = pool.Slabs()
		s.Capacity = pool.Capacity()
	}

	m.Destroy()
	if n := allocator.outstanding(); 0 != n {
		return nil, fmt.Errorf("%w: %d nodes outstanding after destroy", fault.ErrSoakMismatch, n)
	}

	log.Infof("%s: finish  %+v", w.Name, *s)
	return s, nil
}

// one random operation applied to both containers
func step(r *rand.Rand, m *rbtree.Map[int, int], oracle map[int]int, key int, s *statistics) error {

	switch op := r.Intn(10); {

	case op < 4:
		value := r.Int()
		_, inserted := m.Insert(key, value)
		_, present := oracle[key]
		if inserted == present {
			return fmt.Errorf("%w: insert: %d  inserted: %v", fault.ErrSoakMismatch, key, inserted)
		}
		if inserted {
			oracle[key] = value
		}
		s.Inserts += 1

	case op < 6:
		*m.Index(key) += 1
		oracle[key] += 1
		s.Updates += 1

	case op < 8:
		n := m.EraseKey(key)
		_, present := oracle[key]
		if present != (1 == n) {
			return fmt.Errorf("%w: erase: %d  count: %d", fault.ErrSoakMismatch, key, n)
		}
		delete(oracle, key)
		s.Erases += 1

	case op < 9:
		it := m.Find(key)
		expected, present := oracle[key]
		if it.IsEnd() == present {
			return fmt.Errorf("%w: find: %d", fault.ErrSoakMismatch, key)
		}
		if present && expected != *it.Value() {
			return fmt.Errorf("%w: find: %d  value: %d  expected: %d", fault.ErrSoakMismatch, key, *it.Value(), expected)
		}
		s.Finds += 1

	default:
		// erase through an iterator at the found position or the
		// smallest key
		it := m.Find(key)
		if it.IsEnd() {
			it = m.Begin()
		}
		if it.IsEnd() {
			return nil
		}
		delete(oracle, it.Key())
		m.Erase(it)
		s.Erases += 1
	}
	return nil
}

// structural check followed by an in-order comparison with the oracle
func verify(m *rbtree.Map[int, int], oracle map[int]int) error {
	if err := m.Check(); nil != err {
		return err
	}
	if m.Len() != len(oracle) {
		return fmt.Errorf("%w: size: %d  expected: %d", fault.ErrSoakMismatch, m.Len(), len(oracle))
	}

	count := 0
	previous := 0
	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		k := it.Key()
		if count > 0 && k <= previous {
			return fmt.Errorf("%w: key: %d after: %d", fault.ErrOrderViolation, k, previous)
		}
		expected, ok := oracle[k]
		if !ok {
			return fmt.Errorf("%w: unexpected key: %d", fault.ErrSoakMismatch, k)
		}
		if expected != *it.Value() {
			return fmt.Errorf("%w: key: %d  value: %d  expected: %d", fault.ErrSoakMismatch, k, *it.Value(), expected)
		}
		previous = k
		count += 1
	}
	if count != len(oracle) {
		return fmt.Errorf("%w: iterated: %d  expected: %d", fault.ErrSoakMismatch, count, len(oracle))
	}
	return nil
}
