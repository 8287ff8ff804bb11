// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/containers/background"
	"github.com/bitmark-inc/containers/rbtree"
)

// fills a map until told to stop
type filler struct {
	m        *rbtree.Map[int, int]
	inserted int
	stopped  bool
}

const (
	initialKey = 1000
)

func TestBackground(t *testing.T) {

	proc1 := &filler{m: rbtree.NewMapWithPool[int, int](16)}
	proc2 := &filler{m: rbtree.NewMap[int, int]()}
	defer proc1.m.Destroy()
	defer proc2.m.Destroy()

	// list of background processes to start
	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, proc := range []*filler{proc1, proc2} {
		if !proc.stopped {
			t.Fatalf("process: %d did not see shutdown", i)
		}
		assert.Greater(t, proc.inserted, 0, "process: %d did nothing", i)
		assert.Equal(t, proc.inserted, proc.m.Len(), "process: %d", i)
		assert.NoError(t, proc.m.Check(), "process: %d", i)
	}
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}

func (state *filler) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

	key := initialKey
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		if _, added := state.m.Insert(key, -key); !added {
			t.Errorf("duplicate key: %d", key)
		}
		state.inserted += 1
		key += 1
		time.Sleep(time.Millisecond)
	}
	state.stopped = true
}
