// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/containers/background"
	"github.com/bitmark-inc/containers/stack"
)

type theState struct {
	pending *stack.Stack[int]
}

func Example() {

	proc := &theState{
		pending: stack.New[int](),
	}
	defer proc.pending.Destroy()

	// list of background processes to start
	processes := background.Processes{
		proc,
	}

	p := background.Start(processes, nil)
	time.Sleep(10 * time.Millisecond)
	p.Stop()

	// Output:
	// initialise
	// finalise
}

func (state *theState) Run(args interface{}, shutdown <-chan struct{}) {

	fmt.Printf("initialise\n")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		state.pending.Push(state.pending.Len())
		time.Sleep(time.Millisecond)
	}

	fmt.Printf("finalise\n")
}
