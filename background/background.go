// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop a group of long running
// go routines
//
// each process runs until its shutdown channel is closed, Stop closes
// every channel and then waits for all of the processes to return
package background

// Process - a long running task
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels for one process
type control struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a started group
type T struct {
	c []control
}

// Start - run each process in its own go routine
func Start(processes Processes, args interface{}) *T {

	register := &T{
		c: make([]control, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.c[i].shutdown = shutdown
		register.c[i].finished = finished
		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - signal every process then wait for all of them to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, c := range t.c {
		close(c.shutdown)
	}

	for _, c := range t.c {
		<-c.finished
	}
}
