// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/containers/counter"
)

// soakFunc - one complete pass over a configuration file
type soakFunc func(ctx context.Context, fileName string) error

// runner - background process that repeats the soak each time the
// configuration changes
//
// a change while a pass is running cancels it and starts again with
// the new file
type runner struct {
	log      *logger.L
	fileName string
	change   <-chan struct{}
	soak     soakFunc
	passes   chan<- error // optional, receives each pass result
	started  counter.Counter
}

// Run - implement background.Process
func (r *runner) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")
	defer r.log.Info("stopped")

loop:
	for {
		pass := r.started.Increment()
		r.log.Infof("pass: %d", pass)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- r.soak(ctx, r.fileName)
		}()

		select {
		case <-shutdown:
			cancel()
			<-done
			break loop

		case <-r.change:
			r.log.Info("configuration changed, restarting pass")
			cancel()
			<-done
			continue loop

		case err := <-done:
			cancel()
			if nil != err {
				r.log.Errorf("pass: %d failed: %s", pass, err)
			} else {
				r.log.Infof("pass: %d completed", pass)
			}
			if nil != r.passes {
				r.passes <- err
			}
		}

		// idle until the file changes again
		select {
		case <-shutdown:
			break loop
		case <-r.change:
			r.log.Info("configuration changed")
		}
	}
}
