// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/containers/background"
	"github.com/bitmark-inc/containers/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--watch] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	watch := len(options["watch"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if verbose {
		masterConfiguration.Logging.Levels[logger.DefaultTag] = "info"
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	soakLog := logger.New("soak")
	soak := func(ctx context.Context, fileName string) error {
		configuration, err := getConfiguration(fileName)
		if nil != err {
			return err
		}
		results, err := runAll(ctx, soakLog, configuration.Workloads)
		if nil != err {
			return err
		}
		if verbose {
			printJson(os.Stdout, results)
		}
		return nil
	}

	if !watch {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			select {
			case sig := <-signals:
				log.Infof("received signal: %v", sig)
				cancel()
			case <-ctx.Done():
			}
		}()

		err := soak(ctx, configurationFile)
		cancel()
		if nil != err {
			log.Criticalf("soak failed: %s", err)
			exitwithstatus.Message("%s: soak failed: %s", program, err)
		}
		log.Info("all workloads passed")
		return
	}

	channel := newWatcherChannel()
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), channel)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err = watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	processes := background.Processes{
		&runner{
			log:      logger.New("runner"),
			fileName: configurationFile,
			change:   channel.change,
			soak:     soak,
		},
	}
	register := background.Start(processes, nil)
	defer register.Stop()

	log.Info("watching configuration, send SIGINT or SIGTERM to stop")
	select {
	case sig := <-signals:
		log.Infof("received signal: %v", sig)
	case <-channel.remove:
		log.Warn("configuration file removed")
	}
}

// write indented JSON
func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
