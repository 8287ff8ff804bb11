// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/containers/configuration"
	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/util"
)

// basic defaults (the log directory is relative to DataDirectory)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "container-soak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultKeys       = 1000
	defaultOperations = 100000
	defaultChunks     = 256
	defaultCheckEvery = 1000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// WorkloadConfiguration - one randomised run against a pool backed map
//
// Heap selects the garbage collected allocator instead of a pool.  A
// negative CheckEvery only validates the tree when the run completes.
type WorkloadConfiguration struct {
	Name       string `gluamapper:"name" json:"name"`
	Seed       int64  `gluamapper:"seed" json:"seed"`
	Keys       int    `gluamapper:"keys" json:"keys"`
	Operations int    `gluamapper:"operations" json:"operations"`
	Chunks     int    `gluamapper:"chunks" json:"chunks"`
	CheckEvery int    `gluamapper:"check_every" json:"check_every"`
	Heap       bool   `gluamapper:"heap" json:"heap"`
}

// Configuration - everything read from the Lua file
type Configuration struct {
	DataDirectory string                  `gluamapper:"data_directory" json:"data_directory"`
	Logging       logger.Configuration    `gluamapper:"logging" json:"logging"`
	Workloads     []WorkloadConfiguration `gluamapper:"workloads" json:"workloads"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    copyLevels(defaultLogLevels),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	if err := validateWorkloads(options.Workloads); nil != err {
		return nil, err
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	return options, nil
}

// the file's levels are merged into the map so never hand out the
// shared defaults
func copyLevels(levels LoglevelMap) map[string]string {
	m := make(map[string]string, len(levels))
	for k, v := range levels {
		m[k] = v
	}
	return m
}

// fill in defaults for zero fields and reject impossible values
func validateWorkloads(workloads []WorkloadConfiguration) error {
	if 0 == len(workloads) {
		return fault.ErrMissingWorkloads
	}

	names := make(map[string]struct{}, len(workloads))
	for i := range workloads {
		w := &workloads[i]

		if "" == w.Name {
			w.Name = fmt.Sprintf("workload-%d", i+1)
		}
		if _, ok := names[w.Name]; ok {
			return fmt.Errorf("%w: %q", fault.ErrDuplicateWorkloadName, w.Name)
		}
		names[w.Name] = struct{}{}

		if 0 == w.Keys {
			w.Keys = defaultKeys
		} else if w.Keys < 0 {
			return fmt.Errorf("%w: %s: %d", fault.ErrInvalidKeyCount, w.Name, w.Keys)
		}

		if 0 == w.Operations {
			w.Operations = defaultOperations
		} else if w.Operations < 0 {
			return fmt.Errorf("%w: %s: %d", fault.ErrInvalidOperationCount, w.Name, w.Operations)
		}

		if 0 == w.Chunks {
			w.Chunks = defaultChunks
		} else if w.Chunks < 0 {
			return fmt.Errorf("%w: %s: %d", fault.ErrInvalidChunkCount, w.Name, w.Chunks)
		}

		if 0 == w.CheckEvery {
			w.CheckEvery = defaultCheckEvery
		}
	}
	return nil
}
