// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testFileName  = "testWatcher"
	watchDeadline = 5 * time.Second
)

func setupTestFileWatcher(t *testing.T) (*FileWatcher, WatcherChannel) {
	setupLogger(t)

	fileName := filepath.Join(t.TempDir(), testFileName)
	require.NoError(t, os.WriteFile(fileName, []byte("return {}\n"), 0o600))

	channel := newWatcherChannel()
	w, err := newFileWatcher(fileName, logger.New("test"), channel)
	require.NoError(t, err, "new file watcher")
	require.NoError(t, w.Start(), "start")

	return w, channel
}

func waitFor(t *testing.T, ch <-chan struct{}, name string) {
	select {
	case <-ch:
	case <-time.After(watchDeadline):
		t.Fatalf("timeout waiting for %s event", name)
	}
}

func TestNewFileWatcherMissingFile(t *testing.T) {
	setupLogger(t)
	defer teardown()

	_, err := newFileWatcher(filepath.Join(t.TempDir(), "absent"), logger.New("test"), newWatcherChannel())
	assert.Error(t, err)
}

func TestFileWatcherChange(t *testing.T) {
	w, channel := setupTestFileWatcher(t)
	defer teardown()
	defer w.Stop()

	require.NoError(t, os.WriteFile(w.filePath, []byte("return { workloads = {} }\n"), 0o600))
	waitFor(t, channel.change, "change")
}

func TestFileWatcherRemove(t *testing.T) {
	w, channel := setupTestFileWatcher(t)
	defer teardown()
	defer w.Stop()

	require.NoError(t, os.Remove(w.filePath))
	waitFor(t, channel.remove, "remove")
}

func TestFileWatcherIgnoresOtherFiles(t *testing.T) {
	w, channel := setupTestFileWatcher(t)
	defer teardown()
	defer w.Stop()

	other := filepath.Join(filepath.Dir(w.filePath), "other")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))

	select {
	case <-channel.change:
		t.Fatal("unexpected change event")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestSendEventDoesNotBlock(t *testing.T) {
	w, channel := setupTestFileWatcher(t)
	defer teardown()
	defer w.Stop()

	w.sendEvent(channel.change, "change")
	w.sendEvent(channel.change, "change")

	assert.Equal(t, 1, len(channel.change), "pending events")
}

func TestWatcherEventClassification(t *testing.T) {
	items := []struct {
		op     fsnotify.Op
		change bool
		remove bool
	}{
		{fsnotify.Write, true, false},
		{fsnotify.Create, true, false},
		{fsnotify.Remove, false, true},
		{fsnotify.Rename, false, true},
		{fsnotify.Chmod, false, false},
	}

	for i, item := range items {
		event := fsnotify.Event{Name: "x", Op: item.op}
		assert.Equal(t, item.change, watcherEventFileChange(event), "change item: %d", i)
		assert.Equal(t, item.remove, watcherEventFileRemove(event), "remove item: %d", i)
	}
}
