// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/containers/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "log", "/data/log"},
		{"/data", "./log/../run", "/data/run"},
		{"/data", "/var/log", "/var/log"},
		{"/data/", "/var//log/", "/var/log"},
	}

	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "item: %d", i)
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0o600))

	assert.True(t, util.EnsureFileExists(name))
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")))
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b", "c")
	require.NoError(t, util.EnsureDirectory(nested))
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing directory is fine
	assert.NoError(t, util.EnsureDirectory(nested))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	assert.Error(t, util.EnsureDirectory(file))
}
