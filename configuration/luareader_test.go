// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/containers/configuration"
	"github.com/bitmark-inc/containers/fault"
)

type workload struct {
	Name   string `gluamapper:"name"`
	Keys   int    `gluamapper:"keys"`
	Chunks int    `gluamapper:"chunks"`
}

type testConfiguration struct {
	Title     string            `gluamapper:"title"`
	Script    string            `gluamapper:"script"`
	Levels    map[string]string `gluamapper:"levels"`
	Workloads []workload        `gluamapper:"workloads"`
	Untouched int               `gluamapper:"untouched"`
}

const testLua = `
local M = {}
M.title = "soak"
M.script = arg[0]
M.levels = { main = "info", DEFAULT = "critical" }
M.workloads = {}
for i = 1, 3 do
    M.workloads[i] = { name = "w" .. i, keys = i * 100, chunks = 64 }
end
return M
`

func writeFile(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err)
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, testLua)

	config := testConfiguration{
		Untouched: 42,
	}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err)

	assert.Equal(t, "soak", config.Title)
	assert.Equal(t, fileName, config.Script, "arg[0] not set")
	assert.Equal(t, "info", config.Levels["main"])
	assert.Equal(t, 42, config.Untouched, "default overwritten")
	require.Len(t, config.Workloads, 3)
	assert.Equal(t, workload{Name: "w2", Keys: 200, Chunks: 64}, config.Workloads[1])
}

func TestParseNotStruct(t *testing.T) {
	fileName := writeFile(t, testLua)

	n := 0
	err := configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	err = configuration.ParseConfigurationFile(fileName, testConfiguration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}

func TestParseNotTable(t *testing.T) {
	fileName := writeFile(t, "return 17\n")

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrUnexpectedConfigFileType, err)
}

func TestParseSyntaxError(t *testing.T) {
	fileName := writeFile(t, "return {\n")

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "absent.conf"), &config)
	assert.Error(t, err)
}
