// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - make a relative path absolute by joining it onto
// directory, an already absolute path is only cleaned
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if the name can be stat'ed
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create a directory tree if it is missing and
// confirm that the final element really is a directory
func EnsureDirectory(directory string) error {
	err := os.MkdirAll(directory, 0o700)
	if nil != err {
		return err
	}
	info, err := os.Stat(directory)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %q", directory)
	}
	return nil
}
