// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/containers/rbtree"
)

// parse integer keys, each argument may itself be comma separated
func parseKeys(arguments []string) ([]int, error) {
	keys := make([]int, 0, len(arguments))
	for _, a := range arguments {
		for _, s := range strings.Split(a, ",") {
			s = strings.TrimSpace(s)
			if "" == s {
				continue
			}
			k, err := strconv.Atoi(s)
			if nil != err {
				return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// build a map whose values are the insertion index of each key,
// duplicates keep the first index
func buildMap(keys []int) *rbtree.Map[int, int] {
	m := rbtree.NewMap[int, int]()
	for i, k := range keys {
		m.Insert(k, i)
	}
	return m
}

func mapKeys(m *rbtree.Map[int, int]) []int {
	keys := make([]int, 0, m.Len())
	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
