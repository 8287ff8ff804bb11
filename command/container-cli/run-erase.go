// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type eraseStep struct {
	Key    int  `json:"key"`
	Erased bool `json:"erased"`
	Size   int  `json:"size"`
}

type eraseResult struct {
	Steps []eraseStep `json:"steps"`
	Keys  []int       `json:"keys"`
}

func runErase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}
	if 0 == len(keys) {
		return ErrRequiredKeys
	}

	eraseKeys, err := parseKeys([]string{c.String("keys")})
	if nil != err {
		return err
	}
	if 0 == len(eraseKeys) {
		return ErrRequiredEraseKeys
	}

	tree := buildMap(keys)
	defer tree.Destroy()

	result := eraseResult{
		Steps: make([]eraseStep, 0, len(eraseKeys)),
	}
	for _, k := range eraseKeys {
		n := tree.EraseKey(k)
		if err := tree.Check(); nil != err {
			return fmt.Errorf("after erasing: %d: %w", k, err)
		}
		result.Steps = append(result.Steps, eraseStep{
			Key:    k,
			Erased: 1 == n,
			Size:   tree.Len(),
		})
		if m.verbose {
			tree.Print(m.e, false)
		}
	}
	result.Keys = mapKeys(tree)

	return printJson(m.w, result)
}
