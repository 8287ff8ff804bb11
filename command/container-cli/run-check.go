// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/urfave/cli"
)

type checkResult struct {
	Size  int   `json:"size"`
	Depth int   `json:"depth"`
	Keys  []int `json:"keys"`
	Valid bool  `json:"valid"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}
	if 0 == len(keys) {
		return ErrRequiredKeys
	}

	tree := buildMap(keys)
	defer tree.Destroy()

	if err := tree.Check(); nil != err {
		return err
	}

	result := checkResult{
		Size:  tree.Len(),
		Depth: tree.Print(io.Discard, false),
		Keys:  mapKeys(tree),
		Valid: true,
	}
	return printJson(m.w, result)
}
