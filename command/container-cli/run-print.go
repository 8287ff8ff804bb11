// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

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

	depth := tree.Print(m.w, c.Bool("data"))

	if m.verbose {
		fmt.Fprintf(m.e, "keys: %d  depth: %d\n", tree.Len(), depth)
	}
	return nil
}
