// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "container-cli"
	app.Usage = "inspect ordered maps and pool allocators"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "insert keys into a map and draw the tree",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include values in the drawing",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "check",
			Usage:     "insert keys into a map and validate the tree",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runCheck,
		},
		{
			Name:      "erase",
			Usage:     "insert keys then erase some of them, validating after each step",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "keys, k",
					Value: "",
					Usage: "*comma separated keys to erase `KEYS`",
				},
			},
			Action: runErase,
		},
		{
			Name:      "pool",
			Usage:     "simulate pool allocator growth",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "chunks, c",
					Value: 16,
					Usage: " chunks per slab `COUNT`",
				},
				cli.IntFlag{
					Name:  "allocs, a",
					Value: 0,
					Usage: "*number of allocations `COUNT`",
				},
				cli.IntFlag{
					Name:  "frees, f",
					Value: 0,
					Usage: " number of the most recent allocations to free `COUNT`",
				},
			},
			Action: runPool,
		},
		{
			Name:   "version",
			Usage:  "display container-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
