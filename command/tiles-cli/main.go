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
	connect string
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
	app.Name = "tiles-cli"
	app.Usage = "query and update pixel tiles on a tilesd"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2230",
			Usage:  " tilesd RPC `HOST:PORT`",
			EnvVar: "TILES_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display protocol constants and the current price scaling",
			Action: runInfo,
		},
		{
			Name:      "quote",
			Usage:     "price of one lease per duration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "duration, d",
					Usage: "*lease duration in `SECONDS`, may be repeated",
				},
			},
			Action: runQuote,
		},
		{
			Name:      "fingerprint",
			Usage:     "display the stored fingerprint of a tile",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*tile token `ID`",
				},
			},
			Action: runFingerprint,
		},
		{
			Name:      "genesis",
			Usage:     "display the canvas a tile was minted with",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*tile token `ID`",
				},
			},
			Action: runGenesis,
		},
		{
			Name:      "mint",
			Usage:     "create a new tile with a blank canvas",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*minter `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*tile token `ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "update",
			Usage:     "lease pixels on a tile",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*tile token `ID`",
				},
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*sender `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*JSON `FILE` holding canvas and updates",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*attached funds `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "denomination, D",
					Value: "",
					Usage: " funds `DENOM` [default from info]",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "set-scaling",
			Usage:     "replace the price scaling (royalty address only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*royalty `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "hour-1",
					Usage: "*price of a lease up to one hour `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "hour-12",
					Usage: "*price of a twelve hour lease `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "hour-24",
					Usage: "*price of a twenty four hour lease `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "quadratic-base",
					Usage: "*divisor for leases over a day `NUMBER`",
				},
			},
			Action: runSetScaling,
		},
		{
			Name:      "transfers",
			Usage:     "list journaled payment transfers",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of records `COUNT`",
				},
			},
			Action: runTransfers,
		},
	}

	app.Before = func(c *cli.Context) error {
		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("missing connect")
		}
		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
