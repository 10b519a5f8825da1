// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tilesd/command/tiles-cli/rpccalls"
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/royalty"
)

// contents of the update file
type updateFile struct {
	Canvas  pixel.Canvas   `json:"canvas"`
	Updates []pixel.Update `json:"updates"`
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func checkRequired(c *cli.Context, names ...string) error {
	for _, name := range names {
		if "" == c.String(name) {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

func runQuote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	durations, err := parseDurations(c.StringSlice("duration"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Quote(durations)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func parseDurations(items []string) ([]uint64, error) {
	if 0 == len(items) {
		return nil, fmt.Errorf("duration is required")
	}
	durations := make([]uint64, 0, len(items))
	for _, s := range items {
		d, err := strconv.ParseUint(s, 10, 64)
		if nil != err {
			return nil, fmt.Errorf("invalid duration: %q", s)
		}
		durations = append(durations, d)
	}
	return durations, nil
}

func runFingerprint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "token"); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Fingerprint(c.String("token"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runGenesis(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "token"); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Genesis(c.String("token"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "sender", "token", "owner"); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Mint(c.String("sender"), c.String("token"), c.String("owner"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "token", "sender", "file"); nil != err {
		return err
	}

	contents, err := readUpdateFile(c.String("file"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	denomination := c.String("denomination")
	if "" == denomination {
		info, err := client.Info()
		if nil != err {
			return err
		}
		denomination = info.Denomination
	}

	data := &rpccalls.UpdateData{
		TokenId: c.String("token"),
		Sender:  c.String("sender"),
		Canvas:  contents.Canvas,
		Updates: contents.Updates,
		Funds: royalty.Funds{
			Denomination: denomination,
			Amount:       c.Uint64("amount"),
		},
	}

	reply, err := client.UpdatePixels(data)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func readUpdateFile(name string) (*updateFile, error) {
	b, err := ioutil.ReadFile(name)
	if nil != err {
		return nil, err
	}
	var contents updateFile
	if err := json.Unmarshal(b, &contents); nil != err {
		return nil, err
	}
	if 0 == len(contents.Updates) {
		return nil, fmt.Errorf("file: %q has no updates", name)
	}
	return &contents, nil
}

func runSetScaling(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "sender"); nil != err {
		return err
	}

	s := pricing.Scaling{
		Hour1Price:    c.Uint64("hour-1"),
		Hour12Price:   c.Uint64("hour-12"),
		Hour24Price:   c.Uint64("hour-24"),
		QuadraticBase: c.Uint64("quadratic-base"),
	}

	// reject locally what the server would reject
	if err := s.Validate(); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpdateScaling(c.String("sender"), s)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runTransfers(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Transfers(c.Uint64("start"), count)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
