// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tilesd/fault"
)

func TestParseDurations(t *testing.T) {
	d, err := parseDurations([]string{"3600", "86400"})
	assert.Nil(t, err, "wrong parse error")
	assert.Equal(t, []uint64{3600, 86400}, d, "wrong durations")

	_, err = parseDurations(nil)
	assert.NotNil(t, err, "empty list should fail")

	_, err = parseDurations([]string{"-1"})
	assert.NotNil(t, err, "negative duration should fail")
}

func TestReadUpdateFile(t *testing.T) {
	f, err := ioutil.TempFile("", "tiles-update")
	if nil != err {
		t.Fatalf("temporary file error: %s", err)
	}
	defer os.Remove(f.Name())

	_, _ = f.WriteString(`{"updates":[{"id":3,"color":"#00FF00","expiration":7200}]}`)
	f.Close()

	contents, err := readUpdateFile(f.Name())
	assert.Nil(t, err, "wrong read error")
	assert.Equal(t, 1, len(contents.Updates), "wrong update count")
	assert.Equal(t, uint32(3), contents.Updates[0].Id, "wrong id")
	assert.Equal(t, "#00FF00", contents.Updates[0].Color, "wrong color")
	assert.Equal(t, uint64(7200), contents.Updates[0].Expiration, "wrong expiration")
}

func TestReadUpdateFileWithoutUpdates(t *testing.T) {
	f, err := ioutil.TempFile("", "tiles-update")
	if nil != err {
		t.Fatalf("temporary file error: %s", err)
	}
	defer os.Remove(f.Name())

	_, _ = f.WriteString(`{"updates":[]}`)
	f.Close()

	_, err = readUpdateFile(f.Name())
	assert.NotNil(t, err, "empty updates should fail")
}

func TestSetScalingRejectedLocally(t *testing.T) {
	var w, e bytes.Buffer
	app := newApp(&w, &e)

	err := app.Run([]string{"tiles-cli", "set-scaling", "--sender", "tiles1minter", "--hour-1", "10", "--hour-12", "5", "--hour-24", "20", "--quadratic-base", "100"})
	assert.Equal(t, fault.ErrPriceTierOrder, err, "wrong error")
	assert.Equal(t, 0, w.Len(), "unexpected output")
}

func TestMissingRequired(t *testing.T) {
	var w, e bytes.Buffer
	app := newApp(&w, &e)

	err := app.Run([]string{"tiles-cli", "fingerprint"})
	assert.NotNil(t, err, "missing token should fail")
	assert.Contains(t, err.Error(), "token", "wrong error")
}
