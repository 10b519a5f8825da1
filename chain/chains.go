// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the networks a daemon may serve
package chain

// names of all chains
const (
	Tiles   = "tiles"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Tiles, Testing, Local:
		return true
	default:
		return false
	}
}

// DataDirectory - sub-directory holding the database for a chain
func DataDirectory(name string) string {
	return "data-" + name
}
