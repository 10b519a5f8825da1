// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tile

import (
	"github.com/bitmark-inc/tilesd/fingerprint"
	"github.com/bitmark-inc/tilesd/ledger"
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/pricing"
)

// Handle - operations available to external callers
type Handle interface {
	UpdatePixels(*Request) (*Result, error)
	PriceScaling() pricing.Scaling
	UpdatePriceScaling(string, pricing.Scaling) error
	Fingerprint(string) (fingerprint.Digest, error)
	Mint(string, string, string) (fingerprint.Digest, error)
	Genesis(string) (pixel.Canvas, error)
	Quote([]uint64) (uint64, error)
	Info() *Info
	Transfers(uint64, int) ([]ledger.Record, error)
}

var _ Handle = &Engine{}
