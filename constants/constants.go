// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// canvas geometry
const (
	PixelsPerTile = 100
	TileSize      = 10
)

// colour of every pixel at mint
const (
	DefaultColor = "#FFFFFF"
)

// price tier boundaries in seconds
const (
	OneHour         = 3600
	TwelveHours     = 12 * OneHour
	TwentyFourHours = 24 * OneHour
)

// default lease and batch limits
const (
	DefaultMinimumLease = 60
	DefaultMaximumLease = 365 * TwentyFourHours
	DefaultMaximumBatch = PixelsPerTile
)

// default payment settings
const (
	DefaultDenomination   = "ustars"
	DefaultRoyaltyPercent = 5
)

// default price scaling in base units
const (
	DefaultHour1Price     = 100000000
	DefaultHour12Price    = 200000000
	DefaultHour24Price    = 300000000
	DefaultQuadraticBase  = 400000000
	MaximumRoyaltyPercent = 100
)
