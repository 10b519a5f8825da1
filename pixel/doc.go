// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pixel - the pixel array of a single tile
//
// A canvas always holds exactly constants.PixelsPerTile pixels and
// the pixel at index i always has id i.  Only the fingerprint of a
// canvas is kept by the daemon, callers supply the full canvas
// on every update.
package pixel
