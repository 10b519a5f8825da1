// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a single batch transaction so the effects of
// one call are either all committed or all discarded.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. token id     = bytes of the tile's token id string
// 4. count        = successive index value as big endian uint64 (8 bytes)
//
// Tiles:
//
//   T ++ token id              - minted tile
//                                data: minted at (big endian uint64) ++ owner
//   F ++ token id              - current canvas fingerprint
//                                data: 32 byte SHA3-256
//
// Settings:
//
//   S ++ name                  - persisted settings
//                                data: JSON
//   N ++ name                  - next count value for a sequence
//                                data: count
//
// Payments:
//
//   X ++ count                 - transfer instructions in issue order
//                                data: JSON
//
// Testing:
//   Z ++ key                   - testing data
package storage
