// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fingerprint - compare-and-swap guard over tile canvases
//
// Only the digest of a canvas is stored.  A caller must present the
// canvas it believes is current, and the update is accepted only if
// that canvas hashes to the stored digest.
//
// Canonical encoding, version 1 (frozen):
//
//   "tiles-canvas" 0x01
//   varint(len(tile id)) tile id
//   for each pixel in id order:
//     u32be(id)
//     varint(len(color)) color
//     u64be(expiration)
//     varint(len(last updated by)) last updated by
//     u64be(last updated at)
package fingerprint

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/util"
)

// EncodingVersion - the canonical encoding produced by Encode
const EncodingVersion = 0x01

var domainTag = []byte("tiles-canvas")

// Encode - canonical byte encoding of a tile's canvas
func Encode(tileId string, canvas *pixel.Canvas) []byte {
	buffer := make([]byte, 0, len(domainTag)+1+len(tileId)+len(canvas)*64)
	buffer = append(buffer, domainTag...)
	buffer = append(buffer, EncodingVersion)
	buffer = appendString(buffer, tileId)

	n := make([]byte, 8)
	for _, p := range canvas {
		binary.BigEndian.PutUint32(n, p.Id)
		buffer = append(buffer, n[:4]...)
		buffer = appendString(buffer, p.Color)
		binary.BigEndian.PutUint64(n, p.Expiration)
		buffer = append(buffer, n...)
		buffer = appendString(buffer, p.LastUpdatedBy)
		binary.BigEndian.PutUint64(n, p.LastUpdatedAt)
		buffer = append(buffer, n...)
	}
	return buffer
}

// Compute - the digest of a tile's canvas
func Compute(tileId string, canvas *pixel.Canvas) Digest {
	return sha3.Sum256(Encode(tileId, canvas))
}

// Verify - check that canvas is the one the stored digest was made from
func Verify(stored Digest, tileId string, canvas *pixel.Canvas) error {
	if stored != Compute(tileId, canvas) {
		return fault.ErrFingerprintMismatch
	}
	return nil
}

// length prefixed string
func appendString(buffer []byte, s string) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}
