// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pixel

import (
	"encoding/json"

	"github.com/bitmark-inc/tilesd/constants"
	"github.com/bitmark-inc/tilesd/fault"
)

// Pixel - one leasable cell of a tile
type Pixel struct {
	Id            uint32 `json:"id"`
	Color         string `json:"color"`
	Expiration    uint64 `json:"expiration"`
	LastUpdatedBy string `json:"last_updated_by"`
	LastUpdatedAt uint64 `json:"last_updated_at"`
}

// Canvas - all pixels of a tile in id order
type Canvas [constants.PixelsPerTile]Pixel

// Update - a requested change to a single pixel
type Update struct {
	Id         uint32 `json:"id"`
	Color      string `json:"color"`
	Expiration uint64 `json:"expiration"`
}

// Genesis - the canvas of a freshly minted tile
//
// every pixel is already expired at mint time
func Genesis(owner string, mintedAt uint64) Canvas {
	var c Canvas
	for i := range c {
		c[i] = Pixel{
			Id:            uint32(i),
			Color:         constants.DefaultColor,
			Expiration:    mintedAt,
			LastUpdatedBy: owner,
			LastUpdatedAt: mintedAt,
		}
	}
	return c
}

// Check - structural check of a caller supplied canvas
//
// each pixel must sit at its own id and carry a "#RRGGBB" colour
func (c *Canvas) Check() error {
	for i, p := range c {
		if uint32(i) != p.Id || !ValidColor(p.Color) {
			return fault.ErrInvalidCanvas
		}
	}
	return nil
}

// Apply - return a copy of the canvas with the updates written by sender at now
//
// updates must already have been validated
func (c Canvas) Apply(updates []Update, sender string, now uint64) Canvas {
	for _, u := range updates {
		p := &c[u.Id]
		p.Color = u.Color
		p.Expiration = u.Expiration
		p.LastUpdatedBy = sender
		p.LastUpdatedAt = now
	}
	return c
}

// MarshalJSON - encode as a plain array
func (c Canvas) MarshalJSON() ([]byte, error) {
	return json.Marshal(c[:])
}

// UnmarshalJSON - decode a plain array, rejecting any other length
func (c *Canvas) UnmarshalJSON(s []byte) error {
	pixels := make([]Pixel, 0, constants.PixelsPerTile)
	err := json.Unmarshal(s, &pixels)
	if nil != err {
		return err
	}
	if constants.PixelsPerTile != len(pixels) {
		return fault.ErrInvalidCanvas
	}
	copy(c[:], pixels)
	return nil
}
