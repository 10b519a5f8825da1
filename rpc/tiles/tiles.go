// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tiles

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/fingerprint"
	"github.com/bitmark-inc/tilesd/ledger"
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/royalty"
	"github.com/bitmark-inc/tilesd/rpc/ratelimit"
	"github.com/bitmark-inc/tilesd/tile"
)

const (
	rateLimitTiles = 200
	rateBurstTiles = 100

	maximumTransfersCount = 100
)

// Tiles - type for the RPC
type Tiles struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  tile.Handle
}

// New - create the tiles service
func New(log *logger.L, engine tile.Handle) *Tiles {
	return &Tiles{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTiles, rateBurstTiles),
		Engine:  engine,
	}
}

// UpdatePixelsArguments - a caller's snapshot, changes and payment
type UpdatePixelsArguments struct {
	TokenId string         `json:"token_id"`
	Sender  string         `json:"sender"`
	Canvas  pixel.Canvas   `json:"canvas"`
	Updates []pixel.Update `json:"updates"`
	Funds   royalty.Funds  `json:"funds"`
}

// UpdatePixelsReply - effects of a successful update
type UpdatePixelsReply struct {
	Fingerprint   fingerprint.Digest `json:"fingerprint"`
	TotalPaid     uint64             `json:"total_paid,string"`
	RoyaltyAmount uint64             `json:"royalty_amount,string"`
	OwnerAmount   uint64             `json:"owner_amount,string"`
	Durations     []uint64           `json:"durations"`
	Transfers     []royalty.Transfer `json:"transfers"`
}

// UpdatePixels - lease and recolour pixels of one tile
func (t *Tiles) UpdatePixels(arguments *UpdatePixelsArguments, reply *UpdatePixelsReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	t.Log.Infof("Tiles.UpdatePixels: token: %q  sender: %q  updates: %d  funds: %+v", arguments.TokenId, arguments.Sender, len(arguments.Updates), arguments.Funds)

	result, err := t.Engine.UpdatePixels(&tile.Request{
		TokenId: arguments.TokenId,
		Sender:  arguments.Sender,
		Canvas:  arguments.Canvas,
		Updates: arguments.Updates,
		Funds:   arguments.Funds,
	})
	if nil != err {
		t.Log.Warnf("Tiles.UpdatePixels: token: %q  rejected: %s", arguments.TokenId, err)
		return err
	}

	reply.Fingerprint = result.Fingerprint
	reply.TotalPaid = result.TotalPaid
	reply.Durations = result.Durations
	if nil != result.Distribution {
		reply.RoyaltyAmount = result.Distribution.Royalty
		reply.OwnerAmount = result.Distribution.Owner
		reply.Transfers = result.Distribution.Transfers
	}
	return nil
}

// FingerprintArguments - which tile
type FingerprintArguments struct {
	TokenId string `json:"token_id"`
}

// FingerprintReply - stored fingerprint of a tile
type FingerprintReply struct {
	TokenId     string             `json:"token_id"`
	Fingerprint fingerprint.Digest `json:"fingerprint"`
}

// Fingerprint - current fingerprint of a tile
func (t *Tiles) Fingerprint(arguments *FingerprintArguments, reply *FingerprintReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	t.Log.Debugf("Tiles.Fingerprint: %+v", arguments)

	digest, err := t.Engine.Fingerprint(arguments.TokenId)
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Fingerprint = digest
	return nil
}

// MintArguments - a new tile and its owner
type MintArguments struct {
	Sender  string `json:"sender"`
	TokenId string `json:"token_id"`
	Owner   string `json:"owner"`
}

// Mint - create a tile with the default canvas
func (t *Tiles) Mint(arguments *MintArguments, reply *FingerprintReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	t.Log.Infof("Tiles.Mint: %+v", arguments)

	digest, err := t.Engine.Mint(arguments.Sender, arguments.TokenId, arguments.Owner)
	if nil != err {
		t.Log.Warnf("Tiles.Mint: token: %q  rejected: %s", arguments.TokenId, err)
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Fingerprint = digest
	return nil
}

// GenesisReply - the canvas a tile was minted with
type GenesisReply struct {
	TokenId string       `json:"token_id"`
	Canvas  pixel.Canvas `json:"canvas"`
}

// Genesis - reconstruct the minted canvas of a tile
func (t *Tiles) Genesis(arguments *FingerprintArguments, reply *GenesisReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	canvas, err := t.Engine.Genesis(arguments.TokenId)
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Canvas = canvas
	return nil
}

// TransfersArguments - start position and count
type TransfersArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// TransfersReply - journaled transfers and where to continue
type TransfersReply struct {
	Transfers []ledger.Record `json:"transfers"`
	NextStart uint64          `json:"nextStart,string"`
}

// Transfers - list payment transfer instructions in sequence order
func (t *Tiles) Transfers(arguments *TransfersArguments, reply *TransfersReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(t.Limiter, arguments.Count, maximumTransfersCount); nil != err {
		return err
	}

	t.Log.Debugf("Tiles.Transfers: %+v", arguments)

	records, err := t.Engine.Transfers(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Transfers = records
	reply.NextStart = arguments.Start
	if n := len(records); n > 0 {
		reply.NextStart = records[n-1].Sequence + 1
	}
	return nil
}
