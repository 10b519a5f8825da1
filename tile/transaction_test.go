// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tilesd/constants"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/fingerprint"
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/royalty"
	"github.com/bitmark-inc/tilesd/tile"
	"github.com/bitmark-inc/tilesd/validation"
)

const (
	tokenId  = "tile-1"
	owner    = "owner-address"
	sender   = "sender-address"
	royalAdr = "royalty-address"
	mintedAt = uint64(1600000000)
	now      = mintedAt + 10
)

var scaling = pricing.Scaling{
	Hour1Price:    100,
	Hour12Price:   200,
	Hour24Price:   300,
	QuadraticBase: 400,
}

func newContext(canvas *pixel.Canvas) *tile.Context {
	return &tile.Context{
		Now:            now,
		Stored:         fingerprint.Compute(tokenId, canvas),
		Owner:          owner,
		Scaling:        scaling,
		Limits:         validation.DefaultLimits(),
		RoyaltyAddress: royalAdr,
		RoyaltyPercent: 5,
		Denomination:   "ustars",
	}
}

func newRequest(canvas pixel.Canvas, amount uint64, updates ...pixel.Update) *tile.Request {
	return &tile.Request{
		TokenId: tokenId,
		Sender:  sender,
		Canvas:  canvas,
		Updates: updates,
		Funds: royalty.Funds{
			Denomination: "ustars",
			Amount:       amount,
		},
	}
}

func TestSingleUpdate(t *testing.T) {
	canvas := pixel.Genesis(owner, mintedAt)
	ctx := newContext(&canvas)
	request := newRequest(canvas, 100, pixel.Update{Id: 0, Color: "#FF0000", Expiration: now + 3600})

	trx := tile.NewTransaction(ctx, request)
	assert.Equal(t, tile.Received, trx.State(), "initial state")

	result, err := trx.Run()
	assert.Nil(t, err, "run")
	assert.Equal(t, tile.Committed, trx.State(), "final state")
	assert.Nil(t, trx.Reason(), "no reason")

	assert.NotEqual(t, ctx.Stored, result.Fingerprint, "fingerprint changed")
	assert.Equal(t, fingerprint.Compute(tokenId, &result.Canvas), result.Fingerprint, "fingerprint of result")
	assert.Equal(t, scaling.Hour1Price, result.TotalPaid, "charged one hour")
	assert.Equal(t, []uint64{3600}, result.Durations, "durations")

	assert.Equal(t, pixel.Pixel{Id: 0, Color: "#FF0000", Expiration: now + 3600, LastUpdatedBy: sender, LastUpdatedAt: now}, result.Canvas[0], "updated pixel")
	assert.Equal(t, canvas[1], result.Canvas[1], "untouched pixel")
	assert.Equal(t, constants.DefaultColor, request.Canvas[0].Color, "request not modified")

	assert.Equal(t, uint64(5), result.Distribution.Royalty, "royalty")
	assert.Equal(t, uint64(95), result.Distribution.Owner, "owner")
	assert.Equal(t, []royalty.Transfer{
		{To: royalAdr, Amount: 5, Denomination: "ustars", Reason: royalty.ReasonRoyalty},
		{To: owner, Amount: 95, Denomination: "ustars", Reason: royalty.ReasonOwner},
	}, result.Distribution.Transfers, "transfers")

	// running again does not repeat the work
	again, err := trx.Run()
	assert.Nil(t, err, "run again")
	assert.Equal(t, result, again, "same result")
}

func TestRejections(t *testing.T) {
	canvas := pixel.Genesis(owner, mintedAt)
	stale := canvas.Apply([]pixel.Update{{Id: 5, Color: "#000000", Expiration: now - 1}}, "someone", now-5)
	broken := canvas
	broken[3].Id = 4

	ok := pixel.Update{Id: 0, Color: "#FF0000", Expiration: now + 3600}

	tests := []struct {
		name    string
		request *tile.Request
		err     error
	}{
		{"duplicate", newRequest(canvas, 200, ok, ok), fault.ErrDuplicatePixel},
		{"out of range", newRequest(canvas, 100, pixel.Update{Id: 100, Color: "#FF0000", Expiration: now + 3600}), fault.ErrPixelOutOfRange},
		{"stale snapshot", newRequest(stale, 100, ok), fault.ErrFingerprintMismatch},
		{"malformed snapshot", newRequest(broken, 100, ok), fault.ErrInvalidCanvas},
		{"underpaid", newRequest(canvas, 99, ok), fault.ErrInsufficientFunds},
		{"overpaid", newRequest(canvas, 101, ok), fault.ErrExcessFunds},
		{"lease too long", newRequest(canvas, 100, pixel.Update{Id: 0, Color: "#FF0000", Expiration: now + 1<<40}), fault.ErrLeaseTooLong},
	}

	for _, item := range tests {
		ctx := newContext(&canvas)
		trx := tile.NewTransaction(ctx, item.request)
		result, err := trx.Run()
		assert.Nil(t, result, item.name)
		assert.Equal(t, item.err, err, item.name)
		assert.Equal(t, tile.Rejected, trx.State(), item.name)
		assert.Equal(t, item.err, trx.Reason(), item.name)
	}
}

func TestPriceOverflowRejected(t *testing.T) {
	canvas := pixel.Genesis(owner, mintedAt)
	ctx := newContext(&canvas)
	ctx.Limits.MaximumLease = 1 << 40
	ctx.Scaling.QuadraticBase = 1 << 63

	request := newRequest(canvas, 0,
		pixel.Update{Id: 0, Color: "#FF0000", Expiration: now + 1<<33},
		pixel.Update{Id: 1, Color: "#FF0000", Expiration: now + 1<<33},
	)
	_, err := tile.Process(ctx, request)
	assert.Equal(t, fault.ErrPriceOverflow, err, "overflow")
}

func TestLeasedPixelRejected(t *testing.T) {
	canvas := pixel.Genesis(owner, mintedAt)
	canvas = canvas.Apply([]pixel.Update{{Id: 7, Color: "#123456", Expiration: now + 60}}, "first", now-1)
	ctx := newContext(&canvas)

	_, err := tile.Process(ctx, newRequest(canvas, 100, pixel.Update{Id: 7, Color: "#FF0000", Expiration: now + 3600}))
	assert.Equal(t, fault.ErrPixelLeased, err, "leased")

	// the same request after the lease has run out
	ctx.Now = now + 61
	request := newRequest(canvas, 100, pixel.Update{Id: 7, Color: "#FF0000", Expiration: ctx.Now + 3600})
	_, err = tile.Process(ctx, request)
	assert.Nil(t, err, "expired lease")
}

func TestMultiplePixels(t *testing.T) {
	canvas := pixel.Genesis(owner, mintedAt)
	ctx := newContext(&canvas)

	request := newRequest(canvas, 100+145+300,
		pixel.Update{Id: 10, Color: "#010203", Expiration: now + 3600},
		pixel.Update{Id: 20, Color: "#040506", Expiration: now + 21600},
		pixel.Update{Id: 30, Color: "#070809", Expiration: now + 86400},
	)
	result, err := tile.Process(ctx, request)
	assert.Nil(t, err, "process")
	assert.Equal(t, uint64(545), result.TotalPaid, "total")
	assert.Equal(t, uint64(27), result.Distribution.Royalty, "royalty")
	assert.Equal(t, uint64(518), result.Distribution.Owner, "owner")
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "Received", tile.Received.String(), "received")
	assert.Equal(t, "FundsVerified", tile.FundsVerified.String(), "funds verified")
	assert.Equal(t, "Rejected", tile.Rejected.String(), "rejected")
	assert.Equal(t, "*unknown*", tile.State(99).String(), "unknown")
}
