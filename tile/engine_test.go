// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tile_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/fingerprint"
	"github.com/bitmark-inc/tilesd/fixtures"
	"github.com/bitmark-inc/tilesd/ledger"
	"github.com/bitmark-inc/tilesd/messagebus"
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/registry"
	"github.com/bitmark-inc/tilesd/royalty"
	"github.com/bitmark-inc/tilesd/storage"
	"github.com/bitmark-inc/tilesd/tile"
	"github.com/bitmark-inc/tilesd/validation"
)

const minter = "minter-address"

type testEnvironment struct {
	dir    string
	clock  uint64
	events *messagebus.BroadcastQueue
	queue  <-chan messagebus.Message
	engine *tile.Engine
}

func setupEngine(t *testing.T) *testEnvironment {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "tile-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	env := &testEnvironment{
		dir:    dir,
		clock:  mintedAt,
		events: &messagebus.BroadcastQueue{},
	}
	env.queue = env.events.Chan(100)

	config := tile.Configuration{
		RoyaltyAddress: royalAdr,
		RoyaltyPercent: 5,
		Minter:         minter,
		Denomination:   "ustars",
		Limits:         validation.DefaultLimits(),
		InitialScaling: scaling,
	}
	reg := registry.New(storage.Pool.Tiles, storage.Pool.Fingerprints)
	journal := ledger.New(storage.Pool.Transfers, storage.Pool.Counters)

	env.engine, err = tile.New(logger.New(fixtures.LogCategory), config, reg, journal, storage.Pool.Settings, env.events, func() uint64 { return env.clock })
	if nil != err {
		t.Fatalf("engine error: %s", err)
	}
	return env
}

func (env *testEnvironment) teardown() {
	storage.Finalise()
	os.RemoveAll(env.dir)
	fixtures.TeardownTestLogger()
}

func (env *testEnvironment) next(t *testing.T) messagebus.Message {
	select {
	case m := <-env.queue:
		return m
	default:
		t.Fatalf("no event")
	}
	return messagebus.Message{}
}

func (env *testEnvironment) noEvents(t *testing.T) {
	select {
	case m := <-env.queue:
		t.Fatalf("unexpected event: %q", m.Command)
	default:
	}
}

func TestMintAndGenesis(t *testing.T) {
	env := setupEngine(t)
	defer env.teardown()

	_, err := env.engine.Mint("stranger", tokenId, owner)
	assert.Equal(t, fault.ErrUnauthorisedMinter, err, "unauthorised")

	digest, err := env.engine.Mint(minter, tokenId, owner)
	assert.Nil(t, err, "mint")

	genesis := pixel.Genesis(owner, mintedAt)
	assert.Equal(t, fingerprint.Compute(tokenId, &genesis), digest, "genesis fingerprint")

	canvas, err := env.engine.Genesis(tokenId)
	assert.Nil(t, err, "genesis")
	assert.Equal(t, genesis, canvas, "genesis canvas")

	stored, err := env.engine.Fingerprint(tokenId)
	assert.Nil(t, err, "fingerprint")
	assert.Equal(t, digest, stored, "stored")

	m := env.next(t)
	assert.Equal(t, tile.EventTileMinted, m.Command, "event")
	var minted tile.TileMinted
	assert.Nil(t, json.Unmarshal(m.Parameters[0], &minted), "decode")
	assert.Equal(t, owner, minted.Owner, "event owner")

	_, err = env.engine.Mint(minter, tokenId, owner)
	assert.Equal(t, fault.ErrTileExists, err, "mint twice")

	_, err = env.engine.Fingerprint("missing")
	assert.Equal(t, fault.ErrTileNotFound, err, "missing")
}

func TestUpdatePixels(t *testing.T) {
	env := setupEngine(t)
	defer env.teardown()

	original, err := env.engine.Mint(minter, tokenId, owner)
	assert.Nil(t, err, "mint")
	env.next(t)

	env.clock = now
	canvas, err := env.engine.Genesis(tokenId)
	assert.Nil(t, err, "genesis")

	request := newRequest(canvas, 100, pixel.Update{Id: 0, Color: "#FF0000", Expiration: now + 3600})
	result, err := env.engine.UpdatePixels(request)
	assert.Nil(t, err, "update")
	assert.NotEqual(t, original, result.Fingerprint, "changed")
	assert.Equal(t, uint64(100), result.TotalPaid, "paid")

	stored, err := env.engine.Fingerprint(tokenId)
	assert.Nil(t, err, "fingerprint")
	assert.Equal(t, result.Fingerprint, stored, "stored")

	m := env.next(t)
	assert.Equal(t, tile.EventPixelsUpdated, m.Command, "pixels event")
	var updated tile.PixelsUpdated
	assert.Nil(t, json.Unmarshal(m.Parameters[0], &updated), "decode")
	assert.Equal(t, []tile.PixelUpdated{{PixelId: 0, Color: "#FF0000", ExpirationDuration: 3600, ExpirationTimestamp: now + 3600}}, updated.Pixels, "pixels")
	assert.Equal(t, sender, updated.LastUpdatedBy, "updated by")

	m = env.next(t)
	assert.Equal(t, tile.EventPaymentDistributed, m.Command, "payment event")
	var payment tile.PaymentDistributed
	assert.Nil(t, json.Unmarshal(m.Parameters[0], &payment), "decode")
	assert.Equal(t, uint64(5), payment.RoyaltyAmount, "royalty")
	assert.Equal(t, uint64(95), payment.OwnerAmount, "owner")

	records, err := env.engine.Transfers(0, 10)
	assert.Nil(t, err, "transfers")
	assert.Equal(t, 2, len(records), "journaled")
	assert.Equal(t, royalty.Transfer{To: royalAdr, Amount: 5, Denomination: "ustars", Reason: royalty.ReasonRoyalty}, records[0].Transfer, "royalty transfer")
	assert.Equal(t, royalty.Transfer{To: owner, Amount: 95, Denomination: "ustars", Reason: royalty.ReasonOwner}, records[1].Transfer, "owner transfer")

	// the same request again now holds a stale snapshot
	_, err = env.engine.UpdatePixels(request)
	assert.Equal(t, fault.ErrFingerprintMismatch, err, "stale")

	// a fresh snapshot for a different pixel succeeds
	env.clock = now + 10
	next := newRequest(result.Canvas, 100, pixel.Update{Id: 1, Color: "#00FF00", Expiration: now + 3700})
	_, err = env.engine.UpdatePixels(next)
	assert.Nil(t, err, "second update")
}

func TestRejectedUpdateLeavesNoTrace(t *testing.T) {
	env := setupEngine(t)
	defer env.teardown()

	original, err := env.engine.Mint(minter, tokenId, owner)
	assert.Nil(t, err, "mint")
	env.next(t)

	env.clock = now
	canvas := pixel.Genesis(owner, mintedAt)

	bad := []*tile.Request{
		newRequest(canvas, 200,
			pixel.Update{Id: 0, Color: "#FF0000", Expiration: now + 3600},
			pixel.Update{Id: 0, Color: "#FF0000", Expiration: now + 3600},
		),
		newRequest(canvas, 200,
			pixel.Update{Id: 1, Color: "#FF0000", Expiration: now + 3600},
			pixel.Update{Id: 2, Color: "nope", Expiration: now + 3600},
		),
		newRequest(canvas, 1, pixel.Update{Id: 1, Color: "#FF0000", Expiration: now + 3600}),
	}
	for i, request := range bad {
		_, err := env.engine.UpdatePixels(request)
		assert.NotNil(t, err, "request: %d", i)
	}

	stored, err := env.engine.Fingerprint(tokenId)
	assert.Nil(t, err, "fingerprint")
	assert.Equal(t, original, stored, "unchanged")

	records, err := env.engine.Transfers(0, 10)
	assert.Nil(t, err, "transfers")
	assert.Equal(t, 0, len(records), "nothing journaled")

	env.noEvents(t)
}

func TestUpdateUnknownTile(t *testing.T) {
	env := setupEngine(t)
	defer env.teardown()

	canvas := pixel.Genesis(owner, mintedAt)
	_, err := env.engine.UpdatePixels(newRequest(canvas, 100, pixel.Update{Id: 0, Color: "#FF0000", Expiration: now + 3600}))
	assert.Equal(t, fault.ErrTileNotFound, err, "unknown tile")

	request := newRequest(canvas, 100)
	request.Sender = ""
	_, err = env.engine.UpdatePixels(request)
	assert.Equal(t, fault.ErrInvalidAddress, err, "empty sender")
}

func TestPriceScaling(t *testing.T) {
	env := setupEngine(t)
	defer env.teardown()

	assert.Equal(t, scaling, env.engine.PriceScaling(), "initial")

	replacement := scaling
	replacement.Hour1Price = 150

	err := env.engine.UpdatePriceScaling(sender, replacement)
	assert.Equal(t, fault.ErrUnauthorisedScaling, err, "unauthorised")
	assert.True(t, fault.IsErrAuthorisation(err), "class")

	invalid := scaling
	invalid.Hour1Price = 250
	err = env.engine.UpdatePriceScaling(royalAdr, invalid)
	assert.Equal(t, fault.ErrPriceTierOrder, err, "invalid")

	env.noEvents(t)

	err = env.engine.UpdatePriceScaling(royalAdr, replacement)
	assert.Nil(t, err, "update")
	assert.Equal(t, replacement, env.engine.PriceScaling(), "updated")
	assert.Equal(t, tile.EventPriceScalingUpdated, env.next(t).Command, "event")

	total, err := env.engine.Quote([]uint64{3600, 3600})
	assert.Nil(t, err, "quote")
	assert.Equal(t, uint64(300), total, "quote uses new scaling")

	info := env.engine.Info()
	assert.Equal(t, 100, info.PixelsPerTile, "pixels per tile")
	assert.Equal(t, 10, info.TileSize, "tile size")
	assert.Equal(t, replacement, info.PriceScaling, "info scaling")
	assert.Equal(t, "ustars", info.Denomination, "denomination")
}

func TestScalingPersists(t *testing.T) {
	env := setupEngine(t)
	defer env.teardown()

	replacement := scaling
	replacement.QuadraticBase = 999
	assert.Nil(t, env.engine.UpdatePriceScaling(royalAdr, replacement), "update")

	config := tile.Configuration{
		RoyaltyAddress: royalAdr,
		RoyaltyPercent: 5,
		Denomination:   "ustars",
		Limits:         validation.DefaultLimits(),
		InitialScaling: scaling,
	}
	reg := registry.New(storage.Pool.Tiles, storage.Pool.Fingerprints)
	journal := ledger.New(storage.Pool.Transfers, storage.Pool.Counters)

	restarted, err := tile.New(logger.New(fixtures.LogCategory), config, reg, journal, storage.Pool.Settings, nil, nil)
	assert.Nil(t, err, "restart")
	assert.Equal(t, replacement, restarted.PriceScaling(), "stored scaling wins")

	_, err = restarted.Mint(minter, "other", owner)
	assert.Equal(t, fault.ErrUnauthorisedMinter, err, "no minter configured")
}

func TestConfigurationValidate(t *testing.T) {
	good := tile.Configuration{
		RoyaltyAddress: royalAdr,
		RoyaltyPercent: 5,
		Denomination:   "ustars",
		Limits:         validation.DefaultLimits(),
		InitialScaling: scaling,
	}
	assert.Nil(t, good.Validate(), "good")

	c := good
	c.RoyaltyAddress = ""
	assert.Equal(t, fault.ErrInvalidAddress, c.Validate(), "royalty address")

	c = good
	c.RoyaltyPercent = 101
	assert.Equal(t, fault.ErrInvalidRoyaltyPercent, c.Validate(), "percent")

	c = good
	c.Denomination = ""
	assert.Equal(t, fault.ErrInvalidDenomination, c.Validate(), "denomination")

	c = good
	c.InitialScaling.QuadraticBase = 0
	assert.Equal(t, fault.ErrZeroPrice, c.Validate(), "scaling")
}
