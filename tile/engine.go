// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tile

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/constants"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/fingerprint"
	"github.com/bitmark-inc/tilesd/ledger"
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/registry"
	"github.com/bitmark-inc/tilesd/settings"
	"github.com/bitmark-inc/tilesd/storage"
	"github.com/bitmark-inc/tilesd/validation"
)

// Clock - current time in seconds since the epoch
type Clock func() uint64

// SystemClock - wall clock time
func SystemClock() uint64 {
	return uint64(time.Now().Unix())
}

// Configuration - fixed settings of an engine
type Configuration struct {
	RoyaltyAddress string
	RoyaltyPercent uint64
	Minter         string
	Denomination   string
	Limits         validation.Limits
	InitialScaling pricing.Scaling
}

// Validate - check a configuration before use
func (c *Configuration) Validate() error {
	if err := registry.CheckAddress(c.RoyaltyAddress); nil != err {
		return err
	}
	if "" != c.Minter {
		if err := registry.CheckAddress(c.Minter); nil != err {
			return err
		}
	}
	if c.RoyaltyPercent > constants.MaximumRoyaltyPercent {
		return fault.ErrInvalidRoyaltyPercent
	}
	if "" == c.Denomination {
		return fault.ErrInvalidDenomination
	}
	if err := c.Limits.Validate(); nil != err {
		return err
	}
	return c.InitialScaling.Validate()
}

// Info - protocol constants and current settings
type Info struct {
	PixelsPerTile   int             `json:"pixels_per_tile"`
	TileSize        int             `json:"tile_size"`
	EncodingVersion int             `json:"encoding_version"`
	MaximumBatch    int             `json:"maximum_batch"`
	MinimumLease    uint64          `json:"minimum_lease"`
	MaximumLease    uint64          `json:"maximum_lease"`
	Denomination    string          `json:"denomination"`
	RoyaltyAddress  string          `json:"royalty_address"`
	RoyaltyPercent  uint64          `json:"royalty_percent"`
	PriceScaling    pricing.Scaling `json:"price_scaling"`
}

// Engine - serialised access to tiles
//
// one call at a time, each committed or discarded as a whole
type Engine struct {
	sync.Mutex

	log      *logger.L
	config   Configuration
	registry registry.Registry
	journal  *ledger.Journal
	settings *storage.PoolHandle
	events   Sender
	clock    Clock

	scaling pricing.Scaling
}

// New - create an engine, storing the initial price scaling on first use
func New(log *logger.L, config Configuration, reg registry.Registry, journal *ledger.Journal, settingsPool *storage.PoolHandle, events Sender, clock Clock) (*Engine, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if err := config.Validate(); nil != err {
		return nil, err
	}

	scaling, err := settings.InitialisePriceScaling(settingsPool, config.InitialScaling)
	if nil != err {
		return nil, err
	}
	if nil == clock {
		clock = SystemClock
	}

	log.Infof("price scaling: %+v", scaling)
	log.Infof("royalty: %d%% to: %q", config.RoyaltyPercent, config.RoyaltyAddress)

	return &Engine{
		log:      log,
		config:   config,
		registry: reg,
		journal:  journal,
		settings: settingsPool,
		events:   events,
		clock:    clock,
		scaling:  scaling,
	}, nil
}

// UpdatePixels - verify, price, charge and apply a batch of pixel updates
func (e *Engine) UpdatePixels(request *Request) (*Result, error) {
	if err := registry.CheckTokenId(request.TokenId); nil != err {
		return nil, err
	}
	if err := registry.CheckAddress(request.Sender); nil != err {
		return nil, err
	}

	e.Lock()
	defer e.Unlock()

	stored, err := e.registry.Fingerprint(request.TokenId)
	if nil != err {
		return nil, err
	}
	owner, _, err := e.registry.Owner(request.TokenId)
	if nil != err {
		return nil, err
	}

	now := e.clock()
	ctx := &Context{
		Now:            now,
		Stored:         stored,
		Owner:          owner,
		Scaling:        e.scaling,
		Limits:         e.config.Limits,
		RoyaltyAddress: e.config.RoyaltyAddress,
		RoyaltyPercent: e.config.RoyaltyPercent,
		Denomination:   e.config.Denomination,
	}

	t := NewTransaction(ctx, request)
	result, err := t.Run()
	if nil != err {
		e.log.Warnf("token: %q  sender: %q  rejected: %s", request.TokenId, request.Sender, err)
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		e.log.Errorf("begin: %s", err)
		return nil, err
	}
	err = e.registry.SetFingerprint(trx, request.TokenId, result.Fingerprint)
	if nil != err {
		trx.Abort()
		e.log.Errorf("token: %q  set fingerprint: %s", request.TokenId, err)
		return nil, err
	}
	_, err = e.journal.Append(trx, request.TokenId, request.Sender, now, result.Distribution.Transfers)
	if nil != err {
		trx.Abort()
		e.log.Errorf("token: %q  journal: %s", request.TokenId, err)
		return nil, err
	}
	err = trx.Commit()
	if nil != err {
		e.log.Errorf("token: %q  commit: %s", request.TokenId, err)
		return nil, err
	}

	e.log.Infof("token: %q  sender: %q  pixels: %d  paid: %d  fingerprint: %s", request.TokenId, request.Sender, len(request.Updates), result.TotalPaid, result.Fingerprint)

	e.emit(EventPixelsUpdated, pixelsUpdated(request, result, now))
	e.emit(EventPaymentDistributed, &PaymentDistributed{
		TokenId:       request.TokenId,
		Sender:        request.Sender,
		TotalAmount:   result.TotalPaid,
		RoyaltyAmount: result.Distribution.Royalty,
		OwnerAmount:   result.Distribution.Owner,
		Denomination:  e.config.Denomination,
	})

	return result, nil
}

// PriceScaling - the current price scaling
func (e *Engine) PriceScaling() pricing.Scaling {
	e.Lock()
	defer e.Unlock()
	return e.scaling
}

// UpdatePriceScaling - replace the price scaling, only the royalty address may do this
func (e *Engine) UpdatePriceScaling(sender string, scaling pricing.Scaling) error {
	if sender != e.config.RoyaltyAddress {
		e.log.Warnf("unauthorised price scaling update from: %q", sender)
		return fault.ErrUnauthorisedScaling
	}
	if err := scaling.Validate(); nil != err {
		return err
	}

	e.Lock()
	defer e.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = settings.SetPriceScaling(trx, e.settings, scaling)
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		e.log.Errorf("commit price scaling: %s", err)
		return err
	}
	e.scaling = scaling

	e.log.Infof("price scaling updated: %+v", scaling)
	e.emit(EventPriceScalingUpdated, &PriceScalingUpdated{
		Sender:  sender,
		Scaling: scaling,
	})
	return nil
}

// Fingerprint - the stored fingerprint of a tile
func (e *Engine) Fingerprint(tokenId string) (fingerprint.Digest, error) {
	if err := registry.CheckTokenId(tokenId); nil != err {
		return fingerprint.Digest{}, err
	}

	e.Lock()
	defer e.Unlock()
	return e.registry.Fingerprint(tokenId)
}

// Mint - create a tile with the genesis canvas, only the minter may do this
func (e *Engine) Mint(sender string, tokenId string, owner string) (fingerprint.Digest, error) {
	if "" == e.config.Minter || sender != e.config.Minter {
		e.log.Warnf("unauthorised mint of: %q  from: %q", tokenId, sender)
		return fingerprint.Digest{}, fault.ErrUnauthorisedMinter
	}

	e.Lock()
	defer e.Unlock()

	now := e.clock()
	canvas := pixel.Genesis(owner, now)
	digest := fingerprint.Compute(tokenId, &canvas)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return fingerprint.Digest{}, err
	}
	err = e.registry.Mint(trx, tokenId, owner, now, digest)
	if nil != err {
		trx.Abort()
		return fingerprint.Digest{}, err
	}
	err = trx.Commit()
	if nil != err {
		e.log.Errorf("token: %q  commit mint: %s", tokenId, err)
		return fingerprint.Digest{}, err
	}

	e.log.Infof("minted: %q  owner: %q  fingerprint: %s", tokenId, owner, digest)
	e.emit(EventTileMinted, &TileMinted{
		TokenId:     tokenId,
		Owner:       owner,
		MintedAt:    now,
		Fingerprint: digest,
	})
	return digest, nil
}

// Genesis - the canvas a tile had when it was minted
func (e *Engine) Genesis(tokenId string) (pixel.Canvas, error) {
	if err := registry.CheckTokenId(tokenId); nil != err {
		return pixel.Canvas{}, err
	}

	e.Lock()
	defer e.Unlock()

	owner, mintedAt, err := e.registry.Owner(tokenId)
	if nil != err {
		return pixel.Canvas{}, err
	}
	return pixel.Genesis(owner, mintedAt), nil
}

// Quote - price of a set of lease durations at the current scaling
func (e *Engine) Quote(durations []uint64) (uint64, error) {
	if len(durations) > e.config.Limits.MaximumBatch {
		return 0, fault.ErrBatchTooLarge
	}
	return e.PriceScaling().Total(durations)
}

// Info - protocol constants and current settings
func (e *Engine) Info() *Info {
	return &Info{
		PixelsPerTile:   constants.PixelsPerTile,
		TileSize:        constants.TileSize,
		EncodingVersion: fingerprint.EncodingVersion,
		MaximumBatch:    e.config.Limits.MaximumBatch,
		MinimumLease:    e.config.Limits.MinimumLease,
		MaximumLease:    e.config.Limits.MaximumLease,
		Denomination:    e.config.Denomination,
		RoyaltyAddress:  e.config.RoyaltyAddress,
		RoyaltyPercent:  e.config.RoyaltyPercent,
		PriceScaling:    e.PriceScaling(),
	}
}

// Transfers - journaled transfer instructions from sequence start
func (e *Engine) Transfers(start uint64, count int) ([]ledger.Record, error) {
	e.Lock()
	defer e.Unlock()
	return e.journal.List(start, count)
}

