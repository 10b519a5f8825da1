// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tile

import (
	"encoding/json"

	"github.com/bitmark-inc/tilesd/fingerprint"
	"github.com/bitmark-inc/tilesd/pricing"
)

// event commands on the message bus
const (
	EventPixelsUpdated       = "pixelsUpdated"
	EventPaymentDistributed  = "paymentDistributed"
	EventPriceScalingUpdated = "priceScalingUpdated"
	EventTileMinted          = "tileMinted"
)

// PixelUpdated - one changed pixel
type PixelUpdated struct {
	PixelId             uint32 `json:"pixel_id"`
	Color               string `json:"color"`
	ExpirationDuration  uint64 `json:"expiration_duration"`
	ExpirationTimestamp uint64 `json:"expiration_timestamp"`
}

// PixelsUpdated - all pixels changed by one call
type PixelsUpdated struct {
	TokenId       string             `json:"token_id"`
	Fingerprint   fingerprint.Digest `json:"fingerprint"`
	LastUpdatedBy string             `json:"last_updated_by"`
	LastUpdatedAt uint64             `json:"last_updated_at"`
	Pixels        []PixelUpdated     `json:"pixels"`
}

// PaymentDistributed - how one payment was divided
type PaymentDistributed struct {
	TokenId       string `json:"token_id"`
	Sender        string `json:"sender"`
	TotalAmount   uint64 `json:"total_amount,string"`
	RoyaltyAmount uint64 `json:"royalty_amount,string"`
	OwnerAmount   uint64 `json:"owner_amount,string"`
	Denomination  string `json:"denomination"`
}

// PriceScalingUpdated - a new price scaling
type PriceScalingUpdated struct {
	Sender  string          `json:"sender"`
	Scaling pricing.Scaling `json:"price_scaling"`
}

// TileMinted - a new tile
type TileMinted struct {
	TokenId     string             `json:"token_id"`
	Owner       string             `json:"owner"`
	MintedAt    uint64             `json:"minted_at"`
	Fingerprint fingerprint.Digest `json:"fingerprint"`
}

// Sender - destination of committed events
type Sender interface {
	Send(command string, parameters ...[]byte)
}

// encode and send, events that cannot be encoded are dropped
func (e *Engine) emit(command string, event interface{}) {
	if nil == e.events {
		return
	}
	buffer, err := json.Marshal(event)
	if nil != err {
		e.log.Errorf("encode event: %q  error: %s", command, err)
		return
	}
	e.events.Send(command, buffer)
}

func pixelsUpdated(request *Request, result *Result, now uint64) *PixelsUpdated {
	pixels := make([]PixelUpdated, len(request.Updates))
	for i, u := range request.Updates {
		pixels[i] = PixelUpdated{
			PixelId:             u.Id,
			Color:               u.Color,
			ExpirationDuration:  result.Durations[i],
			ExpirationTimestamp: u.Expiration,
		}
	}
	return &PixelsUpdated{
		TokenId:       request.TokenId,
		Fingerprint:   result.Fingerprint,
		LastUpdatedBy: request.Sender,
		LastUpdatedAt: now,
		Pixels:        pixels,
	}
}
