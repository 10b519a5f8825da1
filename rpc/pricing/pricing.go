// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pricing

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/rpc/ratelimit"
	"github.com/bitmark-inc/tilesd/tile"
)

const (
	rateLimitPricing = 200
	rateBurstPricing = 100

	maximumQuoteCount = 100
)

// Pricing - type for the RPC
type Pricing struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  tile.Handle
}

// New - create the pricing service
func New(log *logger.L, engine tile.Handle) *Pricing {
	return &Pricing{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPricing, rateBurstPricing),
		Engine:  engine,
	}
}

// GetArguments - none needed
type GetArguments struct{}

// Get - current price scaling together with the protocol constants
func (p *Pricing) Get(arguments *GetArguments, reply *tile.Info) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	*reply = *p.Engine.Info()
	return nil
}

// UpdateArguments - replacement scaling and who is asking
type UpdateArguments struct {
	Sender  string          `json:"sender"`
	Scaling pricing.Scaling `json:"price_scaling"`
}

// UpdateReply - the scaling now in force
type UpdateReply struct {
	Scaling pricing.Scaling `json:"price_scaling"`
}

// Update - replace the price scaling, royalty address only
func (p *Pricing) Update(arguments *UpdateArguments, reply *UpdateReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	p.Log.Infof("Pricing.Update: %+v", arguments)

	err := p.Engine.UpdatePriceScaling(arguments.Sender, arguments.Scaling)
	if nil != err {
		p.Log.Warnf("Pricing.Update: sender: %q  rejected: %s", arguments.Sender, err)
		return err
	}

	reply.Scaling = p.Engine.PriceScaling()
	return nil
}

// QuoteArguments - lease durations in seconds
type QuoteArguments struct {
	Durations []uint64 `json:"durations"`
}

// QuoteReply - what the durations would cost now
type QuoteReply struct {
	Total uint64 `json:"total,string"`
}

// Quote - price a set of lease durations without changing anything
func (p *Pricing) Quote(arguments *QuoteArguments, reply *QuoteReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(p.Limiter, len(arguments.Durations), maximumQuoteCount); nil != err {
		return err
	}

	total, err := p.Engine.Quote(arguments.Durations)
	if nil != err {
		return err
	}

	reply.Total = total
	return nil
}
