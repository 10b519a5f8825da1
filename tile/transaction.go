// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tile

import (
	"github.com/bitmark-inc/tilesd/fingerprint"
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/royalty"
	"github.com/bitmark-inc/tilesd/validation"
)

// State - position of a transaction in the update sequence
type State int

// transaction states
const (
	Received State = iota
	Validated
	Priced
	FundsVerified
	Applied
	Committed
	Rejected
)

func (s State) String() string {
	switch s {
	case Received:
		return "Received"
	case Validated:
		return "Validated"
	case Priced:
		return "Priced"
	case FundsVerified:
		return "FundsVerified"
	case Applied:
		return "Applied"
	case Committed:
		return "Committed"
	case Rejected:
		return "Rejected"
	default:
		return "*unknown*"
	}
}

// Context - everything a transaction reads besides its request
//
// loaded once per call by the engine
type Context struct {
	Now            uint64
	Stored         fingerprint.Digest
	Owner          string
	Scaling        pricing.Scaling
	Limits         validation.Limits
	RoyaltyAddress string
	RoyaltyPercent uint64
	Denomination   string
}

// Request - a caller's pixel update
type Request struct {
	TokenId string
	Sender  string
	Canvas  pixel.Canvas
	Updates []pixel.Update
	Funds   royalty.Funds
}

// Result - effects of a committed transaction
type Result struct {
	Fingerprint  fingerprint.Digest
	Canvas       pixel.Canvas
	Durations    []uint64
	TotalPaid    uint64
	Distribution *royalty.Distribution
}

// Transaction - one run through the update sequence
type Transaction struct {
	state   State
	reason  error
	ctx     *Context
	request *Request

	durations []uint64
	total     uint64
	canvas    pixel.Canvas
	result    *Result
}

// NewTransaction - a transaction in the Received state
func NewTransaction(ctx *Context, request *Request) *Transaction {
	return &Transaction{
		state:   Received,
		ctx:     ctx,
		request: request,
	}
}

// Process - run a new transaction to completion
func Process(ctx *Context, request *Request) (*Result, error) {
	return NewTransaction(ctx, request).Run()
}

// State - current state
func (t *Transaction) State() State {
	return t.state
}

// Reason - why the transaction was rejected, nil otherwise
func (t *Transaction) Reason() error {
	return t.reason
}

// Run - advance through every step, stopping at the first failure
func (t *Transaction) Run() (*Result, error) {
	if Received != t.state {
		return t.result, t.reason
	}

	steps := []struct {
		next State
		run  func() error
	}{
		{Validated, t.validate},
		{Priced, t.price},
		{FundsVerified, t.verifyFunds},
		{Applied, t.apply},
		{Committed, t.commit},
	}

	for _, step := range steps {
		err := step.run()
		if nil != err {
			t.state = Rejected
			t.reason = err
			return nil, err
		}
		t.state = step.next
	}
	return t.result, nil
}

// snapshot must be the stored one, then the batch must be acceptable
func (t *Transaction) validate() error {
	r := t.request
	if err := r.Canvas.Check(); nil != err {
		return err
	}
	if err := fingerprint.Verify(t.ctx.Stored, r.TokenId, &r.Canvas); nil != err {
		return err
	}
	return validation.Batch(r.Updates, &r.Canvas, t.ctx.Now, t.ctx.Limits)
}

func (t *Transaction) price() error {
	t.durations = validation.Durations(t.request.Updates, t.ctx.Now)
	total, err := t.ctx.Scaling.Total(t.durations)
	if nil != err {
		return err
	}
	t.total = total
	return nil
}

func (t *Transaction) verifyFunds() error {
	return royalty.CheckFunds(t.request.Funds, t.total, t.ctx.Denomination)
}

func (t *Transaction) apply() error {
	t.canvas = t.request.Canvas.Apply(t.request.Updates, t.request.Sender, t.ctx.Now)
	return nil
}

func (t *Transaction) commit() error {
	d, err := royalty.Distribute(t.total, t.ctx.RoyaltyPercent, t.ctx.Denomination, t.ctx.RoyaltyAddress, t.ctx.Owner)
	if nil != err {
		return err
	}
	t.result = &Result{
		Fingerprint:  fingerprint.Compute(t.request.TokenId, &t.canvas),
		Canvas:       t.canvas,
		Durations:    t.durations,
		TotalPaid:    t.total,
		Distribution: d,
	}
	return nil
}
