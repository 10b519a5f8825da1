// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package royalty - division of a pixel payment between the royalty
// address and the tile owner
package royalty

import (
	"math/bits"

	"github.com/bitmark-inc/tilesd/constants"
	"github.com/bitmark-inc/tilesd/fault"
)

// reasons attached to transfers
const (
	ReasonRoyalty = "royalty"
	ReasonOwner   = "owner"
)

// Funds - payment attached to a call
type Funds struct {
	Denomination string `json:"denomination"`
	Amount       uint64 `json:"amount,string"`
}

// Transfer - an instruction to the payment ledger
type Transfer struct {
	To           string `json:"to"`
	Amount       uint64 `json:"amount,string"`
	Denomination string `json:"denomination"`
	Reason       string `json:"reason"`
}

// Distribution - result of dividing a payment
type Distribution struct {
	Royalty   uint64
	Owner     uint64
	Transfers []Transfer
}

// Split - royalty is floor(total * percent / 100) and the remainder is the rest
func Split(total uint64, percent uint64) (uint64, uint64, error) {
	if percent > constants.MaximumRoyaltyPercent {
		return 0, 0, fault.ErrInvalidRoyaltyPercent
	}
	hi, lo := bits.Mul64(total, percent)
	if hi >= 100 {
		return 0, 0, fault.ErrSplitOverflow
	}
	royalty, _ := bits.Div64(hi, lo, 100)
	return royalty, total - royalty, nil
}

// CheckFunds - the attached funds must be exactly the required amount
// in the expected denomination
func CheckFunds(sent Funds, required uint64, denomination string) error {
	if 0 != sent.Amount && denomination != sent.Denomination {
		return fault.ErrInvalidDenomination
	}
	if sent.Amount < required {
		return fault.ErrInsufficientFunds
	}
	if sent.Amount > required {
		return fault.ErrExcessFunds
	}
	return nil
}

// Distribute - split total and produce the transfers for a non-empty share
func Distribute(total uint64, percent uint64, denomination string, royaltyAddress string, owner string) (*Distribution, error) {
	royalty, remainder, err := Split(total, percent)
	if nil != err {
		return nil, err
	}

	d := &Distribution{
		Royalty:   royalty,
		Owner:     remainder,
		Transfers: make([]Transfer, 0, 2),
	}
	if 0 != royalty {
		d.Transfers = append(d.Transfers, Transfer{
			To:           royaltyAddress,
			Amount:       royalty,
			Denomination: denomination,
			Reason:       ReasonRoyalty,
		})
	}
	if 0 != remainder {
		d.Transfers = append(d.Transfers, Transfer{
			To:           owner,
			Amount:       remainder,
			Denomination: denomination,
			Reason:       ReasonOwner,
		})
	}
	return d, nil
}
