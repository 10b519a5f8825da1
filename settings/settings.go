// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settings - persisted economic settings
//
// The price scaling is written once when the database is created and
// afterwards changed only through an authorised update.
package settings

import (
	"encoding/json"

	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/storage"
)

var priceScalingKey = []byte("price-scaling")

// PriceScaling - the stored scaling
//
// second value is false if nothing is stored yet
func PriceScaling(pool *storage.PoolHandle) (pricing.Scaling, bool, error) {
	var s pricing.Scaling
	buffer := pool.Get(priceScalingKey)
	if nil == buffer {
		return s, false, nil
	}
	err := json.Unmarshal(buffer, &s)
	if nil != err {
		return s, false, err
	}
	return s, true, nil
}

// SetPriceScaling - stage a validated scaling
func SetPriceScaling(trx storage.Transaction, pool *storage.PoolHandle, s pricing.Scaling) error {
	if err := s.Validate(); nil != err {
		return err
	}
	buffer, err := json.Marshal(s)
	if nil != err {
		return err
	}
	trx.Put(pool, priceScalingKey, buffer)
	return nil
}

// InitialisePriceScaling - store initial if nothing is stored, return the effective scaling
func InitialisePriceScaling(pool *storage.PoolHandle, initial pricing.Scaling) (pricing.Scaling, error) {
	s, found, err := PriceScaling(pool)
	if nil != err {
		return s, err
	}
	if found {
		return s, nil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return s, err
	}
	err = SetPriceScaling(trx, pool, initial)
	if nil != err {
		trx.Abort()
		return s, err
	}
	err = trx.Commit()
	if nil != err {
		return s, fault.ProcessError("store price scaling: " + err.Error())
	}
	return initial, nil
}
