// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tilesd/fault"
)

// Limit - block until the limiter grants one request
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - block until the limiter grants count requests
//
// a count outside 1..maximumCount still costs one request
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count < 1 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return wait(limiter, count)
}

func wait(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
