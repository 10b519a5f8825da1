// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pricing

import (
	"math/bits"

	"github.com/bitmark-inc/tilesd/constants"
	"github.com/bitmark-inc/tilesd/fault"
)

// Scaling - the price tiers in base units of the payment denomination
type Scaling struct {
	Hour1Price    uint64 `json:"hour_1_price"`
	Hour12Price   uint64 `json:"hour_12_price"`
	Hour24Price   uint64 `json:"hour_24_price"`
	QuadraticBase uint64 `json:"quadratic_base"`
}

// Default - the scaling used when nothing is configured
func Default() Scaling {
	return Scaling{
		Hour1Price:    constants.DefaultHour1Price,
		Hour12Price:   constants.DefaultHour12Price,
		Hour24Price:   constants.DefaultHour24Price,
		QuadraticBase: constants.DefaultQuadraticBase,
	}
}

// Validate - all values non-zero and tiers not decreasing
func (s Scaling) Validate() error {
	if 0 == s.Hour1Price || 0 == s.Hour12Price || 0 == s.Hour24Price || 0 == s.QuadraticBase {
		return fault.ErrZeroPrice
	}
	if s.Hour1Price > s.Hour12Price || s.Hour12Price > s.Hour24Price {
		return fault.ErrPriceTierOrder
	}
	return nil
}

// Price - the price of a single lease of duration seconds
func (s Scaling) Price(duration uint64) (uint64, error) {
	switch {
	case duration <= constants.OneHour:
		return s.Hour1Price, nil

	case duration <= constants.TwelveHours:
		return interpolate(s.Hour1Price, s.Hour12Price, duration-constants.OneHour, constants.TwelveHours-constants.OneHour)

	case duration <= constants.TwentyFourHours:
		return interpolate(s.Hour12Price, s.Hour24Price, duration-constants.TwelveHours, constants.TwentyFourHours-constants.TwelveHours)
	}

	excess := duration - constants.TwentyFourHours
	hi, square := bits.Mul64(excess, excess)
	if 0 != hi {
		return 0, fault.ErrPriceOverflow
	}
	total, carry := bits.Add64(s.QuadraticBase, square, 0)
	if 0 != carry {
		return 0, fault.ErrPriceOverflow
	}
	return total, nil
}

// Total - the sum of the prices of each duration
func (s Scaling) Total(durations []uint64) (uint64, error) {
	total := uint64(0)
	for _, d := range durations {
		price, err := s.Price(d)
		if nil != err {
			return 0, err
		}
		carry := uint64(0)
		total, carry = bits.Add64(total, price, 0)
		if 0 != carry {
			return 0, fault.ErrPriceOverflow
		}
	}
	return total, nil
}

// low + floor((high - low) * elapsed / span)
//
// the product is held in 128 bits and elapsed <= span keeps the
// quotient within high - low
func interpolate(low uint64, high uint64, elapsed uint64, span uint64) (uint64, error) {
	if high < low {
		return 0, fault.ErrPriceTierOrder
	}
	hi, lo := bits.Mul64(high-low, elapsed)
	step, _ := bits.Div64(hi, lo, span)
	return low + step, nil
}
