// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pricing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/pricing"
)

var small = pricing.Scaling{
	Hour1Price:    100,
	Hour12Price:   200,
	Hour24Price:   300,
	QuadraticBase: 400,
}

func TestPriceTiers(t *testing.T) {
	tests := []struct {
		duration uint64
		price    uint64
	}{
		{0, 100},
		{60, 100},
		{3600, 100},
		{3601, 100},
		{21600, 145},
		{43199, 199},
		{43200, 200},
		{64800, 250},
		{86400, 300},
		{86401, 401},
		{86410, 500},
		{86400 + 1000, 400 + 1000000},
	}

	for i, item := range tests {
		price, err := small.Price(item.duration)
		assert.Nil(t, err, "error: %d", i)
		assert.Equal(t, item.price, price, "price: %d  duration: %d", i, item.duration)
	}
}

func TestDefaultInterpolation(t *testing.T) {
	s := pricing.Default()

	tests := []struct {
		duration uint64
		price    uint64
	}{
		{3601, 100002525},
		{21600, 145454545},
		{43199, 199997474},
		{50000, 215740740},
		{64800, 250000000},
		{86399, 299997685},
	}

	for i, item := range tests {
		price, err := s.Price(item.duration)
		assert.Nil(t, err, "error: %d", i)
		assert.Equal(t, item.price, price, "price: %d  duration: %d", i, item.duration)
	}
}

func TestInterpolationWideTier(t *testing.T) {
	s := pricing.Scaling{
		Hour1Price:    1,
		Hour12Price:   1000000000000000001,
		Hour24Price:   1000000000000000001,
		QuadraticBase: 1,
	}

	// (hour_12 - hour_1) * elapsed exceeds 64 bits
	price, err := s.Price(21600)
	assert.Nil(t, err, "error")
	assert.Equal(t, uint64(454545454545454546), price, "six hours")

	price, err = s.Price(3601)
	assert.Nil(t, err, "error")
	assert.Equal(t, uint64(1+25252525252525), price, "one second past the hour")
}

func TestBoundariesExact(t *testing.T) {
	s := pricing.Default()

	price, err := s.Price(3600)
	assert.Nil(t, err, "error")
	assert.Equal(t, s.Hour1Price, price, "one hour")

	price, err = s.Price(43200)
	assert.Nil(t, err, "error")
	assert.Equal(t, s.Hour12Price, price, "twelve hours")

	price, err = s.Price(86400)
	assert.Nil(t, err, "error")
	assert.Equal(t, s.Hour24Price, price, "twenty four hours")
}

func TestMonotonic(t *testing.T) {
	for _, s := range []pricing.Scaling{small, pricing.Default()} {
		previous := uint64(0)
		for d := uint64(0); d <= 90000; d += 7 {
			price, err := s.Price(d)
			assert.Nil(t, err, "error at: %d", d)
			if price < previous {
				t.Fatalf("price decreased at: %d  %d < %d", d, price, previous)
			}
			previous = price
		}
	}
}

func TestLargeTierValues(t *testing.T) {
	s := pricing.Scaling{
		Hour1Price:    1,
		Hour12Price:   math.MaxUint64 / 2,
		Hour24Price:   math.MaxUint64,
		QuadraticBase: 1,
	}

	price, err := s.Price(43200)
	assert.Nil(t, err, "error")
	assert.Equal(t, uint64(math.MaxUint64/2), price, "twelve hours")

	price, err = s.Price(86400)
	assert.Nil(t, err, "error")
	assert.Equal(t, uint64(math.MaxUint64), price, "twenty four hours")
}

func TestQuadraticOverflow(t *testing.T) {
	_, err := small.Price(math.MaxUint64)
	assert.Equal(t, fault.ErrPriceOverflow, err, "square overflow")

	s := small
	s.QuadraticBase = math.MaxUint64
	_, err = s.Price(86401)
	assert.Equal(t, fault.ErrPriceOverflow, err, "base overflow")
	assert.True(t, fault.IsErrOverflow(err), "class")
}

func TestTotal(t *testing.T) {
	durations := []uint64{3600, 21600, 86400, 86410}

	total, err := small.Total(durations)
	assert.Nil(t, err, "error")

	sum := uint64(0)
	for _, d := range durations {
		p, err := small.Price(d)
		assert.Nil(t, err, "error")
		sum += p
	}
	assert.Equal(t, sum, total, "additive")
	assert.Equal(t, uint64(100+145+300+500), total, "value")

	total, err = small.Total(nil)
	assert.Nil(t, err, "error")
	assert.Equal(t, uint64(0), total, "empty")
}

func TestTotalOverflow(t *testing.T) {
	s := small
	s.Hour1Price = math.MaxUint64 / 2
	s.Hour12Price = math.MaxUint64 / 2
	s.Hour24Price = math.MaxUint64 / 2

	_, err := s.Total([]uint64{60, 60, 60})
	assert.Equal(t, fault.ErrPriceOverflow, err, "sum overflow")
}

func TestValidate(t *testing.T) {
	assert.Nil(t, small.Validate(), "small")
	assert.Nil(t, pricing.Default().Validate(), "default")

	s := small
	s.QuadraticBase = 0
	assert.Equal(t, fault.ErrZeroPrice, s.Validate(), "zero base")

	s = small
	s.Hour1Price = 0
	assert.Equal(t, fault.ErrZeroPrice, s.Validate(), "zero hour 1")

	s = small
	s.Hour1Price = 250
	assert.Equal(t, fault.ErrPriceTierOrder, s.Validate(), "hour 1 above hour 12")

	s = small
	s.Hour24Price = 150
	assert.Equal(t, fault.ErrPriceTierOrder, s.Validate(), "hour 12 above hour 24")

	s = small
	s.Hour12Price = s.Hour1Price
	s.Hour24Price = s.Hour1Price
	assert.Nil(t, s.Validate(), "equal tiers")
}
