// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validation - checks applied to a batch of pixel updates
//
// Checks run in a fixed order, each across the whole batch, and the
// first violation rejects the batch:
//
//   1. batch size
//   2. duplicate ids
//   3. id range
//   4. colour syntax
//   5. lease duration
//   6. current lease on the pixel has ended
package validation

import (
	"github.com/bitmark-inc/tilesd/constants"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/pixel"
)

// Limits - configurable bounds on a batch
type Limits struct {
	MaximumBatch int    `json:"maximum_batch"`
	MinimumLease uint64 `json:"minimum_lease"`
	MaximumLease uint64 `json:"maximum_lease"`
}

// DefaultLimits - one batch may cover a whole tile, leases from one minute to one year
func DefaultLimits() Limits {
	return Limits{
		MaximumBatch: constants.DefaultMaximumBatch,
		MinimumLease: constants.DefaultMinimumLease,
		MaximumLease: constants.DefaultMaximumLease,
	}
}

// Validate - check the limits themselves
func (l Limits) Validate() error {
	if l.MaximumBatch <= 0 {
		return fault.ErrInvalidCount
	}
	if 0 == l.MinimumLease || l.MinimumLease > l.MaximumLease {
		return fault.ErrInvalidLeaseLimits
	}
	return nil
}

// Batch - validate updates against the current canvas at time now
func Batch(updates []pixel.Update, canvas *pixel.Canvas, now uint64, limits Limits) error {

	if 0 == len(updates) {
		return fault.ErrEmptyBatch
	}
	if len(updates) > limits.MaximumBatch {
		return fault.ErrBatchTooLarge
	}

	seen := make(map[uint32]struct{}, len(updates))
	for _, u := range updates {
		if _, ok := seen[u.Id]; ok {
			return fault.ErrDuplicatePixel
		}
		seen[u.Id] = struct{}{}
	}

	for _, u := range updates {
		if u.Id >= constants.PixelsPerTile {
			return fault.ErrPixelOutOfRange
		}
	}

	for _, u := range updates {
		if !pixel.ValidColor(u.Color) {
			return fault.ErrInvalidColor
		}
	}

	for _, u := range updates {
		if err := checkLease(u.Expiration, now, limits); nil != err {
			return err
		}
	}

	for _, u := range updates {
		if canvas[u.Id].Expiration >= now {
			return fault.ErrPixelLeased
		}
	}

	return nil
}

// Durations - lease length of each update in seconds
//
// only meaningful after Batch has succeeded
func Durations(updates []pixel.Update, now uint64) []uint64 {
	durations := make([]uint64, len(updates))
	for i, u := range updates {
		durations[i] = u.Expiration - now
	}
	return durations
}

func checkLease(expiration uint64, now uint64, limits Limits) error {
	if expiration <= now {
		return fault.ErrExpirationInPast
	}
	duration := expiration - now
	if duration < limits.MinimumLease {
		return fault.ErrLeaseTooShort
	}
	if duration > limits.MaximumLease {
		return fault.ErrLeaseTooLong
	}
	return nil
}
