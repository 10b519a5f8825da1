// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pricing - lease price for a pixel by duration
//
// Up to one hour is a flat price.  Between one and twelve hours, and
// between twelve and twenty four hours, the price is interpolated
// linearly in fixed point.  Beyond twenty four hours a quadratic term
// in the excess seconds is added to the base.  All arithmetic is
// unsigned integer and any overflow is reported as an error.
package pricing
