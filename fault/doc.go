// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - the errors returned by tilesd packages
//
// every error is a single typed constant so callers compare with ==
// and classify with the IsErrXXX functions
package fault
