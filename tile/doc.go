// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tile - the pixel update state transition
//
// A Transaction moves through
//
//   Received → Validated → Priced → FundsVerified → Applied → Committed
//
// or stops in Rejected at the first failing step.  Transactions are pure:
// they read only their Context and Request and produce a Result.  The
// Engine serialises calls, loads the Context, and writes the Result to
// storage in a single batch so a rejected call leaves no trace.
package tile
