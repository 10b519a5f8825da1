// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for a tilesd JSON-RPC listener
//
// e.g. to see the current price scaling and a quote for two leases:
//      (add -v flag to see JSON requests and responses)
//
//   tiles-cli -c 127.0.0.1:2230 info
//   tiles-cli -c 127.0.0.1:2230 quote -d 3600 -d 86400
package main
