// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/rpc/pricing"
	"github.com/bitmark-inc/tilesd/rpc/tiles"
	"github.com/bitmark-inc/tilesd/tile"
)

// Create - an RPC server with all client services registered
func Create(log *logger.L, engine tile.Handle) *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(tiles.New(log, engine))
	_ = server.Register(pricing.New(log, engine))

	return server
}
