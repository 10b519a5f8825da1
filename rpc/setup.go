// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/counter"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/rpc/certificate"
	"github.com/bitmark-inc/tilesd/rpc/handler"
	"github.com/bitmark-inc/tilesd/rpc/listeners"
	"github.com/bitmark-inc/tilesd/rpc/server"
	"github.com/bitmark-inc/tilesd/tile"
)

const (
	tlsName   = "client_rpc"
	httpsName = "http_rpc"
)

type rpcData struct {
	sync.Mutex

	log *logger.L

	listeners []listeners.Listener

	initialised bool
}

var globalData rpcData

var connectionCountRPC counter.Counter

// Initialise - start the RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	engine tile.Handle,
	chain string,
	version string,
) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	rpcServer := server.Create(log, engine)

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		rpcServer,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	if err = rpcListener.Serve(); nil != err {
		rpcListener.Close()
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			closeAll()
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		hdlr := handler.New(log, rpcServer, engine, chain, time.Now(), version, httpsConfiguration.MaximumConnections)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			closeAll()
			return err
		}
		if err = httpsListener.Serve(); nil != err {
			httpsListener.Close()
			closeAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	} else {
		log.Infof("disable: %s", httpsName)
	}

	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	closeAll()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func closeAll() {
	for _, l := range globalData.listeners {
		l.Close()
	}
	globalData.listeners = nil
}

// ConnectionCount - open client RPC connections
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}
