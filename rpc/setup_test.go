// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tilesd/chain"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/fixtures"
	"github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/rpc"
	"github.com/bitmark-inc/tilesd/rpc/listeners"
	"github.com/bitmark-inc/tilesd/rpc/mocks"
	rpcpricing "github.com/bitmark-inc/tilesd/rpc/pricing"
	"github.com/bitmark-inc/tilesd/tile"
)

func TestInitialiseAndFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	info := &tile.Info{PixelsPerTile: 100, PriceScaling: pricing.Default()}

	e := mocks.NewMockHandle(ctl)
	e.EXPECT().Info().Return(info).Times(1)

	cer, key := fixtures.CertificatePair()
	port := rand.Intn(30000) + 30000
	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Certificate:        cer,
		PrivateKey:         key,
	}
	httpsConfiguration := listeners.HTTPSConfiguration{}

	err := rpc.Initialise(&rpcConfiguration, &httpsConfiguration, e, chain.Testing, "1.0")
	assert.Nil(t, err, "initialise")

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, e, chain.Testing, "1.0")
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	conn, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var reply tile.Info
	err = client.Call("Pricing.Get", &rpcpricing.GetArguments{}, &reply)
	assert.Nil(t, err, "get")
	assert.Equal(t, *info, reply, "wrong info")
	_ = client.Close()

	err = rpc.Finalise()
	assert.Nil(t, err, "finalise")

	err = rpc.Finalise()
	assert.Equal(t, fault.ErrNotInitialised, err, "second finalise")
}

func TestInitialiseWithoutCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:2130"},
	}

	err := rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, mocks.NewMockHandle(ctl), chain.Testing, "1.0")
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}
