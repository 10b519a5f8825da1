// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - ZeroMQ socket helpers
package zmqutil

import (
	"net"
	"strings"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/fault"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// Endpoint - convert "host:port" into a tcp endpoint
//
// returns true as second value for an IPv6 host
func Endpoint(hostPort string) (string, bool, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, err
	}
	if "" == port {
		return "", false, fault.ErrInvalidAddress
	}
	if "" == host || "*" == host {
		return "tcp://*:" + port, false, nil
	}
	v6 := strings.Contains(host, ":")
	if v6 {
		return "tcp://[" + host + "]:" + port, true, nil
	}
	return "tcp://" + host + ":" + port, false, nil
}

// NewBind - create one socket bound to every address in listen
func NewBind(log *logger.L, socketType zmq.Type, listen []string) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	socket.SetLinger(0)
	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	for i, address := range listen {
		bindTo, v6, err := Endpoint(address)
		if nil != err {
			log.Errorf("invalid bind[%d]: %q  error: %s", i, address, err)
			socket.Close()
			return nil, err
		}
		if v6 {
			socket.SetIpv6(true)
		}
		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			socket.Close()
			return nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket, nil
}
