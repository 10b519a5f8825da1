// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/fault"
)

const minConnectionCount = 1

// Listener - a started network front end
type Listener interface {
	Serve() error
	Close()
}

// expand "*:PORT" and classify each listen address as tcp, tcp4 or tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	expanded := make([]string, len(addrs))
	network := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, fault.ErrInvalidIPAddress
		}

		switch {
		case "*" == host:
			// on the assumption that this will listen on tcp4 and tcp6
			expanded[i] = net.JoinHostPort("::", port)
			network[i] = "tcp"
			continue
		case strings.Contains(host, ":"):
			network[i] = "tcp6"
		default:
			network[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen address: %q  error: %s", listen, fault.ErrInvalidIPAddress)
			return nil, nil, fault.ErrInvalidIPAddress
		}
		expanded[i] = net.JoinHostPort(host, port)
	}

	return expanded, network, nil
}
