// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/messagebus"
	"github.com/bitmark-inc/tilesd/zmqutil"
)

// sender abstracts the PUB socket
type sender interface {
	SendMessage(parts ...interface{}) (int, error)
	Close() error
}

type broadcaster struct {
	log    *logger.L
	chain  string
	socket sender
	queue  <-chan messagebus.Message
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(log *logger.L, broadcast []string, chain string, queue <-chan messagebus.Message) error {

	log.Info("initialising…")

	socket, err := zmqutil.NewBind(log, zmq.PUB, broadcast)
	if nil != err {
		return err
	}

	brdc.log = log
	brdc.chain = chain
	brdc.socket = socket
	brdc.queue = queue

	return nil
}

// Run - wait for messages and publish them as: chain ++ command ++ parameters
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			err := brdc.process(item)
			if nil != err {
				log.Errorf("publish: %q  error: %s", item.Command, err)
			}
		}
	}

	log.Info("shutting down…")
	brdc.socket.Close()
	log.Info("stopped")
}

// send one message
func (brdc *broadcaster) process(item messagebus.Message) error {
	brdc.log.Debugf("publish: %q", item.Command)

	parts := make([]interface{}, 0, 2+len(item.Parameters))
	parts = append(parts, brdc.chain, item.Command)
	for _, p := range item.Parameters {
		parts = append(parts, p)
	}
	_, err := brdc.socket.SendMessage(parts...)
	return err
}
