// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

const (
	defaultQueueSize = 1000
)

// Message - a command and its encoded parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - send every message to every listener
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
}

// BusType - the set of queues
type BusType struct {
	Events *BroadcastQueue
}

// Bus - the global message bus
var Bus = BusType{
	Events: &BroadcastQueue{},
}

// Send - non-blocking send to all listeners
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.Lock()
	defer queue.Unlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
		}
	}
}

// Chan - register a new listener with a queue of size items
//
// size <= 0 selects the default
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - close and remove all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, listener := range queue.listeners {
		close(listener)
	}
	queue.listeners = nil
}
