// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	scaling "github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/rpc/pricing"
	"github.com/bitmark-inc/tilesd/tile"
)

// Info - protocol constants and the current price scaling
func (client *Client) Info() (*tile.Info, error) {
	var reply tile.Info
	if err := client.client.Call("Pricing.Get", pricing.GetArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return &reply, nil
}

// UpdateScaling - replace the price scaling, only accepted from the royalty address
func (client *Client) UpdateScaling(sender string, s scaling.Scaling) (*pricing.UpdateReply, error) {

	args := pricing.UpdateArguments{
		Sender:  sender,
		Scaling: s,
	}

	client.printJson("Scaling Request", args)

	reply := &pricing.UpdateReply{}
	err := client.client.Call("Pricing.Update", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Scaling Reply", reply)

	return reply, nil
}

// Quote - total price of leases of the given durations
func (client *Client) Quote(durations []uint64) (*pricing.QuoteReply, error) {

	args := pricing.QuoteArguments{
		Durations: durations,
	}

	client.printJson("Quote Request", args)

	reply := &pricing.QuoteReply{}
	err := client.client.Call("Pricing.Quote", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Quote Reply", reply)

	return reply, nil
}
