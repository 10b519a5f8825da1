// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tilesd/pixel"
	"github.com/bitmark-inc/tilesd/royalty"
	"github.com/bitmark-inc/tilesd/rpc/tiles"
)

// UpdateData - the parameters for a pixel update
type UpdateData struct {
	TokenId string
	Sender  string
	Canvas  pixel.Canvas
	Updates []pixel.Update
	Funds   royalty.Funds
}

// UpdatePixels - send a batch of pixel updates with their payment
func (client *Client) UpdatePixels(data *UpdateData) (*tiles.UpdatePixelsReply, error) {

	args := tiles.UpdatePixelsArguments{
		TokenId: data.TokenId,
		Sender:  data.Sender,
		Canvas:  data.Canvas,
		Updates: data.Updates,
		Funds:   data.Funds,
	}

	client.printJson("Update Request", args)

	reply := &tiles.UpdatePixelsReply{}
	err := client.client.Call("Tiles.UpdatePixels", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Update Reply", reply)

	return reply, nil
}

// Fingerprint - the stored fingerprint of a tile
func (client *Client) Fingerprint(tokenId string) (*tiles.FingerprintReply, error) {

	args := tiles.FingerprintArguments{
		TokenId: tokenId,
	}

	client.printJson("Fingerprint Request", args)

	reply := &tiles.FingerprintReply{}
	err := client.client.Call("Tiles.Fingerprint", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Fingerprint Reply", reply)

	return reply, nil
}

// Genesis - the canvas a tile was minted with
func (client *Client) Genesis(tokenId string) (*tiles.GenesisReply, error) {

	args := tiles.FingerprintArguments{
		TokenId: tokenId,
	}

	client.printJson("Genesis Request", args)

	reply := &tiles.GenesisReply{}
	err := client.client.Call("Tiles.Genesis", args, reply)
	if nil != err {
		return nil, err
	}

	return reply, nil
}

// Mint - create a new tile
func (client *Client) Mint(sender string, tokenId string, owner string) (*tiles.FingerprintReply, error) {

	args := tiles.MintArguments{
		Sender:  sender,
		TokenId: tokenId,
		Owner:   owner,
	}

	client.printJson("Mint Request", args)

	reply := &tiles.FingerprintReply{}
	err := client.client.Call("Tiles.Mint", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Mint Reply", reply)

	return reply, nil
}

// Transfers - page through journaled payment transfers
func (client *Client) Transfers(start uint64, count int) (*tiles.TransfersReply, error) {

	args := tiles.TransfersArguments{
		Start: start,
		Count: count,
	}

	client.printJson("Transfers Request", args)

	reply := &tiles.TransfersReply{}
	err := client.client.Call("Tiles.Transfers", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfers Reply", reply)

	return reply, nil
}
