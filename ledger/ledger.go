// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - journal of transfer instructions
//
// Each payment produces up to two transfers which are numbered from
// one in the order they are issued and written in the same batch as
// the fingerprint they paid for.
package ledger

import (
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/tilesd/royalty"
	"github.com/bitmark-inc/tilesd/storage"
)

// key into the counters pool
var sequenceKey = []byte("transfer")

// maximum records returned by one List call
const maximumList = 100

// Record - one journaled transfer
type Record struct {
	Sequence  uint64 `json:"sequence,string"`
	TokenId   string `json:"token_id"`
	Sender    string `json:"sender"`
	Timestamp uint64 `json:"timestamp"`
	royalty.Transfer
}

// Journal - transfer journal over storage pools
type Journal struct {
	records  *storage.PoolHandle
	counters *storage.PoolHandle
}

// New - journal over the given pools
func New(records *storage.PoolHandle, counters *storage.PoolHandle) *Journal {
	return &Journal{
		records:  records,
		counters: counters,
	}
}

// Append - stage the transfers for one payment
func (j *Journal) Append(trx storage.Transaction, tokenId string, sender string, timestamp uint64, transfers []royalty.Transfer) ([]Record, error) {
	n, _ := trx.GetN(j.counters, sequenceKey)

	records := make([]Record, 0, len(transfers))
	for _, transfer := range transfers {
		n += 1
		r := Record{
			Sequence:  n,
			TokenId:   tokenId,
			Sender:    sender,
			Timestamp: timestamp,
			Transfer:  transfer,
		}
		buffer, err := json.Marshal(r)
		if nil != err {
			return nil, err
		}
		trx.Put(j.records, sequenceBytes(n), buffer)
		records = append(records, r)
	}
	trx.PutN(j.counters, sequenceKey, n)
	return records, nil
}

// List - committed records starting at sequence start
func (j *Journal) List(start uint64, count int) ([]Record, error) {
	if count <= 0 || count > maximumList {
		count = maximumList
	}
	elements, err := j.records.NewFetchCursor().Seek(sequenceBytes(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(elements))
	for _, e := range elements {
		var r Record
		err := json.Unmarshal(e.Value, &r)
		if nil != err {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func sequenceBytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
