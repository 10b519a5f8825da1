// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/tilesd/fault"
)

// Access - batched access to the database
//
// reads see writes staged in the current batch
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// staged value, nil value means deleted
type pending struct {
	value   []byte
	deleted bool
}

// AccessData - leveldb implementation of Access
type AccessData struct {
	sync.Mutex
	inUse   bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	pending map[string]pending
}

func newDA(db *leveldb.DB) Access {
	return &AccessData{
		inUse:   false,
		db:      db,
		batch:   new(leveldb.Batch),
		pending: make(map[string]pending),
	}
}

// Begin - mark the batch as in use
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - stage a write
func (d *AccessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	d.pending[string(key)] = pending{value: v}
	d.batch.Put(key, v)
}

// Delete - stage a delete
func (d *AccessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	d.pending[string(key)] = pending{deleted: true}
	d.batch.Delete(key)
}

// Commit - write the batch atomically and release it
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrTransactionNotStarted
	}
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Abort - discard everything staged and release the batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

// Get - staged value if any, otherwise the stored value
//
// returns nil, nil if the key does not exist
func (d *AccessData) Get(key []byte) ([]byte, error) {
	d.Lock()
	p, found := d.pending[string(key)]
	d.Unlock()

	if found {
		if p.deleted {
			return nil, nil
		}
		return p.value, nil
	}

	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - true if key exists in the batch or the database
func (d *AccessData) Has(key []byte) (bool, error) {
	d.Lock()
	p, found := d.pending[string(key)]
	d.Unlock()

	if found {
		return !p.deleted, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true between Begin and Commit/Abort
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Iterator - iterate over committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.pending = make(map[string]pending)
	d.inUse = false
}
