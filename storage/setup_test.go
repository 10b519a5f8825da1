// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/storage"
)

// configure for testing
func setup(t *testing.T) string {
	dir, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return dir
}

// post test cleanup
func teardown(dir string) {
	storage.Finalise()
	os.RemoveAll(dir)
}

func TestDoubleInitialise(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	err := storage.Initialise(filepath.Join(dir, "other"), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReopen(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(storage.Pool.TestData, []byte("persist"), []byte("value"))
	assert.Nil(t, trx.Commit(), "commit")

	storage.Finalise()
	err = storage.Initialise(filepath.Join(dir, "test"), storage.ReadOnly)
	assert.Nil(t, err, "reopen read only")

	assert.Equal(t, []byte("value"), storage.Pool.TestData.Get([]byte("persist")), "persisted")
}

func TestCommit(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err, "nested begin")

	trx.Put(storage.Pool.TestData, []byte("one"), []byte("data-one"))
	trx.PutN(storage.Pool.Counters, []byte("count"), 42)

	// staged writes are visible before commit
	assert.Equal(t, []byte("data-one"), trx.Get(storage.Pool.TestData, []byte("one")), "staged")
	assert.True(t, trx.Has(storage.Pool.TestData, []byte("one")), "staged has")

	err = trx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, trx.InUse(), "released")

	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get([]byte("one")), "committed")
	n, found := storage.Pool.Counters.GetN([]byte("count"))
	assert.True(t, found, "count found")
	assert.Equal(t, uint64(42), n, "count")

	// pools are disjoint
	assert.Nil(t, storage.Pool.Settings.Get([]byte("one")), "other pool")
}

func TestAbort(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(storage.Pool.TestData, []byte("keep"), []byte("kept"))
	assert.Nil(t, trx.Commit(), "commit")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(storage.Pool.TestData, []byte("drop"), []byte("dropped"))
	trx.Delete(storage.Pool.TestData, []byte("keep"))
	assert.False(t, trx.Has(storage.Pool.TestData, []byte("keep")), "staged delete")
	trx.Abort()

	assert.Nil(t, storage.Pool.TestData.Get([]byte("drop")), "aborted put")
	assert.Equal(t, []byte("kept"), storage.Pool.TestData.Get([]byte("keep")), "aborted delete")

	_, err = storage.NewDBTransaction()
	assert.Nil(t, err, "batch reusable after abort")
}

func TestCommitWithoutBegin(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.ErrTransactionNotStarted, trx.Commit(), "second commit")
}

func TestCursor(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	for i := uint64(1); i <= 5; i += 1 {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, i)
		trx.Put(storage.Pool.Transfers, key, []byte{byte(i)})
	}
	trx.Put(storage.Pool.TestData, []byte("other"), []byte("x"))
	assert.Nil(t, trx.Commit(), "commit")

	cursor := storage.Pool.Transfers.NewFetchCursor()

	elements, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 3, len(elements), "first page")
	assert.Equal(t, []byte{1}, elements[0].Value, "first value")

	elements, err = cursor.Fetch(3)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(elements), "second page")
	assert.Equal(t, []byte{5}, elements[1].Value, "last value")

	start := make([]byte, 8)
	binary.BigEndian.PutUint64(start, 4)
	elements, err = storage.Pool.Transfers.NewFetchCursor().Seek(start).Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(elements), "from seek")
	assert.Equal(t, start, elements[0].Key, "seek key")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}
