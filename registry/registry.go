// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - minimal token registry for tiles
//
// Records the owner and mint time of each tile and holds the single
// per-token field used by the update engine: the canvas fingerprint.
package registry

import (
	"encoding/binary"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/fingerprint"
	"github.com/bitmark-inc/tilesd/storage"
)

const (
	maximumTokenIdLength = 128
	maximumAddressLength = 128

	cacheExpiry  = 10 * time.Minute
	cacheCleanup = 20 * time.Minute
)

// Registry - access to minted tiles
type Registry interface {
	Exists(tokenId string) bool
	Owner(tokenId string) (string, uint64, error)
	Fingerprint(tokenId string) (fingerprint.Digest, error)
	Mint(trx storage.Transaction, tokenId string, owner string, mintedAt uint64, digest fingerprint.Digest) error
	SetFingerprint(trx storage.Transaction, tokenId string, digest fingerprint.Digest) error
}

type ownerRecord struct {
	owner    string
	mintedAt uint64
}

type registryData struct {
	tiles        *storage.PoolHandle
	fingerprints *storage.PoolHandle
	owners       *cache.Cache
	digests      *cache.Cache
}

// New - registry over the given pools
func New(tiles *storage.PoolHandle, fingerprints *storage.PoolHandle) Registry {
	return &registryData{
		tiles:        tiles,
		fingerprints: fingerprints,
		owners:       cache.New(cacheExpiry, cacheCleanup),
		digests:      cache.New(cacheExpiry, cacheCleanup),
	}
}

// CheckTokenId - non-empty, bounded and printable
func CheckTokenId(tokenId string) error {
	if !printable(tokenId, maximumTokenIdLength) {
		return fault.ErrInvalidTokenId
	}
	return nil
}

// CheckAddress - non-empty, bounded and printable
func CheckAddress(address string) error {
	if !printable(address, maximumAddressLength) {
		return fault.ErrInvalidAddress
	}
	return nil
}

func printable(s string, maximum int) bool {
	if 0 == len(s) || len(s) > maximum {
		return false
	}
	for i := 0; i < len(s); i += 1 {
		if s[i] <= ' ' || s[i] >= 0x7f {
			return false
		}
	}
	return true
}

// Exists - true if the tile has been minted
func (r *registryData) Exists(tokenId string) bool {
	if _, found := r.owners.Get(tokenId); found {
		return true
	}
	return r.tiles.Has([]byte(tokenId))
}

// Owner - owner and mint time of a tile
func (r *registryData) Owner(tokenId string) (string, uint64, error) {
	if item, found := r.owners.Get(tokenId); found {
		record := item.(ownerRecord)
		return record.owner, record.mintedAt, nil
	}

	buffer := r.tiles.Get([]byte(tokenId))
	if nil == buffer {
		return "", 0, fault.ErrTileNotFound
	}
	if len(buffer) < 9 {
		return "", 0, fault.ErrTileNotFound
	}
	record := ownerRecord{
		owner:    string(buffer[8:]),
		mintedAt: binary.BigEndian.Uint64(buffer[:8]),
	}
	r.owners.Set(tokenId, record, cache.DefaultExpiration)
	return record.owner, record.mintedAt, nil
}

// Fingerprint - the current canvas fingerprint of a tile
func (r *registryData) Fingerprint(tokenId string) (fingerprint.Digest, error) {
	if item, found := r.digests.Get(tokenId); found {
		return item.(fingerprint.Digest), nil
	}

	var digest fingerprint.Digest
	buffer := r.fingerprints.Get([]byte(tokenId))
	if nil == buffer {
		return digest, fault.ErrTileNotFound
	}
	err := fingerprint.DigestFromBytes(&digest, buffer)
	if nil != err {
		return digest, err
	}
	r.digests.Set(tokenId, digest, cache.DefaultExpiration)
	return digest, nil
}

// Mint - stage a new tile with its genesis fingerprint
func (r *registryData) Mint(trx storage.Transaction, tokenId string, owner string, mintedAt uint64, digest fingerprint.Digest) error {
	if err := CheckTokenId(tokenId); nil != err {
		return err
	}
	if err := CheckAddress(owner); nil != err {
		return err
	}
	if trx.Has(r.tiles, []byte(tokenId)) {
		return fault.ErrTileExists
	}

	record := make([]byte, 8, 8+len(owner))
	binary.BigEndian.PutUint64(record, mintedAt)
	record = append(record, owner...)

	trx.Put(r.tiles, []byte(tokenId), record)
	trx.Put(r.fingerprints, []byte(tokenId), digest[:])

	r.owners.Delete(tokenId)
	r.digests.Delete(tokenId)
	return nil
}

// SetFingerprint - stage a replacement fingerprint
//
// the cached value is dropped so the next read sees the stored one
func (r *registryData) SetFingerprint(trx storage.Transaction, tokenId string, digest fingerprint.Digest) error {
	if !trx.Has(r.tiles, []byte(tokenId)) {
		return fault.ErrTileNotFound
	}
	trx.Put(r.fingerprints, []byte(tokenId), digest[:])
	r.digests.Delete(tokenId)
	return nil
}
