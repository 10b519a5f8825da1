// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ConflictError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type PaymentError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrBatchTooLarge                = InvalidError("batch too large")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCertificateFileNotFound      = NotFoundError("certificate file not found")
	ErrConnectionLimitReached       = ProcessError("connection limit reached")
	ErrDuplicatePixel               = InvalidError("duplicate pixel id in batch")
	ErrEmptyBatch                   = InvalidError("empty batch")
	ErrExcessFunds                  = PaymentError("funds exceed the required amount")
	ErrExpirationInPast             = InvalidError("expiration is not in the future")
	ErrFingerprintMismatch          = ConflictError("tile fingerprint mismatch")
	ErrInsufficientFunds            = PaymentError("insufficient funds")
	ErrInvalidAddress               = InvalidError("invalid address")
	ErrInvalidCanvas                = InvalidError("invalid canvas")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidColor                 = InvalidError("invalid color")
	ErrInvalidConfiguration         = InvalidError("configuration did not return a table")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidDenomination          = PaymentError("invalid denomination")
	ErrInvalidFingerprint           = InvalidError("invalid fingerprint")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidLeaseLimits           = InvalidError("invalid lease limits")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidRoyaltyPercent        = InvalidError("royalty percent must be between 0 and 100")
	ErrInvalidTokenId               = InvalidError("invalid token id")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrLeaseTooLong                 = InvalidError("lease duration too long")
	ErrLeaseTooShort                = InvalidError("lease duration too short")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrPixelLeased                  = InvalidError("pixel is currently leased")
	ErrPixelOutOfRange              = InvalidError("pixel id out of range")
	ErrPriceOverflow                = OverflowError("price overflow")
	ErrPriceTierOrder               = InvalidError("price tiers must not decrease")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrSplitOverflow                = OverflowError("payment split overflow")
	ErrTileExists                   = ExistsError("tile already exists")
	ErrTileNotFound                 = NotFoundError("tile not found")
	ErrTransactionInUse             = ProcessError("storage transaction already in use")
	ErrTransactionNotStarted        = ProcessError("storage transaction not started")
	ErrUnauthorisedMinter           = AuthorisationError("sender is not the minter")
	ErrUnauthorisedScaling          = AuthorisationError("sender may not change price scaling")
	ErrZeroPrice                    = InvalidError("price scaling values must be non-zero")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ConflictError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e OverflowError) Error() string      { return string(e) }
func (e PaymentError) Error() string       { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrConflict(e error) bool      { _, ok := e.(ConflictError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool      { _, ok := e.(OverflowError); return ok }
func IsErrPayment(e error) bool       { _, ok := e.(PaymentError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
