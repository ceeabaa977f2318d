// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import "errors"

var (
	ErrInvalidAccountCount = errors.New("expected authority and counter accounts")
	ErrMissingSignature    = errors.New("authority must be a signer")
	ErrWrongOwner          = errors.New("counter account not owned by program")
	ErrAlreadyInitialized  = errors.New("counter account already initialized")
	ErrBufferTooSmall      = errors.New("counter account data too small")
	ErrNotRentExempt       = errors.New("counter account not rent exempt")
	ErrAuthorityMismatch   = errors.New("authority does not match counter authority")
	ErrArithmeticOverflow  = errors.New("count out of range")
)
