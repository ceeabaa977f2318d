// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/counterprog/state"
)

func (p *Processor) increment(accounts []Account) error {
	return p.mutate(accounts, func(count uint64) (uint64, error) {
		return smath.Add64(count, 1)
	})
}

func (p *Processor) decrement(accounts []Account) error {
	return p.mutate(accounts, func(count uint64) (uint64, error) {
		return smath.Sub(count, 1)
	})
}

// mutate runs the validation pipeline shared by Increment and
// Decrement, then re-encodes the record in place. Validation completes
// before the buffer is touched; [apply] going out of range maps to
// [ErrArithmeticOverflow] for both directions.
func (p *Processor) mutate(accounts []Account, apply func(uint64) (uint64, error)) error {
	authority, counter, err := takeAccounts(accounts)
	if err != nil {
		return err
	}
	if !authority.IsSigner() {
		return ErrMissingSignature
	}
	data := counter.Data()
	record, err := state.Unmarshal(data)
	if err != nil {
		return err
	}
	if record.Authority != authority.Key() {
		return ErrAuthorityMismatch
	}
	count, err := apply(record.Count)
	if err != nil {
		return ErrArithmeticOverflow
	}
	record.Count = count

	raw, err := record.Bytes()
	if err != nil {
		return err
	}
	copy(data, raw)
	return nil
}
