// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/counterprog/state"
)

// initialize writes a fresh record {count: 0, authority: payer} into
// the counter account. The account must be program-owned, not yet
// holding a record, wide enough for one, and funded past the rent
// exemption threshold.
func (p *Processor) initialize(programID ids.ID, accounts []Account) error {
	authority, counter, err := takeAccounts(accounts)
	if err != nil {
		return err
	}
	if !authority.IsSigner() {
		return ErrMissingSignature
	}
	if counter.Owner() != programID {
		return ErrWrongOwner
	}
	data := counter.Data()
	if !state.Uninitialized(data) {
		return ErrAlreadyInitialized
	}
	if len(data) < state.RecordLen {
		return ErrBufferTooSmall
	}
	if counter.Balance() < p.rent.MinimumBalance(state.RecordLen) {
		return ErrNotRentExempt
	}

	record := &state.Counter{
		Count:     0,
		Authority: authority.Key(),
	}
	raw, err := record.Bytes()
	if err != nil {
		return err
	}
	copy(data, raw)
	return nil
}
