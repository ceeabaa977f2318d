// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/ava-labs/counterprog/consts"
)

// RecordLen is the fixed width of an encoded counter record: an 8-byte
// little-endian count followed by the 32-byte authority.
const RecordLen = consts.Uint64Len + consts.IDLen

// Counter is the single record this program persists per account.
type Counter struct {
	// Count is adjusted by one per successful instruction and never
	// wraps.
	Count uint64

	// Authority is set once at Initialize and is the only identity
	// permitted to mutate [Count] afterward.
	Authority ids.ID
}

// Bytes returns the fixed-width Borsh encoding of [c].
func (c *Counter) Bytes() ([]byte, error) {
	return borsh.Serialize(*c)
}

// Unmarshal parses a counter record from the leading [RecordLen] bytes
// of [data]. Any tail beyond the record width is ignored.
func Unmarshal(data []byte) (*Counter, error) {
	if len(data) < RecordLen {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrMalformedState, len(data), RecordLen)
	}
	c := new(Counter)
	if err := borsh.Deserialize(c, data[:RecordLen]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedState, err)
	}
	return c, nil
}

// Uninitialized reports whether [data] does not yet hold a record. A
// zero-length buffer is uninitialized; so is a sized buffer still
// holding only zero bytes, which is indistinguishable from one never
// written to.
func Uninitialized(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
