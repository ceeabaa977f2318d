// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rent

import "github.com/ava-labs/counterprog/program"

// Defaults match the hosting runtime's published rent schedule.
const (
	DefaultBalancePerByteYear uint64 = 3480
	DefaultExemptionThreshold        = 2.0

	// accountStorageOverhead covers the account metadata stored
	// alongside the data buffer.
	accountStorageOverhead uint64 = 128
)

var _ program.Rent = (*Policy)(nil)

// Policy computes the minimum balance a buffer of a given size must
// hold to persist without decay.
type Policy struct {
	// BalancePerByteYear is the rent charged per byte-year of storage.
	BalancePerByteYear uint64

	// ExemptionThreshold is the number of years of rent an account
	// must hold up front to be exempt.
	ExemptionThreshold float64
}

func Default() *Policy {
	return &Policy{
		BalancePerByteYear: DefaultBalancePerByteYear,
		ExemptionThreshold: DefaultExemptionThreshold,
	}
}

func (p *Policy) MinimumBalance(dataLen int) uint64 {
	size := accountStorageOverhead + uint64(dataLen)
	return uint64(float64(size*p.BalancePerByteYear) * p.ExemptionThreshold)
}
