// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import "github.com/ava-labs/avalanchego/ids"

// Account is a host-supplied handle to a keyed, owned, balance-bearing
// byte buffer. The host guarantees exclusive access for the duration
// of one [Processor.Process] call; the processor must not retain the
// buffer past the call's return.
type Account interface {
	// Key is the identity addressing this account.
	Key() ids.ID

	// Owner is the program identity that controls this account's data.
	Owner() ids.ID

	// IsSigner reports whether this account's controlling identity
	// authorized the current invocation.
	IsSigner() bool

	// Balance is the account's current balance.
	Balance() uint64

	// Data is a read-write view of the account's persisted bytes. The
	// processor overwrites it in place and never resizes it.
	Data() []byte
}

// Rent is the host's policy for how much balance a buffer of a given
// size must hold to persist without decay.
type Rent interface {
	MinimumBalance(dataLen int) uint64
}
