// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/counterprog/program"
)

// Ledger is an in-memory account store: one owned, balance-bearing
// byte buffer per key. It stands in for the hosting runtime's account
// store in tests and local runs. Creation and funding are safe for
// concurrent use; the host must still serialize program invocations
// that touch the same account, as the real runtime does.
type Ledger struct {
	lock     sync.RWMutex
	accounts map[ids.ID]*account
}

type account struct {
	owner   ids.ID
	balance uint64
	data    []byte
}

func New() *Ledger {
	return &Ledger{
		accounts: map[ids.ID]*account{},
	}
}

// Create allocates an account at [key] with a zeroed buffer of [space]
// bytes, owned by [owner] and holding [balance].
func (l *Ledger) Create(key ids.ID, owner ids.ID, balance uint64, space int) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.accounts[key]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, key)
	}
	l.accounts[key] = &account{
		owner:   owner,
		balance: balance,
		data:    make([]byte, space),
	}
	return nil
}

// Fund adds [amount] to the balance at [key].
func (l *Ledger) Fund(key ids.ID, amount uint64) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	a, ok := l.accounts[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, key)
	}
	balance, err := smath.Add64(a.balance, amount)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}

// Balance returns the balance at [key].
func (l *Ledger) Balance(key ids.ID) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	a, ok := l.accounts[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAccountNotFound, key)
	}
	return a.balance, nil
}

// Data returns a copy of the buffer at [key].
func (l *Ledger) Data(key ids.ID) ([]byte, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	a, ok := l.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, key)
	}
	data := make([]byte, len(a.data))
	copy(data, a.data)
	return data, nil
}

// View returns call-scoped account handles for [keys], in order, with
// the signer flag set for every key in [signers]. Every key must
// exist; accounts a program touches are created before it runs. The
// handles alias live buffers and must not outlive the invocation they
// were built for.
func (l *Ledger) View(keys []ids.ID, signers set.Set[ids.ID]) ([]program.Account, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	refs := make([]program.Account, len(keys))
	for i, key := range keys {
		a, ok := l.accounts[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, key)
		}
		refs[i] = &handle{
			key:    key,
			signer: signers.Contains(key),
			a:      a,
		}
	}
	return refs, nil
}

var _ program.Account = (*handle)(nil)

// handle exposes one ledger account to the processor for the duration
// of a single invocation.
type handle struct {
	key    ids.ID
	signer bool
	a      *account
}

func (h *handle) Key() ids.ID {
	return h.key
}

func (h *handle) Owner() ids.ID {
	return h.a.owner
}

func (h *handle) IsSigner() bool {
	return h.signer
}

func (h *handle) Balance() uint64 {
	return h.a.balance
}

func (h *handle) Data() []byte {
	return h.a.data
}
