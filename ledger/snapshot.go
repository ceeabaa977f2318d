// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/ava-labs/avalanchego/ids"
)

// snapshotAccount is the persisted form of one account. Data is
// base64 on disk via encoding/json.
type snapshotAccount struct {
	Owner   ids.ID `json:"owner"`
	Balance uint64 `json:"balance"`
	Data    []byte `json:"data"`
}

type snapshot struct {
	Accounts map[string]snapshotAccount `json:"accounts"`
}

// Save writes the full ledger contents to [path] as JSON.
func (l *Ledger) Save(path string) error {
	l.lock.RLock()
	s := snapshot{Accounts: make(map[string]snapshotAccount, len(l.accounts))}
	for key, a := range l.accounts {
		data := make([]byte, len(a.data))
		copy(data, a.data)
		s.Accounts[key.String()] = snapshotAccount{
			Owner:   a.owner,
			Balance: a.balance,
			Data:    data,
		}
	}
	l.lock.RUnlock()

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// Load reads a ledger snapshot from [path]. A missing file yields an
// empty ledger so first runs need no setup step.
func Load(path string) (*Ledger, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	var s snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	l := New()
	for rawKey, a := range s.Accounts {
		key, err := ids.FromString(rawKey)
		if err != nil {
			return nil, err
		}
		l.accounts[key] = &account{
			owner:   a.Owner,
			balance: a.Balance,
			data:    a.Data,
		}
	}
	return l, nil
}
