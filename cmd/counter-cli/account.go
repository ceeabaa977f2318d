// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"crypto/rand"
	"fmt"
	"strconv"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/counterprog/consts"
	"github.com/ava-labs/counterprog/ledger"
	"github.com/ava-labs/counterprog/rent"
	"github.com/ava-labs/counterprog/state"
)

func newKey() (ids.ID, error) {
	b := make([]byte, ids.IDLen)
	if _, err := rand.Read(b); err != nil {
		return ids.Empty, err
	}
	return ids.ToID(b)
}

// withLedger loads the snapshot, runs [f], and writes the snapshot
// back if [f] succeeded.
func withLedger(f func(*ledger.Ledger) error) error {
	l, err := ledger.Load(statePath)
	if err != nil {
		return err
	}
	if err := f(l); err != nil {
		return err
	}
	return l.Save(statePath)
}

func createCmd() *cobra.Command {
	var (
		space   int
		balance uint64
	)
	cmd := &cobra.Command{
		Use:   "create [key]",
		Short: "Create a program-owned counter account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				key ids.ID
				err error
			)
			if len(args) == 1 {
				key, err = ids.FromString(args[0])
			} else {
				key, err = newKey()
			}
			if err != nil {
				return err
			}
			if balance == 0 {
				balance = rent.Default().MinimumBalance(space)
			}
			return withLedger(func(l *ledger.Ledger) error {
				if err := l.Create(key, consts.ID, balance, space); err != nil {
					return err
				}
				fmt.Printf("created counter account %s (space=%d balance=%d)\n", key, space, balance)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&space, "space", state.RecordLen, "Data buffer size in bytes")
	cmd.Flags().Uint64Var(&balance, "balance", 0, "Starting balance (default: rent exemption minimum)")
	return cmd
}

func fundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund [key] [amount]",
		Short: "Add balance to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			key, err := ids.FromString(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return err
			}
			return withLedger(func(l *ledger.Ledger) error {
				if err := l.Fund(key, amount); err != nil {
					return err
				}
				balance, err := l.Balance(key)
				if err != nil {
					return err
				}
				fmt.Printf("funded %s, balance now %d\n", key, balance)
				return nil
			})
		},
	}
}
