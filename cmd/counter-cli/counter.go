// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ava-labs/counterprog/consts"
	"github.com/ava-labs/counterprog/instruction"
	"github.com/ava-labs/counterprog/ledger"
	"github.com/ava-labs/counterprog/program"
	"github.com/ava-labs/counterprog/rent"
	"github.com/ava-labs/counterprog/state"
)

// process runs one instruction as [authority] against [counter]. The
// CLI is its own host, so marking the authority as a signer is an
// operator decision rather than a verified signature.
func process(l *ledger.Ledger, ins instruction.Instruction, counter ids.ID, authority ids.ID) error {
	// The authority account carries no data; create it on first use.
	if _, err := l.Balance(authority); errors.Is(err, ledger.ErrAccountNotFound) {
		if err := l.Create(authority, ids.Empty, 0, 0); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	proc, err := program.New(newLogger(), rent.Default(), prometheus.NewRegistry())
	if err != nil {
		return err
	}
	refs, err := l.View([]ids.ID{authority, counter}, set.Of(authority))
	if err != nil {
		return err
	}
	data, err := ins.Bytes()
	if err != nil {
		return err
	}
	return proc.Process(consts.ID, refs, data)
}

func counterCmd(ins instruction.Instruction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [counter] [authority]", ins),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			counter, err := ids.FromString(args[0])
			if err != nil {
				return err
			}
			authority, err := ids.FromString(args[1])
			if err != nil {
				return err
			}
			return withLedger(func(l *ledger.Ledger) error {
				if err := process(l, ins, counter, authority); err != nil {
					return err
				}
				data, err := l.Data(counter)
				if err != nil {
					return err
				}
				record, err := state.Unmarshal(data)
				if err != nil {
					return err
				}
				fmt.Printf("count is now %d\n", record.Count)
				return nil
			})
		},
	}
}

func initializeCmd() *cobra.Command {
	return counterCmd(instruction.Initialize, "Initialize a counter with the given authority")
}

func incrementCmd() *cobra.Command {
	return counterCmd(instruction.Increment, "Increment a counter")
}

func decrementCmd() *cobra.Command {
	return counterCmd(instruction.Decrement, "Decrement a counter")
}

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read [counter]",
		Short: "Print a counter's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			key, err := ids.FromString(args[0])
			if err != nil {
				return err
			}
			l, err := ledger.Load(statePath)
			if err != nil {
				return err
			}
			data, err := l.Data(key)
			if err != nil {
				return err
			}
			if state.Uninitialized(data) {
				fmt.Println("counter is uninitialized")
				return nil
			}
			record, err := state.Unmarshal(data)
			if err != nil {
				return err
			}
			fmt.Printf("count=%d authority=%s\n", record.Count, record.Authority)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print program version",
		RunE: func(*cobra.Command, []string) error {
			fmt.Printf("%s %s (program id %s)\n", consts.Name, consts.Version, consts.ID)
			return nil
		},
	}
}
