// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package programtest

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counterprog/instruction"
	"github.com/ava-labs/counterprog/ledger"
	"github.com/ava-labs/counterprog/program"
	"github.com/ava-labs/counterprog/rent"
	"github.com/ava-labs/counterprog/state"
)

const payerBalance = 1_000_000_000

// Fixture wires a processor to an in-memory ledger with a funded payer
// so tests can drive full invocations without a hosting runtime.
type Fixture struct {
	ProgramID ids.ID
	Payer     ids.ID
	Counter   ids.ID

	Ledger    *ledger.Ledger
	Rent      *rent.Policy
	Processor *program.Processor
}

func New(t *testing.T) *Fixture {
	require := require.New(t)

	pol := rent.Default()
	proc, err := program.New(logging.NoLog{}, pol, prometheus.NewRegistry())
	require.NoError(err)

	f := &Fixture{
		ProgramID: ids.GenerateTestID(),
		Payer:     ids.GenerateTestID(),
		Counter:   ids.GenerateTestID(),
		Ledger:    ledger.New(),
		Rent:      pol,
		Processor: proc,
	}
	require.NoError(f.Ledger.Create(f.Payer, ids.Empty, payerBalance, 0))
	return f
}

// CreateCounter allocates the counter account with [space] bytes and
// [balance], owned by [owner].
func (f *Fixture) CreateCounter(t *testing.T, owner ids.ID, space int, balance uint64) {
	require.NoError(t, f.Ledger.Create(f.Counter, owner, balance, space))
}

// CreateFundedCounter allocates a program-owned counter account sized
// and funded for exactly one record.
func (f *Fixture) CreateFundedCounter(t *testing.T) {
	f.CreateCounter(t, f.ProgramID, state.RecordLen, f.Rent.MinimumBalance(state.RecordLen))
}

// Accounts returns the [payer, counter] handles for one invocation,
// with the signer flag set for each key in [signers].
func (f *Fixture) Accounts(t *testing.T, signers ...ids.ID) []program.Account {
	refs, err := f.Ledger.View([]ids.ID{f.Payer, f.Counter}, set.Of(signers...))
	require.NoError(t, err)
	return refs
}

// Process runs one instruction signed by [signers] against the
// fixture's payer and counter accounts.
func (f *Fixture) Process(t *testing.T, ins instruction.Instruction, signers ...ids.ID) error {
	data, err := ins.Bytes()
	require.NoError(t, err)
	return f.Processor.Process(f.ProgramID, f.Accounts(t, signers...), data)
}

// ProcessAs runs one instruction with [authority] in the payer
// position instead of the fixture's payer. The account is created on
// first use.
func (f *Fixture) ProcessAs(t *testing.T, authority ids.ID, ins instruction.Instruction, signers ...ids.ID) error {
	if _, err := f.Ledger.Balance(authority); err != nil {
		require.NoError(t, f.Ledger.Create(authority, ids.Empty, 0, 0))
	}
	refs, err := f.Ledger.View([]ids.ID{authority, f.Counter}, set.Of(signers...))
	require.NoError(t, err)
	data, err := ins.Bytes()
	require.NoError(t, err)
	return f.Processor.Process(f.ProgramID, refs, data)
}

// Initialize creates a correctly sized and funded counter account and
// initializes it, asserting success.
func (f *Fixture) Initialize(t *testing.T) {
	f.CreateFundedCounter(t)
	require.NoError(t, f.Process(t, instruction.Initialize, f.Payer))
}

// CounterData returns a copy of the counter account's raw bytes.
func (f *Fixture) CounterData(t *testing.T) []byte {
	data, err := f.Ledger.Data(f.Counter)
	require.NoError(t, err)
	return data
}

// Record decodes the counter account's current record.
func (f *Fixture) Record(t *testing.T) *state.Counter {
	record, err := state.Unmarshal(f.CounterData(t))
	require.NoError(t, err)
	return record
}
