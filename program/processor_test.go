// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program_test

import (
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counterprog/instruction"
	"github.com/ava-labs/counterprog/program"
	"github.com/ava-labs/counterprog/programtest"
	"github.com/ava-labs/counterprog/state"
)

func TestInitialize(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)

	f.Initialize(t)

	record := f.Record(t)
	require.Zero(record.Count)
	require.Equal(f.Payer, record.Authority)

	// Initialize succeeds exactly once.
	err := f.Process(t, instruction.Initialize, f.Payer)
	require.ErrorIs(err, program.ErrAlreadyInitialized)
}

func TestInitializeMissingSignature(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.CreateFundedCounter(t)

	err := f.Process(t, instruction.Initialize)
	require.ErrorIs(err, program.ErrMissingSignature)
	require.True(state.Uninitialized(f.CounterData(t)))
}

func TestInitializeWrongOwner(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.CreateCounter(t, ids.GenerateTestID(), state.RecordLen, f.Rent.MinimumBalance(state.RecordLen))

	err := f.Process(t, instruction.Initialize, f.Payer)
	require.ErrorIs(err, program.ErrWrongOwner)
	require.True(state.Uninitialized(f.CounterData(t)))
}

func TestInitializeBufferTooSmall(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.CreateCounter(t, f.ProgramID, state.RecordLen-1, f.Rent.MinimumBalance(state.RecordLen))

	err := f.Process(t, instruction.Initialize, f.Payer)
	require.ErrorIs(err, program.ErrBufferTooSmall)
	require.True(state.Uninitialized(f.CounterData(t)))
}

func TestInitializeNotRentExempt(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.CreateCounter(t, f.ProgramID, state.RecordLen, f.Rent.MinimumBalance(state.RecordLen)-1)

	err := f.Process(t, instruction.Initialize, f.Payer)
	require.ErrorIs(err, program.ErrNotRentExempt)
	require.True(state.Uninitialized(f.CounterData(t)))
}

func TestInvalidAccountCount(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.CreateFundedCounter(t)

	data, err := instruction.Initialize.Bytes()
	require.NoError(err)

	accounts := f.Accounts(t, f.Payer)
	for _, refs := range [][]program.Account{nil, accounts[:1], append(accounts, accounts[0])} {
		err := f.Processor.Process(f.ProgramID, refs, data)
		require.ErrorIs(err, program.ErrInvalidAccountCount)
	}
}

func TestMalformedInstruction(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.CreateFundedCounter(t)

	for _, data := range [][]byte{nil, {}, {3}, {0, 0}} {
		err := f.Processor.Process(f.ProgramID, f.Accounts(t, f.Payer), data)
		require.ErrorIs(err, instruction.ErrMalformedInstruction)
	}
	require.True(state.Uninitialized(f.CounterData(t)))
}

func TestIncrementDecrement(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.Initialize(t)

	require.NoError(f.Process(t, instruction.Increment, f.Payer))
	require.Equal(uint64(1), f.Record(t).Count)

	require.NoError(f.Process(t, instruction.Decrement, f.Payer))
	require.Zero(f.Record(t).Count)
	require.Equal(f.Payer, f.Record(t).Authority)
}

func TestMutateMissingSignature(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	// A buffer too short to decode proves the signer check runs before
	// any state is read.
	f.CreateCounter(t, f.ProgramID, 4, 0)

	before := f.CounterData(t)
	err := f.Process(t, instruction.Increment)
	require.ErrorIs(err, program.ErrMissingSignature)
	require.Equal(before, f.CounterData(t))
}

func TestMutateMalformedState(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.CreateCounter(t, f.ProgramID, state.RecordLen-8, 0)

	err := f.Process(t, instruction.Increment, f.Payer)
	require.ErrorIs(err, state.ErrMalformedState)
}

func TestAuthorityMismatch(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.Initialize(t)

	intruder := ids.GenerateTestID()
	before := f.CounterData(t)
	for _, ins := range []instruction.Instruction{instruction.Increment, instruction.Decrement} {
		err := f.ProcessAs(t, intruder, ins, intruder)
		require.ErrorIs(err, program.ErrAuthorityMismatch)
		require.Equal(before, f.CounterData(t))
	}
}

func TestIncrementOverflow(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.Initialize(t)

	// Force the stored count to the top of the range.
	record := &state.Counter{
		Count:     math.MaxUint64,
		Authority: f.Payer,
	}
	raw, err := record.Bytes()
	require.NoError(err)
	copy(f.Accounts(t)[1].Data(), raw)

	before := f.CounterData(t)
	err = f.Process(t, instruction.Increment, f.Payer)
	require.ErrorIs(err, program.ErrArithmeticOverflow)
	require.Equal(before, f.CounterData(t))
}

func TestDecrementUnderflow(t *testing.T) {
	require := require.New(t)
	f := programtest.New(t)
	f.Initialize(t)

	before := f.CounterData(t)
	err := f.Process(t, instruction.Decrement, f.Payer)
	require.ErrorIs(err, program.ErrArithmeticOverflow)
	require.Equal(before, f.CounterData(t))
	require.Zero(f.Record(t).Count)
}
