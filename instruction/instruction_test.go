// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instruction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	require := require.New(t)

	for _, ins := range []Instruction{Initialize, Increment, Decrement} {
		data, err := ins.Bytes()
		require.NoError(err)
		require.Len(data, TagLen)

		parsed, err := Unmarshal(data)
		require.NoError(err)
		require.Equal(ins, parsed)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	tests := map[string][]byte{
		"empty":          {},
		"nil":            nil,
		"unknown tag":    {3},
		"high tag":       {0xFF},
		"trailing bytes": {0, 0},
		"long payload":   {1, 2, 3, 4},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal(data)
			require.ErrorIs(t, err, ErrMalformedInstruction)
		})
	}
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal("initialize", Initialize.String())
	require.Equal("increment", Increment.String())
	require.Equal("decrement", Decrement.String())
	require.Equal("unknown", Instruction(9).String())
}
