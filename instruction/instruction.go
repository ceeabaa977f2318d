// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instruction

import (
	"github.com/near/borsh-go"
)

// TagLen is the full wire size of an instruction: a single Borsh enum
// discriminant with no payload for any variant.
const TagLen = 1

type Instruction uint8

// Declaration order is the wire discriminant order.
const (
	Initialize Instruction = iota
	Increment
	Decrement
)

func (i Instruction) String() string {
	switch i {
	case Initialize:
		return "initialize"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return "unknown"
	}
}

// Bytes returns the Borsh encoding of [i].
func (i Instruction) Bytes() ([]byte, error) {
	return borsh.Serialize(uint8(i))
}

// Unmarshal parses exactly one instruction from [data]. Anything other
// than a single recognized discriminant byte fails with
// [ErrMalformedInstruction].
func Unmarshal(data []byte) (Instruction, error) {
	if len(data) != TagLen {
		return 0, ErrMalformedInstruction
	}
	var tag uint8
	if err := borsh.Deserialize(&tag, data); err != nil {
		return 0, ErrMalformedInstruction
	}
	if tag > uint8(Decrement) {
		return 0, ErrMalformedInstruction
	}
	return Instruction(tag), nil
}
