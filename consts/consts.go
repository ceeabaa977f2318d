// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

const (
	Name = "counterprog"

	Uint64Len = 8
	IDLen     = 32
)

// ID is the identity the hosting runtime assigns this program. Counter
// accounts must be owned by it before Initialize will touch them.
var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	programID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = programID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}
