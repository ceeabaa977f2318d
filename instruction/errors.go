// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instruction

import "errors"

var ErrMalformedInstruction = errors.New("malformed instruction data")
