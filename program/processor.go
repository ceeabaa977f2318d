// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/counterprog/instruction"
)

// Processor executes counter instructions against host-supplied
// accounts. It holds no state of its own between calls; everything
// persistent lives in the accounts the host passes in, so each call is
// a pure function of its arguments.
type Processor struct {
	log     logging.Logger
	rent    Rent
	metrics *metrics
}

func New(log logging.Logger, rent Rent, r prometheus.Registerer) (*Processor, error) {
	m, err := newMetrics(r)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:     log,
		rent:    rent,
		metrics: m,
	}, nil
}

// Process decodes [instructionData] and runs the resulting instruction
// against [accounts], supplied in fixed order: authority first, then
// the counter account. Either every validation passes and exactly one
// buffer write occurs, or an error is returned before anything is
// written.
func (p *Processor) Process(programID ids.ID, accounts []Account, instructionData []byte) error {
	ins, err := instruction.Unmarshal(instructionData)
	if err != nil {
		p.metrics.failed.Inc()
		return err
	}
	p.log.Debug("processing instruction",
		zap.Stringer("program", programID),
		zap.Stringer("instruction", ins),
	)

	var succeeded prometheus.Counter
	switch ins {
	case instruction.Initialize:
		err = p.initialize(programID, accounts)
		succeeded = p.metrics.initializes
	case instruction.Increment:
		err = p.increment(accounts)
		succeeded = p.metrics.increments
	case instruction.Decrement:
		err = p.decrement(accounts)
		succeeded = p.metrics.decrements
	}
	if err != nil {
		p.metrics.failed.Inc()
		p.log.Debug("instruction failed",
			zap.Stringer("instruction", ins),
			zap.Error(err),
		)
		return err
	}
	succeeded.Inc()
	return nil
}

// takeAccounts enforces the two-account shape shared by every
// instruction.
func takeAccounts(accounts []Account) (authority Account, counter Account, err error) {
	if len(accounts) != 2 {
		return nil, nil, ErrInvalidAccountCount
	}
	return accounts[0], accounts[1], nil
}
