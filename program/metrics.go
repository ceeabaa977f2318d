// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	initializes prometheus.Counter
	increments  prometheus.Counter
	decrements  prometheus.Counter
	failed      prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		initializes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "program",
			Name:      "initializes",
			Help:      "number of counters initialized",
		}),
		increments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "program",
			Name:      "increments",
			Help:      "number of successful increments",
		}),
		decrements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "program",
			Name:      "decrements",
			Help:      "number of successful decrements",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "program",
			Name:      "failed",
			Help:      "number of invocations returning an error",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.initializes),
		r.Register(m.increments),
		r.Register(m.decrements),
		r.Register(m.failed),
	)
	return m, errs.Err
}
