// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Names for our metrics
const (
	LoadCounter      = "resource_loads_total"
	LoadBytesCounter = "resource_load_bytes_total"
)

// labels
const (
	SchemeLabel  = "scheme"
	OutcomeLabel = "outcome"

	SuccessOutcome = "success"
	FailureOutcome = "failure"
)

// Measures describes the metrics recorded by a Loader
type Measures struct {
	Loads     metrics.Counter
	LoadBytes metrics.Counter
}

// NewMeasures creates the loader metrics and registers them with r
func NewMeasures(r prometheus.Registerer) (*Measures, error) {
	loads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: LoadCounter,
			Help: "The total number of resource loads, by scheme and outcome",
		},
		[]string{SchemeLabel, OutcomeLabel},
	)

	loadBytes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: LoadBytesCounter,
			Help: "The total number of bytes returned by successful resource loads",
		},
		[]string{SchemeLabel},
	)

	for _, c := range []prometheus.Collector{loads, loadBytes} {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}

	return &Measures{
		Loads:     gokitprometheus.NewCounter(loads),
		LoadBytes: gokitprometheus.NewCounter(loadBytes),
	}, nil
}

// discardMeasures is used when a Loader has no Measures
var discardMeasures = &Measures{
	Loads:     discard.NewCounter(),
	LoadBytes: discard.NewCounter(),
}
