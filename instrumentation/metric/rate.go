// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"sync/atomic"

	"github.com/orbs-network/scribe/log"
	"github.com/prometheus/client_golang/prometheus"
)

// Rate counts events. Prometheus derives the actual rate from the exported counter.
type Rate struct {
	namedMetric
	counter prometheus.Counter
	total   int64
}

func newRate(name string) *Rate {
	return &Rate{
		namedMetric: namedMetric{name: name},
		counter:     prometheus.NewCounter(prometheus.CounterOpts{Name: prometheusName(name), Help: name}),
	}
}

func (r *Rate) Measure(eventCount int64) {
	if eventCount < 0 {
		return
	}
	atomic.AddInt64(&r.total, eventCount)
	r.counter.Add(float64(eventCount))
}

func (r *Rate) Inc() {
	r.Measure(1)
}

func (r *Rate) Total() int64 {
	return atomic.LoadInt64(&r.total)
}

func (r *Rate) String() string {
	return fmt.Sprintf("metric %s: %d total\n", r.name, r.Total())
}

func (r *Rate) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", r.name),
		log.String("metric-type", "rate"),
		log.Int64("total", r.Total()),
	}
}
