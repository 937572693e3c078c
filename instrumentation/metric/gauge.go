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

type Gauge struct {
	namedMetric
	gauge prometheus.Gauge
	value int64
}

func newGauge(name string) *Gauge {
	return &Gauge{
		namedMetric: namedMetric{name: name},
		gauge:       prometheus.NewGauge(prometheus.GaugeOpts{Name: prometheusName(name), Help: name}),
	}
}

func (g *Gauge) String() string {
	return fmt.Sprintf("metric %s: %d\n", g.name, g.Value())
}

func (g *Gauge) Inc() {
	g.Add(1)
}

func (g *Gauge) Add(i int64) {
	g.gauge.Set(float64(atomic.AddInt64(&g.value, i)))
}

func (g *Gauge) Dec() {
	g.Add(-1)
}

func (g *Gauge) Update(i int64) {
	atomic.StoreInt64(&g.value, i)
	g.gauge.Set(float64(i))
}

func (g *Gauge) Value() int64 {
	return atomic.LoadInt64(&g.value)
}

func (g *Gauge) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", g.name),
		log.String("metric-type", "gauge"),
		log.Int64("gauge", g.Value()),
	}
}
