// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/orbs-network/call-tracker-go/synchronization"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Factory interface {
	NewLatency(name string, maxDuration time.Duration) *Histogram
	NewGauge(name string) *Gauge
	NewRate(name string) *Rate
}

type Registry interface {
	Factory
	String() string
	Get(name string) metric
	Handler() http.Handler
	ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) govnr.ShutdownWaiter
}

type metric interface {
	fmt.Stringer
	Name() string
	LogRow() []*log.Field
}

type namedMetric struct {
	name string
}

func (m *namedMetric) Name() string {
	return m.name
}

// dots are kept in metric names for logs and replaced for prometheus
func prometheusName(name string) string {
	return strings.Replace(name, ".", "_", -1)
}

func NewRegistry() Registry {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	r := &prometheusRegistry{prom: promRegistry}
	r.mu.metrics = make(map[string]metric)
	return r
}

type prometheusRegistry struct {
	prom *prometheus.Registry
	mu   struct {
		sync.Mutex
		metrics map[string]metric
		order   []string
	}
}

// register returns the already registered metric when the name is taken, so services sharing a registry
// may ask for the same metric more than once.
func (r *prometheusRegistry) register(name string, create func() (metric, prometheus.Collector)) metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, found := r.mu.metrics[name]; found {
		return existing
	}
	m, collector := create()
	r.prom.MustRegister(collector)
	r.mu.metrics[name] = m
	r.mu.order = append(r.mu.order, name)
	return m
}

func (r *prometheusRegistry) NewRate(name string) *Rate {
	return r.register(name, func() (metric, prometheus.Collector) {
		m := newRate(name)
		return m, m.counter
	}).(*Rate)
}

func (r *prometheusRegistry) NewGauge(name string) *Gauge {
	return r.register(name, func() (metric, prometheus.Collector) {
		m := newGauge(name)
		return m, m.gauge
	}).(*Gauge)
}

func (r *prometheusRegistry) NewLatency(name string, maxDuration time.Duration) *Histogram {
	return r.register(name, func() (metric, prometheus.Collector) {
		m := newHistogram(name, maxDuration)
		return m, m.histogram
	}).(*Histogram)
}

func (r *prometheusRegistry) Get(name string) metric {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mu.metrics[name]
}

func (r *prometheusRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prom, promhttp.HandlerOpts{})
}

func (r *prometheusRegistry) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s string
	for _, name := range r.mu.order {
		s += r.mu.metrics[name].String()
	}
	return s
}

func (r *prometheusRegistry) report(logger log.Logger) {
	r.mu.Lock()
	rows := make([][]*log.Field, 0, len(r.mu.order))
	for _, name := range r.mu.order {
		rows = append(rows, r.mu.metrics[name].LogRow())
	}
	r.mu.Unlock()

	for _, row := range rows {
		logger.Info("metric", row...)
	}
}

func (r *prometheusRegistry) ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) govnr.ShutdownWaiter {
	return synchronization.NewPeriodicalTrigger(ctx, "metric reporter", interval, logger, func() {
		r.report(logger)
	}, func() {
		r.report(logger)
	})
}
