// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/orbs-network/scribe/log"
	"github.com/prometheus/client_golang/prometheus"
)

const histogramBucketCount = 12

// Histogram records latencies in milliseconds. Samples above maxDuration land in the +Inf bucket and are counted as overflows.
type Histogram struct {
	namedMetric
	histogram     prometheus.Histogram
	max           time.Duration
	samples       int64
	overflowCount int64
	totalNanos    int64
}

func newHistogram(name string, maxDuration time.Duration) *Histogram {
	return &Histogram{
		namedMetric: namedMetric{name: name},
		max:         maxDuration,
		histogram: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    prometheusName(name),
			Help:    name,
			Buckets: latencyBuckets(maxDuration),
		}),
	}
}

// exponential buckets from 0.1ms up to maxDuration
func latencyBuckets(maxDuration time.Duration) []float64 {
	maxMillis := float64(maxDuration) / float64(time.Millisecond)
	start := 0.1
	if maxMillis <= start {
		return []float64{maxMillis}
	}
	factor := math.Pow(maxMillis/start, 1/float64(histogramBucketCount-1))
	return prometheus.ExponentialBuckets(start, factor, histogramBucketCount)
}

func (h *Histogram) RecordSince(t time.Time) {
	h.Record(time.Since(t))
}

func (h *Histogram) Record(d time.Duration) {
	atomic.AddInt64(&h.samples, 1)
	atomic.AddInt64(&h.totalNanos, int64(d))
	if d > h.max {
		atomic.AddInt64(&h.overflowCount, 1)
	}
	h.histogram.Observe(float64(d) / float64(time.Millisecond))
}

func (h *Histogram) Samples() int64 {
	return atomic.LoadInt64(&h.samples)
}

func (h *Histogram) Avg() time.Duration {
	samples := h.Samples()
	if samples == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&h.totalNanos) / samples)
}

func (h *Histogram) String() string {
	return fmt.Sprintf("metric %s: [avg=%s, samples=%d, overflows=%d]\n", h.name, h.Avg(), h.Samples(), atomic.LoadInt64(&h.overflowCount))
}

func (h *Histogram) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", h.name),
		log.String("metric-type", "histogram"),
		log.Float64("avg", float64(h.Avg())/float64(time.Millisecond)),
		log.Int64("samples", h.Samples()),
	}
}
