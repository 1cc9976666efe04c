/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver exports gate operation counts and latencies.
type PrometheusObserver struct {
	opLatency *prometheus.HistogramVec
	ops       *prometheus.CounterVec
	batchSize prometheus.Histogram
}

// NewPrometheusObserver creates the collectors and registers them with reg.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	o := &PrometheusObserver{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gate_operation_latency_seconds",
			Help:      "Latency of gate operations, including lock wait",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "outcome"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_operations_total",
			Help:      "Total gate operations by outcome",
		}, []string{"op", "outcome"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gate_batch_entries",
			Help:      "Entries returned per iteration batch",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}

	for _, c := range []prometheus.Collector{o.opLatency, o.ops, o.batchSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *PrometheusObserver) OnOperation(_ context.Context, event Event) {
	outcome := event.Outcome()
	o.opLatency.WithLabelValues(string(event.Op), outcome).Observe(event.Duration.Seconds())
	o.ops.WithLabelValues(string(event.Op), outcome).Inc()
	if event.Op == OpIterate {
		o.batchSize.Observe(float64(event.Count))
	}
}
