// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/narq/httpc/request"
)

// A MetricsObserver records Prometheus metrics for pipeline activity:
// attempts by method, transport errors, and response status and
// latency distributions.
type MetricsObserver struct {
	attempts        *prometheus.CounterVec
	transportErrors *prometheus.CounterVec
	responses       *prometheus.CounterVec
	duration        *prometheus.HistogramVec
}

// NewMetricsObserver creates an observer and registers its collectors
// with reg.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	factory := promauto.With(reg)

	return &MetricsObserver{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "httpc_attempts_total",
			Help: "Wire-level request attempts, including retries.",
		}, []string{"method"}),

		transportErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "httpc_transport_errors_total",
			Help: "Attempts that failed in the transport.",
		}, []string{"method"}),

		responses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "httpc_responses_total",
			Help: "Completed exchanges by method and status code.",
		}, []string{"method", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "httpc_call_duration_seconds",
			Help:    "Elapsed call time at each completed exchange.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// OnPrepared counts the upcoming attempt.
func (o *MetricsObserver) OnPrepared(_ context.Context, req *request.Request, _ *request.State) {
	o.attempts.WithLabelValues(req.Method).Inc()
}

// OnTransportError counts a failed attempt.
func (o *MetricsObserver) OnTransportError(_ context.Context, _ error, state *request.State) {
	o.transportErrors.WithLabelValues(o.method(state)).Inc()
}

// OnResponse counts a completed exchange and observes the elapsed
// call time.
func (o *MetricsObserver) OnResponse(_ context.Context, resp *request.Response, state *request.State) {
	m := o.method(state)
	o.responses.WithLabelValues(m, strconv.Itoa(resp.StatusCode)).Inc()
	o.duration.WithLabelValues(m).Observe(state.Duration().Seconds())
}

func (o *MetricsObserver) method(state *request.State) string {
	if state.Request == nil {
		return ""
	}
	return state.Request.Method
}
