package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var upstreamCalls = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "momo_upstream_calls_total",
		Help: "Counter of calls made to the MoMo API by step and response status",
	},
	[]string{
		"step",
		"status",
	},
)

var upstreamDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "momo_upstream_call_duration_seconds",
		Help:    "Latency of calls made to the MoMo API by step",
		Buckets: prometheus.DefBuckets,
	},
	[]string{
		"step",
	},
)

func init() {
	prometheus.MustRegister(upstreamCalls, upstreamDuration)
}
