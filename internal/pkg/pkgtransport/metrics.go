package pkgtransport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeService   = "service_error"
	outcomeTransport = "transport_error"
)

//nolint:gochecknoglobals // registered once with the default registry
var (
	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cityworks",
			Subsystem: "transport",
			Name:      "requests_total",
			Help:      "Cityworks service calls by endpoint and outcome",
		},
		[]string{"path", "outcome"},
	)

	dispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cityworks",
			Subsystem: "transport",
			Name:      "request_duration_seconds",
			Help:      "Latency of Cityworks service calls",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)
