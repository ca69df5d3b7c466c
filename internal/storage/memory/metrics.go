package memory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "threadboard_active_sessions",
			Help: "Number of browser sessions holding a thread store",
		},
	)

	evictedSessions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "threadboard_evicted_sessions_total",
			Help: "Sessions dropped early because the registry was full",
		},
	)
)
