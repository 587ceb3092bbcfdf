package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	QueriesServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aireminder", Name: "queries_served_total", Help: "Number of reminder list/summary queries served by route."},
		[]string{"route"},
	)
	MutationsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aireminder", Name: "mutations_applied_total", Help: "Number of reminder mutations applied by kind."},
		[]string{"kind"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aireminder", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aireminder", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(QueriesServed)
	reg.MustRegister(MutationsApplied)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
