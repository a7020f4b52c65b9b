package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of successful logins",
		},
	)

	TokenPairsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_token_pairs_issued_total",
			Help: "Total number of access/refresh token pairs issued",
		},
	)

	RefreshRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_refresh_rotations_total",
			Help: "Total number of successful refresh token rotations",
		},
	)

	ReuseRevocations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_reuse_revocations_total",
			Help: "Total number of full session revocations triggered by refresh token reuse",
		},
	)

	LogoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_logouts_total",
			Help: "Total number of logout requests",
		},
	)
)
