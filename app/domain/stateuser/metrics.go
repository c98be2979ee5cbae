package stateuser

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "state_user_cache_lookups_total",
	Help: "Number of state user cache lookups by result",
}, []string{"result"})

var resolveErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "state_user_resolve_errors_total",
	Help: "Number of failed state user lookups by kind",
}, []string{"kind"})
