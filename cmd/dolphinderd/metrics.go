package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var profileLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dolphinderd_profile_lookup_duration_seconds",
	Help:    "Time to resolve a profile by owner address, including cache hits.",
	Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
}, []string{"status"})

var collectionLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dolphinderd_collection_lookup_duration_seconds",
	Help:    "Time to aggregate an indexed profile collection.",
	Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
}, []string{"collection", "status"})

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
