package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"igcompare/core"
)

var (
	comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "igcompare_comparisons_total",
		Help: "Comparisons served, by whether the memoized result was reused",
	}, []string{"cache"})

	extractedHandles = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "igcompare_extracted_handles",
		Help:    "Handles extracted per pasted list",
		Buckets: prometheus.ExponentialBuckets(1, 4, 9), // 1 to ~65k
	}, []string{"list"})

	exportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "igcompare_exports_total",
		Help: "CSV exports served",
	})
)

func observeComparison(c core.Comparison, cached bool) {
	if cached {
		comparisonsTotal.WithLabelValues("hit").Inc()
		return
	}

	comparisonsTotal.WithLabelValues("miss").Inc()
	extractedHandles.WithLabelValues(core.Following.String()).Observe(float64(c.Following.Len()))
	extractedHandles.WithLabelValues(core.Followers.String()).Observe(float64(c.Followers.Len()))
}
