package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindMerge = "merge"
	kindDiff  = "diff"
)

var (
	itemsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "collate_stream_items_emitted_total",
		Help: "The total number of items emitted by stream combinators",
	}, []string{"combinator"})

	itemsDropped = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "collate_stream_items_dropped_total",
		Help: "The total number of input items consumed without being emitted: matches across both sides, and right items diff passed over",
	}, []string{"combinator"})

	inputFailures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "collate_stream_failures_total",
		Help: "The total number of stream combinators ended by an input failure",
	}, []string{"combinator"})
)

type kindMetrics struct {
	emitted  prometheus.Counter
	dropped  prometheus.Counter
	failures prometheus.Counter
}

func metricsFor(kind string) kindMetrics {
	return kindMetrics{
		emitted:  itemsEmitted.WithLabelValues(kind),
		dropped:  itemsDropped.WithLabelValues(kind),
		failures: inputFailures.WithLabelValues(kind),
	}
}
