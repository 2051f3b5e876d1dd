package sorting

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// sortCallsTotal counts every call into a sort entry point.
	//
	// Labels:
	//   - algorithm: "tree", "msd" or "msd_any".
	//   - has_error: "true" when the call returned an error (missing or
	//     mistyped key function), "false" otherwise.
	//
	// Usage example in dashboards:
	//   - sum(rate(seqsort_sort_calls_total[5m])) by (algorithm)
	//   - seqsort_sort_calls_total{has_error="true"}
	sortCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "seqsort_sort_calls_total",
		Help: "The total number of calls to a sort entry point",
	}, []string{"algorithm", "has_error"})

	// sortInputSize records the number of elements handed to each sort.
	// Buckets grow by powers of four from 1 to ~260k elements.
	sortInputSize = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "seqsort_sort_input_size",
		Help:    "The number of elements passed to a sort entry point",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"algorithm"})
)

// init pre-initializes every label combination so series exist before the
// first sort runs.
func init() {
	for _, algorithm := range []string{algorithmTree, algorithmMSD, algorithmMSDAny} {
		sortCallsTotal.WithLabelValues(algorithm, "true").Add(0)
		sortCallsTotal.WithLabelValues(algorithm, "false").Add(0)
	}
}

func observe(algorithm string, size int, err error) {
	sortCallsTotal.WithLabelValues(algorithm, strconv.FormatBool(err != nil)).Inc()
	sortInputSize.WithLabelValues(algorithm).Observe(float64(size))
}
