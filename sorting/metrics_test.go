package sorting

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSortMetrics verifies that every entry point records a call.
// Note: Cannot use t.Parallel() because this test reads global Prometheus metrics.
//
//nolint:paralleltest // Test reads global Prometheus metric state
func TestSortMetrics(t *testing.T) {
	treeOK := sortCallsTotal.WithLabelValues(algorithmTree, "false")
	msdOK := sortCallsTotal.WithLabelValues(algorithmMSD, "false")
	msdErr := sortCallsTotal.WithLabelValues(algorithmMSD, "true")
	anyErr := sortCallsTotal.WithLabelValues(algorithmMSDAny, "true")

	beforeTree := testutil.ToFloat64(treeOK)
	beforeMSD := testutil.ToFloat64(msdOK)
	beforeMSDErr := testutil.ToFloat64(msdErr)
	beforeAnyErr := testutil.ToFloat64(anyErr)

	TreeSortOrdered([]int{2, 1})
	require.NoError(t, MSDRadixSort([]string{"b", "a"}, Identity))
	require.Error(t, MSDRadixSort([]string{"b", "a"}, nil))
	require.Error(t, MSDRadixSortAny([]int{1}, func(i int) any { return i }))

	assert.InDelta(t, beforeTree+1, testutil.ToFloat64(treeOK), 0)
	assert.InDelta(t, beforeMSD+1, testutil.ToFloat64(msdOK), 0)
	assert.InDelta(t, beforeMSDErr+1, testutil.ToFloat64(msdErr), 0)
	assert.InDelta(t, beforeAnyErr+1, testutil.ToFloat64(anyErr), 0)

	// One histogram series per algorithm once each has been observed.
	assert.Equal(t, 3, testutil.CollectAndCount(sortInputSize))
}
