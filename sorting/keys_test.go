package sorting

import (
	"testing"

	"github.com/amp-labs/seqsort/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	composed   = "\u00e9"  // é as a single code point
	decomposed = "e\u0301" // e followed by a combining acute accent
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", Identity("abc"))
}

func TestStringer(t *testing.T) {
	t.Parallel()

	items := []sortable.String{"pear", "apple"}
	require.NoError(t, MSDRadixSort(items, Stringer[sortable.String]()))

	assert.Equal(t, []sortable.String{"apple", "pear"}, items)
}

func TestSprint(t *testing.T) {
	t.Parallel()

	items := []int{21, 3, 100}
	require.NoError(t, MSDRadixSort(items, Sprint[int]()))

	// Keys compare as strings, not numbers.
	assert.Equal(t, []int{100, 21, 3}, items)
}

func TestNFC(t *testing.T) {
	t.Parallel()

	t.Run("raw keys split equivalent spellings", func(t *testing.T) {
		t.Parallel()

		items := []string{composed, "f", decomposed}
		require.NoError(t, MSDRadixSort(items, Identity))

		assert.Equal(t, []string{decomposed, "f", composed}, items)
	})

	t.Run("normalized keys group equivalent spellings", func(t *testing.T) {
		t.Parallel()

		items := []string{composed, "f", decomposed}
		require.NoError(t, MSDRadixSort(items, NFC[string](Identity)))

		assert.Equal(t, []string{"f", composed, decomposed}, items)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, NFC[string](nil))
	})
}
