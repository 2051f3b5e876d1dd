package sorting

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/seqsort/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Key string
	ID  int
}

func TestMSDRadixSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "empty", input: []string{}, expected: []string{}},
		{name: "single", input: []string{"x"}, expected: []string{"x"}},
		{name: "two letter keys", input: []string{"ba", "ab", "aa"}, expected: []string{"aa", "ab", "ba"}},
		{
			name:     "prefix sorts before longer key",
			input:    []string{"abc", "b", "ab", "a"},
			expected: []string{"a", "ab", "abc", "b"},
		},
		{
			name:     "already sorted prefixes unchanged",
			input:    []string{"a", "ab", "abc", "b"},
			expected: []string{"a", "ab", "abc", "b"},
		},
		{
			name:     "empty keys first",
			input:    []string{"b", "", "a", ""},
			expected: []string{"", "", "a", "b"},
		},
		{
			name:     "all equal keys",
			input:    []string{"same", "same", "same"},
			expected: []string{"same", "same", "same"},
		},
		{
			name:     "mixed lengths",
			input:    []string{"zeta", "alpha", "beta", "ab", "aba"},
			expected: []string{"ab", "aba", "alpha", "beta", "zeta"},
		},
		{
			name:     "multi-byte sorts by byte",
			input:    []string{"\u00e9", "e", "z", "ab"},
			expected: []string{"ab", "e", "z", "\u00e9"},
		},
		{
			name:     "uppercase before lowercase",
			input:    []string{"b", "B", "a", "A"},
			expected: []string{"A", "B", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := slices.Clone(tt.input)
			require.NoError(t, MSDRadixSort(items, Identity))

			assert.Equal(t, tt.expected, items)
		})
	}
}

func TestMSDRadixSort_MissingKey(t *testing.T) {
	t.Parallel()

	t.Run("non-empty", func(t *testing.T) {
		t.Parallel()

		items := []string{"b", "a"}
		err := MSDRadixSort(items, nil)

		require.ErrorIs(t, err, errors.ErrMissingKeyFunction)
		assert.Equal(t, []string{"b", "a"}, items)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, MSDRadixSort([]string{}, nil), errors.ErrMissingKeyFunction)
	})
}

func TestMSDRadixSort_KeyExtractedOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	items := []string{"abc", "abd", "abc", "ab"}

	err := MSDRadixSort(items, func(s string) string {
		calls++

		return s
	})

	require.NoError(t, err)
	assert.Equal(t, len(items), calls)
	assert.Equal(t, []string{"ab", "abc", "abc", "abd"}, items)
}

func TestMSDRadixSort_StableAmongEqualKeys(t *testing.T) {
	t.Parallel()

	items := []record{{"b", 1}, {"a", 2}, {"b", 3}, {"a", 4}, {"ab", 5}, {"a", 6}}

	require.NoError(t, MSDRadixSort(items, func(r record) string { return r.Key }))

	assert.Equal(t, []record{{"a", 2}, {"a", 4}, {"a", 6}, {"ab", 5}, {"b", 1}, {"b", 3}}, items)
}

func TestMSDRadixSort_PaddedNumericKeys(t *testing.T) {
	t.Parallel()

	people := []person{{"Alice", 30}, {"Bob", 22}, {"Carl", 25}}

	err := MSDRadixSort(people, func(p person) string { return fmt.Sprintf("%03d", p.Age) })
	require.NoError(t, err)

	assert.Equal(t, []person{{"Bob", 22}, {"Carl", 25}, {"Alice", 30}}, people)
}

func TestMSDRadixSort_LongSharedPrefix(t *testing.T) {
	t.Parallel()

	prefix := strings.Repeat("x", 10000)
	items := []string{prefix + "b", prefix, prefix + "a"}

	require.NoError(t, MSDRadixSort(items, Identity))

	assert.Equal(t, []string{prefix, prefix + "a", prefix + "b"}, items)
}

func TestMSDRadixSort_MatchesStringOrder(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4)) //nolint:gosec
	alphabet := []string{"a", "b", "c", "\u00e9", "ß", "z", "A"}

	for range 50 {
		items := make([]string, rng.IntN(300))
		for i := range items {
			var sb strings.Builder
			for range rng.IntN(6) {
				sb.WriteString(alphabet[rng.IntN(len(alphabet))])
			}

			items[i] = sb.String()
		}

		expected := slices.Clone(items)
		slices.Sort(expected)

		require.NoError(t, MSDRadixSort(items, Identity))
		require.Equal(t, expected, items)
	}
}

func TestMSDRadixSort_Idempotent(t *testing.T) {
	t.Parallel()

	items := []string{"pear", "apple", "fig", "apple"}
	require.NoError(t, MSDRadixSort(items, Identity))

	once := slices.Clone(items)
	require.NoError(t, MSDRadixSort(items, Identity))

	assert.Equal(t, once, items)
}

func TestMSDRadixSortAny(t *testing.T) {
	t.Parallel()

	t.Run("string keys", func(t *testing.T) {
		t.Parallel()

		items := []string{"ba", "ab", "aa"}
		require.NoError(t, MSDRadixSortAny(items, func(s string) any { return s }))

		assert.Equal(t, []string{"aa", "ab", "ba"}, items)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, MSDRadixSortAny([]string{"a"}, nil), errors.ErrMissingKeyFunction)
	})

	t.Run("non-string key leaves items untouched", func(t *testing.T) {
		t.Parallel()

		items := []int{3, 1, 2}
		err := MSDRadixSortAny(items, func(i int) any { return i })

		require.ErrorIs(t, err, errors.ErrInvalidKeyType)
		require.ErrorIs(t, err, errors.ErrWrongType)
		assert.Contains(t, err.Error(), "element 0")
		assert.Equal(t, []int{3, 1, 2}, items)
	})

	t.Run("one bad key among good ones", func(t *testing.T) {
		t.Parallel()

		items := []string{"b", "bad", "a"}
		err := MSDRadixSortAny(items, func(s string) any {
			if s == "bad" {
				return []byte(s)
			}

			return s
		})

		require.ErrorIs(t, err, errors.ErrInvalidKeyType)
		assert.Contains(t, err.Error(), "element 1")
		assert.Equal(t, []string{"b", "bad", "a"}, items)
	})

	t.Run("singleton with non-string key", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, MSDRadixSortAny([]int{1}, func(i int) any { return i }), errors.ErrInvalidKeyType)
	})
}
