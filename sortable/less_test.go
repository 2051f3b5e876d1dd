package sortable

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	Name string
	Age  int
}

func TestOrdered(t *testing.T) {
	t.Parallel()

	less := Ordered[int]()

	assert.True(t, less(1, 2))
	assert.False(t, less(2, 1))
	assert.False(t, less(2, 2))
}

func TestOf(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		less := Of[Int]()

		assert.True(t, less(Int(1), Int(2)))
		assert.False(t, less(Int(2), Int(2)))
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		less := Of[String]()

		assert.True(t, less(String("a"), String("ab")))
		assert.False(t, less(String("b"), String("ab")))
	})

	t.Run("byte", func(t *testing.T) {
		t.Parallel()

		less := Of[Byte]()

		assert.True(t, less(Byte('a'), Byte('b')))
		assert.False(t, less(Byte('b'), Byte('a')))
	})
}

func TestBy(t *testing.T) {
	t.Parallel()

	byAge := By(func(p person) int { return p.Age })

	assert.True(t, byAge(person{"Bob", 22}, person{"Alice", 30}))
	assert.False(t, byAge(person{"Alice", 30}, person{"Bob", 22}))
	assert.True(t, byAge.Equivalent(person{"Alice", 30}, person{"Carl", 30}))
}

func TestNatural(t *testing.T) {
	t.Parallel()

	less := Natural()

	assert.True(t, less("file2", "file10"))
	assert.False(t, less("file10", "file2"))

	items := []string{"file10", "file1", "file2"}
	slices.SortFunc(items, func(a, b string) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})

	assert.Equal(t, []string{"file1", "file2", "file10"}, items)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	less := Reverse(Ordered[int]())

	assert.True(t, less(2, 1))
	assert.False(t, less(1, 2))
	assert.False(t, less(1, 1))
}

func TestEquivalent(t *testing.T) {
	t.Parallel()

	less := Ordered[int]()

	assert.True(t, less.Equivalent(3, 3))
	assert.False(t, less.Equivalent(3, 4))
}

func TestString_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", String("abc").String())
}
