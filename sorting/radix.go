package sorting

import (
	"fmt"
	"slices"

	"github.com/amp-labs/seqsort/assert"
	"github.com/amp-labs/seqsort/errors"
)

const (
	algorithmMSD    = "msd"
	algorithmMSDAny = "msd_any"
)

// KeyFunc projects an element onto the string the radix sort orders by.
type KeyFunc[T any] func(T) string

// keyed pairs an element with its extracted key so the key is computed once.
type keyed[T any] struct {
	key   string
	value T
}

// span is a pending partition step: work[lo:hi] shares its first depth bytes.
type span struct {
	lo, hi int
	depth  int
}

// bucket is the run of elements within a span whose key has char at depth.
type bucket struct {
	char  byte
	start int
	count int
}

// MSDRadixSort sorts items in place by the keys key extracts, using a
// most-significant-digit radix sort over key bytes. Elements with equal keys
// keep their relative order.
//
// A nil key returns ErrMissingKeyFunction and leaves items untouched.
func MSDRadixSort[T any](items []T, key KeyFunc[T]) (err error) {
	defer func() { observe(algorithmMSD, len(items), err) }()

	if key == nil {
		return fmt.Errorf("%w: MSDRadixSort requires a key extractor", errors.ErrMissingKeyFunction)
	}

	work := make([]keyed[T], len(items))
	for i, v := range items {
		work[i] = keyed[T]{key: key(v), value: v}
	}

	sortKeyed(items, work)

	return nil
}

// MSDRadixSortAny is MSDRadixSort for key extractors that are not statically
// typed, such as ones decoded from configuration or built by reflection.
// Every key is extracted and checked before anything moves: a key that is
// not a string returns ErrInvalidKeyType and leaves items untouched.
func MSDRadixSortAny[T any](items []T, key func(T) any) (err error) {
	defer func() { observe(algorithmMSDAny, len(items), err) }()

	if key == nil {
		return fmt.Errorf("%w: MSDRadixSortAny requires a key extractor", errors.ErrMissingKeyFunction)
	}

	work := make([]keyed[T], len(items))

	for i, v := range items {
		k, typeErr := assert.Type[string](key(v))
		if typeErr != nil {
			return fmt.Errorf("%w: element %d: %v", errors.ErrInvalidKeyType, i, typeErr) //nolint:errorlint
		}

		work[i] = keyed[T]{key: k, value: v}
	}

	sortKeyed(items, work)

	return nil
}

// sortKeyed radix sorts work and copies the resulting element order into items.
func sortKeyed[T any](items []T, work []keyed[T]) {
	if len(work) < 2 {
		return
	}

	scratch := make([]keyed[T], len(work))
	pending := []span{{lo: 0, hi: len(work), depth: 0}}

	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		pending = partition(work, scratch, next, pending)
	}

	for i := range work {
		items[i] = work[i].value
	}
}

// partition performs one stable bucket pass over work[s.lo:s.hi] at s.depth
// and returns pending extended with every resulting bucket that still holds
// two or more elements. Spans never overlap, so the order in which pending
// is drained does not affect the result.
func partition[T any](work, scratch []keyed[T], s span, pending []span) []span {
	seg := work[s.lo:s.hi]
	exhausted := 0
	index := make(map[byte]int)

	var buckets []bucket

	for _, e := range seg {
		if len(e.key) <= s.depth {
			exhausted++

			continue
		}

		c := e.key[s.depth]

		if slot, ok := index[c]; ok {
			buckets[slot].count++
		} else {
			index[c] = len(buckets)
			buckets = append(buckets, bucket{char: c, count: 1})
		}
	}

	switch {
	case len(buckets) == 0:
		// Every key ended at or before this depth.
		return pending
	case len(buckets) == 1 && exhausted == 0:
		// Shared byte, nothing moves.
		return append(pending, span{lo: s.lo, hi: s.hi, depth: s.depth + 1})
	}

	slices.SortFunc(buckets, func(a, b bucket) int {
		return int(a.char) - int(b.char)
	})

	offset := exhausted
	for i := range buckets {
		buckets[i].start = offset
		index[buckets[i].char] = i
		offset += buckets[i].count
	}

	out := scratch[s.lo:s.hi]
	fill := make([]int, len(buckets))

	for i := range buckets {
		fill[i] = buckets[i].start
	}

	done := 0

	for _, e := range seg {
		if len(e.key) <= s.depth {
			out[done] = e
			done++

			continue
		}

		slot := index[e.key[s.depth]]
		out[fill[slot]] = e
		fill[slot]++
	}

	copy(seg, out)

	for _, b := range buckets {
		if b.count > 1 {
			pending = append(pending, span{
				lo:    s.lo + b.start,
				hi:    s.lo + b.start + b.count,
				depth: s.depth + 1,
			})
		}
	}

	return pending
}
