// Package sorting implements the two in-place sorts offered by seqsort
// containers: a binary tree sort driven by a caller supplied ordering, and a
// most-significant-digit radix sort driven by a caller supplied string key.
//
// # Tree sort
//
// TreeSort inserts every element, in sequence order, into an unbalanced binary
// search tree rooted at the first element, then writes the in-order traversal
// back. An element that is not less than a node descends to the right, so
// equal elements come out in the order they went in. The tree is never
// rebalanced: already sorted or reverse sorted input builds a single chain
// and costs O(N^2) comparisons. Insertion and traversal are iterative, so the
// chain depth does not grow the goroutine stack.
//
// # MSD radix sort
//
// MSDRadixSort extracts each element's key once, then partitions by the byte
// at depth d (starting at 0). Keys no longer than d land in the exhausted
// bucket, which is emitted first and not partitioned further; the remaining
// buckets follow in ascending byte order and are partitioned again at d+1.
// A prefix therefore sorts before every longer key that extends it:
//
//	"a" < "ab" < "abc" < "b"
//
// Keys are indexed by byte. For valid UTF-8 this matches code point order, so
// results agree with the < operator on strings. Wrap the key with NFC when
// canonically equivalent spellings should sort together.
//
// Cost is O(N*L) for maximum key length L. Each partition step only tracks
// the distinct bytes it actually sees. Partitioning uses an explicit work
// list rather than recursion.
//
// Neither sort is safe for concurrent use on the same slice.
package sorting
