package sorting

import (
	"cmp"
	"iter"

	"github.com/amp-labs/seqsort/assert"
	"github.com/amp-labs/seqsort/sortable"
)

const algorithmTree = "tree"

// treeNode is one element of the transient search tree built by TreeSort.
type treeNode[T any] struct {
	value T
	left  *treeNode[T]
	right *treeNode[T]
}

// attach walks down from n and hangs child off the first free link.
// child goes left while it is less than the current node, right otherwise.
func (n *treeNode[T]) attach(child *treeNode[T], less sortable.LessFunc[T]) {
	cur := n

	for {
		if less(child.value, cur.value) {
			if cur.left == nil {
				cur.left = child

				return
			}

			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = child

				return
			}

			cur = cur.right
		}
	}
}

// inOrder yields the subtree rooted at n: left subtree, node, right subtree.
func (n *treeNode[T]) inOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*treeNode[T]

		cur := n

		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}

			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(cur.value) {
				return
			}

			cur = cur.right
		}
	}
}

// TreeSort sorts items in place with a binary tree sort under less.
// Equal elements keep their relative order. Empty and single element
// slices are left untouched.
//
// less must be a strict weak ordering; a nil less panics.
func TreeSort[T any](items []T, less sortable.LessFunc[T]) {
	assert.True(less != nil, "sorting: TreeSort requires a less function")

	observe(algorithmTree, len(items), nil)

	if len(items) < 2 {
		return
	}

	nodes := make([]treeNode[T], len(items))
	for i, v := range items {
		nodes[i].value = v
	}

	root := &nodes[0]
	for i := 1; i < len(nodes); i++ {
		root.attach(&nodes[i], less)
	}

	i := 0
	for v := range root.inOrder() {
		items[i] = v
		i++
	}
}

// TreeSortOrdered tree sorts items by the < operator.
func TreeSortOrdered[T cmp.Ordered](items []T) {
	TreeSort(items, sortable.Ordered[T]())
}

// TreeSortSortable tree sorts items by their LessThan method.
func TreeSortSortable[T sortable.Sortable[T]](items []T) {
	TreeSort(items, sortable.Of[T]())
}
