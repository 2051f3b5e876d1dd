// Package sortable provides the ordering contracts used by the tree sort, and
// wrapper types for primitive types that implement them.
//
// # Overview
//
// The package defines two ways of expressing "supports less-than":
//
//   - The [Sortable] interface, for types that carry their own ordering via a
//     LessThan method. [Int], [Byte] and [String] are ready-made implementations.
//   - The [LessFunc] comparator, a plain function value. This is what the
//     sorting entry points accept, so that a type can be sorted by more than one
//     ordering and types without a LessThan method can be sorted at all.
//
// [Of] bridges the two: it turns a Sortable type's LessThan into a LessFunc.
//
// # Usage
//
//	people := []Person{{"Alice", 30}, {"Bob", 22}}
//	sorting.TreeSort(people, sortable.By(func(p Person) int { return p.Age }))
//
//	ints := []sortable.Int{3, 1, 2}
//	sorting.TreeSort(ints, sortable.Of[sortable.Int]())
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// Orderings must be strict: LessThan(x, x) is false. The tree sort relies on
// this to keep equal elements in their original relative order.
package sortable
