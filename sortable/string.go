package sortable

// String is a sortable wrapper type for the built-in string type.
// Ordering is byte-wise, the same as the < operator on strings.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// String implements fmt.Stringer so containers of String render without quotes.
func (s String) String() string {
	return string(s)
}
