package sortable

// String is a sortable wrapper type for the built-in string type, ordered
// lexicographically by byte value. For human-friendly ordering of strings
// with numeric runs, sort with the NaturalText comparator instead.
//
// To convert back to a regular string, use a type conversion:
//
//	var s sortable.String = "name"
//	regularString := string(s)
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same contents as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String orders lexicographically before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
