package ir

import (
	"maps"
	"slices"
	"time"
)

// Node is one value in a TOML document tree.
//
// A Node is a tagged union discriminated by Type. Tables keep their entries
// in Keys and Values, parallel slices in insertion order; arrays use Values
// alone. Scalar payloads occupy the remaining fields according to Type.
// Nodes hold no parent pointers: a document is owned from the root down and
// is mutated through the owning table.
type Node struct {
	Type Type

	// Keys and Values hold table entries in insertion order.
	// len(Keys) == len(Values), and Keys never repeats an entry.
	// For arrays, Values alone holds the elements.
	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
	Time    time.Time
}

// Table returns a fresh empty table node.
func Table() *Node {
	return &Node{Type: TableType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromDatetime returns an offset date-time node; the location of t carries
// the offset.
func FromDatetime(t time.Time) *Node {
	return &Node{Type: DatetimeType, Time: t}
}

func FromLocalDatetime(t time.Time) *Node {
	return &Node{Type: LocalDatetimeType, Time: t}
}

func FromLocalDate(t time.Time) *Node {
	return &Node{Type: LocalDateType, Time: t}
}

func FromLocalTime(t time.Time) *Node {
	return &Node{Type: LocalTimeType, Time: t}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// FromMap returns a table holding m's entries with sorted keys.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: TableType}
	res.Keys = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Keys))
	for i, k := range res.Keys {
		res.Values[i] = m[k]
	}
	return res
}

// Get returns the value at field, or nil when y is not a table or the field
// is absent.
func (y *Node) Get(field string) *Node {
	if y.Type != TableType {
		return nil
	}
	for i := range y.Keys {
		if y.Keys[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Has(field string) bool {
	return y.Get(field) != nil
}

// Set inserts or replaces the value at field. A replaced entry keeps its
// position; a new entry is appended.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Keys {
		if y.Keys[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Keys = append(y.Keys, field)
	y.Values = append(y.Values, v)
}

// Delete removes the entry at field, reporting whether it was present.
func (y *Node) Delete(field string) bool {
	for i := range y.Keys {
		if y.Keys[i] == field {
			y.Keys = slices.Delete(y.Keys, i, i+1)
			y.Values = slices.Delete(y.Values, i, i+1)
			return true
		}
	}
	return false
}

// Append adds v to the end of an array.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

// Len returns the number of table entries or array elements.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		String:  y.String,
		Bool:    y.Bool,
		Int64:   y.Int64,
		Float64: y.Float64,
		Time:    y.Time,
	}
	if y.Keys != nil {
		res.Keys = slices.Clone(y.Keys)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}
