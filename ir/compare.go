package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes of different types order by type rank; table comparison is
// sensitive to entry order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case StringType:
		return strings.Compare(a.String, b.String)
	case IntegerType:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case DatetimeType, LocalDatetimeType, LocalDateType, LocalTimeType:
		return a.Time.Compare(b.Time)
	case ArrayType:
		return compareArrays(a, b)
	case TableType:
		return compareTables(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same value, including table
// entry order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Bool < Integer < Float < date-times < String < Array < Table
func rank(t Type) int {
	switch t {
	case InvalidType:
		return 0
	case BoolType:
		return 1
	case IntegerType:
		return 2
	case FloatType:
		return 3
	case DatetimeType:
		return 4
	case LocalDatetimeType:
		return 5
	case LocalDateType:
		return 6
	case LocalTimeType:
		return 7
	case StringType:
		return 8
	case ArrayType:
		return 9
	case TableType:
		return 10
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareTables(a, b *Node) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
