package ir

import "fmt"

// Type discriminates the kinds of TOML values a Node can hold. The set is
// closed: every node built by this module carries exactly one of these.
type Type int

const (
	InvalidType Type = iota
	StringType
	IntegerType
	FloatType
	BoolType
	DatetimeType // offset date-time
	LocalDatetimeType
	LocalDateType
	LocalTimeType
	ArrayType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TableType:         "table",
		ArrayType:         "array",
		StringType:        "string",
		IntegerType:       "integer",
		FloatType:         "float",
		BoolType:          "bool",
		DatetimeType:      "datetime",
		LocalDatetimeType: "local-datetime",
		LocalDateType:     "local-date",
		LocalTimeType:     "local-time",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"string":         StringType,
		"integer":        IntegerType,
		"float":          FloatType,
		"bool":           BoolType,
		"datetime":       DatetimeType,
		"local-datetime": LocalDatetimeType,
		"local-date":     LocalDateType,
		"local-time":     LocalTimeType,
		"array":          ArrayType,
		"table":          TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		IntegerType,
		FloatType,
		BoolType,
		DatetimeType,
		LocalDatetimeType,
		LocalDateType,
		LocalTimeType,
		ArrayType,
		TableType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, TableType:
		return false
	default:
		return true
	}
}
