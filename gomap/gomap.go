// Package gomap provides conversions between Go value trees and IR nodes.
//
// A value tree is the shape that unmarshalling TOML or JSON into any
// produces: maps, slices, and scalars. The package bridges the IR to
// everything that speaks plain Go values — JSON and YAML rendering, patch
// application, and expression environments.
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/signadot/toml-edit/ir"
)

// ToIR converts a Go value tree to an IR node. Maps become tables with
// sorted keys; source order is not recoverable from a Go map. Integral
// json.Number values become integers.
func ToIR(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("cannot represent null in TOML")
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, xv := range x {
			n, err := ToIR(xv)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, xv := range x {
			n, err := ToIR(xv)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	case []map[string]any:
		vs := make([]*ir.Node, len(x))
		for i, xv := range x {
			n, err := ToIR(xv)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", x.String(), err)
		}
		return ir.FromFloat(f), nil
	case time.Time:
		return ir.FromDatetime(x), nil
	case toml.LocalDateTime:
		return ir.FromLocalDatetime(time.Date(
			x.Year, time.Month(x.Month), x.Day,
			x.Hour, x.Minute, x.Second, x.Nanosecond, time.UTC)), nil
	case toml.LocalDate:
		return ir.FromLocalDate(time.Date(
			x.Year, time.Month(x.Month), x.Day, 0, 0, 0, 0, time.UTC)), nil
	case toml.LocalTime:
		return ir.FromLocalTime(time.Date(
			0, time.January, 1,
			x.Hour, x.Minute, x.Second, x.Nanosecond, time.UTC)), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a TOML value", v)
}

// FromIR converts a node to a plain Go value: tables become
// map[string]any, arrays []any, offset date-times time.Time, and the
// local date-time shapes their canonical strings.
func FromIR(n *ir.Node) any {
	switch n.Type {
	case ir.TableType:
		m := make(map[string]any, n.Len())
		for i, k := range n.Keys {
			m[k] = FromIR(n.Values[i])
		}
		return m
	case ir.ArrayType:
		vs := make([]any, n.Len())
		for i, v := range n.Values {
			vs[i] = FromIR(v)
		}
		return vs
	case ir.StringType:
		return n.String
	case ir.BoolType:
		return n.Bool
	case ir.IntegerType:
		return n.Int64
	case ir.FloatType:
		return n.Float64
	case ir.DatetimeType:
		return n.Time
	case ir.LocalDatetimeType, ir.LocalDateType, ir.LocalTimeType:
		return ir.FormatTime(n.Type, n.Time)
	}
	return nil
}

// ToJSON renders the node as JSON. Local date-times render as their
// canonical strings, offset date-times as RFC 3339.
func ToJSON(n *ir.Node) ([]byte, error) {
	return json.Marshal(FromIR(n))
}

// FromJSON converts JSON to IR. Numbers decode through json.Number so
// integers survive the round trip.
//
// TODO: date-time values demote to strings across a JSON round trip.
func FromJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return ToIR(v)
}
