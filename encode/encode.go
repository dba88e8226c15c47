// Package encode renders IR nodes as TOML, JSON, or YAML text.
package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/toml-edit/format"
	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/keypath"
)

type EncState struct {
	format format.Format
	wrote  bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default format is TOML: a table node
// renders as a document — scalar entries first, then [table] sections and
// [[array-of-tables]] blocks, IR order preserved within each group — and
// any other node as a single value followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w)
	}
	if node.Type == ir.TableType {
		return encodeSections(node, w, es, nil)
	}
	if err := encodeValue(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func EncodeToString(node *ir.Node, opts ...EncodeOption) (string, error) {
	b := &bytes.Buffer{}
	if err := Encode(node, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// encodeSections writes one table body under the given header path: entry
// lines first, then child sections. A pure pass-through table (no entries,
// only child sections) does not repeat its own header.
func encodeSections(tab *ir.Node, w io.Writer, es *EncState, path keypath.Path) error {
	for i, k := range tab.Keys {
		v := tab.Values[i]
		if isSection(v) {
			continue
		}
		if err := writeKey(w, es, k); err != nil {
			return err
		}
		if err := writeSep(w, es, " = "); err != nil {
			return err
		}
		if err := encodeValue(v, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.wrote = true
	}
	for i, k := range tab.Keys {
		v := tab.Values[i]
		if !isSection(v) {
			continue
		}
		sub := make(keypath.Path, len(path)+1)
		copy(sub, path)
		sub[len(path)] = k
		if v.Type == ir.TableType {
			if !passThrough(v) {
				if err := writeHeader(w, es, sub, false); err != nil {
					return err
				}
			}
			if err := encodeSections(v, w, es, sub); err != nil {
				return err
			}
			continue
		}
		for _, elem := range v.Values {
			if err := writeHeader(w, es, sub, true); err != nil {
				return err
			}
			if err := encodeSections(elem, w, es, sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// isSection reports whether v renders at table level: any table, or a
// non-empty array made solely of tables.
func isSection(v *ir.Node) bool {
	if v.Type == ir.TableType {
		return true
	}
	if v.Type != ir.ArrayType || len(v.Values) == 0 {
		return false
	}
	for _, e := range v.Values {
		if e.Type != ir.TableType {
			return false
		}
	}
	return true
}

// passThrough reports whether v is a table whose body is nothing but
// child sections, so its own header carries no information.
func passThrough(v *ir.Node) bool {
	if len(v.Keys) == 0 {
		return false
	}
	for _, c := range v.Values {
		if !isSection(c) {
			return false
		}
	}
	return true
}

func writeHeader(w io.Writer, es *EncState, path keypath.Path, array bool) error {
	if es.wrote {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	lb, rb := "[", "]"
	if array {
		lb, rb = "[[", "]]"
	}
	if err := writeSep(w, es, lb); err != nil {
		return err
	}
	if err := writeColored(w, es, ir.TableType, FieldColor, path.String()); err != nil {
		return err
	}
	if err := writeSep(w, es, rb); err != nil {
		return err
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	es.wrote = true
	return nil
}

// encodeValue writes n in inline position: the right-hand side of an
// entry, an array element, or an inline table member.
func encodeValue(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case ir.StringType:
		return writeColored(w, es, n.Type, ValueColor, keypath.Quote(n.String))
	case ir.IntegerType:
		return writeColored(w, es, n.Type, ValueColor, strconv.FormatInt(n.Int64, 10))
	case ir.FloatType:
		return writeColored(w, es, n.Type, ValueColor, formatFloat(n.Float64))
	case ir.BoolType:
		return writeColored(w, es, n.Type, ValueColor, strconv.FormatBool(n.Bool))
	case ir.DatetimeType, ir.LocalDatetimeType, ir.LocalDateType, ir.LocalTimeType:
		return writeColored(w, es, n.Type, ValueColor, ir.FormatTime(n.Type, n.Time))
	case ir.ArrayType:
		if err := writeSep(w, es, "["); err != nil {
			return err
		}
		for i, v := range n.Values {
			if i > 0 {
				if err := writeSep(w, es, ", "); err != nil {
					return err
				}
			}
			if err := encodeValue(v, w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, "]")
	case ir.TableType:
		if err := writeSep(w, es, "{"); err != nil {
			return err
		}
		for i, k := range n.Keys {
			if i > 0 {
				if err := writeSep(w, es, ", "); err != nil {
					return err
				}
			}
			if err := writeKey(w, es, k); err != nil {
				return err
			}
			if err := writeSep(w, es, " = "); err != nil {
				return err
			}
			if err := encodeValue(n.Values[i], w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, "}")
	}
	return fmt.Errorf("%w: cannot encode %s", ErrEncoding, n.Type)
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, s string) error {
	return writeColored(w, es, ir.TableType, SepColor, s)
}

func writeKey(w io.Writer, es *EncState, k string) error {
	if !keypath.IsBare(k) {
		k = keypath.Quote(k)
	}
	return writeColored(w, es, ir.TableType, FieldColor, k)
}

// formatFloat renders f so it reads back as a TOML float: a bare integral
// value gains a trailing ".0".
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
