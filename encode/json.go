package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/keypath"
)

// encodeJSON writes n as compact JSON, preserving table entry order.
// Date-times render as strings; TOML's inf and nan have no JSON form and
// fail the encode.
func encodeJSON(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case ir.StringType:
		return writeColored(w, es, n.Type, ValueColor, keypath.Quote(n.String))
	case ir.IntegerType:
		return writeColored(w, es, n.Type, ValueColor, strconv.FormatInt(n.Int64, 10))
	case ir.FloatType:
		if math.IsInf(n.Float64, 0) || math.IsNaN(n.Float64) {
			return fmt.Errorf("%w: %v has no JSON form", ErrEncoding, n.Float64)
		}
		return writeColored(w, es, n.Type, ValueColor, strconv.FormatFloat(n.Float64, 'g', -1, 64))
	case ir.BoolType:
		return writeColored(w, es, n.Type, ValueColor, strconv.FormatBool(n.Bool))
	case ir.DatetimeType, ir.LocalDatetimeType, ir.LocalDateType, ir.LocalTimeType:
		return writeColored(w, es, n.Type, ValueColor, keypath.Quote(ir.FormatTime(n.Type, n.Time)))
	case ir.ArrayType:
		if err := writeSep(w, es, "["); err != nil {
			return err
		}
		for i, v := range n.Values {
			if i > 0 {
				if err := writeSep(w, es, ","); err != nil {
					return err
				}
			}
			if err := encodeJSON(v, w, es); err != nil {
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
				if err := writeSep(w, es, ","); err != nil {
					return err
				}
			}
			if err := writeColored(w, es, ir.TableType, FieldColor, keypath.Quote(k)); err != nil {
				return err
			}
			if err := writeSep(w, es, ":"); err != nil {
				return err
			}
			if err := encodeJSON(n.Values[i], w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, "}")
	}
	return fmt.Errorf("%w: cannot encode %s", ErrEncoding, n.Type)
}
