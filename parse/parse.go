// Package parse decodes TOML text into IR nodes and coerces raw
// command-line text to TOML values.
package parse

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/signadot/toml-edit/gomap"
	"github.com/signadot/toml-edit/ir"
)

// Parse decodes a TOML document. The result is always a table node; an
// empty or all-comment document decodes to an empty table.
//
// Decoding is semantic: comments and layout are not represented, and the
// decoded table carries sorted keys. Entries added by later edits keep
// their insertion order from there on.
func Parse(d []byte) (*ir.Node, error) {
	var doc map[string]any
	if err := toml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return gomap.ToIR(doc)
}

// ParseReader decodes a TOML document from r.
func ParseReader(r io.Reader) (*ir.Node, error) {
	var doc map[string]any
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return gomap.ToIR(doc)
}
