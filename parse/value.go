package parse

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/signadot/toml-edit/debug"
	"github.com/signadot/toml-edit/gomap"
	"github.com/signadot/toml-edit/ir"
)

// probeKey smuggles a raw value through the TOML parser as the right-hand
// side of an assignment.
const probeKey = "v"

// Value coerces raw text to a TOML value. Anything that does not parse as
// exactly one TOML value — including the empty string — becomes a string
// node holding the raw text verbatim. Value never fails.
func Value(raw string) *ir.Node {
	var doc map[string]any
	err := toml.Unmarshal([]byte(probeKey+" = "+raw+"\n"), &doc)
	if err == nil && len(doc) == 1 {
		if v, ok := doc[probeKey]; ok {
			if n, cerr := gomap.ToIR(v); cerr == nil {
				if debug.Coerce() {
					debug.Logf("coerce: %q -> %s\n", raw, n.Type)
				}
				return n
			}
		}
	}
	if debug.Coerce() {
		debug.Logf("coerce: %q kept as string\n", raw)
	}
	return ir.FromString(raw)
}
