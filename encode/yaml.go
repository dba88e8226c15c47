package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/toml-edit/gomap"
	"github.com/signadot/toml-edit/ir"
)

// encodeYAML renders through goccy/go-yaml, using MapSlice so table entry
// order survives.
func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlValue(node))
	if err != nil {
		return err
	}
	return writeString(w, string(d))
}

func yamlValue(n *ir.Node) any {
	switch n.Type {
	case ir.TableType:
		ms := make(yaml.MapSlice, 0, n.Len())
		for i, k := range n.Keys {
			ms = append(ms, yaml.MapItem{Key: k, Value: yamlValue(n.Values[i])})
		}
		return ms
	case ir.ArrayType:
		vs := make([]any, n.Len())
		for i, v := range n.Values {
			vs[i] = yamlValue(v)
		}
		return vs
	default:
		return gomap.FromIR(n)
	}
}
