package main

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/toml-edit/gomap"
	"github.com/signadot/toml-edit/ir"
)

// evalGuard evaluates a -w expression against the document. The
// expression sees the document as nested maps and must yield a bool.
func evalGuard(src string, doc *ir.Node) (bool, error) {
	env, ok := gomap.FromIR(doc).(map[string]any)
	if !ok {
		env = map[string]any{}
	}
	program, err := expr.Compile(src,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool())
	if err != nil {
		return false, err
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q did not yield a bool", src)
	}
	return b, nil
}
