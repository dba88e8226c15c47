package main

import (
	"fmt"

	"github.com/signadot/toml-edit"
	"github.com/signadot/toml-edit/encode"
	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/keypath"

	"github.com/scott-cotton/cli"
)

func get(cfg *Config, cc *cli.Context, doc *ir.Node, prefix keypath.Path) error {
	key, err := keypath.Parse(cfg.Get)
	if err != nil {
		return fmt.Errorf("%w: invalid key %q: %v", cli.ErrUsage, cfg.Get, err)
	}
	full := append(append(keypath.Path{}, prefix...), key...)
	v := tomledit.Lookup(doc, full)
	if v == nil {
		return &tomledit.NoMappingError{Kind: tomledit.KeyNotFound, Key: full}
	}
	return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
}
