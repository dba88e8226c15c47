package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &Config{Find: "config.toml"}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"output"},
		Description: "output format for -g: toml/t, json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "te").
		WithSynopsis("te [opts] [key value | @ | = | + | -]...").
		WithDescription(teDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return teMain(cfg, cc, args)
		})
}

const teDescription = `te edits TOML files from the command line.

Arguments form a stream of commands under a persistent mode. The mode
starts as set-or-add and is switched by the tokens @, = and +, each of
which consumes the following key and value pair, and -, which consumes
only a key:

  @ key value    set key to value, appending when key holds an array
  = key value    set key to value
  + key value    append value to key, wrapping scalars into arrays
  - key          remove key

Keys are dotted TOML paths; intermediate tables are created as needed.
Values are parsed as TOML and kept as strings when they do not parse.

The file to edit is -f when given, otherwise the nearest -F name found
walking up from the working directory.

Examples

  te project.version 1.2.3
  te -b = tool.x.enabled true - tool.y
  te -p tool.poetry dependencies.lib '>=2.0'
  te -g project.version -O json`
