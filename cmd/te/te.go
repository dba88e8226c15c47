package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/toml-edit"
	"github.com/signadot/toml-edit/encode"
	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/keypath"

	"github.com/scott-cotton/cli"
)

func teMain(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 && cfg.Get == "" && cfg.Patch == "" {
		return fmt.Errorf("%w: no commands given", cli.ErrUsage)
	}
	prefix, err := parsePrefix(cfg.Prefix)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	path := cfg.File
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = tomledit.FindInParents(wd, cfg.Find)
	}
	f, err := tomledit.Load(path)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "editing %s\n", f.Path)
	}

	edit := true
	if cfg.When != "" {
		edit, err = evalGuard(cfg.When, f.Doc)
		if err != nil {
			return fmt.Errorf("error evaluating -w: %w", err)
		}
		if !edit && cfg.Verbose {
			fmt.Fprintf(os.Stderr, "guard %q is false; leaving %s unchanged\n", cfg.When, f.Path)
		}
	}

	before := ""
	if cfg.Diff {
		before, err = encode.EncodeToString(f.Doc)
		if err != nil {
			return err
		}
	}

	if edit {
		if cfg.Patch != "" {
			if err := applyPatchFile(f, cfg.Patch); err != nil {
				return fmt.Errorf("error applying patch %s: %w", cfg.Patch, err)
			}
		}
		table, err := tomledit.ResolveTable(f.Doc, prefix)
		if err != nil {
			return fmt.Errorf("cannot resolve prefix %s: %w", cfg.Prefix, err)
		}
		applied := runBatch(table, args, os.Stderr)
		if cfg.Verbose && len(args) > 0 {
			fmt.Fprintf(os.Stderr, "applied %d commands\n", applied)
		}
	}

	if cfg.Get != "" {
		if err := get(cfg, cc, f.Doc, prefix); err != nil {
			return err
		}
	}

	if cfg.Diff {
		after, err := encode.EncodeToString(f.Doc)
		if err != nil {
			return err
		}
		renderDiff(os.Stderr, before, after, cfg.colorDiff(os.Stderr))
	}

	if !edit {
		return nil
	}
	if cfg.DryRun {
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "dry-run: not writing %s\n", f.Path)
		}
		return nil
	}
	if err := f.Save(cfg.Backup); err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "wrote %s\n", f.Path)
	}
	return nil
}

// runBatch applies the command stream to table, reporting per-command
// failures on errw and carrying on with the rest of the stream. It
// returns the number of commands that succeeded; failures never abort
// the batch, only a trailing key with no value ends it early.
func runBatch(table *ir.Node, args []string, errw io.Writer) int {
	cmds, perr := tomledit.ParseCommands(args)
	applied := 0
	for _, cmd := range cmds {
		if err := tomledit.Apply(table, cmd); err != nil {
			fmt.Fprintln(errw, cmd.Mode.ErrorMessage(cmd.Key, cmd.Value, err))
			continue
		}
		applied++
	}
	var mv *tomledit.MissingValueError
	if errors.As(perr, &mv) {
		fmt.Fprintln(errw, mv.Mode.ErrorMessage(mv.Key, "(missing)", mv))
	}
	return applied
}

func parsePrefix(s string) (keypath.Path, error) {
	if s == "" {
		return nil, nil
	}
	p, err := keypath.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid prefix %q: %v", s, err)
	}
	return p, nil
}
