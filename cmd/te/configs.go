package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/toml-edit/encode"
	"github.com/signadot/toml-edit/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type Config struct {
	File    string `cli:"name=f aliases=file desc='file to edit (overrides -F)'"`
	Find    string `cli:"name=F aliases=find desc='file name to locate in the working directory or a parent'"`
	Prefix  string `cli:"name=p aliases=prefix desc='key path prepended to every key argument'"`
	Backup  bool   `cli:"name=b aliases=backup desc='keep the previous contents in <file>~'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='report actions on stderr'"`
	DryRun  bool   `cli:"name=n aliases=dry-run desc='apply commands but do not write the file'"`
	Get     string `cli:"name=g aliases=get desc='print the value at this key path after editing'"`
	Diff    bool   `cli:"name=d aliases=diff desc='print a line diff of the changes on stderr'"`
	When    string `cli:"name=w aliases=when desc='only edit when this expression is true of the document'"`
	Patch   string `cli:"name=patch desc='apply an RFC 6902 JSON patch file before editing'"`
	Color   bool   `cli:"name=color desc='encode with color'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *Config) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *Config) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TOMLFormat
}

func (cfg *Config) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// colorDiff reports whether the diff renderer should emit ANSI colors on w.
func (cfg *Config) colorDiff(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
