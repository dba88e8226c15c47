package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/toml-edit"
	"github.com/signadot/toml-edit/gomap"
	"github.com/signadot/toml-edit/ir"
)

// applyPatchFile applies an RFC 6902 patch to the whole document via a
// JSON round trip. Results that are not tables are rejected, as are
// patches that introduce nulls, which TOML cannot represent.
func applyPatchFile(f *tomledit.File, path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	docJSON, err := gomap.ToJSON(f.Doc)
	if err != nil {
		return err
	}
	out, err := p.Apply(docJSON)
	if err != nil {
		return err
	}
	doc, err := gomap.FromJSON(out)
	if err != nil {
		return err
	}
	if doc.Type != ir.TableType {
		return fmt.Errorf("patch result is %s, not a table", doc.Type)
	}
	f.Doc = doc
	return nil
}
