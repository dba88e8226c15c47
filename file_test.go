package tomledit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/toml-edit/ir"
)

func TestLoadMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if f.Path != p {
		t.Errorf("path = %q, want %q", f.Path, p)
	}
	if f.Doc == nil || f.Doc.Type != ir.TableType || f.Doc.Len() != 0 {
		t.Errorf("doc = %+v, want an empty table", f.Doc)
	}
}

func TestLoadParseError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte("= nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Fatal("bad document loaded without error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := Set(f.Doc, path(t, "a.b"), "1"); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(false); err != nil {
		t.Fatal(err)
	}

	g, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(f.Doc, g.Doc) {
		t.Errorf("reloaded doc differs: %+v", g.Doc)
	}
	if _, err := os.Stat(p + BackupSuffix); !os.IsNotExist(err) {
		t.Errorf("unexpected backup state: %v", err)
	}
}

func TestSaveBackup(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := Set(f.Doc, path(t, "a"), "2"); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(true); err != nil {
		t.Fatal(err)
	}

	bak, err := os.ReadFile(p + BackupSuffix)
	if err != nil {
		t.Fatal(err)
	}
	if string(bak) != "a = 1\n" {
		t.Errorf("backup = %q, want the previous contents", bak)
	}

	// a second save replaces the backup
	if err := Set(f.Doc, path(t, "a"), "3"); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(true); err != nil {
		t.Fatal(err)
	}
	bak, err = os.ReadFile(p + BackupSuffix)
	if err != nil {
		t.Fatal(err)
	}
	if string(bak) != "a = 2\n" {
		t.Errorf("backup = %q, want the second contents", bak)
	}
}

func TestSaveBackupMissingOriginal(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(true); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(p + BackupSuffix); !os.IsNotExist(err) {
		t.Errorf("backup of a missing file: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Errorf("saved file: %v", err)
	}
}

func TestFindInParents(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(want, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if got := FindInParents(sub, "config.toml"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// nothing found falls back to the bare name
	if got := FindInParents(sub, "nonesuch.toml"); got != "nonesuch.toml" {
		t.Errorf("got %q, want nonesuch.toml", got)
	}
}

func TestFindInParentsPrefersNearest(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{dir, sub} {
		if err := os.WriteFile(filepath.Join(d, "config.toml"), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if got := FindInParents(sub, "config.toml"); got != filepath.Join(sub, "config.toml") {
		t.Errorf("got %q, want the nearest file", got)
	}
}
