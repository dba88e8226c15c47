package tomledit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/toml-edit/encode"
	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/parse"
)

// BackupSuffix is appended to a file's name when Save keeps the previous
// contents.
const BackupSuffix = "~"

// File is one TOML file held in memory for editing.
type File struct {
	Path string
	Doc  *ir.Node
}

// Load reads the TOML file at path. A file that does not exist loads as an
// empty document, so an editing session can start a file from nothing; any
// other read or parse failure is an error.
func Load(path string) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{Path: path, Doc: ir.Table()}, nil
		}
		return nil, err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Path: path, Doc: doc}, nil
}

// Save writes the document back to its path. With backup, the current file
// is first renamed to path+"~", replacing any previous backup: one level
// of undo, no more.
func (f *File) Save(backup bool) error {
	text, err := encode.EncodeToString(f.Doc)
	if err != nil {
		return err
	}
	if backup {
		if err := f.keepBackup(); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, []byte(text), 0o644)
}

func (f *File) keepBackup() error {
	if _, err := os.Stat(f.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	bak := f.Path + BackupSuffix
	if err := os.Remove(bak); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(f.Path, bak)
}

// FindInParents looks for a file named name in dir and each of its
// parents, returning the first hit. When nothing is found it returns name
// itself, so a later Load starts a fresh file in the working directory.
func FindInParents(dir, name string) string {
	for {
		cand := filepath.Join(dir, name)
		if _, err := os.Stat(cand); err == nil {
			return cand
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return name
		}
		dir = parent
	}
}
