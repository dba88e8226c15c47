package tomledit

import (
	"errors"
	"fmt"

	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/keypath"
)

// ErrEmptyKey is returned by the mutators when given the root path; they
// all need a final segment to act on.
var ErrEmptyKey = errors.New("empty key path")

// ErrorKind discriminates the ways a key path can fail to land.
type ErrorKind int

const (
	// NotAMapping: the parent of the final segment is not a table.
	NotAMapping ErrorKind = iota
	// IntermediateConflict: a non-final segment is occupied by a value
	// that is not a table, so resolution stopped there.
	IntermediateConflict
	// KeyNotFound: a delete addressed a key that is not present.
	KeyNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case NotAMapping:
		return "not a mapping"
	case IntermediateConflict:
		return "intermediate conflict"
	case KeyNotFound:
		return "key not found"
	}
	return "<unknown kind>"
}

// NoMappingError reports a key path that cannot be honored. Key holds the
// path consumed up to the failure; Value holds the node found there, when
// one was found at all (KeyNotFound carries none).
type NoMappingError struct {
	Kind  ErrorKind
	Key   keypath.Path
	Value *ir.Node
}

func (e *NoMappingError) Error() string {
	if e.Kind == KeyNotFound {
		return fmt.Sprintf("key %s not found", e.Key)
	}
	at := "document root"
	if !e.Key.IsRoot() {
		at = fmt.Sprintf("key %s", e.Key)
	}
	found := "nothing"
	if e.Value != nil {
		found = e.Value.Type.String()
	}
	return fmt.Sprintf("%s is not a table (found %s)", at, found)
}
