package tomledit

import (
	"github.com/signadot/toml-edit/debug"
	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/keypath"
	"github.com/signadot/toml-edit/parse"
)

// ResolveTable walks key down from root, creating missing intermediate
// tables on the way; resolving is itself a mutation. Table-ness is checked
// before each descent, so descending through a non-table value fails with
// an IntermediateConflict error carrying the prefix consumed so far and
// the value found there, while the node the final segment lands on is
// returned as-is, unchecked. Tables created before a failure stay in
// place.
//
// The empty path returns root as-is, whatever its type.
func ResolveTable(root *ir.Node, key keypath.Path) (*ir.Node, error) {
	table := root
	for i, seg := range key {
		if table.Type != ir.TableType {
			return nil, &NoMappingError{
				Kind:  IntermediateConflict,
				Key:   key[:i],
				Value: table,
			}
		}
		next := table.Get(seg)
		if next == nil {
			if debug.Navigate() {
				debug.Logf("resolve: creating table at %s\n", key[:i+1])
			}
			next = ir.Table()
			table.Set(seg, next)
		}
		table = next
	}
	return table, nil
}

// resolveParent resolves the table owning key's final segment and guards
// its type. ResolveTable leaves the node its last segment lands on
// unchecked, so an existing non-table parent (or a non-table root under a
// depth-1 key) is caught here as NotAMapping, not IntermediateConflict.
func resolveParent(root *ir.Node, key keypath.Path) (*ir.Node, string, error) {
	if key.IsRoot() {
		return nil, "", ErrEmptyKey
	}
	parent, err := ResolveTable(root, key.Parent())
	if err != nil {
		return nil, "", err
	}
	if parent.Type != ir.TableType {
		return nil, "", &NoMappingError{
			Kind:  NotAMapping,
			Key:   key.Parent(),
			Value: parent,
		}
	}
	return parent, key.Last(), nil
}

// Set coerces raw to a value and writes it at key, overwriting whatever
// is there.
func Set(root *ir.Node, key keypath.Path, raw string) error {
	parent, last, err := resolveParent(root, key)
	if err != nil {
		return err
	}
	if debug.Edit() {
		debug.Logf("set %s\n", key)
	}
	parent.Set(last, parse.Value(raw))
	return nil
}

// Add appends raw to the value at key: an absent key becomes a one-element
// array, an array gains an element, and any other value is replaced by the
// two-element array [old, new]. Once the parent resolves, Add cannot fail.
func Add(root *ir.Node, key keypath.Path, raw string) error {
	parent, last, err := resolveParent(root, key)
	if err != nil {
		return err
	}
	if debug.Edit() {
		debug.Logf("add %s\n", key)
	}
	nv := parse.Value(raw)
	cur := parent.Get(last)
	switch {
	case cur == nil:
		parent.Set(last, ir.FromSlice([]*ir.Node{nv}))
	case cur.Type == ir.ArrayType:
		cur.Append(nv)
	default:
		parent.Set(last, ir.FromSlice([]*ir.Node{cur, nv}))
	}
	return nil
}

// SetOrAdd appends when the value at key is already an array, and behaves
// exactly like Set otherwise.
func SetOrAdd(root *ir.Node, key keypath.Path, raw string) error {
	parent, last, err := resolveParent(root, key)
	if err != nil {
		return err
	}
	if cur := parent.Get(last); cur != nil && cur.Type == ir.ArrayType {
		if debug.Edit() {
			debug.Logf("set-or-add %s: append\n", key)
		}
		cur.Append(parse.Value(raw))
		return nil
	}
	if debug.Edit() {
		debug.Logf("set-or-add %s: set\n", key)
	}
	parent.Set(last, parse.Value(raw))
	return nil
}

// Delete removes the entry at key. Deleting a key that is not there fails
// with a KeyNotFound error. Like the other mutators, Delete resolves the
// parent eagerly, so it can create the very tables it then finds empty.
func Delete(root *ir.Node, key keypath.Path) error {
	parent, last, err := resolveParent(root, key)
	if err != nil {
		return err
	}
	if !parent.Delete(last) {
		return &NoMappingError{Kind: KeyNotFound, Key: key}
	}
	if debug.Edit() {
		debug.Logf("delete %s\n", key)
	}
	return nil
}

// Lookup returns the node at key without creating anything along the way,
// or nil when the path is absent or crosses a non-table. The empty path
// returns root.
func Lookup(root *ir.Node, key keypath.Path) *ir.Node {
	cur := root
	for _, seg := range key {
		next := cur.Get(seg)
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
