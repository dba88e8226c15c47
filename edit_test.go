package tomledit

import (
	"errors"
	"testing"

	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/keypath"
	"github.com/signadot/toml-edit/parse"
)

func path(t *testing.T, s string) keypath.Path {
	t.Helper()
	p, err := keypath.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func asNoMapping(t *testing.T, err error, kind ErrorKind) *NoMappingError {
	t.Helper()
	var nme *NoMappingError
	if !errors.As(err, &nme) {
		t.Fatalf("err = %v, want *NoMappingError", err)
	}
	if nme.Kind != kind {
		t.Fatalf("kind = %s, want %s", nme.Kind, kind)
	}
	return nme
}

func TestResolveTableEmptyPath(t *testing.T) {
	root := ir.Table()
	got, err := ResolveTable(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Error("empty path did not return the root node itself")
	}

	// the empty path comes back untouched even off a non-table root
	scalar := ir.FromInt(3)
	got, err = ResolveTable(scalar, nil)
	if err != nil || got != scalar {
		t.Errorf("got (%v, %v), want the scalar back", got, err)
	}
}

func TestResolveTableCreatesIntermediates(t *testing.T) {
	root := ir.Table()
	tab, err := ResolveTable(root, path(t, "a.b.c"))
	if err != nil {
		t.Fatal(err)
	}
	if tab.Type != ir.TableType || tab.Len() != 0 {
		t.Fatalf("resolved node: %+v", tab)
	}
	if Lookup(root, path(t, "a.b.c")) != tab {
		t.Error("created table not reachable from the root")
	}
}

func TestResolveTableReturnsExisting(t *testing.T) {
	root := ir.Table()
	first, err := ResolveTable(root, path(t, "a.b"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := ResolveTable(root, path(t, "a.b"))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second resolve did not return the same table")
	}
}

func TestResolveTableIntermediateConflict(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "a.b"), "3"); err != nil {
		t.Fatal(err)
	}
	_, err := ResolveTable(root, path(t, "a.b.c"))
	nme := asNoMapping(t, err, IntermediateConflict)
	if nme.Key.String() != "a.b" {
		t.Errorf("consumed prefix = %q, want a.b", nme.Key.String())
	}
	if nme.Value == nil || nme.Value.Type != ir.IntegerType {
		t.Errorf("offending value = %+v, want the integer", nme.Value)
	}
	// the conflicting value itself is left alone
	if got := Lookup(root, path(t, "a.b")); got == nil || got.Int64 != 3 {
		t.Errorf("a.b = %+v after the failed resolve", got)
	}
}

func TestSet(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "a.b.c"), "3"); err != nil {
		t.Fatal(err)
	}
	got := Lookup(root, path(t, "a.b.c"))
	if got == nil || got.Type != ir.IntegerType || got.Int64 != 3 {
		t.Fatalf("a.b.c = %+v", got)
	}

	// overwrite scalar with scalar
	if err := Set(root, path(t, "a.b.c"), "hello"); err != nil {
		t.Fatal(err)
	}
	if got := Lookup(root, path(t, "a.b.c")); got.Type != ir.StringType || got.String != "hello" {
		t.Fatalf("a.b.c = %+v", got)
	}

	// overwrite a whole table with a scalar
	if err := Set(root, path(t, "a"), "1"); err != nil {
		t.Fatal(err)
	}
	if got := Lookup(root, path(t, "a")); got.Type != ir.IntegerType {
		t.Fatalf("a = %+v", got)
	}

	// and a scalar with an inline table
	if err := Set(root, path(t, "a"), "{x = 1}"); err != nil {
		t.Fatal(err)
	}
	if got := Lookup(root, path(t, "a.x")); got == nil || got.Int64 != 1 {
		t.Fatalf("a.x = %+v", got)
	}
}

func TestSetEmptyKey(t *testing.T) {
	for _, op := range []func() error{
		func() error { return Set(ir.Table(), nil, "1") },
		func() error { return Add(ir.Table(), nil, "1") },
		func() error { return SetOrAdd(ir.Table(), nil, "1") },
		func() error { return Delete(ir.Table(), nil) },
	} {
		if err := op(); !errors.Is(err, ErrEmptyKey) {
			t.Errorf("err = %v, want ErrEmptyKey", err)
		}
	}
}

func TestSetRootNotTable(t *testing.T) {
	root := ir.FromString("scalar")
	err := Set(root, path(t, "k"), "1")
	nme := asNoMapping(t, err, NotAMapping)
	if !nme.Key.IsRoot() {
		t.Errorf("key = %q, want the root path", nme.Key.String())
	}
	if nme.Value == nil || nme.Value.Type != ir.StringType {
		t.Errorf("offending value = %+v", nme.Value)
	}
}

func TestSetScalarParent(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "a"), "1"); err != nil {
		t.Fatal(err)
	}
	// the last parent segment lands on the scalar itself, which the
	// resolve walk hands back unchecked
	key := path(t, "a.b")
	for _, op := range []func() error{
		func() error { return Set(root, key, "2") },
		func() error { return Add(root, key, "2") },
		func() error { return SetOrAdd(root, key, "2") },
		func() error { return Delete(root, key) },
	} {
		nme := asNoMapping(t, op(), NotAMapping)
		if nme.Key.String() != "a" {
			t.Errorf("key = %q, want a", nme.Key.String())
		}
		if nme.Value == nil || nme.Value.Type != ir.IntegerType {
			t.Errorf("offending value = %+v", nme.Value)
		}
	}
	if got := Lookup(root, path(t, "a")); got == nil || got.Int64 != 1 {
		t.Errorf("a = %+v after the failed edits", got)
	}
}

func TestAdd(t *testing.T) {
	root := ir.Table()

	// absent key becomes a one-element array
	if err := Add(root, path(t, "list"), "1"); err != nil {
		t.Fatal(err)
	}
	got := Lookup(root, path(t, "list"))
	if got.Type != ir.ArrayType || got.Len() != 1 || got.Values[0].Int64 != 1 {
		t.Fatalf("list = %+v", got)
	}

	// an array appends
	if err := Add(root, path(t, "list"), "2"); err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 || got.Values[1].Int64 != 2 {
		t.Fatalf("list = %+v", got)
	}

	// any other value becomes [old, new]
	if err := Set(root, path(t, "s"), "x"); err != nil {
		t.Fatal(err)
	}
	if err := Add(root, path(t, "s"), "y"); err != nil {
		t.Fatal(err)
	}
	s := Lookup(root, path(t, "s"))
	if s.Type != ir.ArrayType || s.Len() != 2 {
		t.Fatalf("s = %+v", s)
	}
	if s.Values[0].String != "x" || s.Values[1].String != "y" {
		t.Errorf("s = [%+v, %+v], want [x, y]", s.Values[0], s.Values[1])
	}
}

func TestAddPromotesNestedScalar(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "a.b.c"), "existing"); err != nil {
		t.Fatal(err)
	}
	if err := Add(root, path(t, "a.b.c"), "new"); err != nil {
		t.Fatal(err)
	}
	got := Lookup(root, path(t, "a.b.c"))
	if got.Type != ir.ArrayType || got.Len() != 2 {
		t.Fatalf("a.b.c = %+v", got)
	}
	if got.Values[0].String != "existing" || got.Values[1].String != "new" {
		t.Errorf("a.b.c = [%+v, %+v]", got.Values[0], got.Values[1])
	}
}

func TestAddMixedTypes(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "n"), "1"); err != nil {
		t.Fatal(err)
	}
	if err := Add(root, path(t, "n"), "two"); err != nil {
		t.Fatal(err)
	}
	n := Lookup(root, path(t, "n"))
	if n.Values[0].Type != ir.IntegerType || n.Values[1].Type != ir.StringType {
		t.Errorf("types = [%s, %s]", n.Values[0].Type, n.Values[1].Type)
	}
}

func TestSetOrAdd(t *testing.T) {
	root := ir.Table()

	// absent behaves like set, not add
	if err := SetOrAdd(root, path(t, "k"), "1"); err != nil {
		t.Fatal(err)
	}
	if got := Lookup(root, path(t, "k")); got.Type != ir.IntegerType {
		t.Fatalf("k = %+v, want a plain integer", got)
	}

	// a scalar is overwritten
	if err := SetOrAdd(root, path(t, "k"), "2"); err != nil {
		t.Fatal(err)
	}
	if got := Lookup(root, path(t, "k")); got.Int64 != 2 {
		t.Fatalf("k = %+v", got)
	}

	// an array appends
	if err := Set(root, path(t, "arr"), "[1]"); err != nil {
		t.Fatal(err)
	}
	if err := SetOrAdd(root, path(t, "arr"), "2"); err != nil {
		t.Fatal(err)
	}
	arr := Lookup(root, path(t, "arr"))
	if arr.Type != ir.ArrayType || arr.Len() != 2 || arr.Values[1].Int64 != 2 {
		t.Fatalf("arr = %+v", arr)
	}

	// a table is overwritten, never promoted
	if err := Set(root, path(t, "tab.x"), "1"); err != nil {
		t.Fatal(err)
	}
	if err := SetOrAdd(root, path(t, "tab"), "gone"); err != nil {
		t.Fatal(err)
	}
	if got := Lookup(root, path(t, "tab")); got.Type != ir.StringType {
		t.Fatalf("tab = %+v", got)
	}
}

func TestDelete(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "a.b"), "1"); err != nil {
		t.Fatal(err)
	}
	if err := Delete(root, path(t, "a.b")); err != nil {
		t.Fatal(err)
	}
	if Lookup(root, path(t, "a.b")) != nil {
		t.Error("deleted key still present")
	}
	if a := Lookup(root, path(t, "a")); a == nil || a.Type != ir.TableType || a.Len() != 0 {
		t.Errorf("a = %+v, want an empty table", a)
	}

	// a second delete of the same key fails
	err := Delete(root, path(t, "a.b"))
	nme := asNoMapping(t, err, KeyNotFound)
	if nme.Key.String() != "a.b" {
		t.Errorf("key = %q, want a.b", nme.Key.String())
	}
}

func TestDeleteWholeTable(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "a.b"), "1"); err != nil {
		t.Fatal(err)
	}
	if err := Delete(root, path(t, "a")); err != nil {
		t.Fatal(err)
	}
	if root.Len() != 0 {
		t.Errorf("root = %+v", root)
	}
}

// A failed delete still leaves behind the tables its resolve created;
// nothing rolls back.
func TestDeleteMissingVivifiesParents(t *testing.T) {
	root := ir.Table()
	err := Delete(root, path(t, "a.b.c"))
	asNoMapping(t, err, KeyNotFound)
	if got := Lookup(root, path(t, "a.b")); got == nil || got.Type != ir.TableType {
		t.Error("parents created during the failed delete were rolled back")
	}
}

func TestLookupDoesNotVivify(t *testing.T) {
	root := ir.Table()
	if Lookup(root, path(t, "a.b")) != nil {
		t.Fatal("lookup invented a value")
	}
	if root.Len() != 0 {
		t.Error("lookup created tables")
	}
	if Lookup(root, nil) != root {
		t.Error("empty path lookup is not the root")
	}
}

func TestLookupAcrossScalar(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "a"), "1"); err != nil {
		t.Fatal(err)
	}
	if got := Lookup(root, path(t, "a.b")); got != nil {
		t.Errorf("got %+v, want nil across a scalar", got)
	}
}

func TestSetCoercesDatetimes(t *testing.T) {
	root := ir.Table()
	if err := Set(root, path(t, "when"), "1979-05-27T07:32:00Z"); err != nil {
		t.Fatal(err)
	}
	if got := Lookup(root, path(t, "when")); got.Type != ir.DatetimeType {
		t.Errorf("when = %s, want datetime", got.Type)
	}
}

func TestEditKeepsUntouchedOrder(t *testing.T) {
	root, err := parse.Parse([]byte("b = 1\na = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	// loaded documents carry sorted keys; edits append after them
	if err := Set(root, path(t, "c"), "3"); err != nil {
		t.Fatal(err)
	}
	wantKeys := []string{"a", "b", "c"}
	for i, k := range wantKeys {
		if root.Keys[i] != k {
			t.Fatalf("keys = %v, want %v", root.Keys, wantKeys)
		}
	}
	if err := Delete(root, path(t, "a")); err != nil {
		t.Fatal(err)
	}
	if root.Keys[0] != "b" || root.Keys[1] != "c" {
		t.Errorf("keys after delete = %v", root.Keys)
	}
}
