// Package ir provides the intermediate representation (IR) for TOML
// documents.
//
// # Overview
//
// The IR package defines the tree structure that every loaded, edited, or
// programmatically built TOML document takes in this module. The IR contains
// no position information from input documents, making it purely semantic:
// formatting and comments do not survive the trip through it.
//
// # Node Structure
//
// A Node represents a single value and works as a recursive tagged union
// discriminated by the Type field:
//
//   - Leaf types: string, integer, float, bool, and the four TOML
//     date-time shapes (offset date-time, local date-time, local date,
//     local time)
//   - Composite types: table (key-value pairs) and array (ordered list)
//
// For TableType nodes, Keys[i] names the value at Values[i], so there are
// always as many keys as values, a key appears at most once, and entries
// keep their insertion order. Replacing a value through Set leaves its
// position alone; new entries go to the end. This is what lets an editing
// session touch one key without reshuffling the rest of the document.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	tab := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// FromMap sorts its keys; order-sensitive construction goes through
// ir.Table and Set.
//
// # Comparison
//
// Nodes can be compared for ordering and equality:
//
//	equal := ir.Compare(a, b) == 0 // or ir.Equal(a, b)
//
// # Thread Safety
//
// Node structures are not thread-safe. Access from multiple goroutines
// needs external synchronization, or per-goroutine clones.
//
// # Related Packages
//
//   - github.com/signadot/toml-edit/parse - Decodes TOML text into IR nodes
//   - github.com/signadot/toml-edit/encode - Encodes IR nodes to text
//   - github.com/signadot/toml-edit/keypath - Dotted-key paths into IR trees
package ir
