// Package tomledit edits TOML documents by key path.
//
// A document is an ir.Node tree. The package's operations take a root
// node and a keypath.Path and mutate the tree in place:
//
//   - ResolveTable walks to (and creates) the table at a path
//   - Set writes a value unconditionally
//   - Add appends, growing scalars into arrays as needed
//   - SetOrAdd appends to arrays and sets everything else
//   - Delete removes an existing entry
//
// Values arrive as raw text and coerce through parse.Value, so "42" lands
// as an integer and "not a number" as a string.
//
// Path failures are *NoMappingError values discriminated by ErrorKind;
// callers that only want to report them can treat the type uniformly,
// while errors.As plus the Kind field separates conflicts from missing
// keys.
//
// Command streams (the editor CLI's argument grammar) parse through
// ParseCommands and run through Apply; files load and save through File.
package tomledit
