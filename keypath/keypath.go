// Package keypath provides dotted-key paths addressing values in a TOML
// document tree.
//
// A path is a sequence of raw (unquoted) key segments. Parsing and
// formatting follow the TOML key grammar: segments made of bare-key
// characters render as-is, anything else renders as a quoted basic string.
package keypath

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// Path addresses a value in a document as a sequence of raw key segments.
// The zero value is the root path.
type Path []string

// Parse parses a dotted TOML key such as `servers.alpha` or `a."b.c"`.
// Rather than carrying its own key grammar, it wraps s in a table header
// and lets the TOML parser split it, then walks the single-key chain the
// header produced.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("empty key")
	}
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("invalid key %q", s)
	}
	var doc map[string]any
	if err := toml.Unmarshal([]byte("["+s+"]"), &doc); err != nil {
		return nil, fmt.Errorf("invalid key %q: %w", s, err)
	}
	var path Path
	m := doc
	for len(m) == 1 {
		for k, v := range m {
			path = append(path, k)
			next, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("invalid key %q", s)
			}
			m = next
		}
	}
	if len(m) != 0 {
		return nil, fmt.Errorf("invalid key %q", s)
	}
	return path, nil
}

// String renders the path in dotted TOML key syntax, quoting any segment
// that is not a bare key.
func (p Path) String() string {
	b := &strings.Builder{}
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		if IsBare(seg) {
			b.WriteString(seg)
		} else {
			b.WriteString(Quote(seg))
		}
	}
	return b.String()
}

// Last returns the final segment, or "" for the root path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns the path without its final segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// IsBare reports whether s can appear unquoted as a TOML key, which is the
// case when it is non-empty and made of [A-Za-z0-9_-] only.
func IsBare(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

// Quote renders s as a TOML basic string. The same quoting serves keys and
// string values.
func Quote(s string) string {
	d := make([]byte, 1, len(s)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range s {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
