// Package ast provides the abstract syntax tree for goessner-dialect
// JSONPath expressions. The parser constructs these nodes; downstream
// evaluators consume them.
//
// Every node serializes to a canonical string via String. Parsing the
// canonical form of a parser-produced [PathExpr] yields a structurally
// equal tree.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyKind identifies the variant stored in a [Key].
type KeyKind uint8

const (
	// Bare is an unquoted key drawn from the restricted character set:
	// ASCII letters, digits, and _ - / \ #.
	Bare KeyKind = iota
	// Quoted is a single-quoted key. Name holds the decoded value with
	// escape sequences already resolved.
	Quoted
)

// Key is an object member name, written either bare (.store) or quoted
// (['a key']).
type Key struct {
	Kind KeyKind
	Name string
}

// BareKey returns a bare [Key].
func BareKey(name string) Key {
	return Key{Kind: Bare, Name: name}
}

// QuotedKey returns a quoted [Key]. Name is the decoded value, not the
// source spelling.
func QuotedKey(name string) Key {
	return Key{Kind: Quoted, Name: name}
}

// writeTo writes the canonical form of k to buf: the raw name for bare
// keys, ['name'] with escaping for quoted keys.
func (k *Key) writeTo(buf *strings.Builder) {
	if k.Kind == Bare {
		buf.WriteString(k.Name)
		return
	}
	buf.WriteByte('[')
	writeQuoted(buf, k.Name)
	buf.WriteByte(']')
}

// String returns the canonical form of k.
func (k *Key) String() string {
	var buf strings.Builder
	k.writeTo(&buf)
	return buf.String()
}

// writeQuoted writes s as a single-quoted string literal. The quote, the
// backslash, and the double quote must be escaped; control characters are
// written as named escapes or \u escapes so the result always re-lexes.
func writeQuoted(buf *strings.Builder, s string) {
	buf.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			buf.WriteString(`\'`)
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('\'')
}

// SelectorKind identifies the variant stored in a [Selector].
type SelectorKind uint8

const (
	Root     SelectorKind = iota // root anchor $
	Descent                      // ..key, matches the key at any depth
	Wildcard                     // [*] or .*
	Current                      // @ followed by a relative sub-path
	Field                        // object member access
	Index                        // array element access
)

// Selector is a tagged union representing one step of a path expression.
// Using a concrete struct (instead of an interface) keeps selector slices
// contiguous in memory for cache efficiency.
type Selector struct {
	Kind   SelectorKind
	Key    Key       // Descent, Field: the member name
	Index  int       // Index: the array index, never negative
	Nested *PathExpr // Current: the sub-path relative to the context node
}

// RootSelector returns the root anchor Selector.
func RootSelector() Selector {
	return Selector{Kind: Root}
}

// DescentSelector returns a Selector matching key at any depth below the
// current node.
func DescentSelector(key Key) Selector {
	return Selector{Kind: Descent, Key: key}
}

// WildcardSelector returns a wildcard Selector.
func WildcardSelector() Selector {
	return Selector{Kind: Wildcard}
}

// CurrentSelector returns a Selector holding a sub-path relative to a
// context node. The nested path is owned exclusively by the selector.
func CurrentSelector(nested *PathExpr) Selector {
	return Selector{Kind: Current, Nested: nested}
}

// FieldSelector returns a Selector for an object member.
func FieldSelector(key Key) Selector {
	return Selector{Kind: Field, Key: key}
}

// IndexSelector returns a Selector for a non-negative array index.
func IndexSelector(idx int) Selector {
	return Selector{Kind: Index, Index: idx}
}

// writeTo writes the canonical form of s to buf. Bare fields use dot
// notation; quoted fields, wildcards, and indexes use bracket notation.
func (s *Selector) writeTo(buf *strings.Builder) {
	switch s.Kind {
	case Root:
		buf.WriteByte('$')
	case Descent:
		buf.WriteString("..")
		s.Key.writeTo(buf)
	case Wildcard:
		buf.WriteString("[*]")
	case Current:
		buf.WriteByte('@')
		if s.Nested != nil {
			s.Nested.writeTo(buf)
		}
	case Field:
		if s.Key.Kind == Bare {
			buf.WriteByte('.')
			buf.WriteString(s.Key.Name)
		} else {
			s.Key.writeTo(buf)
		}
	case Index:
		buf.WriteByte('[')
		buf.WriteString(strconv.Itoa(s.Index))
		buf.WriteByte(']')
	}
}

// String returns the canonical form of s.
func (s *Selector) String() string {
	var buf strings.Builder
	s.writeTo(&buf)
	return buf.String()
}
