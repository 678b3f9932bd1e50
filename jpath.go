// Package jpath parses goessner-dialect JSONPath expressions such as
// $.store.book[0].title into structured path expressions.
//
// The package owns the query syntax only: it turns a textual path into an
// [ast.PathExpr] ready for downstream evaluation. Selection semantics and
// filter predicates belong to collaborating packages; the comparison
// operator spellings a filter grammar will need are reserved in
// [ast.ComparisonOp].
package jpath

import (
	"errors"
	"fmt"

	"github.com/agentable/jpath/ast"
	"github.com/agentable/jpath/internal/parser"
	"github.com/go-json-experiment/json"
)

// Path is a parsed path expression. It is immutable once constructed and
// safe for concurrent use.
type Path struct {
	expr *ast.PathExpr
}

// Parse parses a path expression. On failure the returned error is a
// [*SyntaxError] and matches [ErrSyntax] via errors.Is.
func Parse(expr string) (*Path, error) {
	p, err := parser.New(expr)
	if err != nil {
		return nil, convertError(err)
	}
	pe, err := p.Parse()
	if err != nil {
		return nil, convertError(err)
	}
	return &Path{expr: pe}, nil
}

// MustParse parses a path expression. Panics on failure.
func MustParse(expr string) *Path {
	path, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return path
}

// Valid reports whether expr is a syntactically valid path expression.
func Valid(expr string) bool {
	_, err := Parse(expr)
	return err == nil
}

// Expr returns the parsed selector sequence for downstream evaluation.
func (p *Path) Expr() *ast.PathExpr { return p.expr }

// String returns the canonical string representation of p. Parsing the
// result yields a structurally equal path expression.
func (p *Path) String() string {
	if p.expr == nil {
		return ""
	}
	return p.expr.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	path, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = *path
	return nil
}

// selectorNode is the JSON rendering of one selector. Pointer and slice
// fields are omitted for the variants that do not carry them.
type selectorNode struct {
	Selector string         `json:"selector"`
	Key      *keyNode       `json:"key,omitzero"`
	Index    *int           `json:"index,omitzero"`
	Path     []selectorNode `json:"path,omitzero"`
}

// keyNode is the JSON rendering of a member key.
type keyNode struct {
	Name   string `json:"name"`
	Quoted bool   `json:"quoted"`
}

// MarshalJSON renders the parsed selectors as a JSON array of objects, one
// per selector in textual order. The rendering is diagnostic — a readable
// dump of the AST — not an alternate wire form, and has no unmarshaling
// counterpart. Uses github.com/go-json-experiment/json.
func (p *Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectorNodes(p.expr), json.DefaultOptionsV2())
}

// selectorNodes converts a path expression into its JSON rendering,
// recursing through nested current-selector paths.
func selectorNodes(expr *ast.PathExpr) []selectorNode {
	if expr == nil {
		return nil
	}
	sels := expr.Selectors()
	out := make([]selectorNode, 0, len(sels))
	for i := range sels {
		out = append(out, selectorNodeOf(&sels[i]))
	}
	return out
}

func selectorNodeOf(sel *ast.Selector) selectorNode {
	switch sel.Kind {
	case ast.Root:
		return selectorNode{Selector: "root"}
	case ast.Descent:
		return selectorNode{Selector: "descent", Key: keyNodeOf(sel.Key)}
	case ast.Wildcard:
		return selectorNode{Selector: "wildcard"}
	case ast.Current:
		return selectorNode{Selector: "current", Path: selectorNodes(sel.Nested)}
	case ast.Field:
		return selectorNode{Selector: "field", Key: keyNodeOf(sel.Key)}
	case ast.Index:
		idx := sel.Index
		return selectorNode{Selector: "index", Index: &idx}
	}
	return selectorNode{Selector: "unknown"}
}

func keyNodeOf(k ast.Key) *keyNode {
	return &keyNode{Name: k.Name, Quoted: k.Kind == ast.Quoted}
}

// convertError maps internal parser errors to the public [SyntaxError].
func convertError(err error) error {
	var perr *parser.SyntaxError
	if errors.As(err, &perr) {
		return &SyntaxError{Offset: perr.Offset, Found: perr.Found, Expected: perr.Expected}
	}
	return fmt.Errorf("%w: %v", ErrSyntax, err)
}
