package ast

import "strings"

// PathExpr is a parsed path expression: an ordered sequence of selectors.
// The order is significant for downstream depth-first application. A
// PathExpr is built once by a parse and never mutated afterward.
type PathExpr struct {
	selectors []Selector
}

// NewPathExpr creates a [PathExpr] from selectors in textual order.
func NewPathExpr(selectors ...Selector) *PathExpr {
	return &PathExpr{selectors: selectors}
}

// Selectors returns the selectors in textual order.
func (p *PathExpr) Selectors() []Selector { return p.selectors }

// IsRooted reports whether the expression is anchored to the document root,
// i.e. its first selector is [Root].
func (p *PathExpr) IsRooted() bool {
	return len(p.selectors) > 0 && p.selectors[0].Kind == Root
}

// writeTo writes the canonical form of p to buf.
func (p *PathExpr) writeTo(buf *strings.Builder) {
	for i := range p.selectors {
		p.selectors[i].writeTo(buf)
	}
}

// String returns the canonical string representation of the expression,
// e.g. $.store.book[0].title.
func (p *PathExpr) String() string {
	var buf strings.Builder
	p.writeTo(&buf)
	return buf.String()
}
