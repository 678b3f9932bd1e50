// Package parser provides a recursive descent parser for goessner-dialect
// JSONPath expressions. It consumes tokens from the lexer and produces an
// [ast.PathExpr].
//
// Selectors are recognized in strict ordered choice — root, descent,
// wildcard, current, field, index — with the alternatives written out in
// that order. The token kinds make every choice deterministic, so a
// committed alternative is never re-tried and parsing is linear in the
// input length.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentable/jpath/ast"
	"github.com/agentable/jpath/internal/lexer"
)

// SyntaxError describes the first point at which a path expression failed
// to parse: the byte offset of the unmatched input, a description of what
// was found there, and the alternatives that were viable at that point.
// The deterministic parse makes this the rightmost failure.
type SyntaxError struct {
	Offset   int
	Found    string   // offending token text, or a lexer error message
	Expected []string // viable alternatives in grammar order; empty for lexer errors
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Found)
	}
	return fmt.Sprintf("syntax error at offset %d: unexpected %s, expected %s",
		e.Offset, e.Found, strings.Join(e.Expected, " or "))
}

// Parser parses path expressions into AST nodes.
type Parser struct {
	src    string
	tokens []lexer.Token
	pos    int
}

// New creates a Parser for the given source string. A malformed token
// (unterminated string, invalid escape, stray character) surfaces here as
// a [*SyntaxError].
func New(src string) (*Parser, error) {
	lex := lexer.New(src)
	tokens := make([]lexer.Token, 0, len(src)/2+1)
	for {
		tok := lex.Scan()
		tokens = append(tokens, tok)
		if tok.Kind == lexer.EOF || tok.Kind == lexer.Invalid {
			break
		}
	}

	if last := tokens[len(tokens)-1]; last.Kind == lexer.Invalid {
		return nil, &SyntaxError{Offset: last.Start, Found: last.Value}
	}

	return &Parser{src: src, tokens: tokens}, nil
}

// Parse parses the entire input as a chain of selectors. Any trailing
// input after the chain is a syntax error; on failure no partial result
// is returned.
func (p *Parser) Parse() (*ast.PathExpr, error) {
	selectors, err := p.parseChain()
	if err != nil {
		return nil, err
	}

	if !p.isAtEnd() {
		return nil, p.syntaxError("'$'", "'..'", "'.'", "'@'", "'['", "end of input")
	}

	return ast.NewPathExpr(selectors...), nil
}

// parseChain parses one or more selectors in textual order. The same rule
// is reapplied recursively inside a current selector; termination is
// guaranteed because each iteration consumes at least one token.
func (p *Parser) parseChain() ([]ast.Selector, error) {
	var selectors []ast.Selector

	for {
		switch {
		case p.match(lexer.Dollar):
			// root
			selectors = append(selectors, ast.RootSelector())

		case p.match(lexer.DotDot):
			// descent: ".." key
			sel, err := p.parseDescent()
			if err != nil {
				return nil, err
			}
			selectors = append(selectors, sel)

		case p.match(lexer.Dot):
			// wildcard ".*" / ".[*]", or field ".key" / ".['key']"
			sel, err := p.parseDotSelector()
			if err != nil {
				return nil, err
			}
			selectors = append(selectors, sel)

		case p.match(lexer.LeftBracket):
			// wildcard "[*]", field "['key']", or index "[0]"
			sel, err := p.parseBracketSelector()
			if err != nil {
				return nil, err
			}
			selectors = append(selectors, sel)

		case p.match(lexer.At):
			// current: "@" followed by a nested chain over the remaining input
			nested, err := p.parseChain()
			if err != nil {
				return nil, err
			}
			selectors = append(selectors, ast.CurrentSelector(ast.NewPathExpr(nested...)))

		default:
			if len(selectors) == 0 {
				return nil, p.syntaxError("'$'", "'..'", "'.'", "'@'", "'['")
			}
			return selectors, nil
		}
	}
}

// parseDescent parses the remainder of a descent selector after "..":
// a bare key or a bracket-quoted key.
func (p *Parser) parseDescent() (ast.Selector, error) {
	switch {
	case p.check(lexer.Key):
		name := p.advance().Val(p.src)
		return ast.DescentSelector(ast.BareKey(name)), nil
	case p.match(lexer.LeftBracket):
		key, err := p.parseQuotedKey()
		if err != nil {
			return ast.Selector{}, err
		}
		return ast.DescentSelector(key), nil
	default:
		return ast.Selector{}, p.syntaxError("key", "'['")
	}
}

// parseDotSelector parses the remainder of a dot-prefixed selector after
// ".". Wildcard is attempted before field, per the grammar's ordered choice.
func (p *Parser) parseDotSelector() (ast.Selector, error) {
	switch {
	case p.match(lexer.Star):
		return ast.WildcardSelector(), nil

	case p.match(lexer.LeftBracket):
		// ".[*]" or ".['key']" — a dotted bracket never holds an index.
		switch {
		case p.match(lexer.Star):
			if !p.match(lexer.RightBracket) {
				return ast.Selector{}, p.syntaxError("']'")
			}
			return ast.WildcardSelector(), nil
		case p.check(lexer.String):
			key, err := p.parseQuotedKey()
			if err != nil {
				return ast.Selector{}, err
			}
			return ast.FieldSelector(key), nil
		default:
			return ast.Selector{}, p.syntaxError("'*'", "string")
		}

	case p.check(lexer.Key):
		name := p.advance().Val(p.src)
		return ast.FieldSelector(ast.BareKey(name)), nil

	default:
		return ast.Selector{}, p.syntaxError("'*'", "'['", "key")
	}
}

// parseBracketSelector parses the remainder of an undotted bracket selector
// after "[": wildcard, quoted field, or unsigned index, in that order.
func (p *Parser) parseBracketSelector() (ast.Selector, error) {
	switch {
	case p.match(lexer.Star):
		if !p.match(lexer.RightBracket) {
			return ast.Selector{}, p.syntaxError("']'")
		}
		return ast.WildcardSelector(), nil

	case p.check(lexer.String):
		key, err := p.parseQuotedKey()
		if err != nil {
			return ast.Selector{}, err
		}
		return ast.FieldSelector(key), nil

	case p.check(lexer.Key):
		// The lexer cannot tell an index from a bare key ('-' and digits are
		// key characters), so unsigned validation happens here. Keys that are
		// not unsigned integers, such as "-1", are rejected.
		idx, ok := parseUnsigned(p.peek().Val(p.src))
		if !ok {
			return ast.Selector{}, p.syntaxError("'*'", "string", "unsigned integer")
		}
		p.advance()
		if !p.match(lexer.RightBracket) {
			return ast.Selector{}, p.syntaxError("']'")
		}
		return ast.IndexSelector(idx), nil

	default:
		return ast.Selector{}, p.syntaxError("'*'", "string", "unsigned integer")
	}
}

// parseQuotedKey parses a quoted key and its closing bracket. The opening
// bracket has already been consumed; the current token must be checked to
// be a string by the caller's alternative selection, or the error here
// reports the string alternative alone.
func (p *Parser) parseQuotedKey() (ast.Key, error) {
	if !p.check(lexer.String) {
		return ast.Key{}, p.syntaxError("string")
	}
	val := p.advance().Value
	if !p.match(lexer.RightBracket) {
		return ast.Key{}, p.syntaxError("']'")
	}
	return ast.QuotedKey(val), nil
}

// parseUnsigned reports whether s spells an unsigned decimal index: "0" or
// a digit run with no leading zero.
func parseUnsigned(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Token navigation helpers

func (p *Parser) match(kind lexer.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.Token{Kind: lexer.EOF, Start: len(p.src), End: len(p.src)}
}

// syntaxError builds a [*SyntaxError] at the current token.
func (p *Parser) syntaxError(expected ...string) error {
	tok := p.peek()
	found := "end of input"
	if tok.Kind != lexer.EOF {
		found = strconv.Quote(tok.Val(p.src))
	}
	return &SyntaxError{Offset: tok.Start, Found: found, Expected: expected}
}
