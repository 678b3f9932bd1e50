// Package lexer provides a hand-written, zero-copy lexer for
// goessner-dialect JSONPath expressions.
//
// Tokens store byte offsets (start, end) into the source string rather than
// copied substrings, enabling zero-allocation access via [Token.Val]. String
// tokens additionally store a parsed value with escape sequences resolved.
//
// Whitespace is skipped between tokens but never inside a string or number
// literal: [Lexer.Scan] operates at token level, while the literal scanners
// run at raw character level.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Kind identifies a lexical token type.
type Kind int16

const (
	Invalid      Kind = iota // error token; Value holds error message
	EOF                      // end of input
	Dollar                   // $
	At                       // @
	Dot                      // .
	DotDot                   // ..
	LeftBracket              // [
	RightBracket             // ]
	Star                     // *
	Key                      // bare key: letters, digits, _ - / \ #
	String                   // single-quoted string; Value holds parsed content
	Sign                     // symbolic comparison operator (reserved)
	Number                   // signed decimal literal (reserved, see ScanNumber)
)

var kindNames = [...]string{
	Invalid:      "invalid",
	EOF:          "EOF",
	Dollar:       "$",
	At:           "@",
	Dot:          ".",
	DotDot:       "..",
	LeftBracket:  "[",
	RightBracket: "]",
	Star:         "*",
	Key:          "key",
	String:       "string",
	Sign:         "sign",
	Number:       "number",
}

// String returns the human-readable name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token represents a single lexical token. Use [Token.Val] for zero-copy
// access to the raw source text. For [String] tokens, Value holds the
// parsed string with escape sequences resolved.
type Token struct {
	Kind  Kind
	Start int    // byte offset in source (inclusive)
	End   int    // byte offset in source (exclusive)
	Value string // parsed value for String; error message for Invalid
}

// Val returns the raw source substring — no allocation.
func (t Token) Val(src string) string { return src[t.Start:t.End] }

// Lexer tokenizes a path expression. Create with [New] and call
// [Lexer.Scan] repeatedly to get tokens.
type Lexer struct {
	src     string // source input
	r       rune   // current rune; -1 means EOF
	rPos    int    // byte offset of current rune
	nextPos int    // byte offset after current rune
}

// New creates a Lexer for src.
func New(src string) *Lexer {
	l := &Lexer{src: src, r: -1}
	l.next() // prime
	return l
}

// Source returns the original source string.
func (l *Lexer) Source() string { return l.src }

// next advances to the next rune and returns it. Returns -1 at EOF.
func (l *Lexer) next() rune {
	if l.nextPos < len(l.src) {
		l.rPos = l.nextPos
		r, w := rune(l.src[l.nextPos]), 1
		if r >= utf8.RuneSelf {
			r, w = utf8.DecodeRuneInString(l.src[l.nextPos:])
		}
		l.nextPos += w
		l.r = r
	} else {
		l.rPos = len(l.src)
		l.r = -1
	}
	return l.r
}

// peek returns the next rune without advancing. Returns -1 at EOF.
func (l *Lexer) peek() rune {
	if l.nextPos < len(l.src) {
		r := rune(l.src[l.nextPos])
		if r >= utf8.RuneSelf {
			r, _ = utf8.DecodeRuneInString(l.src[l.nextPos:])
		}
		return r
	}
	return -1
}

// errToken creates an [Invalid] token and halts the lexer.
func (l *Lexer) errToken(start int, msg string) Token {
	l.r = -1 // halt further scanning
	return Token{Kind: Invalid, Start: start, End: l.rPos, Value: msg}
}

// Scan returns the next token. After [EOF] is returned, subsequent calls
// continue returning EOF.
//
// Scan never produces a [Number] token: '-' and the digits are bare-key
// characters, so a run like -1.5 is indistinguishable from a key at the
// character level. The filter-expression extension scans numeric literals
// explicitly via [Lexer.ScanNumber].
func (l *Lexer) Scan() Token {
	// Skip blank space between tokens: SP / HTAB / LF / CR.
	for isBlankSpace(l.r) {
		l.next()
	}

	if l.r < 0 {
		return Token{Kind: EOF, Start: l.rPos, End: l.rPos}
	}

	start := l.rPos

	switch l.r {
	case '$':
		l.next()
		return Token{Kind: Dollar, Start: start, End: l.rPos}
	case '@':
		l.next()
		return Token{Kind: At, Start: start, End: l.rPos}
	case '[':
		l.next()
		return Token{Kind: LeftBracket, Start: start, End: l.rPos}
	case ']':
		l.next()
		return Token{Kind: RightBracket, Start: start, End: l.rPos}
	case '*':
		l.next()
		return Token{Kind: Star, Start: start, End: l.rPos}

	case '.':
		// ".." only when the two dots are adjacent in the source; ". ." is
		// two Dot tokens.
		if l.peek() == '.' {
			l.next()
			l.next()
			return Token{Kind: DotDot, Start: start, End: l.rPos}
		}
		l.next()
		return Token{Kind: Dot, Start: start, End: l.rPos}

	// Reserved comparison operators. Their spellings are claimed here so a
	// future filter grammar can reuse this lexer; no path rule consumes them.
	case '=':
		if l.peek() == '=' {
			l.next()
			l.next()
			return Token{Kind: Sign, Start: start, End: l.rPos}
		}
		l.next()
		return l.errToken(start, "unexpected '='")
	case '!':
		if l.peek() == '=' {
			l.next()
			l.next()
			return Token{Kind: Sign, Start: start, End: l.rPos}
		}
		l.next()
		return l.errToken(start, "unexpected '!'")
	case '~':
		if l.peek() == '=' {
			l.next()
			l.next()
			return Token{Kind: Sign, Start: start, End: l.rPos}
		}
		l.next()
		return l.errToken(start, "unexpected '~'")
	case '<', '>':
		if l.peek() == '=' {
			l.next()
		}
		l.next()
		return Token{Kind: Sign, Start: start, End: l.rPos}

	case '\'':
		return l.scanString()

	default:
		if isKeyChar(l.r) {
			return l.scanKey()
		}
		ch := l.r
		l.next()
		return l.errToken(start, fmt.Sprintf("unexpected character %q", ch))
	}
}

// scanKey scans a greedily maximal run of bare-key characters.
// l.r must be a key character on entry.
func (l *Lexer) scanKey() Token {
	start := l.rPos
	for isKeyChar(l.r) {
		l.next()
	}
	return Token{Kind: Key, Start: start, End: l.rPos}
}

// ScanNumber scans a signed decimal number literal at the current position:
// an optional leading '-', an integer part ("0" or a nonzero-led digit run),
// an optional fraction, and an optional exponent. The token is atomic; no
// whitespace is skipped inside it.
//
// The number rule is reserved for the filter-expression extension and is
// not reachable from the path grammar (see the comment on [Lexer.Scan]).
func (l *Lexer) ScanNumber() Token {
	for isBlankSpace(l.r) {
		l.next()
	}

	start := l.rPos

	if l.r == '-' {
		l.next()
	}

	// Integer part: "0" or a run led by a nonzero digit.
	switch {
	case l.r == '0':
		l.next()
	case isDigit(l.r):
		for isDigit(l.r) {
			l.next()
		}
	default:
		return l.errToken(start, "expected digit")
	}

	// Optional fraction: "." 1*DIGIT
	if l.r == '.' {
		l.next()
		if !isDigit(l.r) {
			return l.errToken(start, "expected digit after '.'")
		}
		for isDigit(l.r) {
			l.next()
		}
	}

	// Optional exponent: "e" [ "-" / "+" ] 1*DIGIT
	if l.r == 'e' || l.r == 'E' {
		l.next()
		if l.r == '+' || l.r == '-' {
			l.next()
		}
		if !isDigit(l.r) {
			return l.errToken(start, "expected digit in exponent")
		}
		for isDigit(l.r) {
			l.next()
		}
	}

	return Token{Kind: Number, Start: start, End: l.rPos}
}

// scanString scans a single-quoted string literal. l.r must be '\'' on
// entry. The parsed value (with escapes resolved) is stored in Token.Value.
// The body is raw: whitespace inside it is preserved, and an unescaped '"'
// or '\' is an error.
func (l *Lexer) scanString() Token {
	start := l.rPos
	l.next() // consume opening quote

	var buf strings.Builder

	for l.r >= 0 {
		switch l.r {
		case '\'':
			l.next() // consume closing quote
			return Token{Kind: String, Start: start, End: l.rPos, Value: buf.String()}
		case '\\':
			if !l.scanEscape(&buf) {
				return l.errToken(start, "invalid escape sequence")
			}
		case '"':
			return l.errToken(start, `unescaped '"' in string`)
		default:
			buf.WriteRune(l.r)
			l.next()
		}
	}

	return l.errToken(start, "unterminated string")
}

// scanEscape handles a single escape sequence starting at '\\'. On entry
// l.r must be '\\'. The valid escapes are " ' \ / b f n r t and \uXXXX.
// Returns false if the escape is invalid.
func (l *Lexer) scanEscape(buf *strings.Builder) bool {
	l.next() // consume '\'

	switch l.r {
	case '"':
		buf.WriteByte('"')
	case '\'':
		buf.WriteByte('\'')
	case '\\':
		buf.WriteByte('\\')
	case '/':
		buf.WriteByte('/')
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'u':
		return l.scanUnicodeEscape(buf)
	default:
		return false
	}
	l.next()
	return true
}

// scanUnicodeEscape handles a \uXXXX escape (including surrogate pairs).
// On entry l.r must be 'u'. Writes the decoded rune to buf.
func (l *Lexer) scanUnicodeEscape(buf *strings.Builder) bool {
	l.next() // consume 'u'

	r := l.scanHex4()
	if r < 0 {
		return false
	}

	if !utf16.IsSurrogate(r) {
		buf.WriteRune(r)
		return true
	}

	// Must be a high surrogate (D800-DBFF).
	if r >= 0xDC00 {
		return false
	}

	// Expect \uXXXX for the low surrogate.
	if l.r != '\\' {
		return false
	}
	l.next()
	if l.r != 'u' {
		return false
	}
	l.next()

	low := l.scanHex4()
	if low < 0 {
		return false
	}

	decoded := utf16.DecodeRune(r, low)
	if decoded == unicode.ReplacementChar {
		return false
	}

	buf.WriteRune(decoded)
	return true
}

// scanHex4 scans exactly 4 hex digits and returns the code point.
// Returns -1 if fewer than 4 valid hex digits are found.
func (l *Lexer) scanHex4() rune {
	var r rune
	for i := 0; i < 4; i++ {
		h := hexVal(l.r)
		if h < 0 {
			return -1
		}
		r = r*16 + h
		l.next()
	}
	return r
}

// hexVal returns the numeric value of hex digit r, or -1 if not a hex digit.
func hexVal(r rune) rune {
	switch {
	case '0' <= r && r <= '9':
		return r - '0'
	case 'a' <= r && r <= 'f':
		return r - 'a' + 10
	case 'A' <= r && r <= 'F':
		return r - 'A' + 10
	default:
		return -1
	}
}

// isBlankSpace reports whether r is inter-token blank space
// (SP / HTAB / LF / CR).
func isBlankSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isKeyChar reports whether r may appear in a bare key: ASCII letters,
// digits, and the characters _ - / \ #. Digits and '-' being key characters
// means the lexer cannot tell an index from a key; that is the parser's
// decision.
func isKeyChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		isDigit(r) ||
		r == '_' || r == '-' || r == '/' || r == '\\' || r == '#'
}
