package jpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is the sentinel error matched by every [SyntaxError] via
// errors.Is.
var ErrSyntax = errors.New("jpath: syntax error")

// SyntaxError reports the first point at which a path expression failed to
// parse. Exactly one SyntaxError surfaces per failed [Parse] call; an
// invalid path string is an expected validation condition, never fatal.
type SyntaxError struct {
	Offset   int      // byte offset of the first unmatched input
	Found    string   // description of the offending input
	Expected []string // alternatives viable at Offset, in grammar order
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%v at offset %d: %s", ErrSyntax, e.Offset, e.Found)
	}
	return fmt.Sprintf("%v at offset %d: unexpected %s, expected %s",
		ErrSyntax, e.Offset, e.Found, strings.Join(e.Expected, " or "))
}

// Unwrap returns [ErrSyntax].
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
