package ast

import "fmt"

// ComparisonOp enumerates the comparison operator spellings reserved for
// the filter-expression extension. None of them is reachable from the path
// grammar; the enumeration exists so that a future filter parser and this
// package agree on spellings.
type ComparisonOp uint8

const (
	OpEqual        ComparisonOp = iota // ==
	OpNotEqual                         // !=
	OpRegex                            // ~=
	OpGreaterEqual                     // >=
	OpGreater                          // >
	OpLessEqual                        // <=
	OpLess                             // <
	OpIn                               // in
	OpNotIn                            // nin
	OpSize                             // size
	OpNoneOf                           // noneOf
	OpAnyOf                            // anyOf
	OpSubsetOf                         // subsetOf
)

var opSpellings = [...]string{
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpRegex:        "~=",
	OpGreaterEqual: ">=",
	OpGreater:      ">",
	OpLessEqual:    "<=",
	OpLess:         "<",
	OpIn:           "in",
	OpNotIn:        "nin",
	OpSize:         "size",
	OpNoneOf:       "noneOf",
	OpAnyOf:        "anyOf",
	OpSubsetOf:     "subsetOf",
}

// String returns the operator spelling as it appears in a filter expression.
func (op ComparisonOp) String() string {
	if int(op) < len(opSpellings) {
		return opSpellings[op]
	}
	return fmt.Sprintf("ComparisonOp(%d)", op)
}

// LookupComparisonOp maps a spelling to its [ComparisonOp]. It reports
// false for unknown spellings.
func LookupComparisonOp(s string) (ComparisonOp, bool) {
	for op, spelling := range opSpellings {
		if s == spelling {
			return ComparisonOp(op), true
		}
	}
	return 0, false
}
