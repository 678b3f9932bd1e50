package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPathExpr(t *testing.T) {
	t.Parallel()

	expr := NewPathExpr(
		RootSelector(),
		FieldSelector(BareKey("store")),
		IndexSelector(0),
	)
	assert.Len(t, expr.Selectors(), 3)
	assert.Equal(t, Root, expr.Selectors()[0].Kind)
	assert.Equal(t, Index, expr.Selectors()[2].Kind)
}

func TestPathExprIsRooted(t *testing.T) {
	t.Parallel()

	rooted := NewPathExpr(RootSelector(), FieldSelector(BareKey("a")))
	assert.True(t, rooted.IsRooted())

	relative := NewPathExpr(FieldSelector(BareKey("a")))
	assert.False(t, relative.IsRooted())

	current := NewPathExpr(CurrentSelector(NewPathExpr(FieldSelector(BareKey("a")))))
	assert.False(t, current.IsRooted())

	assert.False(t, NewPathExpr().IsRooted())
}

func TestPathExprString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr *PathExpr
		want string
	}{
		{
			"bookstore",
			NewPathExpr(
				RootSelector(),
				FieldSelector(BareKey("store")),
				FieldSelector(BareKey("book")),
				IndexSelector(0),
				FieldSelector(BareKey("title")),
			),
			"$.store.book[0].title",
		},
		{
			"descent and wildcard",
			NewPathExpr(
				RootSelector(),
				DescentSelector(BareKey("book")),
				WildcardSelector(),
			),
			"$..book[*]",
		},
		{
			"current with nested path",
			NewPathExpr(
				CurrentSelector(NewPathExpr(
					FieldSelector(BareKey("active")),
				)),
			),
			"@.active",
		},
		{
			"quoted field",
			NewPathExpr(
				RootSelector(),
				FieldSelector(QuotedKey("a key")),
			),
			"$['a key']",
		},
		{"empty", NewPathExpr(), ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.expr.String())
		})
	}
}
