package jpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentable/jpath"
	"github.com/agentable/jpath/ast"
)

func TestParseCanonical(t *testing.T) {
	t.Parallel()

	// Each input parses and re-serializes to its canonical form.
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"root only", "$", "$"},
		{"bookstore path", "$.store.book[0].title", "$.store.book[0].title"},
		{"descent", "$..price", "$..price"},
		{"descent quoted", "$..['deep key']", "$..['deep key']"},
		{"dot star normalizes to brackets", "$.*", "$[*]"},
		{"bracket wildcard", "$[*]", "$[*]"},
		{"dotted bracket wildcard", "$.[*]", "$[*]"},
		{"quoted field", "$['a key']", "$['a key']"},
		{"dotted quoted field loses the dot", "$.['store']", "$['store']"},
		{"escapes preserved", `$['it\'s']`, `$['it\'s']`},
		{"zero index", "$[0]", "$[0]"},
		{"all-digit key stays a field", "$.123", "$.123"},
		{"current chain", "$.book@.price[0]", "$.book@.price[0]"},
		{"relative path", "[0].name", "[0].name"},
		{"whitespace dropped", "$ . store [ 0 ]", "$.store[0]"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := jpath.Parse(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	// Parsing the canonical form yields a structurally equal tree.
	for _, expr := range []string{
		"$",
		"$.store.book[0].title",
		"$..['deep key'][*]",
		"$.items@.active[1]",
		`$['a\nb']`,
	} {
		expr := expr
		t.Run(expr, func(t *testing.T) {
			t.Parallel()
			first, err := jpath.Parse(expr)
			require.NoError(t, err)
			second, err := jpath.Parse(first.String())
			require.NoError(t, err)
			assert.Equal(t, first.Expr(), second.Expr())
			assert.Equal(t, first.String(), second.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"store",
		"$.",
		"$..",
		"$..*",
		"$[",
		"$[]",
		"$[-1]",
		"$[01]",
		"$.[0]",
		"$['unterminated",
		"@",
		"$ extra ]",
	}
	for _, expr := range invalid {
		expr := expr
		t.Run(expr, func(t *testing.T) {
			t.Parallel()
			p, err := jpath.Parse(expr)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.False(t, jpath.Valid(expr))
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, jpath.Valid("$.store.book[0]"))
	assert.True(t, jpath.Valid("@.price"))
	assert.False(t, jpath.Valid("$["))
	assert.False(t, jpath.Valid(""))
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	p := jpath.MustParse("$..book[*]")
	assert.Equal(t, "$..book[*]", p.String())

	assert.Panics(t, func() {
		jpath.MustParse("$[oops")
	})
}

func TestExpr(t *testing.T) {
	t.Parallel()

	p := jpath.MustParse("$.a[2]")
	require.NotNil(t, p.Expr())
	assert.Equal(t, []ast.Selector{
		ast.RootSelector(),
		ast.FieldSelector(ast.BareKey("a")),
		ast.IndexSelector(2),
	}, p.Expr().Selectors())
	assert.True(t, p.Expr().IsRooted())
}

func TestZeroPathString(t *testing.T) {
	t.Parallel()

	var p jpath.Path
	assert.Equal(t, "", p.String())
}

func TestMarshalText(t *testing.T) {
	t.Parallel()

	p := jpath.MustParse("$.store['a key']")
	text, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "$.store['a key']", string(text))
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	var p jpath.Path
	require.NoError(t, p.UnmarshalText([]byte("$..price")))
	assert.Equal(t, "$..price", p.String())

	// A failed unmarshal reports the syntax error and leaves p alone.
	err := p.UnmarshalText([]byte("$["))
	require.ErrorIs(t, err, jpath.ErrSyntax)
	assert.Equal(t, "$..price", p.String())
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "field and index",
			expr: "$.a[0]",
			want: `[{"selector":"root"},{"selector":"field","key":{"name":"a","quoted":false}},{"selector":"index","index":0}]`,
		},
		{
			name: "descent quoted and wildcard",
			expr: "$..['a b'][*]",
			want: `[{"selector":"root"},{"selector":"descent","key":{"name":"a b","quoted":true}},{"selector":"wildcard"}]`,
		},
		{
			name: "current nests its path",
			expr: "@.x",
			want: `[{"selector":"current","path":[{"selector":"field","key":{"name":"x","quoted":false}}]}]`,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := jpath.MustParse(tc.expr)
			data, err := p.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(data))
		})
	}
}
