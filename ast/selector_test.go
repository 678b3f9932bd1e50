package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyConstructors(t *testing.T) {
	t.Parallel()

	bare := BareKey("store")
	assert.Equal(t, Bare, bare.Kind)
	assert.Equal(t, "store", bare.Name)

	quoted := QuotedKey("a key")
	assert.Equal(t, Quoted, quoted.Kind)
	assert.Equal(t, "a key", quoted.Name)
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{"bare", BareKey("store"), "store"},
		{"bare with class characters", BareKey("a-b_c#"), "a-b_c#"},
		{"quoted plain", QuotedKey("store"), "['store']"},
		{"quoted with space", QuotedKey("a key"), "['a key']"},
		{"quoted single quote", QuotedKey("it's"), `['it\'s']`},
		{"quoted backslash", QuotedKey(`a\b`), `['a\\b']`},
		{"quoted double quote", QuotedKey(`a"b`), `['a\"b']`},
		{"quoted named escapes", QuotedKey("a\nb\t"), `['a\nb\t']`},
		{"quoted control character", QuotedKey("\x01"), `['\u0001']`},
		{"quoted non-ascii", QuotedKey("héllo"), "['héllo']"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.key.String())
		})
	}
}

func TestSelectorConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Root, RootSelector().Kind)
	assert.Equal(t, Wildcard, WildcardSelector().Kind)

	desc := DescentSelector(BareKey("price"))
	assert.Equal(t, Descent, desc.Kind)
	assert.Equal(t, BareKey("price"), desc.Key)

	field := FieldSelector(QuotedKey("a b"))
	assert.Equal(t, Field, field.Kind)
	assert.Equal(t, QuotedKey("a b"), field.Key)

	idx := IndexSelector(3)
	assert.Equal(t, Index, idx.Kind)
	assert.Equal(t, 3, idx.Index)

	nested := NewPathExpr(FieldSelector(BareKey("x")))
	cur := CurrentSelector(nested)
	assert.Equal(t, Current, cur.Kind)
	assert.Same(t, nested, cur.Nested)
}

func TestSelectorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sel  Selector
		want string
	}{
		{"root", RootSelector(), "$"},
		{"descent bare", DescentSelector(BareKey("price")), "..price"},
		{"descent quoted", DescentSelector(QuotedKey("a b")), "..['a b']"},
		{"wildcard", WildcardSelector(), "[*]"},
		{"field bare", FieldSelector(BareKey("store")), ".store"},
		{"field quoted", FieldSelector(QuotedKey("a b")), "['a b']"},
		{"index zero", IndexSelector(0), "[0]"},
		{"index", IndexSelector(42), "[42]"},
		{
			"current",
			CurrentSelector(NewPathExpr(
				FieldSelector(BareKey("x")),
				IndexSelector(1),
			)),
			"@.x[1]",
		},
		{"current with nil path", CurrentSelector(nil), "@"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.sel.String())
		})
	}
}
