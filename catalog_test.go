package hilite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	base := Tags().Entries()

	t.Run("valid", func(t *testing.T) {
		cat, err := NewCatalog(base)
		require.NoError(t, err)
		assert.Equal(t, base, cat.Entries())
	})
	t.Run("missing class", func(t *testing.T) {
		_, err := NewCatalog(base[1:])
		assert.ErrorContains(t, err, "no literal for class keyword")
	})
	t.Run("duplicate class", func(t *testing.T) {
		_, err := NewCatalog(append(Tags().Entries(), Entry{Keyword, "<kw>"}))
		assert.ErrorContains(t, err, "duplicate entry for class keyword")
	})
	t.Run("empty literal", func(t *testing.T) {
		entries := Tags().Entries()
		entries[2].Literal = ""
		_, err := NewCatalog(entries)
		assert.ErrorContains(t, err, "empty literal for class alias")
	})
	t.Run("prefix conflict", func(t *testing.T) {
		entries := Tags().Entries()
		entries[0].Literal = "<identifier"
		_, err := NewCatalog(entries)
		assert.ErrorContains(t, err, "prefix")
	})
	t.Run("unknown class", func(t *testing.T) {
		_, err := NewCatalog([]Entry{{Class(42), "<kw>"}})
		assert.ErrorContains(t, err, "unknown class")
	})
}

func TestCatalogLiteral(t *testing.T) {
	cat := Tags()
	assert.Equal(t, "<keyword>", cat.Literal(Keyword))
	assert.Equal(t, "<none>", cat.Literal(None))
	assert.Equal(t, "", cat.Literal(Class(42)))
}

func TestConsumeMarkerRun(t *testing.T) {
	cat := ANSI()
	// The class order differs from the catalog entry order on purpose.
	run := []Class{Keyword, Alias, Identifier, None, Operator, Substitution, Function}
	var sb strings.Builder
	for _, c := range run {
		sb.WriteString(cat.Literal(c))
	}
	markers := sb.String()
	text := markers + "test" + cat.Literal(Keyword)

	pos, last, ok := cat.consume(text, 0)
	require.True(t, ok)
	assert.Equal(t, len(markers), pos)
	assert.Equal(t, Function, last)
}

func TestConsumeNoMarker(t *testing.T) {
	pos, last, ok := ANSI().consume("plain text", 0)
	assert.False(t, ok)
	assert.Equal(t, 0, pos)
	assert.Equal(t, None, last)
}

func TestClassNames(t *testing.T) {
	assert.Equal(t, "substitution", Substitution.String())
	assert.Equal(t, "class(9)", Class(9).String())

	c, ok := ClassByName("operator")
	require.True(t, ok)
	assert.Equal(t, Operator, c)
	_, ok = ClassByName("bogus")
	assert.False(t, ok)
}
