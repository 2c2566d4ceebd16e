package hilite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripPlainFixpoint(t *testing.T) {
	cat := ANSI()
	for _, text := range []string{
		"",
		"select * from t",
		"päivää\nmaailma",
		"[0m looks like a marker but has no escape",
	} {
		assert.Equal(t, text, cat.Strip(text))
	}
}

func TestStripInterleaved(t *testing.T) {
	cat := ANSI()
	text := cat.Literal(Keyword) + "te" +
		cat.Literal(Alias) + cat.Literal(Identifier) + "s" +
		cat.Literal(None) + "t" +
		cat.Literal(Operator) + cat.Literal(Substitution) + cat.Literal(Function)
	assert.Equal(t, "test", cat.Strip(text))
}

func TestStripMarkerRunOnly(t *testing.T) {
	run := "<keyword><alias><identifier><none><operator><substitution><function>test"
	assert.Equal(t, "test", Tags().Strip(run))
}

func TestStripReader(t *testing.T) {
	var sb strings.Builder
	err := Tags().StripReader(&sb, strings.NewReader("<keyword>select<none> 1"))
	require.NoError(t, err)
	assert.Equal(t, "select 1", sb.String())
}
