package hilite

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tagsYAML = `markers:
  keyword: "<keyword>"
  identifier: "<identifier>"
  alias: "<alias>"
  operator: "<operator>"
  function: "<function>"
  substitution: "<substitution>"
  none: "<none>"
`

func literals(cat *Catalog) map[Class]string {
	m := make(map[Class]string)
	for _, e := range cat.Entries() {
		m[e.Class] = e.Literal
	}
	return m
}

func TestReadCatalog(t *testing.T) {
	cat, err := ReadCatalog(strings.NewReader(tagsYAML))
	require.NoError(t, err)
	if d := cmp.Diff(literals(Tags()), literals(cat)); d != "" {
		t.Error(d)
	}
}

func TestReadCatalogErrors(t *testing.T) {
	t.Run("unknown class", func(t *testing.T) {
		_, err := ReadCatalog(strings.NewReader(
			tagsYAML + `  comment: "<comment>"` + "\n",
		))
		assert.ErrorContains(t, err, `unknown class "comment"`)
	})
	t.Run("missing class", func(t *testing.T) {
		_, err := ReadCatalog(strings.NewReader("markers:\n  keyword: \"<keyword>\"\n"))
		assert.ErrorContains(t, err, "no literal")
	})
	t.Run("prefix conflict", func(t *testing.T) {
		doc := strings.Replace(tagsYAML, `"<keyword>"`, `"<identifier"`, 1)
		_, err := ReadCatalog(strings.NewReader(doc))
		assert.ErrorContains(t, err, "prefix")
	})
	t.Run("unknown field", func(t *testing.T) {
		_, err := ReadCatalog(strings.NewReader("marks:\n  keyword: x\n"))
		assert.Error(t, err)
	})
	t.Run("not yaml", func(t *testing.T) {
		_, err := ReadCatalog(strings.NewReader("]]]"))
		assert.Error(t, err)
	})
}

func TestOpenCatalogFile(t *testing.T) {
	cat, err := OpenCatalogFile("testdata/ansi.yaml")
	require.NoError(t, err)
	if d := cmp.Diff(literals(ANSI()), literals(cat)); d != "" {
		t.Error(d)
	}

	_, err = OpenCatalogFile("testdata/nosuch.yaml")
	assert.Error(t, err)
}
