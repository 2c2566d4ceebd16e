// Package hilitest supports asserting on highlighted formatter output in
// Go tests. A Wrap builds the expected rendering from wrapped fragments
// and plain separators, Equal and Fatal compare it to the formatter's
// actual output:
//
//	func TestSimpleSelect(t *testing.T) {
//		ck := hilite.New(hilite.ANSI())
//		w := hilitest.Wrapper(ck.Catalog())
//		expected := w.Keyword("SELECT ") + "* " + w.Keyword("FROM ") + w.Identifier("t")
//		hilitest.Equal(t, ck, expected, format("select * from t"))
//	}
package hilitest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/hilite-go/hilite"
)

// Wrap builds expected renderings against one catalog. Each method wraps
// its argument in the begin marker of one class and the reset marker,
// mirroring what a formatter emits for a single token.
type Wrap struct {
	cat *hilite.Catalog
}

// Wrapper returns a Wrap emitting cat's literals.
func Wrapper(cat *hilite.Catalog) Wrap { return Wrap{cat: cat} }

// In wraps text in the marker of class c followed by the reset marker.
func (w Wrap) In(c hilite.Class, text string) string {
	return w.cat.Literal(c) + text + w.cat.Literal(hilite.None)
}

func (w Wrap) Keyword(s string) string      { return w.In(hilite.Keyword, s) }
func (w Wrap) Identifier(s string) string   { return w.In(hilite.Identifier, s) }
func (w Wrap) Alias(s string) string        { return w.In(hilite.Alias, s) }
func (w Wrap) Op(s string) string           { return w.In(hilite.Operator, s) }
func (w Wrap) Function(s string) string     { return w.In(hilite.Function, s) }
func (w Wrap) Substitution(s string) string { return w.In(hilite.Substitution, s) }

// Equal checks expected and actual for equivalence and reports a mismatch
// through t.Errorf. It returns the mismatch for callers that want to
// inspect it, nil when the renderings are equivalent.
func Equal(t *testing.T, ck *hilite.Checker, expected, actual string) *hilite.Mismatch {
	t.Helper()
	mm := ck.Check(expected, actual)
	if mm != nil {
		t.Errorf("renderings not equivalent: %s\n%s", mm, Excerpt(mm))
	}
	return mm
}

// Fatal is Equal with t.Fatalf, aborting the test on the first mismatch.
func Fatal(t *testing.T, ck *hilite.Checker, expected, actual string) {
	t.Helper()
	if mm := ck.Check(expected, actual); mm != nil {
		t.Fatalf("renderings not equivalent: %s\n%s", mm, Excerpt(mm))
	}
}

// Excerpt renders the mismatch site for a failure message. For a
// highlight mismatch that is the plain-content line holding the failing
// offset with a caret under the offending rune, for a normalization
// mismatch the two plain contents.
func Excerpt(mm *hilite.Mismatch) string {
	if mm == nil {
		return ""
	}
	if mm.Kind == hilite.NormalizationMismatch {
		return fmt.Sprintf("left  [%s]\nright [%s]", mm.LeftPlain, mm.RightPlain)
	}
	line, before := caretAt(mm.LeftPlain, mm.Offset)
	pad := strings.Repeat(" ", runewidth.StringWidth(before))
	return fmt.Sprintf("[%s]\n %s^ left is %s, right is %s",
		line, pad, mm.Left, mm.Right)
}

// caretAt cuts the line holding rune offset out of s and also returns the
// part of that line preceding the offset, so a caret can be padded to the
// display width of the prefix.
func caretAt(s string, offset int) (line, before string) {
	byteAt := len(s)
	idx := 0
	for i := range s {
		if idx == offset {
			byteAt = i
			break
		}
		idx++
	}
	start := strings.LastIndexByte(s[:byteAt], '\n') + 1
	end := strings.IndexByte(s[byteAt:], '\n')
	if end < 0 {
		end = len(s)
	} else {
		end += byteAt
	}
	return s[start:end], s[start:byteAt]
}
