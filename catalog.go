package hilite

import (
	"fmt"
	"strings"
)

// Class identifies the highlight category of a marker and of the content
// following it.
type Class int8

// The highlight classes. None doubles as the reset class: its marker ends
// the current highlight instead of starting a new one.
const (
	None Class = iota
	Keyword
	Identifier
	Alias
	Operator
	Function
	Substitution
)

const numClasses = int(Substitution) + 1

var classNames = [numClasses]string{
	"none",
	"keyword",
	"identifier",
	"alias",
	"operator",
	"function",
	"substitution",
}

func (c Class) String() string {
	if c < 0 || int(c) >= numClasses {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return classNames[c]
}

// ClassByName maps the lowercase class name, as used in catalog files and
// by Class.String, back to the class.
func ClassByName(name string) (Class, bool) {
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return None, false
}

// Entry binds one highlight class to the marker literal a formatter emits
// for it.
type Entry struct {
	Class   Class
	Literal string
}

// Catalog is the ordered marker table shared between a formatter and the
// Checker, with one literal for every class including None. A Catalog is
// immutable after construction and safe for concurrent use by any number
// of comparisons.
type Catalog struct {
	entries []Entry
}

// NewCatalog validates entries and builds a catalog from them. Every class
// must be bound exactly once, every literal must be non-empty, and no
// literal may be a prefix of another one. The last rule keeps a scan at any
// text position unambiguous, so the order of entries never changes what a
// comparison decides.
func NewCatalog(entries []Entry) (*Catalog, error) {
	var seen [numClasses]bool
	for _, e := range entries {
		if e.Class < 0 || int(e.Class) >= numClasses {
			return nil, fmt.Errorf("catalog: unknown class %d", int(e.Class))
		}
		if seen[e.Class] {
			return nil, fmt.Errorf("catalog: duplicate entry for class %s", e.Class)
		}
		seen[e.Class] = true
		if e.Literal == "" {
			return nil, fmt.Errorf("catalog: empty literal for class %s", e.Class)
		}
	}
	for c := 0; c < numClasses; c++ {
		if !seen[c] {
			return nil, fmt.Errorf("catalog: no literal for class %s", Class(c))
		}
	}
	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			if strings.HasPrefix(entries[j].Literal, entries[i].Literal) {
				return nil, fmt.Errorf(
					"catalog: literal of %s is a prefix of the %s literal",
					entries[i].Class, entries[j].Class,
				)
			}
		}
	}
	return &Catalog{entries: append([]Entry(nil), entries...)}, nil
}

func mustCatalog(entries []Entry) *Catalog {
	cat, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return cat
}

// Literal returns the marker literal bound to c, or "" for a class the
// catalog does not know.
func (cat *Catalog) Literal(c Class) string {
	for _, e := range cat.entries {
		if e.Class == c {
			return e.Literal
		}
	}
	return ""
}

// Entries returns a copy of the catalog's entries in their declaration
// order.
func (cat *Catalog) Entries() []Entry {
	return append([]Entry(nil), cat.entries...)
}

// consume absorbs the maximal run of recognized marker literals starting at
// byte offset pos in text. After every match the scan restarts at the first
// entry, so markers of different classes concatenated in any order are all
// absorbed in one call. It returns the advanced offset, the class of the
// last literal matched, and whether any literal matched at all. The last
// return value keeps "no marker here" apart from "matched a reset marker".
func (cat *Catalog) consume(text string, pos int) (int, Class, bool) {
	last, matched := None, false
	for {
		hit := false
		for _, e := range cat.entries {
			if strings.HasPrefix(text[pos:], e.Literal) {
				pos += len(e.Literal)
				last = e.Class
				hit, matched = true, true
				break
			}
		}
		if !hit {
			return pos, last, matched
		}
	}
}

var ansiCatalog = mustCatalog([]Entry{
	{Keyword, "\033[1m"},
	{Identifier, "\033[0;36m"},
	{Function, "\033[0;33m"},
	{Operator, "\033[1;33m"},
	{Alias, "\033[0;32m"},
	{Substitution, "\033[1;36m"},
	{None, "\033[0m"},
})

// ANSI returns the catalog of the SGR sequences the terminal renderer of
// the formatter emits. The Checker still treats them as opaque literals.
func ANSI() *Catalog { return ansiCatalog }

var tagCatalog = mustCatalog([]Entry{
	{Keyword, "<keyword>"},
	{Identifier, "<identifier>"},
	{Alias, "<alias>"},
	{Operator, "<operator>"},
	{Function, "<function>"},
	{Substitution, "<substitution>"},
	{None, "<none>"},
})

// Tags returns a human-readable catalog with <keyword>-style literals,
// handy for documentation, catalog-file examples and tests.
func Tags() *Catalog { return tagCatalog }
