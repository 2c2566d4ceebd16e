/*
Package hilite decides whether two renderings of the same logical text
carry the same highlighting. A rendering is ordinary text interleaved
with marker literals, one literal per highlight class plus one reset
literal. The markers are whatever byte sequences the formatter under
test emits, typically ANSI SGR codes. This package never interprets
them, they are matched as opaque literals against a Catalog.

Renderings of the same content cannot be compared byte by byte because
formatters have some freedom that carries no meaning:

  - Whitespace between tokens may be highlighted with either neighbour's
    class or with none.
  - A highlight may or may not be reset before the next one starts, so

    <keyword>foo<none><operator>+

    and

    <keyword>foo<operator>+

    are the same rendering.

Checker implements the comparison that tolerates exactly these two
freedoms and nothing else. It first strips all markers from both sides
and compares the plain contents. If they are equal it walks both
renderings in lockstep, tracking the highlight class most recently
established on each side, and demands equal classes for every
non-whitespace content character. A run of adjacent markers counts as
one step and the last marker of the run wins, which is what makes the
missing-reset form above equivalent to the explicit one.

The catalog is an explicit value handed to the Checker. Its literals
must be exactly the ones the formatter emits, and no literal may be a
prefix of another one, so a scan at any text position is unambiguous.
ANSI returns the catalog of the usual terminal renderer, Tags a
human-readable one for documentation and tests, and ReadCatalog loads
one from a small YAML document:

	markers:
	  keyword: "\e[1m"
	  identifier: "\e[0;36m"
	  none: "\e[0m"
	  ...

Package hilitest builds on this package with helpers to construct
expected renderings and to assert equivalence in Go tests.
*/
package hilite
