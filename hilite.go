package hilite

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// MismatchKind classifies why two renderings failed to compare equal. It is
// diagnostic only, Check takes the same path for all of them.
type MismatchKind int

const (
	// The marker-free contents of the two sides differ.
	NormalizationMismatch MismatchKind = iota
	// Same content, but some non-whitespace character is highlighted with
	// different classes on the two sides.
	HighlightMismatch
	// The synchronized walk ran out of one side before the other although
	// the plain contents compared equal. Cannot happen when both sides were
	// produced against the Checker's catalog; when it shows up, suspect
	// mismatched catalogs.
	StructuralInconsistency
)

func (k MismatchKind) String() string {
	switch k {
	case NormalizationMismatch:
		return "normalization mismatch"
	case HighlightMismatch:
		return "highlight mismatch"
	case StructuralInconsistency:
		return "structural inconsistency"
	}
	return fmt.Sprintf("mismatch kind %d", int(k))
}

// Mismatch describes the first point at which two renderings stopped being
// equivalent.
type Mismatch struct {
	Kind MismatchKind
	// Offset is the rune offset into the plain content at which the
	// mismatch was found. Zero for NormalizationMismatch.
	Offset int
	// Left and Right are the active classes at Offset. Only meaningful for
	// HighlightMismatch.
	Left, Right Class
	// LeftPlain and RightPlain are the two marker-free contents.
	LeftPlain, RightPlain string
}

func (m *Mismatch) Error() string {
	switch m.Kind {
	case NormalizationMismatch:
		return fmt.Sprintf("plain contents differ: %q != %q", m.LeftPlain, m.RightPlain)
	case HighlightMismatch:
		return fmt.Sprintf("highlight differs at offset %d: left %s, right %s",
			m.Offset, m.Left, m.Right)
	}
	return fmt.Sprintf("renderings desynchronized at offset %d, were both built against the same catalog?",
		m.Offset)
}

// Checker compares marked renderings interpreted against one shared
// catalog. It holds no per-call state and may be used concurrently.
type Checker struct {
	cat *Catalog
}

// New returns a Checker for renderings built against cat.
func New(cat *Catalog) *Checker { return &Checker{cat: cat} }

// Catalog returns the catalog the Checker was built with.
func (ck *Checker) Catalog() *Catalog { return ck.cat }

// Equivalent reports whether left and right render the same highlighted
// content. It tolerates differently highlighted whitespace and omitted
// resets before a class switch, nothing else.
func (ck *Checker) Equivalent(left, right string) bool {
	return ck.Check(left, right) == nil
}

// Check is Equivalent with a diagnostic: it returns nil when the two sides
// are equivalent and the first Mismatch otherwise. It never fails in any
// other way, marker-free or otherwise unexpected input is ordinary data.
func (ck *Checker) Check(left, right string) *Mismatch {
	lplain, rplain := ck.cat.Strip(left), ck.cat.Strip(right)
	if lplain != rplain {
		return &Mismatch{
			Kind:      NormalizationMismatch,
			LeftPlain: lplain, RightPlain: rplain,
		}
	}
	var lpos, rpos, offset int
	var lact, ract Class
	for {
		if pos, c, ok := ck.cat.consume(left, lpos); ok {
			lpos, lact = pos, c
		} else {
			lpos = pos
		}
		if pos, c, ok := ck.cat.consume(right, rpos); ok {
			rpos, ract = pos, c
		} else {
			rpos = pos
		}
		lend, rend := lpos >= len(left), rpos >= len(right)
		if lend && rend {
			return nil
		}
		// The checks against the plain contents above make the next two
		// returns unreachable. They stay in as tripwires for renderings
		// that were built against some other catalog.
		if lend != rend {
			return ck.desync(offset, lact, ract, lplain, rplain)
		}
		lr, lsz := utf8.DecodeRuneInString(left[lpos:])
		rr, rsz := utf8.DecodeRuneInString(right[rpos:])
		if lr != rr {
			return ck.desync(offset, lact, ract, lplain, rplain)
		}
		if !unicode.IsSpace(lr) && lact != ract {
			return &Mismatch{
				Kind:   HighlightMismatch,
				Offset: offset,
				Left:   lact, Right: ract,
				LeftPlain: lplain, RightPlain: rplain,
			}
		}
		lpos += lsz
		rpos += rsz
		offset++
	}
}

func (ck *Checker) desync(offset int, lact, ract Class, lplain, rplain string) *Mismatch {
	return &Mismatch{
		Kind:   StructuralInconsistency,
		Offset: offset,
		Left:   lact, Right: ract,
		LeftPlain: lplain, RightPlain: rplain,
	}
}

// Readers drains both readers and compares their contents like Check.
func (ck *Checker) Readers(left, right io.Reader) (*Mismatch, error) {
	l, err := io.ReadAll(left)
	if err != nil {
		return nil, fmt.Errorf("read left: %w", err)
	}
	r, err := io.ReadAll(right)
	if err != nil {
		return nil, fmt.Errorf("read right: %w", err)
	}
	return ck.Check(string(l), string(r)), nil
}
