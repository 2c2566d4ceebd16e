package hilite

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Strip removes every recognized marker from text and returns the plain
// content, character order preserved. It is total: text without any catalog
// literal comes back unchanged.
func (cat *Catalog) Strip(text string) string {
	var sb strings.Builder
	pos := 0
	for {
		pos, _, _ = cat.consume(text, pos)
		if pos >= len(text) {
			return sb.String()
		}
		_, sz := utf8.DecodeRuneInString(text[pos:])
		sb.WriteString(text[pos : pos+sz])
		pos += sz
	}
}

// StripReader drains r and writes its content with all markers removed
// to w.
func (cat *Catalog) StripReader(w io.Writer, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("strip: %w", err)
	}
	_, err = io.WriteString(w, cat.Strip(string(b)))
	return err
}
