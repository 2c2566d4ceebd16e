package hilite

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a marker catalog:
//
//	markers:
//	  keyword: "\e[1m"
//	  identifier: "\e[0;36m"
//	  function: "\e[0;33m"
//	  operator: "\e[1;33m"
//	  alias: "\e[0;32m"
//	  substitution: "\e[1;36m"
//	  none: "\e[0m"
type catalogFile struct {
	Markers map[string]string `yaml:"markers"`
}

// ReadCatalog parses a YAML catalog specification from r. The document
// binds every class name, as of Class.String, to its marker literal.
// The same validation as in NewCatalog applies.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	var cf catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	entries := make([]Entry, 0, len(cf.Markers))
	for name, lit := range cf.Markers {
		c, ok := ClassByName(name)
		if !ok {
			return nil, fmt.Errorf("catalog: unknown class %q", name)
		}
		entries = append(entries, Entry{Class: c, Literal: lit})
	}
	// YAML mappings carry no reliable order and entry order does not
	// change comparison outcomes, so settle for class order.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Class < entries[j].Class
	})
	return NewCatalog(entries)
}

// OpenCatalogFile reads a catalog specification from the named file.
func OpenCatalogFile(name string) (*Catalog, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cat, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cat, nil
}
