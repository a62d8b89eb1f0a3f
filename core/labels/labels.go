// core/labels/labels.go

// Package labels reads the phenotype label table that partitions training
// sequences into the two classes.
package labels

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"ebony/core/fasta"
)

// Class is one of the two phenotype labels.
type Class string

const (
	Dark  Class = "dark"
	Light Class = "light"
)

// Table maps normalized accession -> Class.
type Table map[string]Class

// Lookup resolves a raw sequence identifier (version suffix allowed) to its
// class.
func (t Table) Lookup(id string) (Class, bool) {
	c, ok := t[fasta.Accession(id)]
	return c, ok
}

// Read parses a CSV-like label table:
//
//	id,phenotype
//	EF114371,dark
//
// The first line is a header and is skipped. Rows may carry extra columns
// (accession,isolate,population,phenotype); the first column is the ID and
// the last column the phenotype. Blank rows and rows with fewer than two
// non-empty columns are ignored.
func Read(r io.Reader) (Table, error) {
	sc := bufio.NewScanner(r)
	table := Table{}
	line := 0
	for sc.Scan() {
		line++
		row := strings.TrimSpace(sc.Text())
		if line == 1 || row == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(row, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) < 2 {
			continue
		}
		id := fasta.Accession(parts[0])
		class := Class(strings.ToLower(parts[len(parts)-1]))
		if class != Dark && class != Light {
			return nil, errors.Errorf("line %d: phenotype must be %q or %q, got %q", line, Dark, Light, parts[len(parts)-1])
		}
		table[id] = class
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading label table")
	}
	if len(table) == 0 {
		return nil, errors.New("no labels found in label table")
	}
	return table, nil
}

// ReadFile reads a label table from path.
func ReadFile(path string) (Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening label table")
	}
	defer func() { _ = fh.Close() }()
	t, err := Read(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return t, nil
}
