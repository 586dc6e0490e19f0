// Copyright 2024, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlbook reads and writes multi-sheet spreadsheet files as ordered
// collections of labeled tables.
//
// A workbook is modeled as a Collection, an ordered mapping from sheet name
// to Table. Read fills a Collection from a file, Write produces a file from
// one without clobbering existing files (collision-avoiding copy names),
// Append merges new sheets into an existing file, and MergeAll flattens a
// Collection into a single Table.
package xlbook

import (
	"errors"
	"fmt"
	"iter"
)

// ErrSheetNotFound is returned when a sheet name is looked up
// but not present.
var ErrSheetNotFound = errors.New("sheet not found")

// Table is an in-memory two-dimensional labeled table: ordered column
// labels and rows of string cells. The zero value is an empty table.
//
// Rows may be stored shorter than the column list; accessors pad them
// with the empty string.
type Table struct {
	cols []string
	rows [][]string
}

// NewTable returns a Table with the given column labels and no rows.
func NewTable(cols ...string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// Columns returns a copy of the column labels.
func (t *Table) Columns() []string { return append([]string(nil), t.cols...) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.rows) }

// AppendRow appends one data row. A row shorter than the column list is
// padded with "" on access; a longer row grows the column list with
// synthesized "Unnamed: N" labels.
func (t *Table) AppendRow(values ...string) {
	for len(t.cols) < len(values) {
		t.cols = append(t.cols, fmt.Sprintf("Unnamed: %d", len(t.cols)))
	}
	t.rows = append(t.rows, append([]string(nil), values...))
}

// Row returns the i-th data row, padded to the column count.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.cols))
	copy(row, t.rows[i])
	return row
}

// Rows returns all data rows, each padded to the column count.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i := range t.rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Cell returns the cell in the i-th row under the named column.
// The second return value reports whether the row and column exist.
func (t *Table) Cell(i int, col string) (string, bool) {
	if i < 0 || i >= len(t.rows) {
		return "", false
	}
	for j, c := range t.cols {
		if c != col {
			continue
		}
		if row := t.rows[i]; j < len(row) {
			return row[j], true
		}
		return "", true
	}
	return "", false
}

// ensureColumn returns the index of the named column, appending it first
// if not yet present.
func (t *Table) ensureColumn(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}
	t.cols = append(t.cols, name)
	return len(t.cols) - 1
}

// Collection is an ordered mapping from sheet name to Table.
// Names are unique; insertion order is preserved and Set on an existing
// name replaces the table but keeps its position.
type Collection struct {
	tables map[string]*Table
	names  []string
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{tables: make(map[string]*Table)}
}

// Len returns the number of sheets.
func (c *Collection) Len() int { return len(c.names) }

// Names returns a copy of the sheet names in insertion order.
func (c *Collection) Names() []string { return append([]string(nil), c.names...) }

// Get returns the table stored under name,
// or an error wrapping ErrSheetNotFound.
func (c *Collection) Get(name string) (*Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrSheetNotFound)
	}
	return t, nil
}

// Set stores t under name, replacing (in place) any previous table.
func (c *Collection) Set(name string, t *Table) {
	if _, ok := c.tables[name]; !ok {
		c.names = append(c.names, name)
	}
	c.tables[name] = t
}

// Update merges other into c: same-named sheets are overwritten in place,
// new sheets are appended in other's order.
func (c *Collection) Update(other *Collection) {
	for name, t := range other.All() {
		c.Set(name, t)
	}
}

// All iterates over (name, table) pairs in insertion order.
func (c *Collection) All() iter.Seq2[string, *Table] {
	return func(yield func(string, *Table) bool) {
		for _, name := range c.names {
			if !yield(name, c.tables[name]) {
				return
			}
		}
	}
}
