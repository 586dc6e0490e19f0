// Copyright 2024, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlbook

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

// Read loads every sheet of the workbook at path, in on-disk order.
// The first row of each sheet holds the column labels, the rest is data.
func Read(path string) (*Collection, error) { return ReadSheet(path, "") }

// ReadSheet loads the workbook at path. If sheet is not empty, only the
// named sheet is loaded; loading a sheet that does not exist fails with
// ErrSheetNotFound.
func ReadSheet(path, sheet string) (*Collection, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	names := f.GetSheetList()
	if sheet != "" {
		if !slices.Contains(names, sheet) {
			return nil, fmt.Errorf("%q: %w", sheet, ErrSheetNotFound)
		}
		names = []string{sheet}
	}
	c := NewCollection()
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%s[%s]: %w", path, name, err)
		}
		c.Set(name, tableOfRows(rows))
	}
	return c, nil
}

func tableOfRows(rows [][]string) *Table {
	if len(rows) == 0 {
		return NewTable()
	}
	t := NewTable(rows[0]...)
	for _, row := range rows[1:] {
		t.AppendRow(row...)
	}
	return t
}
