// Copyright 2024, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlbook

// MergeAll concatenates every table of c into one. Columns are unioned in
// first-seen order and gaps are filled with the empty string. Each sheet's
// rows are prepended ahead of the previously merged ones, so the final row
// order is an artifact of the merge, not the sheet order.
func MergeAll(c *Collection) *Table {
	merged := NewTable()
	for _, t := range c.All() {
		idx := make([]int, len(t.cols))
		for i, col := range t.cols {
			idx[i] = merged.ensureColumn(col)
		}
		rows := make([][]string, 0, len(t.rows))
		for _, row := range t.rows {
			dst := make([]string, len(merged.cols))
			for i, v := range row {
				dst[idx[i]] = v
			}
			rows = append(rows, dst)
		}
		merged.rows = append(rows, merged.rows...)
	}
	return merged
}
