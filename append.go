// Copyright 2024, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlbook

import (
	"errors"
	"io/fs"
	"os"
)

// Append merges c into whatever tables already exist at path (same-named
// sheets replaced, others preserved in order) and rewrites the whole file.
// A path that is missing or does not open as a workbook contributes no
// prior tables. With opts.Overwrite the original file is removed first
// (a missing file is not an error) and the rewrite targets the exact
// path; without it the rewrite picks a copy name per Write.
func Append(path string, c *Collection, opts WriteOptions) (string, error) {
	prev, err := Read(path)
	if err != nil {
		prev = NewCollection()
	}
	prev.Update(c)
	if opts.Overwrite {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return Write(path, prev, opts)
}
