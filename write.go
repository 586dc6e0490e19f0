// Copyright 2024, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlbook

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxSheetNameLength is the worksheet name limit of the xlsx format.
const MaxSheetNameLength = 31

// WriteOptions control Write and Append.
type WriteOptions struct {
	// Overwrite writes to the exact target path. Without it a colliding
	// target gets a " - Copy"/" - Copy (N)" name instead.
	Overwrite bool
	// Index emits a leading 0-based row index column,
	// headed by IndexLabel.
	Index      bool
	IndexLabel string
	// Logger receives per-sheet write failures. Nil discards them.
	Logger *slog.Logger
}

func (o WriteOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Write writes one worksheet per table of c to path and returns the path
// actually written.
//
// Without opts.Overwrite the target is probed first: while the candidate
// path opens as a workbook, the next copy name (" - Copy", " - Copy (2)",
// ...) is tried. A path that does not open as a workbook is considered
// free, whether missing or unreadable.
//
// A sheet whose name is rejected by the format is retried once under its
// first MaxSheetNameLength runes; if that fails too the sheet is skipped,
// reported through opts.Logger, and the write continues.
func Write(path string, c *Collection, opts WriteOptions) (string, error) {
	dest := path
	if !opts.Overwrite {
		dest = availablePath(path)
	}
	logger := opts.logger()
	f := excelize.NewFile()
	defer f.Close()
	first := true
	for name, t := range c.All() {
		if err := addSheet(f, name, t, first, opts); err != nil {
			logger.Warn("write sheet", "file", dest, "sheet", name,
				"length", len([]rune(name)), "error", err)
			short := truncateSheetName(name)
			if err = addSheet(f, short, t, first, opts); err != nil {
				logger.Error("write truncated sheet", "file", dest,
					"sheet", short, "error", err)
				continue
			}
			logger.Info("sheet written truncated", "file", dest, "sheet", short)
		}
		first = false
	}
	if err := f.SaveAs(dest); err != nil {
		return "", fmt.Errorf("save %q: %w", dest, err)
	}
	return dest, nil
}

func addSheet(f *excelize.File, name string, t *Table, first bool, opts WriteOptions) error {
	if first {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return err
	}
	off := 0
	if opts.Index {
		off = 1
		if err := setCell(f, name, 1, 1, opts.IndexLabel); err != nil {
			return err
		}
	}
	for i, col := range t.Columns() {
		if err := setCell(f, name, i+1+off, 1, col); err != nil {
			return err
		}
	}
	for r, row := range t.Rows() {
		if opts.Index {
			if err := setCell(f, name, 1, r+2, strconv.Itoa(r)); err != nil {
				return err
			}
		}
		for i, v := range row {
			if err := setCell(f, name, i+1+off, r+2, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("%d/%d: %w", col, row, err)
	}
	if err = f.SetCellStr(sheet, axis, value); err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	return nil
}

// availablePath probes path, then the copy names derived from it, until a
// candidate no longer opens as a workbook. Existence is decided by the
// open attempt alone, so an existing-but-unreadable file counts as free.
func availablePath(path string) string {
	candidate := path
	for n := 1; ; n++ {
		f, err := excelize.OpenFile(candidate)
		if err != nil {
			return candidate
		}
		f.Close()
		candidate = copyName(path, n)
	}
}

// copyName returns the n-th copy name of path: " - Copy" for n == 1,
// " - Copy (n)" after, inserted before the last dot-delimited extension
// segment. A dotless path gets the suffix appended.
func copyName(path string, n int) string {
	base, ext := path, ""
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		base, ext = path[:i], path[i:]
	}
	if n == 1 {
		return base + " - Copy" + ext
	}
	return fmt.Sprintf("%s - Copy (%d)%s", base, n, ext)
}

func truncateSheetName(name string) string {
	if r := []rune(name); len(r) > MaxSheetNameLength {
		return string(r[:MaxSheetNameLength])
	}
	return name
}
