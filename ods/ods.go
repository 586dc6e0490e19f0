// Copyright 2024, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ods writes flat OpenDocument Spreadsheet files.
package ods

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"

	"github.com/UNO-SOFT/xlbook"
)

// MimeType is the ODS media type, stored as the first,
// uncompressed zip entry.
const MimeType = "application/vnd.oasis.opendocument.spreadsheet"

const manifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="` + MimeType + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

const contentHeader = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" office:version="1.2">
<office:body><office:spreadsheet>
`

const contentFooter = `</office:spreadsheet></office:body></office:document-content>
`

// Write writes c as a flat ODS file: one table:table per sheet, the column
// labels as the first row, every cell string-typed. ODS has no 31-character
// sheet name limit, so names pass through untruncated.
func Write(w io.Writer, c *xlbook.Collection) error {
	zw := zip.NewWriter(w)
	mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err = io.WriteString(mw, MimeType); err != nil {
		return err
	}
	fw, err := zw.Create("META-INF/manifest.xml")
	if err != nil {
		return err
	}
	if _, err = io.WriteString(fw, manifest); err != nil {
		return err
	}
	cw, err := zw.Create("content.xml")
	if err != nil {
		return err
	}
	if _, err = io.WriteString(cw, contentHeader); err != nil {
		return err
	}
	for name, t := range c.All() {
		if err = writeTable(cw, name, t); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	if _, err = io.WriteString(cw, contentFooter); err != nil {
		return err
	}
	return zw.Close()
}

func writeTable(w io.Writer, name string, t *xlbook.Table) error {
	if _, err := fmt.Fprintf(w, "<table:table table:name=\"%s\">\n", escape(name)); err != nil {
		return err
	}
	if err := writeRow(w, t.Columns()); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table:table>\n")
	return err
}

func writeRow(w io.Writer, cells []string) error {
	if _, err := io.WriteString(w, "<table:table-row>"); err != nil {
		return err
	}
	for _, v := range cells {
		if _, err := fmt.Fprintf(w,
			`<table:table-cell office:value-type="string"><text:p>%s</text:p></table:table-cell>`,
			escape(v),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table:table-row>\n")
	return err
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
