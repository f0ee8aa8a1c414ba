//
// (C) Copyright 2019-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txtfmt

import (
	"io"
	"strings"
	"text/tabwriter"
)

const defaultPlaceholder = "-"

// TableRow is a map of string values to be printed, keyed by column title.
type TableRow map[string]string

// TableFormatter lays out rows under a set of labeled columns.
type TableFormatter struct {
	titles      []string
	placeholder string
}

// NewTableFormatter creates a TableFormatter with the given column titles.
func NewTableFormatter(columnTitles ...string) *TableFormatter {
	f := &TableFormatter{placeholder: defaultPlaceholder}
	f.SetColumnTitles(columnTitles...)
	return f
}

// SetColumnTitles sets the ordered column titles for the table.
func (f *TableFormatter) SetColumnTitles(titles ...string) {
	f.titles = append([]string{}, titles...)
}

// SetPlaceholder sets the value printed for a column missing from a row.
func (f *TableFormatter) SetPlaceholder(value string) {
	f.placeholder = value
}

func writeCells(w io.Writer, cells []string) {
	io.WriteString(w, strings.Join(cells, "\t"))
	io.WriteString(w, "\n")
}

// WriteTable writes the header and rows to the supplied writer, filling
// only the titled columns in order. The last column is not padded.
func (f *TableFormatter) WriteTable(out io.Writer, rows []TableRow) error {
	if len(f.titles) == 0 {
		return nil
	}

	ew := NewErrWriter(out)
	tw := tabwriter.NewWriter(ew, 0, 0, 1, ' ', 0)

	rules := make([]string, len(f.titles))
	for i, title := range f.titles {
		rules[i] = strings.Repeat("-", len(title))
	}
	writeCells(tw, f.titles)
	writeCells(tw, rules)

	cells := make([]string, len(f.titles))
	for _, row := range rows {
		for i, title := range f.titles {
			value, found := row[title]
			if !found {
				value = f.placeholder
			}
			cells[i] = value
		}
		writeCells(tw, cells)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	return ew.Err
}

// Format returns the table as a string.
func (f *TableFormatter) Format(rows []TableRow) string {
	var sb strings.Builder
	_ = f.WriteTable(&sb, rows)
	return sb.String()
}
