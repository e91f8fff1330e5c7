// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out column-aligned text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table accumulates rows of cells and formats them with every column
// padded to its widest cell.
//
// Row and Cell return the Table so calls can be chained.
type Table struct {
	rows   [][]cell
	widths []int
}

type cell struct {
	value string
	right bool
}

// A CellOption adjusts a single cell.
type CellOption func(c *cell)

// Right right-aligns a cell. Cells are left-aligned by default.
var Right CellOption = func(c *cell) { c.right = true }

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row, starting one if needed.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	r := len(t.rows) - 1
	col := len(t.rows[r])
	t.rows[r] = append(t.rows[r], c)
	if col == len(t.widths) {
		t.widths = append(t.widths, 0)
	}
	if w := utf8.RuneCountInString(value); w > t.widths[col] {
		t.widths[col] = w
	}
	return t
}

// Format writes t to w. Columns are separated by two spaces and no
// line has trailing spaces.
func (t *Table) Format(w io.Writer) error {
	var b strings.Builder
	for _, row := range t.rows {
		b.Reset()
		for col, c := range row {
			if col > 0 {
				b.WriteString("  ")
			}
			pad := t.widths[col] - utf8.RuneCountInString(c.value)
			if c.right {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(c.value)
			} else {
				b.WriteString(c.value)
				if col < len(row)-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
