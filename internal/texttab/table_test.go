// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	for _, test := range []struct {
		name  string
		build func(t *Table)
		want  string
	}{
		{"empty", func(t *Table) {}, ""},
		{"implicitRow", func(t *Table) { t.Cell("a").Cell("b") }, "a  b\n"},
		{
			"align",
			func(t *Table) {
				t.Row().Cell("name").Cell("n", Right)
				t.Row().Cell("adder").Cell("12", Right)
				t.Row().Cell("x").Cell("3", Right)
			},
			"" +
				"name    n\n" +
				"adder  12\n" +
				"x       3\n",
		},
		{
			"ragged",
			func(t *Table) {
				t.Row().Cell("a").Cell("bb").Cell("c")
				t.Row().Cell("aaa")
				t.Row().Cell("a").Cell("")
			},
			"" +
				"a    bb  c\n" +
				"aaa\n" +
				"a\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			var tab Table
			test.build(&tab)
			var got strings.Builder
			if err := tab.Format(&got); err != nil {
				t.Fatal(err)
			}
			if got.String() != test.want {
				t.Errorf("want:\n%s\ngot:\n%s", test.want, got.String())
			}
		})
	}
}
