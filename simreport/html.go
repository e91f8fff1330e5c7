// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simreport

import (
	"io"

	"github.com/google/safehtml/template"
	"github.com/mipscore/simplot/simtab"
)

const htmlText = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>simplot results</title>
<style>
table.simplot { border-collapse: collapse; margin-bottom: 2em; }
table.simplot th, table.simplot td { padding: 0.2em 0.8em; }
table.simplot td.num { text-align: right; }
</style>
</head>
<body>
{{- range .}}
<h2>{{.Variant}} {{.Benchmark}}</h2>
{{if .Image}}<img src="{{.Image}}" alt="{{.Variant}} {{.Benchmark}}">{{end}}
<table class="simplot">
<tr><th>opt<th>tests<th>skipped<th>min ns<th>median ns<th>mean ns<th>geomean ns<th>max ns<th>sum ns
{{range .Rows -}}
<tr><td>{{.Optimization}}{{range .Values}}<td class="num">{{.}}{{end}}
{{end -}}
</table>
{{- else}}
<p>no results</p>
{{- end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("simplot").Parse(htmlText))

type htmlSection struct {
	Variant, Benchmark string
	Image              string
	Rows               []htmlRow
}

type htmlRow struct {
	Optimization string
	Values       []string
}

// HTML writes an HTML page with one section per (variant, benchmark)
// in t. image returns the URL of that pair's chart, relative to the
// page, or "" to omit it.
func HTML(w io.Writer, t *simtab.Table, rejected map[simtab.Key]int, image func(variant, benchmark string) string) error {
	var sections []htmlSection
	for _, v := range t.Variants() {
		for _, b := range t.Benchmarks(v) {
			sec := htmlSection{Variant: v, Benchmark: b}
			if image != nil {
				sec.Image = image(v, b)
			}
			for _, o := range t.Optimizations(v, b) {
				k := simtab.Key{Variant: v, Benchmark: b, Optimization: o}
				row := htmlRow{Optimization: o}
				// Skip the key columns already shown in the heading.
				for _, c := range summaryRow(k, t.Series(k), rejected[k])[3:] {
					row.Values = append(row.Values, c.value)
				}
				sec.Rows = append(sec.Rows, row)
			}
			sections = append(sections, sec)
		}
	}
	return htmlTemplate.Execute(w, sections)
}
