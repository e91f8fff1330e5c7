// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simreport formats aggregated testbench timings for people.
package simreport

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mipscore/simplot/internal/texttab"
	"github.com/mipscore/simplot/simlog"
	"github.com/mipscore/simplot/simtab"
)

// Header writes the opening lines of the progress block for the log
// at path. It is written before the log is opened.
func Header(w io.Writer, path string, d simlog.Descriptor) error {
	_, err := fmt.Fprintf(w, "Parsing file %s...\n"+
		"\t%s\n"+
		"\tBenchmark:\t %s\n"+
		"\tOptimization:\t %s\n",
		path, d.Kind().Source(), d.Benchmark, d.Optimization)
	return err
}

// Totals writes the closing lines of the progress block once the log
// described by d has been read.
//
// last is the last sample parsed from the file, or the zero Sample if
// none was. It is reported as the file's total, as the original tool
// did; Summary reports the real sums.
func Totals(w io.Writer, d simlog.Descriptor, last simtab.Sample) error {
	_, err := fmt.Fprintf(w, "\tTotal tests:\t %d\n"+
		"\tTotal time:\t %s ns\n",
		last.Index, formatNs(d.Kind(), last.Elapsed))
	return err
}

// Summary writes a table of per-series statistics of t. rejected, if
// non-nil, gives the number of skipped lines for each key.
func Summary(w io.Writer, t *simtab.Table, rejected map[simtab.Key]int) error {
	if t.Empty() {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}
	var tab texttab.Table
	tab.Row()
	for _, h := range summaryHeader {
		tab.Cell(h)
	}
	for _, k := range t.Keys() {
		tab.Row()
		for _, c := range summaryRow(k, t.Series(k), rejected[k]) {
			tab.Cell(c.value, c.opts...)
		}
	}
	return tab.Format(w)
}

var summaryHeader = []string{
	"variant", "benchmark", "opt", "tests", "skipped",
	"min ns", "median ns", "mean ns", "geomean ns", "max ns", "sum ns",
}

type summaryCell struct {
	value string
	opts  []texttab.CellOption
}

func summaryRow(k simtab.Key, s *simtab.Series, rejected int) []summaryCell {
	st := s.Stats()
	num := func(v string) summaryCell {
		return summaryCell{v, []texttab.CellOption{texttab.Right}}
	}
	row := []summaryCell{
		{value: k.Variant}, {value: k.Benchmark}, {value: k.Optimization},
		num(strconv.Itoa(st.N)), num(strconv.Itoa(rejected)),
	}
	if st.N == 0 {
		return row
	}
	for _, v := range []float64{st.Min, st.Median, st.Mean, st.GeoMean, st.Max, st.Sum} {
		row = append(row, num(formatStat(v)))
	}
	return row
}

// formatNs formats an elapsed time as the original tool printed it:
// fast logs hold whole nanoseconds, and full logs hold floats that
// always show a fraction or an exponent.
func formatNs(v simlog.Variant, ns float64) string {
	if v == simlog.Fast {
		return strconv.FormatInt(int64(ns), 10)
	}
	switch {
	case math.IsInf(ns, 1):
		return "inf"
	case math.IsInf(ns, -1):
		return "-inf"
	case math.IsNaN(ns):
		return "nan"
	}
	if abs := math.Abs(ns); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(ns, 'e', -1, 64)
	}
	s := strconv.FormatFloat(ns, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
