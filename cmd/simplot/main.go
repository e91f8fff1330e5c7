// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Simplot charts ALU timings from MIPS core testbench logs.
//
// Usage:
//
//	simplot [flags] log...
//
// Each log must be named <variant>_<benchmark>_<optimization>.<ext>.
// A variant of "full" selects the testbench.sv log format; any other
// variant selects the fast_testbench.sv format. For example:
//
//	simplot full_adder_O0.log full_adder_O2.log fast_adder_O0.log
//
// reads three logs and writes full_adder.png, with one line per
// optimization level, and fast_adder.png.
//
// Lines that do not carry a test measurement are skipped. For each log,
// simplot prints the test index and elapsed time of the last
// measurement it read.
//
// The flags are:
//
//	-o dir
//		Write charts to dir, creating it if needed (default ".").
//	-format ext
//		Chart image format: png, svg, pdf, eps, jpg or tif (default png).
//	-scale f
//		Divide elapsed times by f before plotting (default 100000).
//	-summary
//		Print a table of per-log statistics after parsing.
//	-html file
//		Write an HTML page showing every chart and its statistics.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mipscore/simplot/simchart"
	"github.com/mipscore/simplot/simlog"
	"github.com/mipscore/simplot/simreport"
	"github.com/mipscore/simplot/simtab"
)

func main() {
	log.SetPrefix("simplot: ")
	log.SetFlags(0)

	if err := simplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func simplot(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("simplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: simplot [flags] log...\n\nFlags:\n")
		flags.PrintDefaults()
	}
	opts := simchart.DefaultOptions()
	flagDir := flags.String("o", opts.Dir, "write charts to `dir`")
	flagFormat := flags.String("format", opts.Format, "chart image format `ext`")
	flagScale := flags.Float64("scale", opts.Scale, "divide elapsed times by `f` before plotting")
	flagSummary := flags.Bool("summary", false, "print per-log statistics")
	flagHTML := flags.String("html", "", "write an HTML report to `file`")
	if err := flags.Parse(args); err != nil {
		// flags has already reported the problem.
		return flag.ErrHelp
	}
	if *flagScale <= 0 || math.IsInf(*flagScale, 0) || math.IsNaN(*flagScale) {
		fmt.Fprintf(wErr, "invalid -scale %v: must be positive\n", *flagScale)
		flags.Usage()
		return flag.ErrHelp
	}
	opts.Dir = *flagDir
	opts.Format = strings.ToLower(strings.TrimPrefix(*flagFormat, "."))
	opts.Scale = *flagScale

	tab, rejected, err := parseLogs(w, flags.Args())
	if err != nil {
		return err
	}

	if *flagSummary {
		if err := simreport.Summary(w, tab, rejected); err != nil {
			return err
		}
	}

	if !tab.Empty() {
		if err := os.MkdirAll(opts.Dir, 0777); err != nil {
			return err
		}
		if _, err := simchart.Render(tab, opts); err != nil {
			return err
		}
	}

	if *flagHTML != "" {
		if err := writeHTML(*flagHTML, tab, rejected, opts); err != nil {
			return err
		}
	}
	return nil
}

// parseLogs reads every log in paths into a new table, printing a
// progress block for each one. It also returns the number of
// skipped lines per log.
func parseLogs(w io.Writer, paths []string) (*simtab.Table, map[simtab.Key]int, error) {
	tab := simtab.New()
	rejected := make(map[simtab.Key]int)

	var (
		key    simtab.Key
		series *simtab.Series
		last   simtab.Sample
		werr   error
	)
	files := simlog.Files{
		Paths: paths,
		Start: func(path string, d simlog.Descriptor) {
			key = simtab.Key{Variant: d.Variant, Benchmark: d.Benchmark, Optimization: d.Optimization}
			series = tab.Upsert(key)
			last = simtab.Sample{}
			if err := simreport.Header(w, path, d); err != nil && werr == nil {
				werr = err
			}
		},
		End: func(path string, d simlog.Descriptor) {
			if err := simreport.Totals(w, d, last); err != nil && werr == nil {
				werr = err
			}
		},
	}
	for files.Scan() {
		switch rec := files.Result().(type) {
		case *simlog.Measurement:
			series.Set(rec.Index, rec.Elapsed)
			last = simtab.Sample{Index: rec.Index, Elapsed: rec.Elapsed}
		case *simlog.Rejection:
			rejected[key]++
		}
	}
	if err := files.Err(); err != nil {
		return nil, nil, err
	}
	if werr != nil {
		return nil, nil, werr
	}
	return tab, rejected, nil
}

func writeHTML(path string, tab *simtab.Table, rejected map[simtab.Key]int, opts simchart.Options) (err error) {
	base := filepath.Dir(path)
	image := func(variant, benchmark string) string {
		chart := filepath.Join(opts.Dir, simchart.FileName(variant, benchmark, opts.Format))
		if rel, err := filepath.Rel(base, chart); err == nil {
			chart = rel
		}
		return filepath.ToSlash(chart)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := simreport.HTML(f, tab, rejected, image); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
