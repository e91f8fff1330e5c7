// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simchart draws line charts comparing optimization levels.
//
// Render draws one chart per (variant, benchmark) in a simtab.Table.
// Each optimization level becomes a labeled line plotting elapsed time
// against test index.
package simchart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/mipscore/simplot/simtab"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Options controls how charts are drawn and where they are written.
type Options struct {
	// Dir is the directory charts are written to. It must exist.
	Dir string

	// Format is the image format and file extension, such as "png",
	// "svg" or "pdf".
	Format string

	// Width and Height are the canvas dimensions.
	Width, Height vg.Length

	// Scale divides every elapsed time before plotting.
	Scale float64

	// LineWidth is the stroke width of every line.
	LineWidth vg.Length
}

// DefaultOptions returns the options used by simplot when no flags
// are given: PNG files in the current directory, times divided by
// 100000, hairline strokes.
func DefaultOptions() Options {
	return Options{
		Dir:       ".",
		Format:    "png",
		Width:     6.4 * vg.Inch,
		Height:    4.8 * vg.Inch,
		Scale:     100000,
		LineWidth: vg.Points(0.5),
	}
}

// FileName returns the base name of the chart for (variant, benchmark).
func FileName(variant, benchmark, format string) string {
	return variant + "_" + benchmark + "." + format
}

// Render draws a chart for every (variant, benchmark) in t and returns
// the paths written, in table order. Existing files are overwritten.
// Rendering stops at the first error.
func Render(t *simtab.Table, opts Options) ([]string, error) {
	var paths []string
	for _, v := range t.Variants() {
		for _, b := range t.Benchmarks(v) {
			p, err := newChart(t, v, b, opts)
			if err != nil {
				return paths, fmt.Errorf("charting %s/%s: %w", v, b, err)
			}
			path := filepath.Join(opts.Dir, FileName(v, b, opts.Format))
			if err := save(p, path, opts); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func newChart(t *simtab.Table, variant, benchmark string, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = variant + " " + benchmark
	p.X.Label.Text = "test"
	p.Y.Label.Text = fmt.Sprintf("elapsed (ns / %g)", opts.Scale)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter
	p.Add(plotter.NewGrid())

	opt := t.Optimizations(variant, benchmark)
	colors := lineColors(len(opt))
	for i, o := range opt {
		s := t.Series(simtab.Key{Variant: variant, Benchmark: benchmark, Optimization: o})
		l, err := plotter.NewLine(points(s, opts.Scale))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o, err)
		}
		l.LineStyle.Width = opts.LineWidth
		l.LineStyle.Color = colors[i]
		p.Add(l)
		p.Legend.Add(o, l)
	}
	return p, nil
}

// points converts s to plot coordinates in series order. Non-finite
// times cannot be drawn and are left out.
func points(s *simtab.Series, scale float64) plotter.XYs {
	xys := make(plotter.XYs, 0, s.Len())
	for _, sm := range s.Samples() {
		y := sm.Elapsed / scale
		if math.IsInf(y, 0) || math.IsNaN(y) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(sm.Index), Y: y})
	}
	return xys
}

// lineColors picks n distinguishable colors, falling back to the
// plotutil defaults when the palette is too small.
func lineColors(n int) []color.Color {
	const paletteName, paletteMax = "Set1", 9
	if n <= paletteMax {
		if pal, err := brewer.GetPalette(brewer.TypeQualitative, paletteName, paletteMax); err == nil {
			return pal.Colors()[:n]
		}
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = plotutil.Color(i)
	}
	return out
}

func save(p *plot.Plot, path string, opts Options) (err error) {
	can, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
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
	if _, err := can.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
