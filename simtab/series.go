// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simtab

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is the elapsed time recorded for one test index.
type Sample struct {
	Index   int
	Elapsed float64
}

// A Series holds the samples of one (variant, benchmark, optimization)
// in the order their indexes were first set.
type Series struct {
	samples []Sample
	pos     map[int]int // index -> position in samples
	last    int         // position of the most recent Set, or -1
}

func newSeries() *Series {
	return &Series{pos: make(map[int]int), last: -1}
}

// Set records elapsed for index. If index is already present its value
// is replaced and it keeps its original position.
func (s *Series) Set(index int, elapsed float64) {
	if p, ok := s.pos[index]; ok {
		s.samples[p].Elapsed = elapsed
		s.last = p
		return
	}
	s.pos[index] = len(s.samples)
	s.last = len(s.samples)
	s.samples = append(s.samples, Sample{index, elapsed})
}

// Len returns the number of distinct test indexes.
func (s *Series) Len() int {
	return len(s.samples)
}

// Samples returns the samples in order. The caller must not modify
// the returned slice.
func (s *Series) Samples() []Sample {
	return s.samples
}

// Get returns the elapsed time recorded for index.
func (s *Series) Get(index int) (float64, bool) {
	p, ok := s.pos[index]
	if !ok {
		return 0, false
	}
	return s.samples[p].Elapsed, true
}

// Last returns the most recently set sample.
func (s *Series) Last() (Sample, bool) {
	if s.last < 0 {
		return Sample{}, false
	}
	return s.samples[s.last], true
}

// Stats summarizes the elapsed times of a Series.
type Stats struct {
	N       int
	Sum     float64
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	GeoMean float64
}

// Stats computes summary statistics of the series' elapsed times.
// An empty series yields the zero Stats.
func (s *Series) Stats() Stats {
	if len(s.samples) == 0 {
		return Stats{}
	}
	xs := make([]float64, len(s.samples))
	for i, sm := range s.samples {
		xs[i] = sm.Elapsed
	}
	sort.Float64s(xs)
	sample := stats.Sample{Xs: xs, Sorted: true}
	min, max := sample.Bounds()
	return Stats{
		N:       len(xs),
		Sum:     sample.Sum(),
		Min:     min,
		Max:     max,
		Mean:    sample.Mean(),
		Median:  sample.Percentile(0.5),
		GeoMean: stats.GeoMean(xs),
	}
}
