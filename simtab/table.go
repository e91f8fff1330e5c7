// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simtab aggregates testbench timing measurements.
//
// A Table maps a (variant, benchmark, optimization) Key to a Series of
// per-test elapsed times. Every level of the table enumerates in the
// order its entries were first inserted.
package simtab

// A Key identifies one log's worth of measurements.
type Key struct {
	Variant      string
	Benchmark    string
	Optimization string
}

// A Table is the aggregate of all measurements read so far.
// The zero value is not usable; use New.
type Table struct {
	keys   []Key
	series map[Key]*Series
}

// New returns an empty Table.
func New() *Table {
	return &Table{series: make(map[Key]*Series)}
}

// Upsert returns the Series for k, creating an empty one (and any
// missing variant or benchmark level) if k has not been seen.
func (t *Table) Upsert(k Key) *Series {
	if s, ok := t.series[k]; ok {
		return s
	}
	s := newSeries()
	t.series[k] = s
	t.keys = append(t.keys, k)
	return s
}

// Series returns the Series for k, or nil if k has not been inserted.
func (t *Table) Series(k Key) *Series {
	return t.series[k]
}

// Empty reports whether no key has been inserted.
func (t *Table) Empty() bool {
	return len(t.keys) == 0
}

// Keys returns every key in insertion order, grouped the way Variants,
// Benchmarks and Optimizations enumerate them.
func (t *Table) Keys() []Key {
	var out []Key
	for _, v := range t.Variants() {
		for _, b := range t.Benchmarks(v) {
			for _, o := range t.Optimizations(v, b) {
				out = append(out, Key{v, b, o})
			}
		}
	}
	return out
}

// Variants returns the distinct variants in first-insertion order.
func (t *Table) Variants() []string {
	return t.distinct(func(k Key) (string, bool) { return k.Variant, true })
}

// Benchmarks returns the benchmarks recorded under variant, in
// first-insertion order.
func (t *Table) Benchmarks(variant string) []string {
	return t.distinct(func(k Key) (string, bool) {
		return k.Benchmark, k.Variant == variant
	})
}

// Optimizations returns the optimization levels recorded under
// (variant, benchmark), in first-insertion order.
func (t *Table) Optimizations(variant, benchmark string) []string {
	return t.distinct(func(k Key) (string, bool) {
		return k.Optimization, k.Variant == variant && k.Benchmark == benchmark
	})
}

func (t *Table) distinct(f func(Key) (string, bool)) []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range t.keys {
		s, ok := f(k)
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
