// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simlog

import (
	"path/filepath"
	"strings"
)

// A Variant selects the testbench flavor a log was produced by, and
// with it the rules used to parse the log's lines.
type Variant int

const (
	// Fast is the reduced fast_testbench.sv testbench. Any file
	// whose variant segment is not "full" is treated as Fast.
	Fast Variant = iota
	// Full is the complete testbench.sv testbench.
	Full
)

// FullName is the variant segment that selects Full.
const FullName = "full"

func (v Variant) String() string {
	if v == Full {
		return "full"
	}
	return "fast"
}

// Source returns the testbench source file the variant runs.
func (v Variant) Source() string {
	if v == Full {
		return "testbench.sv"
	}
	return "fast_testbench.sv"
}

// Marker returns the hierarchy token identifying lines emitted by the
// component under test.
func (v Variant) Marker() string {
	if v == Full {
		return "testbench.DUT.MIPS_CORE.ALU"
	}
	return "fast_testbench.MIPS_CORE.ALU"
}

// A Descriptor is the (variant, benchmark, optimization) triple encoded
// in a log file name of the form <variant>_<benchmark>_<optimization>.<ext>.
type Descriptor struct {
	Variant      string
	Benchmark    string
	Optimization string
}

// ParseFileName derives a Descriptor from the base name of path.
//
// The name is split on "_"; the optimization is the third segment up to
// its first ".". Missing segments are left empty and segments beyond the
// third are ignored. No attempt is made to validate the name.
func ParseFileName(path string) Descriptor {
	parts := strings.Split(filepath.Base(path), "_")
	var d Descriptor
	if len(parts) > 0 {
		d.Variant = parts[0]
	}
	if len(parts) > 1 {
		d.Benchmark = parts[1]
	}
	if len(parts) > 2 {
		d.Optimization, _, _ = strings.Cut(parts[2], ".")
	}
	return d
}

// Kind returns the parse rules selected by d's variant segment.
func (d Descriptor) Kind() Variant {
	if d.Variant == FullName {
		return Full
	}
	return Fast
}
