// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	fullLog = `# Loading work.testbench
# testbench.DUT.MIPS_CORE.ALU @100000 ns 0x1
# testbench.DUT.MIPS_CORE.ALU @250000 ns 0x2
# ** Note: $finish
`
	fastLog = `# fast_testbench.MIPS_CORE.ALU t= 120ns 0x10
# fast_testbench.MIPS_CORE.ALU t= garbage 0x11
`
)

// setup writes logs into a fresh directory and makes it the working
// directory for the rest of the test.
func setup(t *testing.T, logs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range logs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	t.Logf("simplot %s", strings.Join(args, " "))
	err = simplot(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatal(err)
	}
	return err == nil
}

func TestCharts(t *testing.T) {
	setup(t, map[string]string{
		"full_adder_O0.log": fullLog,
		"full_adder_O2.log": fullLog,
		"fast_adder_O0.log": fastLog,
	})
	stdout, stderr, err := run(t, "full_adder_O0.log", "full_adder_O2.log", "fast_adder_O0.log")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}

	want := "" +
		"Parsing file full_adder_O0.log...\n" +
		"\ttestbench.sv\n" +
		"\tBenchmark:\t adder\n" +
		"\tOptimization:\t O0\n" +
		"\tTotal tests:\t 2\n" +
		"\tTotal time:\t 250000.0 ns\n" +
		"Parsing file full_adder_O2.log...\n" +
		"\ttestbench.sv\n" +
		"\tBenchmark:\t adder\n" +
		"\tOptimization:\t O2\n" +
		"\tTotal tests:\t 2\n" +
		"\tTotal time:\t 250000.0 ns\n" +
		"Parsing file fast_adder_O0.log...\n" +
		"\tfast_testbench.sv\n" +
		"\tBenchmark:\t adder\n" +
		"\tOptimization:\t O0\n" +
		"\tTotal tests:\t 16\n" +
		"\tTotal time:\t 120 ns\n"
	if stdout != want {
		t.Errorf("want stdout:\n%s\ngot:\n%s", want, stdout)
	}
	for _, name := range []string{"full_adder.png", "fast_adder.png"} {
		if !exists(t, name) {
			t.Errorf("%s was not written", name)
		}
	}
	if exists(t, "full_adder_O0.png") {
		t.Error("unexpected per-log chart")
	}
}

func TestNoInputs(t *testing.T) {
	dir := setup(t, nil)
	stdout, _, err := run(t)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "" {
		t.Errorf("unexpected output %q", stdout)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("want no files, got %d", len(entries))
	}
}

func TestNoMatches(t *testing.T) {
	setup(t, map[string]string{"full_nop_O1.log": "nothing to see\n"})
	stdout, _, err := run(t, "-summary", "full_nop_O1.log")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "\tTotal tests:\t 0\n\tTotal time:\t 0.0 ns\n") {
		t.Errorf("want zero totals, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "full     nop        O1       0        1") {
		t.Errorf("want empty summary row, got:\n%s", stdout)
	}
	if !exists(t, "full_nop.png") {
		t.Error("full_nop.png was not written")
	}
}

func TestSummary(t *testing.T) {
	setup(t, map[string]string{"fast_fib_O3.log": fastLog})
	stdout, _, err := run(t, "-summary", "fast_fib_O3.log")
	if err != nil {
		t.Fatal(err)
	}
	wantRow := "fast     fib        O3       1        1   120.0      120.0    120.0       120.0   120.0   120.0\n"
	if !strings.HasSuffix(stdout, wantRow) {
		t.Errorf("want summary ending in %q, got:\n%s", wantRow, stdout)
	}
}

func TestOutputFlags(t *testing.T) {
	setup(t, map[string]string{"full_sort_O2.log": fullLog})
	_, stderr, err := run(t, "-o", "charts", "-format", ".SVG", "-html", "report.html", "full_sort_O2.log")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}
	if !exists(t, filepath.Join("charts", "full_sort.svg")) {
		t.Error("charts/full_sort.svg was not written")
	}
	html, err := os.ReadFile("report.html")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(html, []byte(`<img src="charts/full_sort.svg"`)) {
		t.Errorf("report does not link the chart:\n%s", html)
	}
}

func TestMissingFile(t *testing.T) {
	setup(t, map[string]string{"full_adder_O0.log": fullLog})
	stdout, _, err := run(t, "full_adder_O0.log", "full_adder_O9.log")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not-exist error, got %v", err)
	}
	wantTail := "" +
		"Parsing file full_adder_O9.log...\n" +
		"\ttestbench.sv\n" +
		"\tBenchmark:\t adder\n" +
		"\tOptimization:\t O9\n"
	if !strings.HasSuffix(stdout, wantTail) {
		t.Errorf("want stdout ending in:\n%s\ngot:\n%s", wantTail, stdout)
	}
	if exists(t, "full_adder.png") {
		t.Error("chart written despite input error")
	}
}

func TestBadFormat(t *testing.T) {
	setup(t, map[string]string{"full_adder_O0.log": fullLog})
	if _, _, err := run(t, "-format", "bmp", "full_adder_O0.log"); err == nil {
		t.Error("want error for unknown format")
	}
}

func TestUsage(t *testing.T) {
	setup(t, nil)
	for _, args := range [][]string{
		{"-bogus"},
		{"-scale", "0"},
		{"-scale", "-1"},
	} {
		_, stderr, err := run(t, args...)
		if err != flag.ErrHelp {
			t.Errorf("%q: want flag.ErrHelp, got %v", args, err)
		}
		if !strings.Contains(stderr, "Usage: simplot") {
			t.Errorf("%q: usage not printed:\n%s", args, stderr)
		}
	}
}
