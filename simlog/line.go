// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simlog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// A Measurement is the timing of one test case.
type Measurement struct {
	// Index identifies the test case. It is parsed from the last,
	// hexadecimal, field of the line.
	Index int

	// Elapsed is the simulation time at which the test reported, in
	// nanoseconds.
	Elapsed float64
}

// A Reason explains why a line did not yield a Measurement.
type Reason int

const (
	OK          Reason = iota
	ShortLine          // fewer than two fields
	WrongMarker        // second field is not the variant's marker
	BadIndex           // last field is not a non-negative hex integer
	BadElapsed         // no field holds a parsable elapsed time
)

var reasonNames = [...]string{
	OK:          "ok",
	ShortLine:   "short line",
	WrongMarker: "not a DUT line",
	BadIndex:    "bad test index",
	BadElapsed:  "bad elapsed time",
}

func (r Reason) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// A Rejection records a line of a log that did not yield a Measurement.
type Rejection struct {
	FileName string
	Line     int
	Reason   Reason
}

func (r *Rejection) Pos() (fileName string, line int) {
	return r.FileName, r.Line
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s:%d: %s", r.FileName, r.Line, r.Reason)
}

// ParseLine parses a single log line using the rules of variant v.
// It returns OK and the line's measurement, or the reason the line was
// rejected.
func ParseLine(v Variant, line string) (Measurement, Reason) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return Measurement{}, ShortLine
	}
	if f[1] != v.Marker() {
		return Measurement{}, WrongMarker
	}
	index, ok := parseIndex(f[len(f)-1])
	if !ok {
		return Measurement{}, BadIndex
	}
	var elapsed float64
	if v == Full {
		elapsed, ok = fullElapsed(f)
	} else {
		elapsed, ok = fastElapsed(f)
	}
	if !ok {
		return Measurement{}, BadElapsed
	}
	return Measurement{Index: index, Elapsed: elapsed}, OK
}

// fullElapsed reads the time from the third field with its leading
// unit character dropped, falling back to the bare fourth field. Any
// further non-numeric lead, as in "yN2.5", is dropped too.
func fullElapsed(f []string) (float64, bool) {
	if len(f) > 2 && f[2] != "" {
		_, size := utf8.DecodeRuneInString(f[2])
		s := f[2][size:]
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			return x, true
		}
		if x, err := strconv.ParseFloat(strings.TrimLeftFunc(s, notNumeric), 64); err == nil {
			return x, true
		}
	}
	if len(f) > 3 {
		if x, err := strconv.ParseFloat(f[3], 64); err == nil {
			return x, true
		}
	}
	return 0, false
}

// fastElapsed reads the time from the fourth field with its trailing
// unit character dropped, as a decimal integer. Any further non-digit
// tail, as in "120ns", is dropped too.
func fastElapsed(f []string) (float64, bool) {
	if len(f) < 4 || f[3] == "" {
		return 0, false
	}
	_, size := utf8.DecodeLastRuneInString(f[3])
	s := strings.TrimRightFunc(f[3][:len(f[3])-size], func(r rune) bool { return r < '0' || r > '9' })
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

// notNumeric reports whether r cannot start a decimal number.
func notNumeric(r rune) bool {
	return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
}

// parseIndex parses a hexadecimal test index with an optional 0x prefix.
func parseIndex(s string) (int, bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	n, err := strconv.ParseUint(s, 16, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
