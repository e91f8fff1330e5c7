// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simlog reads timing measurements from the text logs written
// by the MIPS core testbenches.
//
// A log is a sequence of whitespace-separated lines. Lines emitted by
// the ALU under test carry the variant's hierarchy marker as their
// second field, an elapsed simulation time, and a hexadecimal test
// index as their last field. For example, a full testbench line:
//
//	# testbench.DUT.MIPS_CORE.ALU @2345.5 ns 0x1f
//
// and a fast testbench line:
//
//	# fast_testbench.MIPS_CORE.ALU t= 120ns 0x1f
//
// Every other line is rejected and reported as a *Rejection so callers
// can count or ignore it.
package simlog

import (
	"bufio"
	"fmt"
	"io"
)

// A Record is a single record read from a log. It is one of
// *Measurement or *Rejection.
type Record interface {
	isRecord()
}

func (*Measurement) isRecord() {}
func (*Rejection) isRecord()   {}

// maxLine bounds the length of a single log line.
const maxLine = 1 << 20

// A Reader reads records from a single testbench log.
//
// Its API is modeled on bufio.Scanner. The Reader retains ownership of
// the record returned by Result; callers should copy what they need to
// keep before calling Scan again.
type Reader struct {
	s       *bufio.Scanner
	err     error
	variant Variant

	fileName string
	line     int

	meas Measurement
	rej  Rejection
	rec  Record
}

// NewReader constructs a reader that parses r with the rules of v.
// fileName is used in rejections and errors; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, v Variant) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName, v)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string, v Variant) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLine)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.err = nil
	r.variant = v
	r.fileName = fileName
	r.line = 0
	r.rec = nil
}

// Scan advances the reader to the next line and reports whether a
// record was read. The caller should use the Result method to get the
// record. If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil || r.s == nil {
		return false
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		}
		r.rec = nil
		return false
	}
	r.line++
	m, reason := ParseLine(r.variant, r.s.Text())
	if reason == OK {
		r.meas = m
		r.rec = &r.meas
	} else {
		r.rej = Rejection{r.fileName, r.line, reason}
		r.rec = &r.rej
	}
	return true
}

// Result returns the record that was just read by Scan. It is either a
// *Measurement or a *Rejection, or nil if Scan has not returned true.
// The returned record is only valid until the next call to Scan or Reset.
func (r *Reader) Result() Record {
	return r.rec
}

// Err returns the first I/O error encountered by the Reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// Variant returns the parse rules in use.
func (r *Reader) Variant() Variant {
	return r.variant
}
