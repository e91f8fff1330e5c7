// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simlog

import (
	"os"
)

// A Files reads records from a sequence of testbench logs.
//
// Each path is decomposed with ParseFileName, and its variant selects
// the parse rules for that file. Files are opened one at a time and
// closed as soon as they are exhausted.
type Files struct {
	// Paths is the list of log files to read, in order.
	Paths []string

	// Start, if non-nil, is called before each file is opened, so it
	// also runs for a file that then fails to open.
	Start func(path string, d Descriptor)

	// End, if non-nil, is called once a file has been read to
	// completion.
	End func(path string, d Descriptor)

	next int

	reader Reader
	file   *os.File
	path   string
	desc   Descriptor
	err    error
}

// Scan advances to the next record in the sequence of files and
// reports whether a record was read. The caller should use Result and
// Descriptor to inspect it. If Scan reaches the end of the last file,
// or if an I/O error occurs, it returns false. In this case, the caller
// should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	for {
		if f.file == nil {
			if f.next >= len(f.Paths) {
				return false
			}
			path := f.Paths[f.next]
			f.next++

			f.path = path
			f.desc = ParseFileName(path)
			if f.Start != nil {
				f.Start(path, f.desc)
			}
			file, err := os.Open(path)
			if err != nil {
				f.err = err
				return false
			}
			f.file = file
			f.reader.Reset(file, path, f.desc.Kind())
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		f.file.Close()
		f.file = nil
		if err != nil {
			f.err = err
			return false
		}
		if f.End != nil {
			f.End(f.path, f.desc)
		}
	}
}

// Result returns the record that was just read by Scan.
// See Reader.Result.
func (f *Files) Result() Record {
	return f.reader.Result()
}

// Path returns the path of the file the current record came from.
func (f *Files) Path() string {
	return f.path
}

// Descriptor returns the descriptor of the file the current record
// came from.
func (f *Files) Descriptor() Descriptor {
	return f.desc
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
