// This file is part of trs80tape.
//
// trs80tape is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// trs80tape is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with trs80tape.  If not, see <https://www.gnu.org/licenses/>.

// Package decoder defines the interface implemented by every cassette encoding
// scheme. An unknown tape is scanned by one instance of every scheme and the
// scheme that detects a header first is used for the next program.
//
// Implementations of specific schemes are in sub-packages.
package decoder

import (
	"github.com/jetsetilly/trs80tape/annotation"
	"github.com/jetsetilly/trs80tape/program"
)

// State of a decoder instance.
type State int

// List of valid State values.
const (
	// no scan has completed yet
	Undecided State = iota

	// the decoder has returned at least one program
	Detected

	// a scan reached the end of the tape without the decoder ever returning
	// a program
	NotDetected
)

func (s State) String() string {
	switch s {
	case Undecided:
		return "undecided"
	case Detected:
		return "detected"
	case NotDetected:
		return "not detected"
	}
	return "unknown state"
}

// Decoder is implemented by each cassette encoding scheme. A Decoder instance
// holds mutable state that carries from one call to the next and so a single
// instance must not be used concurrently. Separate instances are independent.
type Decoder interface {
	// Name of the encoding scheme
	Name() string

	// IsHighSpeed is true if the scheme is one of the high speed schemes
	IsHighSpeed() bool

	// State of the decoder. See the State type
	State() State

	// FindNextProgram scans forward from frame and returns the next program.
	// Returns false if the end of the tape was reached without finding a
	// program. Annotations describing the scan are added to the list, which
	// may be nil
	FindNextProgram(frame int, ann *annotation.List) (*program.Program, bool)
}

// Factory creates a new decoder instance for the sample buffer. Samples are
// never modified by a decoder.
type Factory func(samples []int16, sampleRate int) Decoder
