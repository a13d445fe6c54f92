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

// Package tape represents a single cassette recording. The programs on the
// tape are found with one or more decoders from the decoder package.
package tape

import (
	"fmt"

	"github.com/jetsetilly/trs80tape/annotation"
	"github.com/jetsetilly/trs80tape/decoder"
	"github.com/jetsetilly/trs80tape/logger"
	"github.com/jetsetilly/trs80tape/program"
)

// tag string used in calls to logger.Log().
const logTag = "tape"

// Tape is a single recording and the programs found on it.
type Tape struct {
	Name       string
	SampleRate int

	original []int16
	samples  []int16

	decoders    []decoder.Decoder
	programs    []*program.Program
	annotations annotation.List
}

// NewTape is the preferred method of initialisation for the Tape type. If
// cutoff is greater than zero then the samples used for decoding are
// filtered with that cut-off frequency. The original samples are kept
// unchanged.
func NewTape(name string, samples []int16, sampleRate int, cutoff float64) *Tape {
	tp := &Tape{
		Name:       name,
		SampleRate: sampleRate,
		original:   samples,
		samples:    samples,
	}

	if cutoff > 0 {
		tp.samples = highPass(samples, sampleRate, cutoff)
	}

	return tp
}

func (tp *Tape) String() string {
	return fmt.Sprintf("%s: %d programs", tp.Name, len(tp.programs))
}

// Original returns the samples as they were given to NewTape().
func (tp *Tape) Original() []int16 {
	return tp.original
}

// Samples returns the samples used for decoding.
func (tp *Tape) Samples() []int16 {
	return tp.samples
}

// Programs returns the programs found by the most recent call to Decode().
func (tp *Tape) Programs() []*program.Program {
	return tp.programs
}

// Decoders returns the decoders created by the most recent call to Decode().
// The state of each decoder reflects the scan of the entire tape.
func (tp *Tape) Decoders() []decoder.Decoder {
	return tp.decoders
}

// Annotations returns the annotations added by the decoders for the programs
// found by the most recent call to Decode().
func (tp *Tape) Annotations() []annotation.Annotation {
	return tp.annotations.Items()
}

// Decode scans the entire tape for programs. One decoder is created for each
// factory and at every step the decoder that finds a program earliest on the
// tape is used. Scanning resumes at the end of that program.
//
// Programs are numbered as they are found. A program with the same binary as
// the previous program is another copy of the same track.
func (tp *Tape) Decode(factories ...decoder.Factory) []*program.Program {
	tp.decoders = make([]decoder.Decoder, 0, len(factories))
	for _, f := range factories {
		tp.decoders = append(tp.decoders, f(tp.samples, tp.SampleRate))
	}

	tp.programs = nil
	tp.annotations = annotation.List{}

	var track int
	var copyNumber int

	frame := 0
	for {
		var best *program.Program
		var bestAnn *annotation.List

		for _, dec := range tp.decoders {
			ann := &annotation.List{}
			prg, ok := dec.FindNextProgram(frame, ann)
			if !ok {
				continue // for range decoders
			}
			if best == nil || prg.Start() < best.Start() {
				best = prg
				bestAnn = ann
			}
		}

		if best == nil {
			break // for loop
		}

		if len(tp.programs) > 0 && best.SameBinary(tp.programs[len(tp.programs)-1]) {
			copyNumber++
		} else {
			track++
			copyNumber = 1
		}

		best = best.WithNumbering(track, copyNumber)
		tp.programs = append(tp.programs, best)
		tp.annotations.Add(bestAnn.Items()...)
		logger.Log(logger.Allow, logTag, best)

		// decoders always make progress but a program that ends before the
		// current frame would cause the same program to be found forever
		if best.End() <= frame {
			break // for loop
		}
		frame = best.End()
	}

	for _, dec := range tp.decoders {
		logger.Logf(logger.Allow, logTag, "%s: %s", dec.Name(), dec.State())
	}

	return tp.programs
}
