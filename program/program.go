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

package program

import (
	"crypto/sha1"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// BitKind is the result of decoding a single bit cell.
type BitKind int

// List of valid BitKind values.
const (
	Zero BitKind = iota
	One
	Bad
)

func (k BitKind) String() string {
	switch k {
	case Zero:
		return "0"
	case One:
		return "1"
	case Bad:
		return "bad"
	}
	return "?"
}

// Bit is the half-open frame interval of a single bit cell.
type Bit struct {
	Start int
	End   int
	Kind  BitKind
}

// Byte is a decoded byte and the span of the eight bits it was made from.
type Byte struct {
	Value uint8
	Start int
	End   int
}

// Program is a single block of data recovered from a tape.
type Program struct {
	track   int
	copy    int
	start   int
	end     int
	decoder string
	binary  []uint8
	bits    []Bit
	bytes   []Byte
}

// NewProgram is the preferred method of initialisation for the Program type.
// The Program takes ownership of the slices.
func NewProgram(decoder string, start int, end int, binary []uint8, bits []Bit, bytes []Byte) *Program {
	return &Program{
		start:   start,
		end:     end,
		decoder: decoder,
		binary:  binary,
		bits:    bits,
		bytes:   bytes,
	}
}

// WithNumbering returns a copy of the Program with the track and copy numbers
// set. The copy shares the underlying data, which is never modified.
func (p *Program) WithNumbering(track int, copy int) *Program {
	n := *p
	n.track = track
	n.copy = copy
	return &n
}

func (p *Program) String() string {
	return fmt.Sprintf("track %d copy %d: %d bytes [%d, %d) (%s)", p.track, p.copy, len(p.binary), p.start, p.end, p.decoder)
}

// Track number of the program. Zero if the program has not been numbered.
func (p *Program) Track() int {
	return p.track
}

// Copy number of the program within its track. Zero if the program has not
// been numbered.
func (p *Program) Copy() int {
	return p.copy
}

// Start returns the first frame of the program.
func (p *Program) Start() int {
	return p.start
}

// End returns the frame after the last frame of the program.
func (p *Program) End() int {
	return p.end
}

// Decoder returns the name of the decoder that found the program.
func (p *Program) Decoder() string {
	return p.decoder
}

// Binary returns the decoded bytes. The returned slice must not be modified.
func (p *Program) Binary() []uint8 {
	return p.binary
}

// Bits returns the record of every bit cell decoded, including those before
// the sync byte. The returned slice must not be modified.
func (p *Program) Bits() []Bit {
	return p.bits
}

// Bytes returns the record of every byte in the binary. The returned slice must
// not be modified.
func (p *Program) Bytes() []Byte {
	return p.bytes
}

// Hash returns the SHA-1 of the binary as a hex string.
func (p *Program) Hash() string {
	return fmt.Sprintf("%x", sha1.Sum(p.binary))
}

// SameBinary returns true if the binary of both programs is identical.
func (p *Program) SameBinary(o *Program) bool {
	if len(p.binary) != len(o.binary) {
		return false
	}
	for i := range p.binary {
		if p.binary[i] != o.binary[i] {
			return false
		}
	}
	return true
}

// Timing summarises the regularity of the bit cells in a program. Widths are
// measured in frames.
type Timing struct {
	Mean   float64
	StdDev float64
	Bad    int
}

// Timing measures the width of every bit cell that was decoded as a zero or a
// one. A tape that is stretched or running at the wrong speed will show up as
// a mean that is different to the nominal period and a large deviation
// indicates wow and flutter.
func (p *Program) Timing() Timing {
	var t Timing

	widths := make([]float64, 0, len(p.bits))
	for i, b := range p.bits {
		if b.Kind == Bad {
			t.Bad++
			continue
		}

		// width of a cell is the distance to the next cell. the last cell
		// has no neighbour and its recorded width is always nominal
		if i+1 < len(p.bits) && p.bits[i+1].Kind != Bad {
			widths = append(widths, float64(p.bits[i+1].Start-b.Start))
		}
	}

	if len(widths) > 0 {
		t.Mean, t.StdDev = stat.MeanStdDev(widths, nil)
	}

	return t
}
