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

package lowspeed

import (
	"github.com/jetsetilly/trs80tape/annotation"
	"github.com/jetsetilly/trs80tape/program"
)

// progress of loadData() through the recording.
type syncState int

const (
	// looking for the sync byte in the leader
	searching syncState = iota

	// the sync byte has just been found. the next clock pulse is allowed to
	// be late. this state lasts for exactly one bit
	syncedLateClock

	// reading bytes
	synced
)

// readBit reads the bit that follows frame, which should be the position of
// the previous clock pulse. Returns the value of the bit, the clock pulse and
// the data pulse.
//
// If the clock pulse is not found then the bit is false and both pulse results
// are the failed clock pulse result.
func (dec *Decoder) readBit(ctx *Context, frame int, allowLateClock bool, explain bool) (bool, Result, Result) {
	threshold := float64(ctx.threshold)

	// clock pulse is one period away
	clock := dec.ClassifyAt(frame+dec.clk.period, threshold, explain)
	if clock.Class() != Pulse {
		if !allowLateClock {
			return false, clock, clock
		}

		// the late pulse is expected to have the opposite polarity to the
		// signal at the previous clock
		positive := dec.sample(frame) <= 0
		late, ok := dec.FindNextClosePulse(frame+dec.clk.period, threshold, positive)
		if !ok {
			return false, clock, clock
		}
		clock = late
	}

	c, _ := clock.Peak()

	// data pulse is half a period after the clock pulse
	data := dec.ClassifyAt(c.Frame+dec.clk.halfPeriod, threshold, explain)

	return data.Class() == Pulse, clock, data
}

// LoadData decodes the program starting at start, which should be the
// position of a clock pulse in the leader. Decoding continues until silence.
//
// Bits that can't be read because of noise are recorded as Bad and decoding
// continues one period later. Bad bits at the end of the program are junk
// after the last real bit and are removed.
//
// The returned program is never nil but the binary may be empty.
func (dec *Decoder) LoadData(ctx *Context, start int, ann *annotation.List) *program.Program {
	// the seed means that leading garbage can never look like the sync byte.
	// all the ones must be flushed out by real zeros first
	history := uint32(0xffffffff)

	frame := start
	state := searching
	bitCount := 0

	var bits []program.Bit
	var bytes []program.Byte
	var binary []uint8

	for {
		bit, clock, _ := dec.readBit(ctx, frame, state == syncedLateClock, false)
		if state == syncedLateClock {
			state = synced
		}

		if clock.Class() == Silence {
			ann.Add(annotation.Label{Text: "Silence", Left: frame, Right: frame})
			break // for loop
		}

		if clock.Class() == Noise {
			// position of the pulse is unknown so assume the nominal period
			next := frame + dec.clk.period
			history <<= 1
			bits = append(bits, program.Bit{
				Start: next - dec.clk.quarterPeriod,
				End:   next + dec.clk.period - dec.clk.quarterPeriod,
				Kind:  program.Bad,
			})
			frame = next
			continue // for loop
		}

		c, _ := clock.Peak()

		kind := program.Zero
		history <<= 1
		if bit {
			kind = program.One
			history |= 1
		}
		bits = append(bits, program.Bit{
			Start: c.Frame - dec.clk.quarterPeriod,
			End:   c.Frame + dec.clk.period - dec.clk.quarterPeriod,
			Kind:  kind,
		})

		if state == searching {
			if history == syncByte {
				ann.Add(annotation.Label{Text: "Sync", Left: bits[len(bits)-8].Start, Right: bits[len(bits)-1].End})
				state = syncedLateClock
				bitCount = 0
			}
		} else {
			bitCount++
			if bitCount == 8 {
				v := uint8(history)
				binary = append(binary, v)
				bytes = append(bytes, program.Byte{
					Value: v,
					Start: bits[len(bits)-8].Start,
					End:   bits[len(bits)-1].End,
				})
				bitCount = 0
			}
		}

		frame = c.Frame
		ctx.track(c)
	}

	for len(bits) > 0 && bits[len(bits)-1].Kind == program.Bad {
		bits = bits[:len(bits)-1]
	}

	return program.NewProgram(dec.Name(), start, frame, binary, bits, bytes)
}
