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
	"strings"

	"github.com/jetsetilly/trs80tape/annotation"
)

// ReadBits decodes bits from frame, which should be the position of a clock
// pulse, until the first bit that can not be read. Intended for interactive
// inspection of a small region of the tape.
//
// Returns the bits as a string of '0' and '1' characters, the annotations
// for the bits and an explanation for every pulse examined.
func (dec *Decoder) ReadBits(ctx *Context, frame int) (string, []annotation.Annotation, []string) {
	var s strings.Builder
	var ann annotation.List
	var explanation []string

	ann.Add(annotation.Label{Text: "Previous", Left: frame, Right: frame, Detail: true})

	for {
		bit, clock, data := dec.readBit(ctx, frame, false, true)
		explanation = append(explanation, clock.Explanation)
		ann.Add(clock.Annotations...)

		c, ok := clock.Peak()
		if !ok {
			text := "Silence"
			if clock.Class() == Noise {
				text = "Noise"
			}
			// spans the cell that would have followed the missing clock pulse
			next := frame + dec.clk.period
			ann.Add(annotation.Label{Text: text, Left: next - dec.clk.quarterPeriod, Right: next + dec.clk.period - dec.clk.quarterPeriod, Detail: true})
			break // for loop
		}

		explanation = append(explanation, data.Explanation)
		ann.Add(data.Annotations...)

		text := "0"
		if bit {
			text = "1"
		}
		s.WriteString(text)
		ann.Add(annotation.Label{Text: text, Left: c.Frame - dec.clk.quarterPeriod, Right: c.Frame + dec.clk.period - dec.clk.quarterPeriod, Detail: true})

		frame = c.Frame
		ctx.track(c)
	}

	return s.String(), ann.Items(), explanation
}
