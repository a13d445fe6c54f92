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
)

// FindPulse looks for a pulse at or after frame. This is a fast and coarse
// search intended to find a pulse in the leader, it may not find the very
// next pulse.
//
// Two periods from frame are probed using the default threshold and the pulse
// with the largest absolute peak is returned. If no pulse is found then frame
// is advanced by 50 periods and the search is repeated. Returns false if the
// search runs off the end of the samples.
func (dec *Decoder) FindPulse(frame int) (Result, bool) {
	for frame < len(dec.samples) {
		var best Result
		var bestAbs int

		for i := 0; i < dec.clk.period*2; i += dec.clk.searchRadius {
			r := dec.ClassifyAt(frame+i, DefaultThreshold, false)
			if p, ok := r.Peak(); ok {
				abs := p.Value
				if abs < 0 {
					abs = -abs
				}
				if abs > bestAbs {
					bestAbs = abs
					best = r
				}
			}
		}

		if bestAbs > 0 {
			return best, true
		}

		frame += dec.clk.period * skipPeriods
	}

	return Result{}, false
}

// FindNextClosePulse returns the first pulse of the specified polarity within
// two periods of frame.
func (dec *Decoder) FindNextClosePulse(frame int, threshold float64, positive bool) (Result, bool) {
	for i := 0; i < dec.clk.period*2; i += dec.clk.searchRadius {
		r := dec.ClassifyAt(frame+i, threshold, false)
		if p, ok := r.Peak(); ok {
			if (positive && p.Value > 0) || (!positive && p.Value < 0) {
				return r, true
			}
		}
	}
	return Result{}, false
}

// Proof verifies that there is a steady run of clock pulses, one every period,
// starting at frame. A pulse half way between two clock pulses would be a
// one-bit, which should never happen in the leader, so the proof fails if one
// is found.
//
// The context's threshold is updated after every clock pulse. A label
// describing the success or failure is added to the annotation list.
func (dec *Decoder) Proof(ctx *Context, frame int, ann *annotation.List) bool {
	start := frame
	last := frame

	for i := 0; i < proofPeriods; i++ {
		expected := dec.ClassifyAt(frame, float64(ctx.threshold), false)
		p, ok := expected.Peak()
		if !ok {
			ann.Add(annotation.Label{Text: "Missing pulse", Left: start, Right: frame})
			return false
		}
		last = p.Frame

		// the threshold for the extra pulse is relative to the clock pulse
		// just found
		extra := dec.ClassifyAt(frame+dec.clk.halfPeriod, float64(p.Range)/2, false)
		if e, ok := extra.Peak(); ok {
			ann.Add(annotation.Label{Text: "Extra pulse", Left: start, Right: e.Frame})
			return false
		}

		frame = p.Frame + dec.clk.period
		ctx.track(p)
	}

	ann.Add(annotation.Label{Text: "Proof", Left: start, Right: last})

	return true
}
