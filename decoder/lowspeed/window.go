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

// window is a read-only view of the samples either side of a centre frame.
// The start and end frames are inclusive and are clamped to the buffer.
type window struct {
	start int
	end   int

	min      int
	minFrame int
	max      int
	maxFrame int

	// the sample values at the start and end frames
	first int
	last  int
}

// newWindow returns false if there are no samples within radius of the
// centre frame.
func newWindow(samples []int16, centre int, radius int) (window, bool) {
	w := window{
		start: max(centre-radius, 0),
		end:   min(centre+radius, len(samples)-1),
	}
	if w.start > w.end {
		return w, false
	}

	w.min = int(samples[w.start])
	w.max = w.min
	w.minFrame = w.start
	w.maxFrame = w.start

	for f := w.start; f <= w.end; f++ {
		v := int(samples[f])
		if v < w.min {
			w.min = v
			w.minFrame = f
		}
		if v > w.max {
			w.max = v
			w.maxFrame = f
		}
	}

	w.first = int(samples[w.start])
	w.last = int(samples[w.end])

	return w, true
}

func (w window) spread() int {
	return w.max - w.min
}
