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

package tape

import "math"

// highPass returns a copy of samples with a first-order high-pass filter
// applied. The filter removes DC offset and low frequency rumble from the
// recording. The input samples are not changed.
func highPass(samples []int16, sampleRate int, cutoff float64) []int16 {
	out := make([]int16, len(samples))
	if len(samples) == 0 {
		return out
	}

	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / float64(sampleRate)
	alpha := rc / (rc + dt)

	var y float64
	prev := float64(samples[0])
	for i, s := range samples {
		x := float64(s)
		y = alpha * (y + x - prev)
		prev = x
		out[i] = clamp(y)
	}

	return out
}

func clamp(v float64) int16 {
	v = math.Round(v)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
