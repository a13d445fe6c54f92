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

// Class is the classification of the audio around a frame.
type Class int

// List of valid Class values.
const (
	// a pulse was found
	Pulse Class = iota

	// no pulse was found but there was audio. could be a mis-read
	Noise

	// mostly silence
	Silence
)

func (c Class) String() string {
	switch c {
	case Pulse:
		return "pulse"
	case Noise:
		return "noise"
	case Silence:
		return "silence"
	}
	return "unknown class"
}

// Peak describes a pulse that has been found.
type Peak struct {
	// signed sample value at the peak
	Value int

	// frame of the peak
	Frame int

	// peak-to-peak spread across the search window. never negative
	Range int
}

// Result of a pulse classification. Peak information is only available if
// the class is Pulse.
type Result struct {
	class Class
	peak  Peak

	// Explanation and Annotations are only filled in if an explanation was
	// requested
	Explanation string
	Annotations []annotation.Annotation
}

// Class returns the classification of the result.
func (r Result) Class() Class {
	return r.class
}

// Peak returns the peak of the pulse. Returns false if the result is not a
// Pulse.
func (r Result) Peak() (Peak, bool) {
	if r.class != Pulse {
		return Peak{}, false
	}
	return r.peak, true
}

// ClassifyAt looks for a pulse around frame. The window examined is a sixth
// of a period either side of frame.
//
// A pulse is found if the range of values in the window exceeds the peak
// threshold and both edges of the window are at least a quarter of the
// threshold away from the peak. If the edges qualify for both polarities then
// the polarity with the larger peak is chosen. If the range exceeds the
// threshold but the edges do not pull away, the result is Noise. A range of
// more than half the threshold is also Noise. Anything else is Silence.
//
// The result depends only on the samples and the arguments.
func (dec *Decoder) ClassifyAt(frame int, threshold float64, explain bool) Result {
	w, ok := newWindow(dec.samples, frame, dec.clk.searchRadius)
	if !ok {
		r := Result{class: Silence}
		if explain {
			r.Explanation = explainOutside(frame)
		}
		return r
	}

	spread := w.spread()
	edgeOffset := threshold / 4
	posEdge := float64(w.max) - edgeOffset
	negEdge := float64(w.min) + edgeOffset

	var ann []annotation.Annotation
	if explain {
		ann = []annotation.Annotation{
			annotation.Point{Frame: w.start, Value: w.first},
			annotation.Point{Frame: w.end, Value: w.last},
			annotation.HorizontalLine{Value: posEdge, Left: w.start, Right: w.end},
			annotation.HorizontalLine{Value: negEdge, Left: w.start, Right: w.end},
		}
	}

	if float64(spread) > threshold {
		pos := float64(w.first) < posEdge && float64(w.last) < posEdge
		neg := float64(w.first) > negEdge && float64(w.last) > negEdge

		// prefer the polarity with the highest peak
		if pos && neg {
			if w.max > -w.min {
				neg = false
			} else {
				pos = false
			}
		}

		var r Result
		switch {
		case pos:
			r = Result{class: Pulse, peak: Peak{Value: w.max, Frame: w.maxFrame, Range: spread}}
			if explain {
				r.Explanation = explainPulse(frame, r.peak, dec.clk.searchRadius, threshold, w.first, w.last, '<', posEdge)
			}
		case neg:
			r = Result{class: Pulse, peak: Peak{Value: w.min, Frame: w.minFrame, Range: spread}}
			if explain {
				r.Explanation = explainPulse(frame, r.peak, dec.clk.searchRadius, threshold, w.first, w.last, '>', negEdge)
			}
		default:
			r = Result{class: Noise}
			if explain {
				r.Explanation = explainEdges(spread, threshold)
			}
		}

		if explain {
			if r.class == Pulse {
				r.Annotations = append(r.Annotations,
					annotation.Point{Frame: r.peak.Frame, Value: r.peak.Value},
					annotation.VerticalLine{Frame: frame})
			}
			r.Annotations = append(r.Annotations, ann...)
		}

		return r
	}

	noiseThreshold := threshold / 2
	if float64(spread) > noiseThreshold {
		r := Result{class: Noise, Annotations: ann}
		if explain {
			r.Explanation = explainNoise(spread, threshold, noiseThreshold)
		}
		return r
	}

	r := Result{class: Silence, Annotations: ann}
	if explain {
		r.Explanation = explainSilence(spread, noiseThreshold)
	}
	return r
}
