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
	"math"

	"github.com/jetsetilly/trs80tape/decoder"
)

// DefaultThreshold is the peak threshold used by a new Context and by the
// coarse pulse search in FindPulse().
const DefaultThreshold = 3000

// the byte that separates the leader from the data.
const syncByte = 0xa5

// number of consecutive clock pulses required by Proof().
const proofPeriods = 200

// number of periods to skip when nothing useful has been found. about
// 1/10th of a second.
const skipPeriods = 50

// tag string used in calls to logger.Log().
const logTag = "lowspeed"

// clock is the fixed timing of the bit cells, derived from the sample rate.
type clock struct {
	// distance between two clock pulses
	period        int
	halfPeriod    int
	quarterPeriod int

	// radius of the window examined by ClassifyAt()
	searchRadius int
}

func newClock(sampleRate int) clock {
	clk := clock{
		period: int(math.Round(float64(sampleRate) * 0.002)),
	}
	clk.halfPeriod = int(math.Round(float64(clk.period) / 2))
	clk.quarterPeriod = int(math.Round(float64(clk.period) / 4))
	clk.searchRadius = int(math.Round(float64(clk.period) / 6))

	// nonsensically low sample rates would otherwise stop the scan from
	// ever advancing
	clk.period = max(1, clk.period)
	clk.searchRadius = max(1, clk.searchRadius)

	return clk
}

// Context is the adaptive state of a decode. After every resolved pulse the
// peak threshold is set to a quarter of that pulse's range. Nothing else
// changes the threshold and it is not reset between programs.
type Context struct {
	threshold int
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext() *Context {
	return &Context{
		threshold: DefaultThreshold,
	}
}

// Threshold returns the current peak threshold.
func (ctx *Context) Threshold() int {
	return ctx.threshold
}

// track a resolved pulse. range is never negative so integer rounding is
// fine.
func (ctx *Context) track(p Peak) {
	ctx.threshold = (p.Range + 2) / 4
}

// Decoder implements the decoder.Decoder interface for low speed tapes.
type Decoder struct {
	samples []int16
	clk     clock

	// context used by FindNextProgram()
	ctx *Context

	state decoder.State
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The samples are never modified.
func NewDecoder(samples []int16, sampleRate int) *Decoder {
	return &Decoder{
		samples: samples,
		clk:     newClock(sampleRate),
		ctx:     NewContext(),
		state:   decoder.Undecided,
	}
}

// Factory implements the decoder.Factory type.
func Factory(samples []int16, sampleRate int) decoder.Decoder {
	return NewDecoder(samples, sampleRate)
}

// Name implements the decoder.Decoder interface.
func (dec *Decoder) Name() string {
	return "Low speed"
}

// IsHighSpeed implements the decoder.Decoder interface.
func (dec *Decoder) IsHighSpeed() bool {
	return false
}

// State implements the decoder.Decoder interface.
func (dec *Decoder) State() decoder.State {
	return dec.state
}

// Context returns the Context used by FindNextProgram().
func (dec *Decoder) Context() *Context {
	return dec.ctx
}

// Period returns the nominal number of frames in a bit cell.
func (dec *Decoder) Period() int {
	return dec.clk.period
}

// sample value at frame or zero if frame is outside the buffer.
func (dec *Decoder) sample(frame int) int16 {
	if frame < 0 || frame >= len(dec.samples) {
		return 0
	}
	return dec.samples[frame]
}
