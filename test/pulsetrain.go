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

package test

import (
	"math"
)

// DefaultPulseAmplitude is the peak amplitude of pulses rendered by
// PulseTrain unless the Amplitude field is changed.
const DefaultPulseAmplitude = 12000

// PulseTrain renders idealised low speed cassette audio. Every bit cell begins
// with a clock pulse and a one-bit has an additional data pulse half way
// through the cell. Bytes are written most significant bit first.
//
// Pulses are narrow triangles centred on the pulse frame. The zero value is
// not usable, use NewPulseTrain().
type PulseTrain struct {
	// peak amplitude of every pulse
	Amplitude int16

	// flip the polarity of every pulse relative to the previous pulse
	Alternate bool

	// timing derived from the sample rate
	period     int
	halfPeriod int
	halfWidth  int

	// rendered samples
	data []int16

	// frame at which the next bit cell starts
	frame int

	// polarity of the next pulse
	negative bool
}

// NewPulseTrain is the preferred method of initialisation for the PulseTrain
// type. The bit cell period is 2ms at the given sample rate.
func NewPulseTrain(sampleRate int) *PulseTrain {
	pt := &PulseTrain{
		Amplitude: DefaultPulseAmplitude,
	}
	pt.period = int(math.Round(float64(sampleRate) * 0.002))
	pt.halfPeriod = int(math.Round(float64(pt.period) / 2))
	pt.halfWidth = max(2, pt.period/24)
	return pt
}

// Period returns the number of frames in a bit cell.
func (pt *PulseTrain) Period() int {
	return pt.period
}

// HalfPeriod returns the distance in frames between a clock pulse and a data
// pulse.
func (pt *PulseTrain) HalfPeriod() int {
	return pt.halfPeriod
}

// Frame returns the frame at which the next bit cell will start. This is
// also the frame of the next clock pulse.
func (pt *PulseTrain) Frame() int {
	return pt.frame
}

// Samples returns the rendered audio.
func (pt *PulseTrain) Samples() []int16 {
	pt.grow(pt.frame)
	return pt.data
}

func (pt *PulseTrain) grow(length int) {
	if length > len(pt.data) {
		pt.data = append(pt.data, make([]int16, length-len(pt.data))...)
	}
}

// Pulse draws a single pulse centred on the specified frame. It does not
// advance the position of the next bit cell.
func (pt *PulseTrain) Pulse(frame int) {
	pt.grow(frame + pt.halfWidth + 1)

	amp := int(pt.Amplitude)
	if pt.negative {
		amp = -amp
	}
	if pt.Alternate {
		pt.negative = !pt.negative
	}

	for k := -pt.halfWidth; k <= pt.halfWidth; k++ {
		i := frame + k
		if i < 0 {
			continue
		}
		d := k
		if d < 0 {
			d = -d
		}
		pt.data[i] = int16(amp * (pt.halfWidth - d) / pt.halfWidth)
	}
}

// Bit renders one bit cell.
func (pt *PulseTrain) Bit(one bool) {
	pt.grow(pt.frame + pt.period)
	pt.Pulse(pt.frame)
	if one {
		pt.Pulse(pt.frame + pt.halfPeriod)
	}
	pt.frame += pt.period
}

// Byte renders eight bit cells, most significant bit first.
func (pt *PulseTrain) Byte(v uint8) {
	for i := 7; i >= 0; i-- {
		pt.Bit(v&(1<<i) != 0)
	}
}

// Bytes renders each byte in turn.
func (pt *PulseTrain) Bytes(v ...uint8) {
	for _, b := range v {
		pt.Byte(b)
	}
}

// Leader renders the specified number of zero bits.
func (pt *PulseTrain) Leader(bits int) {
	for i := 0; i < bits; i++ {
		pt.Bit(false)
	}
}

// Silence advances the next bit cell by the specified number of frames. It
// can also be used to introduce a late clock pulse.
func (pt *PulseTrain) Silence(frames int) {
	pt.grow(pt.frame + frames)
	pt.frame += frames
}

// Noise renders a low level sine wave with the specified amplitude. The
// period of the wave is short compared to a bit cell so that any part of the
// wave looks like energy without a pulse.
func (pt *PulseTrain) Noise(frames int, amplitude int16) {
	const wavelength = 20

	pt.grow(pt.frame + frames)
	for i := 0; i < frames; i++ {
		v := float64(amplitude) * math.Sin(2*math.Pi*float64(i)/wavelength)
		pt.data[pt.frame+i] += int16(math.Round(v))
	}
	pt.frame += frames
}
