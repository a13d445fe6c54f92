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

// Package lowspeed implements the low speed (500 baud) cassette decoder.
//
// Every bit cell on a low speed tape is 2ms long and begins with a clock
// pulse. A second pulse half way through the cell means the bit is a one. The
// absence of the second pulse means the bit is a zero. A recording starts with
// a leader of zero bits followed by the sync byte (0xa5), after which the bits
// are grouped into bytes, most significant bit first.
//
// There is no clock reference on the tape so the decoder paces itself on the
// clock pulses it finds. Pulses are recognised by looking at the minimum and
// maximum sample values in a small window, and by comparing the range with a
// peak threshold that adapts to the volume of the recording.
//
// The adaptive threshold is held in a Context. The Decoder type owns a
// Context for its own scanning, via FindNextProgram(), but the lower level
// functions accept a Context explicitly so that the dependency between
// successive calls is visible.
package lowspeed
