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
	"github.com/jetsetilly/trs80tape/decoder"
	"github.com/jetsetilly/trs80tape/logger"
	"github.com/jetsetilly/trs80tape/program"
)

// FindNextProgram implements the decoder.Decoder interface.
//
// Candidate leaders are found with FindPulse() and verified with Proof()
// before an attempt is made to decode data. Candidates that fail, or that
// decode to an empty program, are skipped by 50 periods.
func (dec *Decoder) FindNextProgram(frame int, ann *annotation.List) (*program.Program, bool) {
	for frame < len(dec.samples) {
		r, ok := dec.FindPulse(frame)
		if !ok {
			break // for loop
		}

		p, _ := r.Peak()
		frame = p.Frame

		if dec.Proof(dec.ctx, frame, ann) {
			prg := dec.LoadData(dec.ctx, frame, ann)
			if len(prg.Binary()) > 0 {
				dec.state = decoder.Detected
				logger.Logf(logger.Allow, logTag, "program of %d bytes at frame %d", len(prg.Binary()), prg.Start())
				return prg, true
			}
			logger.Logf(logger.Allow, logTag, "empty program at frame %d", frame)
		}

		frame += dec.clk.period * skipPeriods
	}

	if dec.state == decoder.Undecided {
		dec.state = decoder.NotDetected
	}

	return nil, false
}
