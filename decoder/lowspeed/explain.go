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

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer used to format numbers with thousands separators.
var printer = message.NewPrinter(language.English)

func commas(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}

func commasInt(v int) string {
	return printer.Sprintf("%d", v)
}

func explainPulse(frame int, p Peak, radius int, threshold float64, first int, last int, cmp rune, edge float64) string {
	return printer.Sprintf("Looked for pulse at %s and found it at %s, which is within the search radius of %s. "+
		"Range %s is greater than pulse threshold %s, start %s %c %s, and end %s %c %s.",
		commasInt(frame), commasInt(p.Frame), commasInt(radius),
		commasInt(p.Range), commas(threshold),
		commasInt(first), cmp, commas(edge),
		commasInt(last), cmp, commas(edge))
}

func explainEdges(spread int, threshold float64) string {
	return printer.Sprintf("Range %s is greater than pulse threshold %s but the sides don't pull away enough.",
		commasInt(spread), commas(threshold))
}

func explainNoise(spread int, threshold float64, noiseThreshold float64) string {
	return printer.Sprintf("Range %s is less than pulse threshold %s but greater than noise threshold %s.",
		commasInt(spread), commas(threshold), commas(noiseThreshold))
}

func explainSilence(spread int, noiseThreshold float64) string {
	return printer.Sprintf("Range %s is less than or equal to noise threshold %s.",
		commasInt(spread), commas(noiseThreshold))
}

func explainOutside(frame int) string {
	return printer.Sprintf("No samples near %s.", commasInt(frame))
}
