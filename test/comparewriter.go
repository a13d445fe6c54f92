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

import "strings"

// CompareWriter collects everything written to it. Tests hand it to a logger
// echo, a help writer or the command line tool in place of standard output
// and then check the result with Compare().
type CompareWriter struct {
	strings.Builder
}

// Compare returns true if everything written so far is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.String() == s
}
