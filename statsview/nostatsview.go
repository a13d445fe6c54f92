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

//go:build !statsview

package statsview

// Address used if the address argument to Launch() is empty.
const Address = ""

// Launch does nothing unless the statsview build constraint is present.
func Launch(_ string) string {
	return ""
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
