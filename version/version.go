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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the command line tool.
const ApplicationName = "trs80tape"

// number is empty unless set when building a release:
//
//	-ldflags "-X github.com/jetsetilly/trs80tape/version.number=v0.1.0"
var number string

// resolved in init()
var version string
var revision string

// Version returns the version and the vcs revision of the build. The boolean
// is true for a numbered release.
//
// Builds without a release number report "unreleased" when vcs information
// is embedded in the binary and "local" when it isn't, which is the case with
// "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name, version and revision as a single
// line. The revision is omitted for releases.
func String() string {
	if _, _, release := Version(); release {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

// buildSettings returns the vcs settings embedded by the go command.
func buildSettings() map[string]string {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

func resolve(number string, settings map[string]string) (string, string) {
	rev, ok := settings["vcs.revision"]
	if !ok || rev == "" {
		rev = "no revision information"
	} else if settings["vcs.modified"] == "true" {
		rev += "+dirty"
	}

	switch {
	case number != "":
		return number, rev
	case settings["vcs"] != "":
		return "unreleased", rev
	}
	return "local", rev
}

func init() {
	version, revision = resolve(number, buildSettings())
}
