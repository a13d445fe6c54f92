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

//go:build statsview

package statsview

import (
	"fmt"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/trs80tape/logger"
)

// Address used if the address argument to Launch() is empty.
const Address = "localhost:12600"

const path = "/debug/statsview"

// Launch a new goroutine running the statsview server. Returns the URL of the
// statistics page.
func Launch(addr string) string {
	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()

	url := fmt.Sprintf("http://%s%s", addr, path)
	logger.Logf(logger.Allow, "statsview", "stats server available at %s", url)

	return url
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
