// This file is part of riscvemu.
//
// riscvemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// riscvemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with riscvemu.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is the address used by Launch() when no address is given.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// how often the statistics are sampled by the viewer.
const interval = 1000 * time.Millisecond

// Launch a new goroutine running the statsview server. The returned function
// stops the server.
func Launch(output io.Writer, address string) (stop func()) {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address), viewer.WithInterval(int(interval.Milliseconds())))
	mgr := statsview.New()

	go func() {
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", address, url)

	return func() {
		mgr.Stop()
	}
}
