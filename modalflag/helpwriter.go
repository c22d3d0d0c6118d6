// This file is part of TASHarness.
//
// TASHarness is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TASHarness is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TASHarness.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended before being printed.
type helpWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, descriptions map[string]string, additionalHelp string) {
	if output == nil {
		return
	}

	lines := strings.Split(string(hw.buffer), "\n")
	hasFlags := len(lines) > 2

	if !hasFlags && len(subModes) == 0 && additionalHelp == "" {
		if banner == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		}
		return
	}

	if banner == "" {
		fmt.Fprintln(output, lines[0])
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], banner)
	}

	if len(lines) > 1 {
		fmt.Fprint(output, strings.Join(lines[1:], "\n"))
	}

	if len(subModes) > 0 {
		if hasFlags {
			fmt.Fprintln(output)
		}

		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])

		for _, m := range subModes {
			if d, ok := descriptions[m]; ok {
				fmt.Fprintf(output, "    %-10s %s\n", m, d)
			}
		}
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
