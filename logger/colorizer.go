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

package logger

import (
	"bytes"
	"io"
)

const (
	normalPen = "\033[0m"
	dimPen    = "\033[2m"
	redPen    = "\033[31m"
	greenPen  = "\033[32m"
	yellowPen = "\033[33m"
	cyanPen   = "\033[36m"
)

// tagPens is the pen used for the tag of an entry. Tags not in the list are
// dimmed.
var tagPens = map[string]string{
	"tas":        greenPen,
	"replay":     cyanPen,
	"checkpoint": yellowPen,
	"runfile":    yellowPen,
	"regression": redPen,
}

// Colorizer colours log output for a terminal. The tag of each line is
// coloured and any repeat count is dimmed. Lines that are not in the log
// entry format are written unchanged.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The returned count is the number
// of bytes of p that were consumed, not the number of bytes written to the
// underlying writer.
func (c Colorizer) Write(p []byte) (int, error) {
	var b bytes.Buffer

	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue
		}

		tag, detail, ok := bytes.Cut(l, []byte(": "))
		if !ok || bytes.ContainsAny(tag, " \n") {
			b.Write(l)
			continue
		}

		pen, ok := tagPens[string(tag)]
		if !ok {
			pen = dimPen
		}
		b.WriteString(pen)
		b.Write(tag)
		b.WriteString(normalPen)
		b.WriteString(": ")

		if i := bytes.LastIndex(detail, []byte(" (repeat x")); i >= 0 {
			b.Write(detail[:i])
			b.WriteString(dimPen)
			b.Write(bytes.TrimRight(detail[i:], "\n"))
			b.WriteString(normalPen)
			b.Write(detail[len(bytes.TrimRight(detail, "\n")):])
		} else {
			b.Write(detail)
		}
	}

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
