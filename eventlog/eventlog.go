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

package eventlog

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/userinput"
)

// Sentinal error patterns.
const (
	InvalidFrames = "eventlog: entry %d: frames must be at least one (%d)"
	DecodeError   = "eventlog: decode: %v"
)

// FrameInput is a list of input events applied on each of a number of
// consecutive ticks.
type FrameInput struct {
	Frames int               `json:"frames"`
	Inputs []userinput.Event `json:"inputs"`
}

func (fi FrameInput) clone() FrameInput {
	c := FrameInput{
		Frames: fi.Frames,
		Inputs: slices.Clone(fi.Inputs),
	}
	if c.Inputs == nil {
		c.Inputs = []userinput.Event{}
	}
	return c
}

// Log is the run-length encoded record of input events. The zero value is an
// empty log ready for use.
type Log struct {
	runs []FrameInput
}

func (l Log) String() string {
	return fmt.Sprintf("%d frames in %d runs", l.Frames(), len(l.runs))
}

// Record adds one tick to the log. If the inputs are equal to the inputs of
// the most recent entry then that entry is extended, otherwise a new entry is
// appended. The inputs slice is copied.
func (l *Log) Record(inputs []userinput.Event) {
	if n := len(l.runs); n > 0 && slices.Equal(l.runs[n-1].Inputs, inputs) {
		l.runs[n-1].Frames++
		return
	}
	l.runs = append(l.runs, FrameInput{Frames: 1, Inputs: inputs}.clone())
}

// Clear all entries from the log.
func (l *Log) Clear() {
	l.runs = nil
}

// Clone returns a deep copy of the log.
func (l Log) Clone() Log {
	if len(l.runs) == 0 {
		return Log{}
	}
	c := Log{runs: make([]FrameInput, len(l.runs))}
	for i := range l.runs {
		c.runs[i] = l.runs[i].clone()
	}
	return c
}

// Entries returns a copy of the entries in the log.
func (l Log) Entries() []FrameInput {
	return l.Clone().runs
}

// Len returns the number of entries in the log.
func (l Log) Len() int {
	return len(l.runs)
}

// Frames returns the total number of ticks covered by the log.
func (l Log) Frames() int {
	var n int
	for _, r := range l.runs {
		n += r.Frames
	}
	return n
}

// Equal returns true if both logs contain the same entries.
func (l Log) Equal(o Log) bool {
	return slices.EqualFunc(l.runs, o.runs, func(a, b FrameInput) bool {
		return a.Frames == b.Frames && slices.Equal(a.Inputs, b.Inputs)
	})
}

// Expand returns the list of events applied on each tick.
func (l Log) Expand() [][]userinput.Event {
	t := make([][]userinput.Event, 0, l.Frames())
	for _, r := range l.runs {
		for range r.Frames {
			t = append(t, slices.Clone(r.Inputs))
		}
	}
	return t
}

// Compact creates a log from a per-tick list of events. It is the inverse of
// Expand().
func Compact(ticks [][]userinput.Event) Log {
	var l Log
	for _, t := range ticks {
		l.Record(t)
	}
	return l
}

// FromEntries creates a log from a list of entries. Adjacent entries with
// equal inputs are merged. An error is returned if any entry covers fewer than
// one frame.
func FromEntries(entries []FrameInput) (Log, error) {
	var l Log
	for i, e := range entries {
		if e.Frames < 1 {
			return Log{}, curated.Errorf(InvalidFrames, i, e.Frames)
		}
		if n := len(l.runs); n > 0 && slices.Equal(l.runs[n-1].Inputs, e.Inputs) {
			l.runs[n-1].Frames += e.Frames
			continue
		}
		l.runs = append(l.runs, e.clone())
	}
	return l, nil
}

// InputsAt returns the events applied on the tick. Returns false if the tick
// is outside of the log.
func (l Log) InputsAt(frame int) ([]userinput.Event, bool) {
	if frame < 0 {
		return nil, false
	}
	for _, r := range l.runs {
		if frame < r.Frames {
			return slices.Clone(r.Inputs), true
		}
		frame -= r.Frames
	}
	return nil, false
}

// Slice returns the part of the log covering ticks from (inclusive) to
// (exclusive). Values outside the log are clamped.
func (l Log) Slice(from int, to int) Log {
	from = max(from, 0)
	to = min(to, l.Frames())

	var s Log
	if from >= to {
		return s
	}

	var start int
	for _, r := range l.runs {
		end := start + r.Frames

		// overlap between this entry and the requested range
		lo := max(start, from)
		hi := min(end, to)
		if lo < hi {
			c := r.clone()
			c.Frames = hi - lo
			s.runs = append(s.runs, c)
		}

		start = end
		if start >= to {
			break
		}
	}

	return s
}

// Truncate removes all ticks at or after frame.
func (l *Log) Truncate(frame int) {
	*l = l.Slice(0, frame)
}

// MarshalJSON implements the json.Marshaler interface. The log is written as
// an array of entries.
func (l Log) MarshalJSON() ([]byte, error) {
	runs := l.runs
	if runs == nil {
		runs = []FrameInput{}
	}
	return json.Marshal(runs)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Entries with fewer
// than one frame are rejected and adjacent entries with equal inputs are
// merged.
func (l *Log) UnmarshalJSON(b []byte) error {
	var entries []FrameInput
	if err := json.Unmarshal(b, &entries); err != nil {
		return curated.Errorf(DecodeError, err)
	}
	n, err := FromEntries(entries)
	if err != nil {
		return err
	}
	*l = n
	return nil
}
