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
	"math"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/userinput"
)

// Sentinal error patterns.
const (
	InvalidStep  = "eventlog: step must be positive (%v)"
	TimeOrder    = "eventlog: entry %d: time is earlier than the previous entry (%v < %v)"
	NegativeTime = "eventlog: entry %d: time is negative (%v)"
)

// tolerance, in ticks, applied when converting a time to a tick index.
const tickTolerance = 1e-9

// TimestampedInput is an input event tagged with the simulation time (in
// seconds) of the tick on which it is applied.
type TimestampedInput struct {
	Time  float64         `json:"time"`
	Event userinput.Event `json:"event"`
}

// tickOf returns the tick index for the time. a tolerance is used so that
// times produced by repeated addition of the step are not misplaced by
// floating point error.
func tickOf(time float64, step float64) int {
	return int(math.Floor(time/step + tickTolerance))
}

// FromTimestamped creates a log from a list of timestamped events. Events
// are placed on the tick containing their time. Ticks with no events are
// recorded as empty, up to and including the tick of the last event.
//
// The entries must be in non-decreasing order of time.
func FromTimestamped(entries []TimestampedInput, step float64) (Log, error) {
	if step <= 0 {
		return Log{}, curated.Errorf(InvalidStep, step)
	}

	var l Log
	if len(entries) == 0 {
		return l, nil
	}

	var tick int
	var inputs []userinput.Event

	for i, e := range entries {
		if e.Time < 0 {
			return Log{}, curated.Errorf(NegativeTime, i, e.Time)
		}
		if i > 0 && e.Time < entries[i-1].Time {
			return Log{}, curated.Errorf(TimeOrder, i, e.Time, entries[i-1].Time)
		}

		t := tickOf(e.Time, step)
		for tick < t {
			l.Record(inputs)
			inputs = inputs[:0]
			tick++
		}
		inputs = append(inputs, e.Event)
	}
	l.Record(inputs)

	return l, nil
}

// ToTimestamped converts the log to a list of timestamped events. The time of
// each event is the start time of the tick it is applied on. Ticks with no
// events after the last event are not represented in the result.
func (l Log) ToTimestamped(step float64) []TimestampedInput {
	var ts []TimestampedInput
	var tick int
	for _, r := range l.runs {
		for range r.Frames {
			for _, ev := range r.Inputs {
				ts = append(ts, TimestampedInput{Time: float64(tick) * step, Event: ev})
			}
			tick++
		}
	}
	return ts
}
