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

package eventlog_test

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/eventlog"
	"github.com/jetsetilly/tasharness/test"
	"github.com/jetsetilly/tasharness/userinput"
)

var (
	downA = userinput.KeyDown("A")
	upA   = userinput.KeyUp("A")
	downB = userinput.KeyDown("B")
)

func TestRecordCoalesce(t *testing.T) {
	var l eventlog.Log
	test.ExpectEquality(t, l.Len(), 0)
	test.ExpectEquality(t, l.Frames(), 0)

	l.Record(nil)
	l.Record([]userinput.Event{})
	l.Record([]userinput.Event{downA})
	l.Record(nil)
	l.Record(nil)
	l.Record(nil)
	l.Record([]userinput.Event{upA, downB})
	l.Record([]userinput.Event{upA, downB})

	// ordered equality. the same events in a different order are a different
	// entry
	l.Record([]userinput.Event{downB, upA})

	test.ExpectEquality(t, l.Len(), 5)
	test.ExpectEquality(t, l.Frames(), 9)
	test.ExpectEquality(t, l.String(), "9 frames in 5 runs")

	e := l.Entries()
	test.DemandEquality(t, len(e), 5)
	test.ExpectEquality(t, e[0].Frames, 2)
	test.ExpectEquality(t, len(e[0].Inputs), 0)
	test.ExpectEquality(t, e[1].Frames, 1)
	test.ExpectEquality(t, e[2].Frames, 3)
	test.ExpectEquality(t, e[3].Frames, 2)
	test.ExpectEquality(t, e[4].Frames, 1)
}

func TestRecordCopiesInputs(t *testing.T) {
	var l eventlog.Log
	inputs := []userinput.Event{downA}
	l.Record(inputs)
	inputs[0] = downB

	ev, ok := l.InputsAt(0)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev[0], downA)
}

func TestClone(t *testing.T) {
	var l eventlog.Log
	l.Record([]userinput.Event{downA})
	c := l.Clone()
	l.Record([]userinput.Event{upA})
	l.Clear()

	test.ExpectEquality(t, l.Frames(), 0)
	test.ExpectEquality(t, c.Frames(), 1)
	test.ExpectSuccess(t, c.Equal(eventlog.Compact([][]userinput.Event{{downA}})))
}

// random per-tick streams drawn from a small set of input lists so that
// adjacent ticks are often equal
func randomTicks(n int) [][]userinput.Event {
	choices := [][]userinput.Event{
		{},
		{downA},
		{upA},
		{downA, downB},
		{downB, downA},
	}
	ticks := make([][]userinput.Event, n)
	for i := range ticks {
		ticks[i] = choices[rand.IntN(len(choices))]
	}
	return ticks
}

func TestCompactRoundTrip(t *testing.T) {
	for range 50 {
		ticks := randomTicks(rand.IntN(200))
		l := eventlog.Compact(ticks)

		// expansion reproduces the tick stream
		x := l.Expand()
		test.DemandEquality(t, len(x), len(ticks))
		for i := range ticks {
			require.ElementsMatch(t, ticks[i], x[i])
			require.Equal(t, len(ticks[i]), len(x[i]))
			for j := range ticks[i] {
				test.ExpectEquality(t, x[i][j], ticks[i][j])
			}
		}

		// compaction is idempotent
		test.ExpectSuccess(t, eventlog.Compact(x).Equal(l))

		// and no two adjacent entries are equal
		e := l.Entries()
		for i := 1; i < len(e); i++ {
			test.ExpectFailure(t, eventlog.Compact([][]userinput.Event{e[i-1].Inputs}).Equal(
				eventlog.Compact([][]userinput.Event{e[i].Inputs})))
		}
	}
}

func TestFromEntries(t *testing.T) {
	l, err := eventlog.FromEntries([]eventlog.FrameInput{
		{Frames: 2, Inputs: []userinput.Event{downA}},
		{Frames: 3, Inputs: []userinput.Event{downA}},
		{Frames: 1},
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Len(), 2)
	test.ExpectEquality(t, l.Frames(), 6)

	_, err = eventlog.FromEntries([]eventlog.FrameInput{
		{Frames: 1},
		{Frames: 0, Inputs: []userinput.Event{downA}},
	})
	test.ExpectSuccess(t, curated.Is(err, eventlog.InvalidFrames))
}

func TestInputsAt(t *testing.T) {
	l := eventlog.Compact([][]userinput.Event{{downA}, {}, {}, {upA}})

	ev, ok := l.InputsAt(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(ev), 1)

	ev, ok = l.InputsAt(2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(ev), 0)

	ev, ok = l.InputsAt(3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev[0], upA)

	_, ok = l.InputsAt(4)
	test.ExpectFailure(t, ok)
	_, ok = l.InputsAt(-1)
	test.ExpectFailure(t, ok)
}

func TestSlice(t *testing.T) {
	ticks := [][]userinput.Event{{downA}, {}, {}, {}, {upA}, {upA}, {downB}}
	l := eventlog.Compact(ticks)

	for from := -1; from <= len(ticks)+1; from++ {
		for to := from; to <= len(ticks)+1; to++ {
			s := l.Slice(from, to)
			lo := min(max(from, 0), len(ticks))
			hi := min(to, len(ticks))
			if hi < lo {
				hi = lo
			}
			test.ExpectSuccess(t, s.Equal(eventlog.Compact(ticks[lo:hi])), from, to)
		}
	}

	l.Truncate(3)
	test.ExpectSuccess(t, l.Equal(eventlog.Compact(ticks[:3])))
	l.Truncate(10)
	test.ExpectEquality(t, l.Frames(), 3)
	l.Truncate(0)
	test.ExpectEquality(t, l.Len(), 0)
}

func TestJSON(t *testing.T) {
	var empty eventlog.Log
	b, err := json.Marshal(empty)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "[]")

	var l eventlog.Log
	l.Record(nil)
	l.Record([]userinput.Event{downA})
	l.Record([]userinput.Event{downA})

	b, err = json.Marshal(l)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), `[{"frames":1,"inputs":[]},{"frames":2,"inputs":[{"kind":"KeyDown","key":"A"}]}]`)

	var d eventlog.Log
	test.DemandSuccess(t, json.Unmarshal(b, &d))
	test.ExpectSuccess(t, d.Equal(l))
	require.Equal(t, l.Entries(), d.Entries())

	// adjacent equal entries are merged when decoding. null inputs are
	// equivalent to an empty list
	test.DemandSuccess(t, json.Unmarshal([]byte(`[{"frames":1,"inputs":null},{"frames":2,"inputs":[]}]`), &d))
	test.ExpectEquality(t, d.Len(), 1)
	test.ExpectEquality(t, d.Frames(), 3)

	// entries must have at least one frame
	err = json.Unmarshal([]byte(`[{"frames":0,"inputs":[]}]`), &d)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, eventlog.InvalidFrames))

	err = json.Unmarshal([]byte(`{"frames":1}`), &d)
	test.ExpectSuccess(t, curated.Is(err, eventlog.DecodeError))
}

func TestTimestamped(t *testing.T) {
	entries := []eventlog.TimestampedInput{
		{Time: 0, Event: downA},
		{Time: 1, Event: upA},
		{Time: 2, Event: downB},
	}

	l, err := eventlog.FromTimestamped(entries, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Frames(), 3)
	test.ExpectEquality(t, l.Len(), 3)
	test.ExpectSuccess(t, l.Equal(eventlog.Compact([][]userinput.Event{{downA}, {upA}, {downB}})))

	require.Equal(t, entries, l.ToTimestamped(1))

	// gaps between events are recorded as empty ticks. times that are not
	// exact multiples of the step fall into the containing tick
	step := 1.0 / 60.0
	entries = []eventlog.TimestampedInput{
		{Time: step * 0.5, Event: downA},
		{Time: step * 3, Event: upA},
		{Time: step * 3, Event: downB},
	}
	l, err = eventlog.FromTimestamped(entries, step)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, l.Equal(eventlog.Compact([][]userinput.Event{{downA}, {}, {}, {upA, downB}})))

	// empty list
	l, err = eventlog.FromTimestamped(nil, step)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Frames(), 0)

	// failures
	_, err = eventlog.FromTimestamped(entries, 0)
	test.ExpectSuccess(t, curated.Is(err, eventlog.InvalidStep))

	_, err = eventlog.FromTimestamped([]eventlog.TimestampedInput{{Time: 2}, {Time: 1}}, 1)
	test.ExpectSuccess(t, curated.Is(err, eventlog.TimeOrder))

	_, err = eventlog.FromTimestamped([]eventlog.TimestampedInput{{Time: -1}}, 1)
	test.ExpectSuccess(t, curated.Is(err, eventlog.NegativeTime))
}
