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

package host_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/tasharness/host"
	"github.com/jetsetilly/tasharness/tas"
	"github.com/jetsetilly/tasharness/test"
	"github.com/jetsetilly/tasharness/userinput"
)

// script is a Source that produces a fixed list of events per frame.
type script struct {
	frames [][]userinput.Event
	frame  int
	idx    int
}

func (s *script) Poll() (userinput.Event, bool) {
	if s.frame >= len(s.frames) {
		return userinput.Event{}, false
	}
	if s.idx >= len(s.frames[s.frame]) {
		s.frame++
		s.idx = 0
		return userinput.Event{}, false
	}
	ev := s.frames[s.frame][s.idx]
	s.idx++
	return ev, true
}

type harness struct {
	events []userinput.Event
	dt     []float64
	draws  int

	// order of the update calls
	calls []string
}

func (h *harness) HandleEvent(ev userinput.Event) {
	h.events = append(h.events, ev)
}

func (h *harness) Update(_ float64) {
	h.calls = append(h.calls, "update")
}

func (h *harness) FixedUpdate(dt float64) {
	h.dt = append(h.dt, dt)
	h.calls = append(h.calls, "fixed")
}

func (h *harness) Draw(_ tas.Surface) {
	h.draws++
}

type surface struct {
	presented int
	err       error
}

func (s *surface) Size() (int, int) {
	return 1, 1
}

func (s *surface) Present() error {
	s.presented++
	return s.err
}

func TestLoop(t *testing.T) {
	src := &script{frames: [][]userinput.Event{
		{userinput.KeyDown("A")},
		{},
		{userinput.KeyUp("A"), userinput.Text("a")},
		{userinput.Quit(), userinput.KeyDown("B")},
	}}

	lmtr := host.NewLimiter(50)
	lmtr.Active = false
	defer lmtr.Stop()

	h := &harness{}
	s := &surface{}
	err := host.Loop(context.Background(), h, src, s, lmtr)
	test.ExpectSuccess(t, err)

	// the quit event ends the loop before the frame is run
	test.ExpectEquality(t, len(h.dt), 3)
	test.ExpectEquality(t, h.draws, 3)
	test.ExpectEquality(t, s.presented, 3)
	test.ExpectEquality(t, len(h.events), 3)
	test.ExpectEquality(t, h.dt[0], 0.02)

	test.DemandEquality(t, len(h.calls), 6)
	for i := 0; i < len(h.calls); i += 2 {
		test.ExpectEquality(t, h.calls[i], "update")
		test.ExpectEquality(t, h.calls[i+1], "fixed")
	}
}

func TestLoopPresentError(t *testing.T) {
	lmtr := host.NewLimiter(60)
	lmtr.Active = false
	defer lmtr.Stop()

	s := &surface{err: errors.New("lost context")}
	err := host.Loop(context.Background(), &harness{}, &script{}, s, lmtr)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, s.presented, 1)
}

func TestLoopCancel(t *testing.T) {
	lmtr := host.NewLimiter(60)
	defer lmtr.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	h := &harness{}
	err := host.Loop(ctx, h, &script{}, &surface{}, lmtr)
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))
	test.ExpectSuccess(t, len(h.dt) > 0)
}

func TestLimiter(t *testing.T) {
	lmtr := host.NewLimiter(0)
	defer lmtr.Stop()
	test.ExpectEquality(t, lmtr.Rate(), host.DefaultRate)

	lmtr.SetRate(120)
	test.ExpectEquality(t, lmtr.Rate(), float32(120))

	// two seconds worth of frames should take at least a good part of two
	// seconds
	start := time.Now()
	for range 240 {
		test.DemandSuccess(t, lmtr.CheckFrame(context.Background()))
		lmtr.MeasureActual()
	}
	test.ExpectSuccess(t, time.Since(start) > time.Second)

	// nudged frames do not wait
	lmtr.Nudge.Store(1000)
	start = time.Now()
	for range 240 {
		test.DemandSuccess(t, lmtr.CheckFrame(context.Background()))
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
}
