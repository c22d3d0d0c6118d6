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

package regression

import (
	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/digest"
	"github.com/jetsetilly/tasharness/logger"
	"github.com/jetsetilly/tasharness/runfile"
	"github.com/jetsetilly/tasharness/tas"
)

// Sentinal error patterns.
const (
	VerifyError = "regression: verify: %v"
)

// DefaultStep is the length of a tick used for runs that do not record one.
const DefaultStep = 1.0 / 60.0

// Factory creates a new subject for headless replay. The keyboard reports
// the keys that are held in the simulation.
type Factory[S any] func(keyboard *tas.Headless) tas.Subject[S]

// Result of a headless replay.
type Result struct {
	// number of ticks replayed
	Frames int

	// digest of the subject state after the final tick
	Digest string

	// chained digest of the subject state after every tick
	Trace string

	// whether the inputs recorded during the replay are the same as the
	// inputs of the run
	Inputs bool
}

// Match returns true if the result digest is the same as the expected digest.
// An empty expected digest never matches.
func (r Result) Match(expected string) bool {
	return expected != "" && r.Digest == expected
}

// tracer adds the state of the subject to the trace after every tick.
type tracer[S any] struct {
	tas.Subject[S]
	trace digest.Chain
	err   error
}

func (tr *tracer[S]) FixedUpdate(dt float64) {
	tr.Subject.FixedUpdate(dt)
	if tr.err == nil {
		tr.err = tr.trace.Add(tr.Subject.Save())
	}
}

// Verify replays the run on a new subject with no host attached.
func Verify[S any](run runfile.Run[S], factory Factory[S]) (Result, error) {
	p, err := tas.NewPreferences("")
	if err != nil {
		return Result{}, curated.Errorf(VerifyError, err)
	}
	if err := p.StatesFile.Set(""); err != nil {
		return Result{}, curated.Errorf(VerifyError, err)
	}

	keyboard := &tas.Headless{}
	tr := &tracer[S]{Subject: factory(keyboard)}

	ctrl, err := tas.NewController[S](tr, keyboard, p, logger.Deny)
	if err != nil {
		return Result{}, curated.Errorf(VerifyError, err)
	}
	defer ctrl.Close()

	if run.Step <= 0 {
		run.Step = DefaultStep
	}

	ctrl.Replay(run)
	tr.trace.ResetDigest()

	// one tick per call. the limit guards against a replay that never ends
	for i := 0; i <= run.Inputs.Frames() && !ctrl.Paused(); i++ {
		ctrl.FixedUpdate(run.Step)
	}

	if tr.err != nil {
		return Result{}, curated.Errorf(VerifyError, tr.err)
	}

	d, err := digest.Of(tr.Subject.Save())
	if err != nil {
		return Result{}, curated.Errorf(VerifyError, err)
	}

	return Result{
		Frames: ctrl.Frame(),
		Digest: d,
		Trace:  tr.trace.Hash(),
		Inputs: ctrl.Log().Equal(run.Inputs),
	}, nil
}
