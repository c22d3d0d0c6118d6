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

package regression_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/tasharness/demo"
	"github.com/jetsetilly/tasharness/logger"
	"github.com/jetsetilly/tasharness/regression"
	"github.com/jetsetilly/tasharness/runfile"
	"github.com/jetsetilly/tasharness/tas"
	"github.com/jetsetilly/tasharness/test"
	"github.com/jetsetilly/tasharness/userinput"
)

const step = 1.0 / 60.0

func mover(keyboard *tas.Headless) tas.Subject[demo.State] {
	return demo.NewMover(keyboard, 1)
}

// drift moves twice as often as the real mover
type drift struct {
	*demo.Mover
}

func (d drift) FixedUpdate(dt float64) {
	d.Mover.FixedUpdate(dt)
	d.Mover.FixedUpdate(dt)
}

func drifter(keyboard *tas.Headless) tas.Subject[demo.State] {
	return drift{Mover: demo.NewMover(keyboard, 1)}
}

// record a run of the demo subject. the inputs map is keyed by the frame
// at which the events are delivered
func record(t *testing.T, frames int, inputs map[int][]userinput.Event) runfile.Run[demo.State] {
	t.Helper()

	p, err := tas.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.StatesFile.Set(""))
	test.DemandSuccess(t, p.StartPaused.Set(false))

	keyboard := &tas.Headless{}
	ctrl, err := tas.NewController[demo.State](demo.NewMover(keyboard, 99), keyboard, p, logger.Deny)
	test.DemandSuccess(t, err)
	defer ctrl.Close()

	for i := 0; i < frames; i++ {
		for _, ev := range inputs[i] {
			ctrl.HandleEvent(ev)
		}
		ctrl.FixedUpdate(step)
	}
	test.DemandEquality(t, ctrl.Frame(), frames)

	return ctrl.Run()
}

func sampleRun(t *testing.T) runfile.Run[demo.State] {
	t.Helper()
	return record(t, 40, map[int][]userinput.Event{
		0:  {userinput.KeyDown(userinput.KeyRight)},
		10: {userinput.KeyUp(userinput.KeyRight), userinput.KeyDown(userinput.KeyArrowDown)},
		20: {userinput.KeyUp(userinput.KeyArrowDown), userinput.Text("hi")},
		25: {userinput.MouseDown(userinput.MouseButtonLeft, 3, 4)},
		26: {userinput.MouseUp(userinput.MouseButtonLeft, 3, 4)},
	})
}

func TestVerify(t *testing.T) {
	run := sampleRun(t)
	test.DemandInequality(t, run.Digest, "")

	res, err := regression.Verify(run, mover)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 40)
	test.ExpectSuccess(t, res.Match(run.Digest))
	test.ExpectSuccess(t, res.Inputs)

	// a second replay produces the same trace
	again, err := regression.Verify(run, mover)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, again, res)

	// a subject that behaves differently does not match
	res, err = regression.Verify(run, drifter)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, res.Match(run.Digest))
}

func TestVerifyEmpty(t *testing.T) {
	run := record(t, 0, nil)
	res, err := regression.Verify(run, mover)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 0)
	test.ExpectSuccess(t, res.Match(run.Digest))
}

func encode(t *testing.T, run runfile.Run[demo.State]) []byte {
	t.Helper()
	b := &bytes.Buffer{}
	test.DemandSuccess(t, runfile.Encode(b, run))
	return b.Bytes()
}

func TestRegress(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "regression.db")
	w := &test.Writer{}

	// the database does not exist yet
	test.ExpectFailure(t, regression.RegressList(w, dbPath))

	run := sampleRun(t)
	reg := regression.NewRunRegression("/tmp/sample.json", encode(t, run), "sample")
	test.DemandSuccess(t, regression.RegressAdd(w, dbPath, reg, mover))
	test.ExpectEquality(t, reg.Frames, 40)
	test.ExpectEquality(t, reg.Digest, run.Digest)

	// a run with the wrong digest is not added
	run.Digest = "0000"
	bad := regression.NewRunRegression("bad.json", encode(t, run), "")
	test.ExpectFailure(t, regression.RegressAdd(w, dbPath, bad, mover))

	w.Clear()
	test.DemandSuccess(t, regression.RegressList(w, dbPath))
	test.ExpectEquality(t, w.String(), "000 [run] sample.json (40 frames) [sample]\nTotal: 1\n")

	w.Clear()
	ok, err := regression.RegressRun(w, dbPath, mover, false, false, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 1 succeed, 0 fail\n"))

	w.Clear()
	ok, err = regression.RegressRun(w, dbPath, drifter, true, false, nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, strings.Contains(w.String(), "trace digest differs"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 0 succeed, 1 fail\n"))

	// filtered to a key that does not exist
	w.Clear()
	ok, err = regression.RegressRun(w, dbPath, drifter, false, false, []string{"5"})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)

	_, err = regression.RegressRun(w, dbPath, mover, false, false, []string{"x"})
	test.ExpectFailure(t, err)

	// deletion must be confirmed
	test.DemandSuccess(t, regression.RegressDelete(w, strings.NewReader("n\n"), dbPath, "0"))
	w.Clear()
	test.DemandSuccess(t, regression.RegressList(w, dbPath))
	test.ExpectEquality(t, w.String(), "000 [run] sample.json (40 frames) [sample]\nTotal: 1\n")

	test.DemandSuccess(t, regression.RegressDelete(w, strings.NewReader("y\n"), dbPath, "0"))
	w.Clear()
	test.DemandSuccess(t, regression.RegressList(w, dbPath))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	test.ExpectFailure(t, regression.RegressDelete(w, strings.NewReader("y\n"), dbPath, "0"))
}
