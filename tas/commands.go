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

package tas

import (
	"github.com/jetsetilly/tasharness/bindings"
	"github.com/jetsetilly/tasharness/checkpoint"
	"github.com/jetsetilly/tasharness/digest"
	"github.com/jetsetilly/tasharness/eventlog"
	"github.com/jetsetilly/tasharness/logger"
	"github.com/jetsetilly/tasharness/notifications"
	"github.com/jetsetilly/tasharness/replay"
	"github.com/jetsetilly/tasharness/runfile"
	"github.com/jetsetilly/tasharness/userinput"
)

// dispatch a capture mode command.
func (c *Controller[S]) dispatch(cmd bindings.Command) {
	switch cmd {
	case bindings.SaveRun:
		_ = c.SaveRun(c.SaveFile())
	case bindings.SaveState:
		_, _ = c.SaveState()
	case bindings.LoadLatest:
		if n := c.states.Len(); n > 0 {
			c.LoadState(n - 1)
		}
	case bindings.TogglePause:
		c.TogglePause()
	case bindings.SlowDown:
		c.SetTimeScale(c.TimeScale() - c.Prefs.TimeScaleStep.Get().(float64))
	case bindings.SpeedUp:
		c.SetTimeScale(c.TimeScale() + c.Prefs.TimeScaleStep.Get().(float64))
	case bindings.StartReplay:
		_ = c.StartReplay(c.SaveFile())
	case bindings.UndoLoad:
		c.UndoLoad()
	case bindings.DeleteLatest:
		if n := c.states.Len(); n > 0 {
			c.DeleteState(n - 1)
		}
	}
}

// SaveState adds a checkpoint of the current state to the checkpoint store.
// An error is returned if the store could not be written to the backend, in
// which case the checkpoint is still added to the store.
func (c *Controller[S]) SaveState() (checkpoint.Checkpoint[S], error) {
	c.enter("SaveState")

	cp := checkpoint.New(c.clock.Frame(), c.log, c.held, c.initial, c.save())
	err := c.states.Append(cp)

	logger.Logf(c.perm, "tas", "saved state %s", cp)
	c.sendNotice(notifications.NotifyStateSaved)

	return cp, err
}

// restore the Controller and subject to the state in the checkpoint.
func (c *Controller[S]) restore(initial S, state S, frame int, log eventlog.Log, held userinput.Held) {
	c.replay = nil
	c.queue = nil
	c.initial = initial
	c.clock.SetFrame(frame)
	c.log = log.Clone()
	c.held = held.Clone()
	c.syncHeld()
	c.load(state)
}

// LoadState restores the checkpoint at index i. Any replay is stopped. The
// state before the load is kept so that the load can be reverted with
// UndoLoad().
//
// Returns false if there is no checkpoint at the index, in which case nothing
// is changed.
func (c *Controller[S]) LoadState(i int) bool {
	c.enter("LoadState")

	cp, ok := c.states.Get(i)
	if !ok {
		return false
	}

	c.undo = &undo[S]{
		initial: c.initial,
		state:   c.save(),
		frame:   c.clock.Frame(),
		log:     c.log.Clone(),
		held:    c.held.Clone(),
	}

	c.restore(cp.InitialState, cp.State, cp.Frame, cp.Inputs, cp.Held())

	logger.Logf(c.perm, "tas", "loaded state %s", cp)
	c.sendNotice(notifications.NotifyStateLoaded)

	return true
}

// UndoLoad reverts the most recent LoadState(). Returns false if there is
// nothing to undo. There is only one level of undo.
func (c *Controller[S]) UndoLoad() bool {
	c.enter("UndoLoad")

	if c.undo == nil {
		return false
	}

	u := c.undo
	c.undo = nil
	c.restore(u.initial, u.state, u.frame, u.log, u.held)

	logger.Logf(c.perm, "tas", "undo load (frame %d)", u.frame)
	c.sendNotice(notifications.NotifyLoadUndone)

	return true
}

// CanUndo returns true if there is a load that can be reverted.
func (c *Controller[S]) CanUndo() bool {
	return c.undo != nil
}

// DeleteState removes the checkpoint at index i from the checkpoint store.
// Returns false if there is no checkpoint at the index.
func (c *Controller[S]) DeleteState(i int) bool {
	c.enter("DeleteState")

	ok, _ := c.states.Delete(i)
	if ok {
		logger.Logf(c.perm, "tas", "deleted state %d", i)
		c.sendNotice(notifications.NotifyStateDeleted)
	}
	return ok
}

// Run returns the current recording as a Run. The digest of the current
// subject state is included.
func (c *Controller[S]) Run() runfile.Run[S] {
	c.enter("Run")

	run := runfile.Run[S]{
		InitialState: c.initial,
		Inputs:       c.log.Clone(),
		Step:         c.clock.Step(),
	}

	d, err := digest.Of(c.save())
	if err != nil {
		logger.Log(c.perm, "tas", err)
	} else {
		run.Digest = d
	}

	return run
}

// SaveRun writes the current recording to the file at path.
func (c *Controller[S]) SaveRun(path string) error {
	c.enter("SaveRun")

	run := c.Run()
	if err := runfile.Save(path, run); err != nil {
		logger.Log(c.perm, "tas", err)
		return err
	}

	logger.Logf(c.perm, "tas", "saved run to %s (%s)", path, run)
	c.sendNotice(notifications.NotifyRunSaved)

	return nil
}

// StartReplay loads the run in the file at path and starts replaying it. If
// the file cannot be loaded then an error is returned and nothing is changed.
func (c *Controller[S]) StartReplay(path string) error {
	c.enter("StartReplay")

	run, err := runfile.Load[S](path)
	if err != nil {
		logger.Log(c.perm, "tas", err)
		return err
	}

	c.Replay(run)
	logger.Logf(c.perm, "tas", "replaying %s (%s)", path, run)

	return nil
}

// Replay starts replaying the run. The subject is loaded with the run's
// initial state and the recording starts again from frame zero. The
// Controller is unpaused.
//
// The length of a tick is taken from the run if the host has not yet called
// FixedUpdate().
func (c *Controller[S]) Replay(run runfile.Run[S]) {
	c.enter("Replay")

	if c.clock.Step() == 0 {
		c.clock.SetStep(run.Step)
	}

	c.undo = nil
	c.restore(run.InitialState, run.InitialState, 0, eventlog.Log{}, userinput.NewHeld())
	c.clock.Reset()
	c.replay = replay.New(run.Inputs)

	c.sendNotice(notifications.NotifyReplayStarted)
	c.setPaused(false)
}

// Paused returns true if the Controller is paused.
func (c *Controller[S]) Paused() bool {
	return c.paused
}

func (c *Controller[S]) setPaused(paused bool) {
	if c.paused == paused {
		return
	}
	c.paused = paused
	if paused {
		c.sendNotice(notifications.NotifyPause)
	} else {
		c.sendNotice(notifications.NotifyUnpause)
	}
}

// SetPaused pauses or unpauses the Controller. Unpausing after a replay has
// finished stops the replay and recording continues from the end of the
// replay.
func (c *Controller[S]) SetPaused(paused bool) {
	c.enter("SetPaused")

	if !paused && c.replay != nil && c.replay.State() == replay.Exhausted {
		c.replay = nil
		logger.Log(c.perm, "replay", "recording resumed")
	}
	c.setPaused(paused)
}

// TogglePause is a convenience function for SetPaused(!Paused()).
func (c *Controller[S]) TogglePause() {
	c.SetPaused(!c.paused)
}

// TimeScale returns the current time scale.
func (c *Controller[S]) TimeScale() float64 {
	return c.clock.Scale()
}

// SetTimeScale sets the time scale. The value is clamped to the range zero to
// the maximum time scale preference. The clamped value is returned.
func (c *Controller[S]) SetTimeScale(scale float64) float64 {
	c.enter("SetTimeScale")
	return c.clock.SetScale(scale)
}

// SaveFile returns the path of the run file used by the save run and start
// replay commands.
func (c *Controller[S]) SaveFile() string {
	return c.Prefs.SaveFile.String()
}

// SetSaveFile changes the path of the run file used by the save run and start
// replay commands.
func (c *Controller[S]) SetSaveFile(path string) {
	c.Prefs.SaveFile.Set(path)
}
