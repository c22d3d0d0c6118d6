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
	"io"

	"github.com/jetsetilly/tasharness/bindings"
	"github.com/jetsetilly/tasharness/checkpoint"
	"github.com/jetsetilly/tasharness/clock"
	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/eventlog"
	"github.com/jetsetilly/tasharness/logger"
	"github.com/jetsetilly/tasharness/notifications"
	"github.com/jetsetilly/tasharness/prefs"
	"github.com/jetsetilly/tasharness/replay"
	"github.com/jetsetilly/tasharness/userinput"
)

// Sentinal error patterns.
const (
	Reentry = "tas: %s called from inside a subject callback"
)

// undo is the state of the Controller before the most recent LoadState().
type undo[S any] struct {
	initial S
	state   S
	frame   int
	log     eventlog.Log
	held    userinput.Held
}

// Controller records and replays the inputs of a Subject. The zero value is
// not usable, use NewController().
type Controller[S any] struct {
	subject   Subject[S]
	transport Transport
	notify    notifications.Notify
	perm      logger.Permission

	Prefs *Preferences

	clock *clock.Clock

	// the state the current recording started from
	initial S

	// every input applied to the subject since the start of the recording
	log eventlog.Log

	// keys and buttons held in the simulation
	held userinput.Held

	// inputs received since the last tick
	queue []userinput.Event

	states *checkpoint.Store[S]
	closer io.Closer

	// nil if no run is being replayed
	replay *replay.Replay

	// nil if there is no load to undo
	undo *undo[S]

	bindings bindings.Bindings
	modifier userinput.Key

	paused  bool
	capture bool

	// true while a subject method is running
	busy bool

	// size of the surface the last time Draw() was called
	width  int
	height int
}

// NewController is the preferred method of initialisation for the Controller
// type. The subject's current state is the initial state of the recording.
//
// Checkpoints are restored from the backend named in the preferences. A
// missing or unreadable checkpoint file is logged and the store will start
// empty.
func NewController[S any](subject Subject[S], transport Transport, p *Preferences, perm logger.Permission) (*Controller[S], error) {
	c := &Controller[S]{
		subject:   subject,
		transport: transport,
		perm:      perm,
		Prefs:     p,
		held:      userinput.NewHeld(),
	}

	c.clock = clock.NewClock(p.MaxTimeScale.Get().(float64))
	p.MaxTimeScale.SetHookPost(func(v prefs.Value) error {
		c.clock.SetMaxScale(v.(float64))
		return nil
	})

	c.modifier = userinput.NormaliseKey(p.Modifier.String())
	p.Modifier.SetHookPost(func(v prefs.Value) error {
		c.modifier = userinput.NormaliseKey(v.(string))
		return nil
	})

	var err error
	if pth := p.BindingsFile.String(); pth != "" {
		c.bindings, err = bindings.Load(pth, true)
		if err != nil {
			return nil, err
		}
	} else {
		c.bindings = bindings.Default()
	}

	backend, closer, err := newBackend[S](p)
	if err != nil {
		return nil, err
	}
	c.closer = closer

	c.states = checkpoint.NewStore(backend, perm)
	_ = c.states.Restore()

	c.paused = p.StartPaused.Get().(bool)
	c.initial = c.save()

	return c, nil
}

func newBackend[S any](p *Preferences) (checkpoint.Backend[S], io.Closer, error) {
	pth := p.StatesFile.String()
	if pth == "" {
		return &checkpoint.Memory[S]{}, nil, nil
	}

	switch p.StatesBackend.String() {
	case BackendSQLite:
		b, err := checkpoint.NewSQLite[S](pth)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	case BackendMemory:
		return &checkpoint.Memory[S]{}, nil, nil
	}

	return checkpoint.JSONFile[S]{Path: pth}, nil, nil
}

// Close releases any resources held by the checkpoint backend.
func (c *Controller[S]) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// SetNotify sets the recipient of notices. A nil value stops notices being
// sent.
func (c *Controller[S]) SetNotify(notify notifications.Notify) {
	c.notify = notify
}

func (c *Controller[S]) sendNotice(notice notifications.Notice) {
	if c.notify == nil {
		return
	}
	if err := c.notify.Notify(notice); err != nil {
		logger.Log(c.perm, "tas", err)
	}
}

// enter panics if the Controller is being called from a subject method.
func (c *Controller[S]) enter(op string) {
	if c.busy {
		panic(curated.Errorf(Reentry, op))
	}
}

// call runs f with the re-entrancy guard set.
func (c *Controller[S]) call(f func()) {
	c.busy = true
	defer func() {
		c.busy = false
	}()
	f()
}

func (c *Controller[S]) save() S {
	var s S
	c.call(func() {
		s = c.subject.Save()
	})
	return s
}

func (c *Controller[S]) load(s S) {
	c.call(func() {
		c.subject.Load(s)
	})
}

// syncHeld sends the simulation's held keys and buttons to the transport.
func (c *Controller[S]) syncHeld() {
	c.transport.SetPressedKeys(c.held.Keys.Clone())
	c.transport.SetPressedButtons(c.held.Buttons.Clone())
}

func (c *Controller[S]) setCapture(capture bool) {
	if c.capture == capture {
		return
	}
	c.capture = capture
	if capture {
		c.sendNotice(notifications.NotifyCaptureOn)
	} else {
		c.sendNotice(notifications.NotifyCaptureOff)
	}
}

// releaseCapture leaves capture mode if the host says the modifier is no
// longer held. this happens when the key up event is lost, for example when
// the window loses focus.
func (c *Controller[S]) releaseCapture() {
	if c.capture && !c.transport.IsKeyHeld(c.modifier) {
		c.setCapture(false)
	}
}

// HandleEvent should be called by the host for every input event.
func (c *Controller[S]) HandleEvent(ev userinput.Event) {
	c.enter("HandleEvent")

	if ev.Kind == userinput.KindQuit {
		return
	}

	// an event that cannot be serialised would prevent the log from ever
	// being saved
	if !ev.Kind.Valid() {
		logger.Logf(c.perm, "tas", "dropped event of unknown kind (%s)", ev.Kind)
		return
	}

	if ev.Key == c.modifier {
		switch ev.Kind {
		case userinput.KindKeyDown:
			c.setCapture(true)
			return
		case userinput.KindKeyUp:
			c.setCapture(false)
			return
		}
	}

	c.releaseCapture()

	if c.capture {
		if ev.Kind == userinput.KindKeyDown && !ev.Repeat {
			if cmd, ok := c.bindings.Lookup(ev.Key); ok {
				c.dispatch(cmd)
			}
		}
		return
	}

	if c.replay != nil {
		return
	}

	c.queue = append(c.queue, ev)
}

// Update should be called by the host once per host frame. The subject's
// Update() is not called here; it runs once per tick from FixedUpdate() so
// that replays are not affected by the host frame rate.
func (c *Controller[S]) Update(_ float64) {
	c.enter("Update")
}

// FixedUpdate should be called by the host at a fixed rate. The delta time of
// the first call is used as the length of a tick.
func (c *Controller[S]) FixedUpdate(dt float64) {
	c.enter("FixedUpdate")

	c.clock.Observe(dt)
	c.releaseCapture()

	if c.paused || c.capture {
		return
	}

	for range c.clock.Advance(dt) {
		if !c.nextFrame() {
			break
		}
	}
}

// nextFrame runs one tick. Returns false if the tick could not be run because
// the replay has been exhausted.
func (c *Controller[S]) nextFrame() bool {
	var inputs []userinput.Event

	if c.replay != nil {
		var ok bool
		inputs, ok = c.replay.Next()
		if !ok {
			logger.Logf(c.perm, "replay", "finished after %d frames", c.replay.Frame())
			c.setPaused(true)
			c.sendNotice(notifications.NotifyReplayEnded)
			return false
		}
		c.replay.Advance()
	} else {
		inputs = c.queue
		c.queue = nil
	}

	for _, ev := range inputs {
		c.held.Apply(ev)
		c.syncHeld()
		c.call(func() {
			c.subject.HandleEvent(ev)
		})
	}

	c.log.Record(inputs)

	step := c.clock.Step()
	c.call(func() {
		c.subject.Update(step)
		c.subject.FixedUpdate(step)
	})
	c.clock.Tick()

	return true
}

// Draw should be called by the host when the subject is to be drawn.
func (c *Controller[S]) Draw(surface Surface) {
	c.enter("Draw")
	c.width, c.height = surface.Size()
	c.call(func() {
		c.subject.Draw(surface)
	})
}
