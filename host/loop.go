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

package host

import (
	"context"

	"github.com/jetsetilly/tasharness/logger"
	"github.com/jetsetilly/tasharness/tas"
	"github.com/jetsetilly/tasharness/userinput"
)

// Source is a supply of input events. Poll() returns false when there are no
// more events waiting.
type Source interface {
	Poll() (userinput.Event, bool)
}

// Harness is the part of tas.Controller used by the frame loop.
type Harness interface {
	HandleEvent(ev userinput.Event)
	Update(dt float64)
	FixedUpdate(dt float64)
	Draw(surface tas.Surface)
}

// Presenter is implemented by surfaces that need to be told when drawing for
// the frame has finished.
type Presenter interface {
	Present() error
}

// Loop runs the frame loop until the Source produces a Quit event or the
// context is done. An error from a Presenter ends the loop.
func Loop(ctx context.Context, harness Harness, src Source, surface tas.Surface, lmtr *Limiter) error {
	presenter, _ := surface.(Presenter)

	var frames int
	defer func() {
		logger.Logf(logger.Allow, "host", "loop ended after %d frames", frames)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		for {
			ev, ok := src.Poll()
			if !ok {
				break
			}
			if ev.Kind == userinput.KindQuit {
				return nil
			}
			harness.HandleEvent(ev)
		}

		harness.Update(lmtr.Step())
		harness.FixedUpdate(lmtr.Step())
		harness.Draw(surface)

		if presenter != nil {
			if err := presenter.Present(); err != nil {
				return err
			}
		}

		frames++

		if err := lmtr.CheckFrame(ctx); err != nil {
			return err
		}
		lmtr.MeasureActual()
	}
}
