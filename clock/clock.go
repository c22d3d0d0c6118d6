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

package clock

import (
	"fmt"
	"math"
)

// DefaultMaxScale is the maximum time scale used if no other value is given.
const DefaultMaxScale = 10.0

// tolerance, in ticks, applied when counting the whole ticks in the
// accumulator.
const tolerance = 1e-9

// Clock is the simulation clock. The zero value is not usable, use
// NewClock().
type Clock struct {
	// length of a tick in seconds. zero until the first call to Observe()
	step float64

	// leftover time that has not yet been emitted as a tick
	acc float64

	// number of ticks since the start of the recording
	frame int

	scale    float64
	maxScale float64
}

// NewClock is the preferred method of initialisation for the Clock type. The
// time scale starts at 1.0.
func NewClock(maxScale float64) *Clock {
	if maxScale <= 0 {
		maxScale = DefaultMaxScale
	}
	return &Clock{
		scale:    1.0,
		maxScale: maxScale,
	}
}

func (c *Clock) String() string {
	return fmt.Sprintf("frame %d (%.3fs) x%.2f", c.frame, c.Time(), c.scale)
}

// Observe records the length of a tick from the delta time of the host's
// fixed update. Only the first non-zero value is used.
func (c *Clock) Observe(dt float64) {
	if c.step == 0 && dt > 0 {
		c.step = dt
	}
}

// Step returns the length of a tick in seconds. The value is zero if Observe()
// has not been called.
func (c *Clock) Step() float64 {
	return c.step
}

// SetStep sets the length of a tick. Used when a recorded run specifies the
// step it was recorded with.
func (c *Clock) SetStep(step float64) {
	if step > 0 {
		c.step = step
	}
}

// Advance adds the scaled delta time to the accumulator and returns the
// number of whole ticks that should be run. The ticks are removed from the
// accumulator but the frame counter is not changed. Use Tick() for each tick
// that is run.
func (c *Clock) Advance(dt float64) int {
	if c.step <= 0 || dt <= 0 || c.scale <= 0 {
		return 0
	}

	c.acc += dt * c.scale

	n := int(math.Floor(c.acc/c.step + tolerance))
	if n <= 0 {
		return 0
	}

	c.acc -= float64(n) * c.step

	// the tolerance can leave a tiny negative remainder
	if c.acc < 0 {
		c.acc = 0
	}

	return n
}

// Accumulator returns the time that has not yet been emitted as a tick.
func (c *Clock) Accumulator() float64 {
	return c.acc
}

// Tick increases the frame counter by one.
func (c *Clock) Tick() {
	c.frame++
}

// Frame returns the number of ticks since the start of the recording.
func (c *Clock) Frame() int {
	return c.frame
}

// SetFrame sets the frame counter. Used when a checkpoint is loaded.
func (c *Clock) SetFrame(frame int) {
	c.frame = max(frame, 0)
}

// Time returns the simulation time in seconds.
func (c *Clock) Time() float64 {
	return float64(c.frame) * c.step
}

// Scale returns the current time scale.
func (c *Clock) Scale() float64 {
	return c.scale
}

// SetScale sets the time scale. The value is clamped to the range zero to
// MaxScale() and the clamped value is returned.
func (c *Clock) SetScale(scale float64) float64 {
	if math.IsNaN(scale) {
		return c.scale
	}
	c.scale = min(max(scale, 0), c.maxScale)
	return c.scale
}

// MaxScale returns the maximum time scale.
func (c *Clock) MaxScale() float64 {
	return c.maxScale
}

// SetMaxScale changes the maximum time scale. The current time scale is
// clamped to the new maximum.
func (c *Clock) SetMaxScale(maxScale float64) {
	if maxScale <= 0 {
		maxScale = DefaultMaxScale
	}
	c.maxScale = maxScale
	c.SetScale(c.scale)
}

// Reset the frame counter and the accumulator. The step and time scale are
// unchanged.
func (c *Clock) Reset() {
	c.frame = 0
	c.acc = 0
}
