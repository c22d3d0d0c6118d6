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
	"sync/atomic"
	"time"
)

// DefaultRate is the rate of the frame loop if no other rate is requested.
const DefaultRate float32 = 60.0

// Limiter paces the frame loop.
type Limiter struct {
	// whether to wait on each frame
	Active bool

	rate atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when SetRate() is called
	pulse *time.Ticker

	// waiting on the ticker every frame is expensive at high rates so the
	// limiter waits once for every pulseCtLimit frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the frame rate measurement
	measuringPulse *time.Ticker

	// the measured rate is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// nudge the limiter so that it doesn't wait for the specified number of
	// frames
	Nudge atomic.Int32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero or less is replaced by DefaultRate.
func NewLimiter(rate float32) *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Millisecond * 1000),
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.SetRate(rate)
	return lmtr
}

// Stop the limiter's tickers. The limiter should not be used after Stop().
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}

// Rate returns the requested number of frames per second.
func (lmtr *Limiter) Rate() float32 {
	return lmtr.rate.Load().(float32)
}

// Step returns the length of a frame in seconds. This is the delta time the
// frame loop passes to FixedUpdate().
func (lmtr *Limiter) Step() float64 {
	return 1.0 / float64(lmtr.Rate())
}

// SetRate sets the number of frames per second.
func (lmtr *Limiter) SetRate(rate float32) {
	if rate <= 0 {
		rate = DefaultRate
	}
	lmtr.rate.Store(rate)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(rate/20)
	lmtr.pulse.Reset(time.Duration(1000000000 / rate * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame. It will block until it is time for
// the next frame or until the context is done.
func (lmtr *Limiter) CheckFrame(ctx context.Context) error {
	lmtr.measureCt++

	if nudge := lmtr.Nudge.Load(); nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return nil
	}

	if !lmtr.Active {
		return nil
	}

	lmtr.pulseCt++
	if lmtr.pulseCt < lmtr.pulseCtLimit {
		return nil
	}
	lmtr.pulseCt = 0

	select {
	case <-lmtr.pulse.C:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// MeasureActual measures the frame rate on every tick of the measuring pulse.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}
