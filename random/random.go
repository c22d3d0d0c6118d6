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

package random

import (
	"math/rand"
	"time"
)

// NewSeed returns a seed based on the current time.
func NewSeed() int64 {
	return int64(time.Now().Nanosecond())
}

// Ticker is the source of the current tick.
type Ticker interface {
	Tick() int
}

// Random is a random number generator that is sensitive to simulation time.
type Random struct {
	ticker Ticker

	// the seed is combined with the tick number to seed the generator
	Seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(ticker Ticker, seed int64) *Random {
	return &Random{
		ticker: ticker,
		Seed:   seed,
	}
}

// new RNG from the standard library
func (rnd *Random) rand(salt int) *rand.Rand {
	return rand.New(rand.NewSource(rnd.Seed + int64(rnd.ticker.Tick())<<8 + int64(salt)))
}

// Intn returns a number in the range 0 to n-1 for the current tick. Calls
// with different values of salt during the same tick return independent
// numbers.
func (rnd *Random) Intn(n int, salt int) int {
	return rnd.rand(salt).Intn(n)
}
