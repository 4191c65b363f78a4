// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


// Package limiter provides a rough and ready way of limiting the emulation to
// a fixed number of frames per second. It also measures the actual rate.
//
// A new Limiter can be created and used like this:
//
//	lmtr := limiter.NewLimiter(60)
//	for {
//		runFrame()
//		lmtr.CheckFrame()
//		lmtr.MeasureActual()
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter will pause the caller of CheckFrame() as required to keep to the
// frame rate.
type Limiter struct {
	// whether to wait for fps limited each frame
	Active bool

	// the ideal number of frames per second. the value given to SetLimit()
	IdealFPS atomic.Value // float64

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// the limiter waits for the pulse every pulseCtLimit frames. waiting for
	// every frame is too fine grained for the ticker
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float64
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type.
func NewLimiter(fps float64) *Limiter {
	lmtr := &Limiter{}
	lmtr.Active = true
	lmtr.IdealFPS.Store(0.0)
	lmtr.Measured.Store(0.0)

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(fps)

	return lmtr
}

// SetLimit changes the frame rate. A value of zero or less is ignored.
func (lmtr *Limiter) SetLimit(fps float64) {
	if fps <= 0.0 {
		return
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float64(time.Second) / fps * float64(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if !lmtr.Active {
		return
	}

	lmtr.pulseCt++
	if lmtr.pulseCt >= lmtr.pulseCtLimit {
		lmtr.pulseCt = 0
		<-lmtr.pulse.C
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse
// ticker. Checking the pulse channel is itself expensive so it should not be
// called more often than once per frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float64(lmtr.measureCt) / t.Sub(lmtr.measureTime).Seconds()
		lmtr.Measured.Store(m)

		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The Limiter should not be used after Stop() has
// been called.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
