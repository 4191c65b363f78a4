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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Leadtime is the amount of time the emulation runs before a timed
// measurement begins. It allows the frame rate to settle down.
const Leadtime = 2 * time.Second

// Check the performance of the emulation using the supplied machine, which
// should already have a program loaded.
//
// If numFrames is greater than zero then the emulation runs for that number of
// frames and the duration argument is ignored. Otherwise the emulation runs for
// the duration, which is a string accepted by time.ParseDuration().
//
// Emulation will create a cpu, memory profile, a trace (or a combination of
// those) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, idealFPS float64, uncapped bool, duration string, numFrames int) error {
	var lmtr *limiter.Limiter
	if !uncapped {
		lmtr = limiter.NewLimiter(idealFPS)
		defer lmtr.Stop()
	}

	var numInstructions int
	var dur time.Duration

	var runner func() error

	if numFrames > 0 {
		runner = func() error {
			startInstructions := m.InstructionCount
			start := time.Now()
			err := m.RunForFrameCount(numFrames, func(_ int) (govern.State, error) {
				if lmtr != nil {
					lmtr.CheckFrame()
				}
				return govern.Running, nil
			})
			dur = time.Since(start)
			numInstructions = m.InstructionCount - startInstructions
			return err
		}
	} else {
		var err error
		dur, err = time.ParseDuration(duration)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}

		runner = func() error {
			startFrame := m.FrameNum
			startInstructions := m.InstructionCount

			// signals false when the leadtime has elapsed and true when the
			// measurement period has finished
			timerChan := make(chan bool, 2)
			time.AfterFunc(Leadtime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})

			err := m.Run(func() (govern.State, error) {
				if lmtr != nil {
					lmtr.CheckFrame()
				}
				select {
				case v := <-timerChan:
					if v {
						return govern.Ending, timedOut
					}
					startFrame = m.FrameNum
					startInstructions = m.InstructionCount
				default:
				}
				return govern.Running, nil
			})

			numFrames = m.FrameNum - startFrame
			numInstructions = m.InstructionCount - startInstructions
			return err
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(idealFPS, numFrames, dur.Seconds())
	ips := 0.0
	if dur > 0 {
		ips = float64(numInstructions) / dur.Seconds()
	}

	_, err = fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	_, err = fmt.Fprintf(output, "%.0f instructions per second\n", ips)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
