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


package playmode

import (
	"context"
	"fmt"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// the number of events that can be queued by the GUI
const eventQueueLen = 64

type playmode struct {
	ctx    context.Context
	m      *hardware.Machine
	scr    gui.GUI
	keys   *peripherals.Keypad
	keyMap peripherals.KeyMap
	lmtr   *limiter.Limiter

	events chan gui.Event
	state  govern.State
}

// Play sets the emulation running. The machine should already have a program
// loaded. The keypad should be the same instance given to the machine as the
// input collaborator.
func Play(ctx context.Context, m *hardware.Machine, scr gui.GUI, keys *peripherals.Keypad, keyMap peripherals.KeyMap) error {
	if keyMap == nil {
		keyMap = peripherals.DefaultKeyMap
	}

	pl := &playmode{
		ctx:    ctx,
		m:      m,
		scr:    scr,
		keys:   keys,
		keyMap: keyMap,
		lmtr:   limiter.NewLimiter(m.Preferences().FPS.Get().(float64)),
		events: make(chan gui.Event, eventQueueLen),
	}
	defer pl.lmtr.Stop()

	err := scr.SetFeature(gui.ReqSetEventChan, pl.events)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	err = pl.setState(govern.Running)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	err = m.Run(pl.continueCheck)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	err = pl.setState(govern.Ending)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	return nil
}

func (pl *playmode) setState(state govern.State) error {
	pl.state = state
	return pl.scr.SetFeature(gui.ReqState, state)
}

// continueCheck is called by hardware.Machine.Run() at the end of every frame
func (pl *playmode) continueCheck() (govern.State, error) {
	pl.lmtr.CheckFrame()
	pl.lmtr.MeasureActual()

	select {
	case <-pl.ctx.Done():
		return govern.Ending, nil
	default:
	}

	for {
		select {
		case ev := <-pl.events:
			err := pl.handleEvent(ev)
			if err != nil {
				return govern.Ending, err
			}
		default:
			return pl.state, nil
		}
	}
}
