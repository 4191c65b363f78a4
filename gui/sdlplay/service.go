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


package sdlplay

import (
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and are of no
	// use to us
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the GuiCreator interface of the main package.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.sendEvent(gui.EventWindowClose{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			mod := gui.KeyModNone
			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = gui.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				scr.sendEvent(gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  mod,
					Down: true})
			case sdl.KEYUP:
				scr.sendEvent(gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  mod,
					Down: false})
			}
		}
	}

	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequests(r)
	default:
	}

	scr.present()
}

// events are dropped if there is no event channel or if the channel is full
func (scr *SdlPlay) sendEvent(ev gui.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "dropped event %T", ev)
	}
}

// copy the most recent frame to the texture and present it. does nothing if
// there has been no new frame since the last call
func (scr *SdlPlay) present() {
	scr.crit.Lock()
	if !scr.newFrame {
		scr.crit.Unlock()
		return
	}
	scr.newFrame = false

	pixels, _, err := scr.texture.Lock(nil)
	if err == nil {
		copy(pixels, scr.pixels)
		scr.texture.Unlock()
	}
	scr.crit.Unlock()

	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}

	err = scr.renderer.Clear()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}
	scr.renderer.Present()
}
