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
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/display"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Gopher8"

// SdlPlay is a simple SDL implementation of the gui.GUI interface. It also
// implements the hardware.PixelRenderer and hardware.AudioMixer interfaces.
type SdlPlay struct {
	prefs *display.Preferences

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// all audio is handled by the sound type
	snd *sound

	// events are sent on this channel. set with ReqSetEventChan
	events chan gui.Event

	// feature requests are serviced in the main thread
	featureReq chan featureRequest
	featureErr chan error

	// pixels are written by NewFrame() and copied to the texture by Service()
	crit     sync.Mutex
	pixels   []byte
	newFrame bool

	state govern.State
	title string
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(prefs *display.Preferences) (*SdlPlay, error) {
	scr := &SdlPlay{
		prefs:      prefs,
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
		pixels:     make([]byte, display.PixelsSize),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	setupService()

	// window is hidden until a ReqSetVisibility request
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		framebuffer.PhysicalWidth, framebuffer.PhysicalHeight,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// the renderer scales the physical grid to the size of the window
	err = scr.renderer.SetLogicalSize(framebuffer.PhysicalWidth, framebuffer.PhysicalHeight)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		framebuffer.PhysicalWidth, framebuffer.PhysicalHeight)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.snd, err = newSound()
	if err != nil {
		// carry on without sound
		logger.Log(logger.Allow, "sdlplay", err)
	}

	err = scr.setScale(prefs.Scale.Get().(float64))
	if err != nil {
		return nil, err
	}

	// blank the pixels until the first frame arrives
	var snap framebuffer.Snapshot
	fg, bg := prefs.Colours()
	display.Convert(scr.pixels, &snap, fg, bg)
	scr.newFrame = true

	return scr, nil
}

func (scr *SdlPlay) setScale(scale float64) error {
	if err := scr.prefs.Scale.Set(scale); err != nil {
		return err
	}
	scale = scr.prefs.Scale.Get().(float64)
	scr.window.SetSize(int32(framebuffer.PhysicalWidth*scale), int32(framebuffer.PhysicalHeight*scale))
	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// NewFrame implements the hardware.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frame hardware.Frame) error {
	fg, bg := scr.prefs.Colours()

	scr.crit.Lock()
	defer scr.crit.Unlock()

	display.Convert(scr.pixels, &frame.Pixels, fg, bg)
	scr.newFrame = true

	return nil
}

// EndRendering implements the hardware.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return nil
}

// SetAudio implements the hardware.AudioMixer interface.
func (scr *SdlPlay) SetAudio(samples []uint8) error {
	if scr.snd == nil {
		return nil
	}
	return scr.snd.queue(samples)
}

// EndMixing implements the hardware.AudioMixer interface.
func (scr *SdlPlay) EndMixing() error {
	if scr.snd == nil {
		return nil
	}
	scr.snd.pause()
	return nil
}

// Destroy the SDL resources.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	if scr.snd != nil {
		scr.snd.close()
	}

	if err := scr.texture.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}

	sdl.Quit()
}
