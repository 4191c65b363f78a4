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
	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames in the audio device's buffer
const bufferLength = 512

// samples are not queued if the device already has this many queued. stops
// the audio lagging behind the video if the emulation runs fast
const maxQueued = audio.SampleRate / 10

// sound outputs the machine's audio using an SDL audio device.
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

// prerequisite: SDL_INIT_AUDIO must be included in the call to sdl.Init()
func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: audio.Channels,
		Samples:  bufferLength,
	}

	var err error
	snd.id, err = sdl.OpenAudioDevice("", false, spec, &snd.spec, 0)
	if err != nil {
		return nil, err
	}

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

func (snd *sound) queue(samples []uint8) error {
	if sdl.GetQueuedAudioSize(snd.id) > maxQueued {
		logger.Log(logger.Allow, "sdlplay", "audio queue full. samples dropped")
		return nil
	}
	return sdl.QueueAudio(snd.id, samples)
}

func (snd *sound) pause() {
	sdl.ClearQueuedAudio(snd.id)
	sdl.PauseAudioDevice(snd.id, true)
}

func (snd *sound) close() {
	sdl.CloseAudioDevice(snd.id)
}
