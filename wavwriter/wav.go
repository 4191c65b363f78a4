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


// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/logger"
)

// the audio format value for PCM data in the WAV header
const pcmFormat = 1

// WavWriter implements the hardware.AudioMixer interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, audio.SampleRate),
	}

	return aw, nil
}

// SetAudio implements the hardware.AudioMixer interface.
func (aw *WavWriter) SetAudio(samples []uint8) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// NumSamples returns the number of samples buffered so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing implements the hardware.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, audio.SampleRate, audio.BitDepth, audio.Channels, pcmFormat)
	if enc == nil {
		return fmt.Errorf("wavwriter: bad parameters for wav encoding")
	}
	defer func() {
		err := enc.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: audio.Channels,
			SampleRate:  audio.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: audio.BitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)
	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
