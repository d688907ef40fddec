// ABOUTME: Plays a sound file on a chosen output device to verify a switch.
// ABOUTME: Decodes via beep/go-audio, outputs through malgo (miniaudio).

package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unsafe"

	"github.com/gen2brain/malgo"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/sndctl/sndctl/internal/logging"
)

// playbackTimeout bounds how long a single confirmation sound may run.
const playbackTimeout = 30 * time.Second

// Player plays decoded audio on one output device.
type Player struct {
	ctx        *malgo.AllocatedContext
	deviceID   unsafe.Pointer
	deviceName string
	volume     float64
}

// New creates a player for the named output device. An empty name selects
// the system default. Volume is a linear gain in [0, 1].
func New(deviceName string, volume float64) (*Player, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("init audio context: %w", err)
	}

	p := &Player{ctx: ctx, deviceName: deviceName, volume: volume}
	if deviceName == "" {
		return p, nil
	}

	devices, err := ctx.Devices(malgo.Playback)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("enumerate playback devices: %w", err)
	}
	for _, dev := range devices {
		if dev.Name() == deviceName {
			p.deviceID = dev.ID.Pointer()
			return p, nil
		}
	}
	p.Close()
	return nil, fmt.Errorf("playback device not found: %s", deviceName)
}

// Close releases the audio context.
func (p *Player) Close() error {
	if p.ctx != nil {
		_ = p.ctx.Uninit()
		p.ctx.Free()
		p.ctx = nil
	}
	return nil
}

// Play decodes soundPath and plays it to completion.
func (p *Player) Play(soundPath string) error {
	samples, sampleRate, channels, err := decodeFile(soundPath)
	if err != nil {
		return fmt.Errorf("decode %s: %w", soundPath, err)
	}

	if p.volume < 1.0 {
		for i := range samples {
			samples[i] = int16(float64(samples[i]) * p.volume)
		}
	}
	data := samplesToBytes(samples)

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatS16
	cfg.Playback.Channels = uint32(channels)
	cfg.SampleRate = sampleRate
	// Larger buffer avoids crackling on bluetooth devices.
	cfg.PeriodSizeInFrames = 4096
	cfg.Periods = 4
	cfg.Alsa.NoMMap = 1
	if p.deviceID != nil {
		cfg.Playback.DeviceID = p.deviceID
	}

	var pos int
	done := make(chan struct{})
	var doneOnce sync.Once

	callbacks := malgo.DeviceCallbacks{
		Data: func(out, _ []byte, frameCount uint32) {
			n := int(frameCount) * channels * 2
			if pos+n > len(data) {
				n = len(data) - pos
			}
			if n > 0 {
				copy(out, data[pos:pos+n])
				pos += n
			}
			for i := n; i < len(out); i++ {
				out[i] = 0
			}
			if pos >= len(data) {
				doneOnce.Do(func() { close(done) })
			}
		},
	}

	dev, err := malgo.InitDevice(p.ctx.Context, cfg, callbacks)
	if err != nil {
		return fmt.Errorf("init playback device: %w", err)
	}
	defer dev.Uninit()

	if err := dev.Start(); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}

	select {
	case <-done:
		// Let the buffer drain before tearing the device down.
		time.Sleep(200 * time.Millisecond)
		logging.Debug("playback finished: %s", soundPath)
	case <-time.After(playbackTimeout):
		logging.Warn("playback timed out: %s", soundPath)
	}
	_ = dev.Stop()
	return nil
}

// decodeFile decodes a sound file into interleaved 16-bit samples.
func decodeFile(soundPath string) ([]int16, uint32, int, error) {
	f, err := os.Open(soundPath)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	var decode func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)
	switch ext := strings.ToLower(filepath.Ext(soundPath)); ext {
	case ".mp3":
		decode = mp3.Decode
	case ".wav":
		decode = func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(rc)
		}
	case ".flac":
		decode = func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return flac.Decode(rc)
		}
	case ".ogg":
		decode = func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return vorbis.Decode(rc)
		}
	case ".aiff", ".aif":
		return decodeAIFF(f)
	default:
		return nil, 0, 0, fmt.Errorf("unsupported audio format: %s", ext)
	}

	streamer, format, err := decode(f)
	if err != nil {
		return nil, 0, 0, err
	}
	defer streamer.Close()

	samples := drainStream(streamer, format.NumChannels)
	return samples, uint32(int(format.SampleRate)), format.NumChannels, nil
}

func drainStream(streamer beep.Streamer, channels int) []int16 {
	var all []int16
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		if n == 0 {
			break
		}
		for i := 0; i < n; i++ {
			all = append(all, int16(buf[i][0]*32767))
			if channels >= 2 {
				all = append(all, int16(buf[i][1]*32767))
			}
		}
		if !ok {
			break
		}
	}
	return all
}

func decodeAIFF(f *os.File) ([]int16, uint32, int, error) {
	decoder := aiff.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("invalid AIFF file")
	}
	decoder.ReadInfo()

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("read AIFF data: %w", err)
	}
	samples := rescaleToS16(buf, int(decoder.BitDepth))
	return samples, uint32(decoder.SampleRate), int(decoder.NumChans), nil
}

// rescaleToS16 converts a go-audio IntBuffer of the given source bit depth
// into 16-bit samples.
func rescaleToS16(buf *audio.IntBuffer, bitDepth int) []int16 {
	samples := make([]int16, len(buf.Data))
	shift := 0
	switch bitDepth {
	case 8:
		shift = 8 // widen
	case 24:
		shift = -8
	case 32:
		shift = -16
	}
	for i, v := range buf.Data {
		if shift > 0 {
			samples[i] = int16(v << shift)
		} else if shift < 0 {
			samples[i] = int16(v >> -shift)
		} else {
			samples[i] = int16(v)
		}
	}
	return samples
}

// samplesToBytes lays out int16 samples little-endian for the device buffer.
func samplesToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[i*2] = byte(s)
		out[i*2+1] = byte(s >> 8)
	}
	return out
}
