package audiosys

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sndctl/sndctl/internal/apperrors"
	"github.com/sndctl/sndctl/internal/device"
)

const sinksJSON = `[
  {"index": 55, "name": "alsa_output.pci-0000_00_1f.3.analog-stereo", "description": "Built-in Audio Analog Stereo", "mute": false},
  {"index": 71, "name": "bluez_output.14_61_02_9F_34_7D.1", "description": "AirPods Max", "mute": true}
]`

const sourcesJSON = `[
  {"index": 56, "name": "alsa_output.pci-0000_00_1f.3.analog-stereo.monitor", "description": "Monitor of Built-in Audio", "mute": false},
  {"index": 62, "name": "alsa_input.usb-Webcam-02.mono-fallback", "description": "Webcam Microphone", "mute": false}
]`

// scriptedRunner returns canned pactl output keyed by the joined argument
// string and records every invocation.
type scriptedRunner struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (r *scriptedRunner) run(args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	r.calls = append(r.calls, key)
	if err := r.errs[key]; err != nil {
		return nil, err
	}
	out, ok := r.responses[key]
	if !ok {
		return nil, errors.New("unexpected pactl invocation: " + key)
	}
	return []byte(out), nil
}

func newScriptedBackend() (*PulseBackend, *scriptedRunner) {
	r := &scriptedRunner{
		responses: map[string]string{
			"-f json list sinks":   sinksJSON,
			"-f json list sources": sourcesJSON,
		},
		errs: map[string]error{},
	}
	return &PulseBackend{run: r.run}, r
}

func TestParsePactlList(t *testing.T) {
	t.Run("sinks become outputs", func(t *testing.T) {
		entries, err := parsePactlList([]byte(sinksJSON), device.Output)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, device.Handle(55), entries[0].Handle)
		assert.Equal(t, "Built-in Audio Analog Stereo", entries[0].Name)
		assert.Equal(t, "alsa_output.pci-0000_00_1f.3.analog-stereo", entries[0].UID)
		assert.Equal(t, device.Output, entries[0].Direction)
		assert.False(t, entries[0].Muted)
		assert.True(t, entries[1].Muted)
	})

	t.Run("monitor sources are dropped", func(t *testing.T) {
		entries, err := parsePactlList([]byte(sourcesJSON), device.Input)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Webcam Microphone", entries[0].Name)
	})

	t.Run("malformed json errors", func(t *testing.T) {
		_, err := parsePactlList([]byte("not json"), device.Output)
		assert.Error(t, err)
	})
}

func TestPulseBackendMetadata(t *testing.T) {
	b, _ := newScriptedBackend()

	handles, err := b.Handles()
	require.NoError(t, err)
	assert.Len(t, handles, 3) // two sinks + one real source

	name, err := b.DeviceName(71)
	require.NoError(t, err)
	assert.Equal(t, "AirPods Max", name)

	uid, err := b.DeviceUID(62)
	require.NoError(t, err)
	assert.Equal(t, "alsa_input.usb-Webcam-02.mono-fallback", uid)

	_, err = b.DeviceName(999)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrorCodePropertyError))
}

func TestPulseBackendSupportsDirection(t *testing.T) {
	b, _ := newScriptedBackend()

	tests := []struct {
		handle device.Handle
		dir    device.Direction
		want   bool
	}{
		{55, device.Output, true},
		{55, device.System, true},
		{55, device.Input, false},
		{62, device.Input, true},
		{62, device.Output, false},
		{62, device.Any, true},
	}
	for _, tt := range tests {
		got, err := b.SupportsDirection(tt.handle, tt.dir)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "handle %d dir %s", tt.handle, tt.dir)
	}
}

func TestPulseBackendDefaultDevice(t *testing.T) {
	t.Run("resolves the default sink to a handle", func(t *testing.T) {
		b, r := newScriptedBackend()
		r.responses["get-default-sink"] = "bluez_output.14_61_02_9F_34_7D.1\n"

		h, err := b.DefaultDevice(device.Output)
		require.NoError(t, err)
		assert.Equal(t, device.Handle(71), h)
	})

	t.Run("system uses the default sink", func(t *testing.T) {
		b, r := newScriptedBackend()
		r.responses["get-default-sink"] = "alsa_output.pci-0000_00_1f.3.analog-stereo\n"

		h, err := b.DefaultDevice(device.System)
		require.NoError(t, err)
		assert.Equal(t, device.Handle(55), h)
	})

	t.Run("input uses the default source", func(t *testing.T) {
		b, r := newScriptedBackend()
		r.responses["get-default-source"] = "alsa_input.usb-Webcam-02.mono-fallback\n"

		h, err := b.DefaultDevice(device.Input)
		require.NoError(t, err)
		assert.Equal(t, device.Handle(62), h)
	})

	t.Run("any is rejected", func(t *testing.T) {
		b, _ := newScriptedBackend()
		_, err := b.DefaultDevice(device.Any)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrorCodeInvalidDeviceType))
	})
}

func TestPulseBackendSetDefaultDevice(t *testing.T) {
	b, r := newScriptedBackend()
	r.responses["set-default-sink bluez_output.14_61_02_9F_34_7D.1"] = ""
	r.responses["set-default-source alsa_input.usb-Webcam-02.mono-fallback"] = ""

	require.NoError(t, b.SetDefaultDevice(71, device.Output))
	require.NoError(t, b.SetDefaultDevice(62, device.Input))
	assert.Contains(t, r.calls, "set-default-sink bluez_output.14_61_02_9F_34_7D.1")
	assert.Contains(t, r.calls, "set-default-source alsa_input.usb-Webcam-02.mono-fallback")

	t.Run("failure becomes a property error", func(t *testing.T) {
		b, r := newScriptedBackend()
		r.errs["set-default-sink bluez_output.14_61_02_9F_34_7D.1"] = errors.New("refused")

		err := b.SetDefaultDevice(71, device.Output)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrorCodePropertyError))
	})
}

func TestPulseBackendMute(t *testing.T) {
	b, r := newScriptedBackend()
	r.responses["set-sink-mute alsa_output.pci-0000_00_1f.3.analog-stereo 1"] = ""
	r.responses["set-source-mute alsa_input.usb-Webcam-02.mono-fallback 0"] = ""

	muted, err := b.Mute(71)
	require.NoError(t, err)
	assert.True(t, muted)

	require.NoError(t, b.SetMute(55, true))
	muted, err = b.Mute(55)
	require.NoError(t, err)
	assert.True(t, muted)

	require.NoError(t, b.SetMute(62, false))
	assert.Contains(t, r.calls, "set-source-mute alsa_input.usb-Webcam-02.mono-fallback 0")
}

func TestPulseBackendEnumerationFailure(t *testing.T) {
	r := &scriptedRunner{
		responses: map[string]string{},
		errs:      map[string]error{"-f json list sinks": errors.New("no server")},
	}
	b := &PulseBackend{run: r.run}

	_, err := b.Handles()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrorCodePropertyError))
}
