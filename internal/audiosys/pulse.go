// ABOUTME: PulseAudio/PipeWire backend driven through pactl.
// ABOUTME: Sinks are output devices, sources input; System maps to Output.

package audiosys

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sndctl/sndctl/internal/apperrors"
	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/logging"
)

// commandRunner executes pactl with the given arguments. Injectable for tests.
type commandRunner func(args ...string) ([]byte, error)

func runPactl(args ...string) ([]byte, error) {
	out, err := exec.Command("pactl", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("pactl %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

// pulseEntry is one enumerated sink or source.
type pulseEntry struct {
	Handle      device.Handle
	Name        string
	UID         string
	Direction   device.Direction
	Muted       bool
	DefaultFlag bool
}

// PulseBackend talks to a PulseAudio or PipeWire server via pactl. The device
// snapshot is taken once per backend instance; the tool is single-shot, so a
// backend never outlives one command invocation.
type PulseBackend struct {
	run commandRunner

	loaded  bool
	loadErr error
	entries map[device.Handle]*pulseEntry
}

// NewPulseBackend returns a backend using the pactl binary on PATH.
func NewPulseBackend() *PulseBackend {
	return &PulseBackend{run: runPactl}
}

func (b *PulseBackend) snapshot() (map[device.Handle]*pulseEntry, error) {
	if b.loaded {
		return b.entries, b.loadErr
	}
	b.loaded = true
	b.entries = make(map[device.Handle]*pulseEntry)

	for _, kind := range []struct {
		object string
		dir    device.Direction
	}{
		{"sinks", device.Output},
		{"sources", device.Input},
	} {
		out, err := b.run("-f", "json", "list", kind.object)
		if err != nil {
			b.loadErr = apperrors.NewPropertyError("enumerate "+kind.object, err)
			return b.entries, b.loadErr
		}
		entries, err := parsePactlList(out, kind.dir)
		if err != nil {
			b.loadErr = apperrors.NewPropertyError("parse pactl "+kind.object, err)
			return b.entries, b.loadErr
		}
		for _, e := range entries {
			e := e
			if _, dup := b.entries[e.Handle]; dup {
				// PipeWire assigns registry-global ids; a collision means a
				// plain PulseAudio server reused an index across object types.
				logging.Debug("skipping device with duplicate handle %d: %s", e.Handle, e.UID)
				continue
			}
			b.entries[e.Handle] = &e
		}
	}
	return b.entries, nil
}

// parsePactlList decodes `pactl -f json list sinks|sources` output. Monitor
// sources mirror sink output and are not selectable devices, so they are
// dropped.
func parsePactlList(data []byte, dir device.Direction) ([]pulseEntry, error) {
	var raw []struct {
		Index       uint32 `json:"index"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Mute        bool   `json:"mute"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	entries := make([]pulseEntry, 0, len(raw))
	for _, r := range raw {
		if dir == device.Input && strings.HasSuffix(r.Name, ".monitor") {
			continue
		}
		entries = append(entries, pulseEntry{
			Handle:    device.Handle(r.Index),
			Name:      r.Description,
			UID:       r.Name,
			Direction: dir,
			Muted:     r.Mute,
		})
	}
	return entries, nil
}

func (b *PulseBackend) entry(h device.Handle) (*pulseEntry, error) {
	entries, err := b.snapshot()
	if err != nil {
		return nil, err
	}
	e, ok := entries[h]
	if !ok {
		return nil, apperrors.NewPropertyError(fmt.Sprintf("unknown device handle %d", h), nil)
	}
	return e, nil
}

func (b *PulseBackend) Handles() ([]device.Handle, error) {
	entries, err := b.snapshot()
	if err != nil {
		return nil, err
	}
	handles := make([]device.Handle, 0, len(entries))
	for h := range entries {
		handles = append(handles, h)
	}
	return handles, nil
}

func (b *PulseBackend) DeviceName(h device.Handle) (string, error) {
	e, err := b.entry(h)
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

func (b *PulseBackend) DeviceUID(h device.Handle) (string, error) {
	e, err := b.entry(h)
	if err != nil {
		return "", err
	}
	return e.UID, nil
}

func (b *PulseBackend) SupportsDirection(h device.Handle, dir device.Direction) (bool, error) {
	e, err := b.entry(h)
	if err != nil {
		return false, err
	}
	switch dir {
	case device.Input:
		return e.Direction == device.Input, nil
	case device.Output, device.System:
		return e.Direction == device.Output, nil
	case device.Any:
		return true, nil
	default:
		return false, apperrors.NewInvalidDeviceType(fmt.Sprintf("unknown direction %v", dir))
	}
}

func (b *PulseBackend) DefaultDevice(dir device.Direction) (device.Handle, error) {
	query := "get-default-sink"
	if dir == device.Input {
		query = "get-default-source"
	} else if dir == device.Any {
		return 0, apperrors.NewInvalidDeviceType("a default device needs a concrete direction")
	}

	out, err := b.run(query)
	if err != nil {
		return 0, apperrors.NewPropertyError("read default device", err)
	}
	uid := strings.TrimSpace(string(out))

	entries, err := b.snapshot()
	if err != nil {
		return 0, err
	}
	for h, e := range entries {
		if e.UID == uid {
			return h, nil
		}
	}
	return 0, apperrors.NewPropertyError(fmt.Sprintf("default device %q not in enumeration", uid), nil)
}

func (b *PulseBackend) SetDefaultDevice(h device.Handle, dir device.Direction) error {
	e, err := b.entry(h)
	if err != nil {
		return err
	}
	cmd := "set-default-sink"
	if dir == device.Input {
		cmd = "set-default-source"
	} else if dir == device.Any {
		return apperrors.NewInvalidDeviceType("a default device needs a concrete direction")
	}
	if _, err := b.run(cmd, e.UID); err != nil {
		return apperrors.NewPropertyError("set default device "+e.UID, err)
	}
	return nil
}

func (b *PulseBackend) Mute(h device.Handle) (bool, error) {
	e, err := b.entry(h)
	if err != nil {
		return false, err
	}
	return e.Muted, nil
}

func (b *PulseBackend) SetMute(h device.Handle, muted bool) error {
	e, err := b.entry(h)
	if err != nil {
		return err
	}
	cmd := "set-sink-mute"
	if e.Direction == device.Input {
		cmd = "set-source-mute"
	}
	arg := "0"
	if muted {
		arg = "1"
	}
	if _, err := b.run(cmd, e.UID, arg); err != nil {
		return apperrors.NewPropertyError("set mute on "+e.UID, err)
	}
	e.Muted = muted
	return nil
}
