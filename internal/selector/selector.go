// ABOUTME: Device listing and identifier resolution over an audio backend.
// ABOUTME: Identifier dispatch order: MAC fragment, numeric handle, then name.

package selector

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sndctl/sndctl/internal/apperrors"
	"github.com/sndctl/sndctl/internal/audiosys"
	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/filter"
	"github.com/sndctl/sndctl/internal/logging"
	"github.com/sndctl/sndctl/internal/match"
)

// macPattern recognizes six 2-hex-digit groups joined by ":" or "-".
var macPattern = regexp.MustCompile(`^(?i)(?:[0-9a-f]{2}[:-]){5}[0-9a-f]{2}$`)

// Selector resolves loosely-specified device identifiers against one
// enumeration snapshot. Construct a fresh Selector per command invocation.
type Selector struct {
	backend audiosys.Backend
	rules   filter.Rules
}

func New(backend audiosys.Backend, rules filter.Rules) *Selector {
	return &Selector{backend: backend, rules: rules}
}

// List returns the filtered, sorted devices for the direction. It never
// fails: devices whose metadata cannot be read are skipped, and an
// enumeration failure yields an empty list.
func (s *Selector) List(dir device.Direction) []device.Device {
	handles, err := s.backend.Handles()
	if err != nil {
		logging.Warn("device enumeration failed: %v", err)
		return nil
	}

	var devices []device.Device
	for _, h := range handles {
		supported, err := s.backend.SupportsDirection(h, dir)
		if err != nil || !supported {
			continue
		}

		name, err := s.backend.DeviceName(h)
		if err != nil {
			logging.Debug("skipping device %d: name unavailable: %v", h, err)
			continue
		}
		uid, err := s.backend.DeviceUID(h)
		if err != nil {
			logging.Debug("skipping device %d: uid unavailable: %v", h, err)
			continue
		}

		d := device.Device{
			Handle:    h,
			Name:      name,
			UID:       uid,
			Direction: s.stampDirection(h, dir),
		}
		if s.rules.ShouldExclude(d) {
			continue
		}
		devices = append(devices, d)
	}

	device.Sort(devices)
	return devices
}

// stampDirection picks the direction recorded on a listed device. A concrete
// requested direction wins; for Any the device's own capability decides,
// preferring Input for duplex devices so the stamp is deterministic.
func (s *Selector) stampDirection(h device.Handle, requested device.Direction) device.Direction {
	if requested != device.Any {
		return requested
	}
	if in, err := s.backend.SupportsDirection(h, device.Input); err == nil && in {
		return device.Input
	}
	return device.Output
}

// Resolve maps a raw identifier to a device of the requested direction.
//
// MAC-like and numeric forms are tried first as a convenience but only
// succeed when a real device is found; on a miss they fall through, so a
// device literally named "93" stays reachable by name even when handle 93
// exists in another direction.
func (s *Selector) Resolve(raw string, dir device.Direction) (device.Device, error) {
	raw = strings.TrimSpace(raw)
	devices := s.List(dir)

	if macPattern.MatchString(raw) {
		if d, ok := findByUID(raw, devices); ok {
			return d, nil
		}
		logging.Debug("no device uid matches %q, falling through", raw)
	}

	if handle, err := strconv.ParseUint(raw, 10, 32); err == nil {
		if d, ok := findByHandle(device.Handle(handle), devices); ok {
			return d, nil
		}
		logging.Debug("no device has handle %s, falling through", raw)
	}

	return resolveByName(raw, devices)
}

// findByUID looks for a device whose uid contains the MAC-like fragment,
// accepting either separator convention regardless of how the user typed it.
func findByUID(raw string, devices []device.Device) (device.Device, bool) {
	upper := strings.ToUpper(raw)
	variants := []string{
		upper,
		strings.ReplaceAll(upper, ":", "-"),
		strings.ReplaceAll(upper, "-", ":"),
	}
	for _, d := range devices {
		uid := strings.ToUpper(d.UID)
		for _, v := range variants {
			if strings.Contains(uid, v) {
				return d, true
			}
		}
	}
	return device.Device{}, false
}

func findByHandle(h device.Handle, devices []device.Device) (device.Device, bool) {
	for _, d := range devices {
		if d.Handle == h {
			return d, true
		}
	}
	return device.Device{}, false
}

// resolveByName tries exact normalized equality first, then fuzzy matching.
func resolveByName(raw string, devices []device.Device) (device.Device, error) {
	want := match.Normalize(raw)
	for _, d := range devices {
		if match.Normalize(d.Name) == want {
			return d, nil
		}
	}
	return match.ResolveFuzzy(raw, devices)
}

// Current returns the default device for a concrete direction.
func (s *Selector) Current(dir device.Direction) (device.Device, error) {
	if dir == device.Any {
		return device.Device{}, apperrors.NewInvalidDeviceType("the default device needs a concrete direction (input, output, or system)")
	}

	h, err := s.backend.DefaultDevice(dir)
	if err != nil {
		return device.Device{}, err
	}
	name, err := s.backend.DeviceName(h)
	if err != nil {
		return device.Device{}, apperrors.NewPropertyError("read default device name", err)
	}
	uid, err := s.backend.DeviceUID(h)
	if err != nil {
		return device.Device{}, apperrors.NewPropertyError("read default device uid", err)
	}
	return device.Device{Handle: h, Name: name, UID: uid, Direction: dir}, nil
}

// Next returns the device after the current default in the deterministic
// (name, uid) order, wrapping around. When the current default is filtered
// out or unreadable, the first listed device is returned.
func (s *Selector) Next(dir device.Direction) (device.Device, error) {
	if dir == device.Any {
		return device.Device{}, apperrors.NewInvalidDeviceType("cycling needs a concrete direction (input, output, or system)")
	}

	devices := s.List(dir)
	if len(devices) == 0 {
		return device.Device{}, apperrors.NewDeviceNotFound(dir.String() + " devices")
	}

	current, err := s.Current(dir)
	if err != nil {
		logging.Debug("current %s device unknown, starting from the top: %v", dir, err)
		return devices[0], nil
	}
	for i, d := range devices {
		if d.Handle == current.Handle {
			return devices[(i+1)%len(devices)], nil
		}
	}
	return devices[0], nil
}
