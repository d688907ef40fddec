// ABOUTME: Applying a resolved device to the hardware: default switching and mute.
// ABOUTME: Multi-direction switches count successes; only a full failure is an error.

package selector

import (
	"fmt"

	"github.com/sndctl/sndctl/internal/apperrors"
	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/logging"
)

// SetDefault makes the device the default for every given direction. A
// direction that fails does not block the others; the call only errors when
// all of them failed. The chosen device can disappear between resolution and
// apply, which surfaces here as a normal failure.
func (s *Selector) SetDefault(d device.Device, dirs []device.Direction) error {
	if len(dirs) == 0 {
		return apperrors.NewInvalidDeviceType("no direction to apply")
	}

	succeeded := 0
	var lastErr error
	for _, dir := range dirs {
		if err := s.backend.SetDefaultDevice(d.Handle, dir); err != nil {
			logging.Warn("set default %s device to %q failed: %v", dir, d.Name, err)
			lastErr = err
			continue
		}
		logging.Debug("default %s device is now %q", dir, d.Name)
		succeeded++
	}

	if succeeded == 0 {
		return apperrors.NewPropertyError(fmt.Sprintf("could not set %q as default for any requested direction", d.Name), lastErr)
	}
	return nil
}

// MuteAction is a requested mute state change.
type MuteAction string

const (
	MuteOn     MuteAction = "on"
	MuteOff    MuteAction = "off"
	MuteToggle MuteAction = "toggle"
)

// ParseMuteAction validates a user-supplied mute action.
func ParseMuteAction(s string) (MuteAction, error) {
	switch MuteAction(s) {
	case MuteOn, MuteOff, MuteToggle:
		return MuteAction(s), nil
	default:
		return "", fmt.Errorf("unknown mute action: %s (must be one of: on, off, toggle)", s)
	}
}

// ApplyMute applies a mute action to the device and returns the resulting
// mute state.
func (s *Selector) ApplyMute(d device.Device, action MuteAction) (bool, error) {
	var target bool
	switch action {
	case MuteOn:
		target = true
	case MuteOff:
		target = false
	case MuteToggle:
		current, err := s.backend.Mute(d.Handle)
		if err != nil {
			return false, err
		}
		target = !current
	default:
		return false, fmt.Errorf("unknown mute action: %s", action)
	}

	if err := s.backend.SetMute(d.Handle, target); err != nil {
		return false, err
	}
	return target, nil
}
