// ABOUTME: Interface to the external audio subsystem.
// ABOUTME: Everything behind it is a thin property get/set; the resolution logic lives elsewhere.

package audiosys

import (
	"github.com/sndctl/sndctl/internal/device"
)

// Backend is the audio subsystem the selection pipeline runs against.
// All calls are blocking and synchronous; handles returned here are only
// valid for the lifetime of the backend instance.
type Backend interface {
	// Handles enumerates every device the subsystem knows about.
	Handles() ([]device.Handle, error)

	// DeviceName returns the human-readable device name.
	DeviceName(h device.Handle) (string, error)

	// DeviceUID returns the persistent device identifier, stable across
	// reboots and reconnects.
	DeviceUID(h device.Handle) (string, error)

	// SupportsDirection reports whether the device can serve the direction.
	SupportsDirection(h device.Handle, dir device.Direction) (bool, error)

	// DefaultDevice returns the current default device for the direction.
	DefaultDevice(dir device.Direction) (device.Handle, error)

	// SetDefaultDevice makes the device the default for the direction.
	SetDefaultDevice(h device.Handle, dir device.Direction) error

	// Mute reports the device's mute state.
	Mute(h device.Handle) (bool, error)

	// SetMute sets the device's mute state.
	SetMute(h device.Handle, muted bool) error
}
