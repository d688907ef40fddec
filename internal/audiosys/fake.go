// ABOUTME: In-memory Backend used by tests across packages.
// ABOUTME: Supports per-handle fault injection to exercise best-effort paths.

package audiosys

import (
	"fmt"

	"github.com/sndctl/sndctl/internal/apperrors"
	"github.com/sndctl/sndctl/internal/device"
)

// FakeDevice describes one device served by the Fake backend.
type FakeDevice struct {
	Handle device.Handle
	Name   string
	UID    string
	Input  bool
	Output bool
	Muted  bool
}

// Fake is an in-memory Backend for tests. The zero value is empty; add
// devices with Add and inject failures via the error maps.
type Fake struct {
	Devices []FakeDevice

	// NameErr and UIDErr make metadata fetches fail for specific handles.
	NameErr map[device.Handle]error
	UIDErr  map[device.Handle]error

	// EnumerateErr makes Handles itself fail.
	EnumerateErr error

	// Defaults maps a direction to its default handle.
	Defaults map[device.Direction]device.Handle

	// SetDefaultErr fails SetDefaultDevice for specific directions.
	SetDefaultErr map[device.Direction]error

	// SetDefaultCalls records every successful SetDefaultDevice call.
	SetDefaultCalls []string
}

// Add appends a device and returns the fake for chaining.
func (f *Fake) Add(d FakeDevice) *Fake {
	f.Devices = append(f.Devices, d)
	return f
}

func (f *Fake) find(h device.Handle) (*FakeDevice, error) {
	for i := range f.Devices {
		if f.Devices[i].Handle == h {
			return &f.Devices[i], nil
		}
	}
	return nil, apperrors.NewPropertyError(fmt.Sprintf("unknown device handle %d", h), nil)
}

func (f *Fake) Handles() ([]device.Handle, error) {
	if f.EnumerateErr != nil {
		return nil, f.EnumerateErr
	}
	handles := make([]device.Handle, 0, len(f.Devices))
	for _, d := range f.Devices {
		handles = append(handles, d.Handle)
	}
	return handles, nil
}

func (f *Fake) DeviceName(h device.Handle) (string, error) {
	if err := f.NameErr[h]; err != nil {
		return "", err
	}
	d, err := f.find(h)
	if err != nil {
		return "", err
	}
	return d.Name, nil
}

func (f *Fake) DeviceUID(h device.Handle) (string, error) {
	if err := f.UIDErr[h]; err != nil {
		return "", err
	}
	d, err := f.find(h)
	if err != nil {
		return "", err
	}
	return d.UID, nil
}

func (f *Fake) SupportsDirection(h device.Handle, dir device.Direction) (bool, error) {
	d, err := f.find(h)
	if err != nil {
		return false, err
	}
	switch dir {
	case device.Input:
		return d.Input, nil
	case device.Output, device.System:
		return d.Output, nil
	case device.Any:
		return d.Input || d.Output, nil
	default:
		return false, apperrors.NewInvalidDeviceType(fmt.Sprintf("unknown direction %v", dir))
	}
}

func (f *Fake) DefaultDevice(dir device.Direction) (device.Handle, error) {
	h, ok := f.Defaults[dir]
	if !ok {
		return 0, apperrors.NewPropertyError(fmt.Sprintf("no default %s device", dir), nil)
	}
	return h, nil
}

func (f *Fake) SetDefaultDevice(h device.Handle, dir device.Direction) error {
	if err := f.SetDefaultErr[dir]; err != nil {
		return err
	}
	if _, err := f.find(h); err != nil {
		return err
	}
	if f.Defaults == nil {
		f.Defaults = make(map[device.Direction]device.Handle)
	}
	f.Defaults[dir] = h
	f.SetDefaultCalls = append(f.SetDefaultCalls, fmt.Sprintf("%d/%s", h, dir))
	return nil
}

func (f *Fake) Mute(h device.Handle) (bool, error) {
	d, err := f.find(h)
	if err != nil {
		return false, err
	}
	return d.Muted, nil
}

func (f *Fake) SetMute(h device.Handle, muted bool) error {
	d, err := f.find(h)
	if err != nil {
		return err
	}
	d.Muted = muted
	return nil
}
