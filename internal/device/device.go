// ABOUTME: Core device model: handles, directions, and the MAC-like display tag.
// ABOUTME: UIDs are the stable key; handles are transient and never cached.

package device

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Handle is the OS-assigned numeric identifier for a device. It is only valid
// within the current OS session and must never be persisted.
type Handle uint32

// Direction is the audio flow category of a device.
type Direction int

const (
	Input Direction = iota
	Output
	// System is the distinguished default-output role used for alert sounds.
	// For capability matching it behaves exactly like Output.
	System
	// Any matches devices with either input or output capability.
	Any
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case System:
		return "system"
	case Any:
		return "any"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection maps a user-supplied type string to a Direction.
// "all" is accepted as an alias for Any.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	case "system":
		return System, nil
	case "any", "all", "":
		return Any, nil
	default:
		return Any, fmt.Errorf("unknown device type: %s (must be one of: input, output, system, all)", s)
	}
}

// Device is one enumerated audio device. All fields come fresh from the audio
// subsystem on every invocation.
type Device struct {
	Handle    Handle
	Name      string
	UID       string
	Direction Direction
}

// macTagPattern matches a MAC-like tag embedded in a device UID: six 2-hex-digit
// groups joined by ":" or "-", e.g. "14-61-02-9F-34-7D".
var macTagPattern = regexp.MustCompile(`(?i)(?:[0-9a-f]{2}:){5}[0-9a-f]{2}|(?:[0-9a-f]{2}-){5}[0-9a-f]{2}`)

// MACTag extracts the MAC-like hex tag from a UID, if one is embedded.
// The tag is cosmetic, for display only; matching never uses it.
func MACTag(uid string) (string, bool) {
	tag := macTagPattern.FindString(uid)
	return tag, tag != ""
}

// Tag returns the device's MAC-like display tag, or "" when the UID does not
// embed one.
func (d Device) Tag() string {
	tag, _ := MACTag(d.UID)
	return tag
}

// Sort orders devices by (name, uid) ascending in byte order. OS enumeration
// order is not stable across calls; this makes listings and cycle order
// reproducible.
func Sort(devices []Device) {
	sort.Slice(devices, func(i, j int) bool {
		if devices[i].Name != devices[j].Name {
			return devices[i].Name < devices[j].Name
		}
		return devices[i].UID < devices[j].UID
	})
}
