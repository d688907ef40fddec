// ABOUTME: Allow/deny device filtering by name and UID substrings.
// ABOUTME: A non-empty include list takes over completely; ignore is the default mode.

package filter

import (
	"strings"

	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/match"
)

// List holds filter entries for one role (ignore or include).
type List struct {
	Names []string `json:"names"`
	UIDs  []string `json:"uids"`
}

// Empty reports whether the list has no entries at all.
func (l List) Empty() bool {
	return len(l.Names) == 0 && len(l.UIDs) == 0
}

// Matches reports whether the device matches any entry in the list.
//
// Name entries match bidirectionally on normalized strings: a filter entry
// that is a fragment of the device name counts, and so does an entry that is
// a longer string containing the device name. UID entries are plain
// case-sensitive substrings of the device UID.
func (l List) Matches(d device.Device) bool {
	devName := match.Normalize(d.Name)
	for _, name := range l.Names {
		n := match.Normalize(name)
		if n == "" {
			continue
		}
		if strings.Contains(devName, n) || strings.Contains(n, devName) {
			return true
		}
	}
	for _, uid := range l.UIDs {
		if uid == "" {
			continue
		}
		if strings.Contains(d.UID, uid) {
			return true
		}
	}
	return false
}

// Rules pairs the two filter roles. At most one is in effect for any given
// device: a non-empty include list switches to allow-list mode and the ignore
// list is not consulted.
type Rules struct {
	Ignore  List
	Include List
}

// ShouldExclude decides whether a device is dropped from listings.
func (r Rules) ShouldExclude(d device.Device) bool {
	if !r.Include.Empty() {
		return !r.Include.Matches(d)
	}
	return r.Ignore.Matches(d)
}
