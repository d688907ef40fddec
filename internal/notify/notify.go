// ABOUTME: Optional desktop notification after a successful device switch.
// ABOUTME: Notification failures are logged and never fail the command.

package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/logging"
)

// Switched announces that dir's default device changed to d. Best effort:
// a missing notification daemon must not turn a successful switch into a
// failure.
func Switched(d device.Device, dir device.Direction) {
	originalAppName := beeep.AppName
	beeep.AppName = "sndctl"
	defer func() {
		beeep.AppName = originalAppName
	}()

	title := "Audio device switched"
	message := fmt.Sprintf("Default %s device is now %s", dir, d.Name)
	if err := beeep.Notify(title, message, ""); err != nil {
		logging.Warn("desktop notification failed: %v", err)
		return
	}
	logging.Debug("notified: %s", message)
}
