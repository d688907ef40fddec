// ABOUTME: `sndctl set` resolves an identifier and makes it the default device.
// ABOUTME: With --type all, every direction is attempted and successes are counted.

package main

import (
	"github.com/spf13/cobra"

	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/format"
	"github.com/sndctl/sndctl/internal/logging"
	"github.com/sndctl/sndctl/internal/notify"
	"github.com/sndctl/sndctl/internal/player"
)

func newSetCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string
	var notifyFlag bool

	cmd := &cobra.Command{
		Use:   "set <identifier>",
		Short: "Set the default device by name, fuzzy name, id, or uid fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := device.ParseDirection(typeFlag)
			if err != nil {
				return err
			}
			f, err := ctx.outputFormat()
			if err != nil {
				return err
			}

			sel := ctx.selector()
			dev, err := sel.Resolve(args[0], dir)
			if err != nil {
				return err
			}

			dirs := expandDirections(dir)
			if err := sel.SetDefault(dev, dirs); err != nil {
				return err
			}

			cfg := ctx.configValue()
			if notifyFlag || cfg.NotifyOnSwitch {
				notify.Switched(dev, dir)
			}
			if cfg.Sounds.SwitchConfirm != "" && dir != device.Input {
				playConfirmation(dev, cfg.Sounds.SwitchConfirm)
			}

			return format.RenderOne(cmd.OutOrStdout(), dev, f)
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "output", "Device type: input, output, system, all")
	cmd.Flags().BoolVarP(&notifyFlag, "notify", "n", false, "Send a desktop notification after switching")
	return cmd
}

// playConfirmation plays the configured confirmation sound on the device that
// just became the default. Best effort: a playback failure never fails the
// switch.
func playConfirmation(dev device.Device, soundPath string) {
	p, err := player.New(dev.Name, 1.0)
	if err != nil {
		logging.Warn("confirmation sound skipped: %v", err)
		return
	}
	defer p.Close()
	if err := p.Play(soundPath); err != nil {
		logging.Warn("confirmation sound failed: %v", err)
	}
}
