// ABOUTME: `sndctl play` plays a sound file on a device to verify a switch.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/player"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var deviceFlag string
	var volumeFlag float64

	cmd := &cobra.Command{
		Use:   "play <file>",
		Short: "Play a sound file on a device (wav, mp3, flac, ogg, aiff)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if volumeFlag < 0.0 || volumeFlag > 1.0 {
				return fmt.Errorf("volume must be between 0.0 and 1.0 (got %.2f)", volumeFlag)
			}

			deviceName := ""
			if deviceFlag != "" {
				dev, err := ctx.selector().Resolve(deviceFlag, device.Output)
				if err != nil {
					return err
				}
				deviceName = dev.Name
			}

			p, err := player.New(deviceName, volumeFlag)
			if err != nil {
				return err
			}
			defer p.Close()
			return p.Play(args[0])
		},
	}

	cmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "Output device identifier (default: system default)")
	cmd.Flags().Float64Var(&volumeFlag, "volume", 1.0, "Playback volume, 0.0 to 1.0")
	return cmd
}
